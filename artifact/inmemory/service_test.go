//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-agent-devkit/artifact"
)

var info = artifact.SessionInfo{AppName: "devkit", UserID: "phong", SessionID: "s1"}

func TestService_SaveLoadVersions(t *testing.T) {
	ctx := context.Background()
	s := NewService()

	v0, err := s.SaveArtifact(ctx, info, "image_1", &artifact.Artifact{Data: []byte("a"), MimeType: "text/plain"})
	require.NoError(t, err)
	v1, err := s.SaveArtifact(ctx, info, "image_1", &artifact.Artifact{Data: []byte("b"), URL: "https://example.com/1.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 0, v0)
	assert.Equal(t, 1, v1)

	latest, err := s.LoadArtifact(ctx, info, "image_1", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), latest.Data)
	assert.Equal(t, "https://example.com/1.jpg", latest.URL)

	first, err := s.LoadArtifact(ctx, info, "image_1", &v0)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", first.MimeType)

	bad := 5
	_, err = s.LoadArtifact(ctx, info, "image_1", &bad)
	assert.Error(t, err)

	versions, err := s.ListVersions(ctx, info, "image_1")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, versions)
}

func TestService_SaveCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewService()
	data := []byte("abc")
	_, err := s.SaveArtifact(ctx, info, "f", &artifact.Artifact{Data: data})
	require.NoError(t, err)
	data[0] = 'x'

	got, err := s.LoadArtifact(ctx, info, "f", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got.Data)

	_, err = s.SaveArtifact(ctx, info, "f", nil)
	assert.Error(t, err)
}

func TestService_Scopes(t *testing.T) {
	ctx := context.Background()
	s := NewService()
	other := info
	other.SessionID = "s2"

	_, err := s.SaveArtifact(ctx, info, "image_b", &artifact.Artifact{})
	require.NoError(t, err)
	_, err = s.SaveArtifact(ctx, info, "user:avatar", &artifact.Artifact{})
	require.NoError(t, err)
	_, err = s.SaveArtifact(ctx, other, "image_a", &artifact.Artifact{})
	require.NoError(t, err)

	keys, err := s.ListArtifactKeys(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, []string{"image_b", "user:avatar"}, keys)

	keys, err = s.ListArtifactKeys(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, []string{"image_a", "user:avatar"}, keys)
}

func TestService_DeleteAndMissing(t *testing.T) {
	ctx := context.Background()
	s := NewService()

	got, err := s.LoadArtifact(ctx, info, "missing", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	versions, err := s.ListVersions(ctx, info, "missing")
	require.NoError(t, err)
	assert.Empty(t, versions)

	_, err = s.SaveArtifact(ctx, info, "image_1", &artifact.Artifact{})
	require.NoError(t, err)
	require.NoError(t, s.DeleteArtifact(ctx, info, "image_1"))
	require.NoError(t, s.DeleteArtifact(ctx, info, "image_1"))

	keys, err := s.ListArtifactKeys(ctx, info)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestService_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := NewService()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.SaveArtifact(ctx, info, fmt.Sprintf("image_%d", i%4), &artifact.Artifact{})
		}(i)
	}
	wg.Wait()

	keys, err := s.ListArtifactKeys(ctx, info)
	require.NoError(t, err)
	assert.Len(t, keys, 4)
	versions, err := s.ListVersions(ctx, info, "image_0")
	require.NoError(t, err)
	assert.Len(t, versions, 5)
}
