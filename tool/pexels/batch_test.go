//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package pexels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-agent-devkit/media"
)

func TestSearchBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "nature":
			_, _ = w.Write([]byte(twoPhotos))
		case "nothing":
			_, _ = w.Write([]byte(`{"photos":[]}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	tl := New(WithBaseURL(server.URL), WithAPIKey("k"))
	reg := &media.Collector{}
	reqs := []SearchRequest{
		{Query: "nature", MaxResults: 2},
		{Query: "nothing"},
		{Query: "denied"},
		{Query: ""},
		{Query: "nature", MaxResults: 1},
	}

	outcomes, err := tl.SearchBatch(context.Background(), reg, reqs, 2)
	require.NoError(t, err)
	require.Len(t, outcomes, len(reqs))

	assert.Equal(t, StatusFound, outcomes[0].Status)
	assert.Len(t, outcomes[0].Images, 2)
	assert.Equal(t, StatusEmpty, outcomes[1].Status)
	assert.Equal(t, KindProvider, outcomes[2].Err.Kind)
	assert.Equal(t, KindInvalidRequest, outcomes[3].Err.Kind)
	assert.Len(t, outcomes[4].Images, 1)
	assert.Equal(t, 3, reg.Len())
}

func TestSearchBatch_Empty(t *testing.T) {
	outcomes, err := New(WithAPIKey("k")).SearchBatch(context.Background(), nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}
