//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trpc.group/trpc-go/trpc-agent-devkit/artifact"
)

var sessionInfo = artifact.SessionInfo{
	AppName:   "devkit",
	UserID:    "phong",
	SessionID: "s1",
}

func TestFileHasUserNamespace(t *testing.T) {
	assert.True(t, FileHasUserNamespace("user:avatar"))
	assert.True(t, FileHasUserNamespace("user:"))
	assert.False(t, FileHasUserNamespace("userfile.txt"))
	assert.False(t, FileHasUserNamespace("image_1"))
	assert.False(t, FileHasUserNamespace(""))
}

func TestBuildArtifactPath(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"image_1", "devkit/phong/s1/image_1"},
		{"user:image_1", "devkit/phong/user/user:image_1"},
		{"", "devkit/phong/s1/"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildArtifactPath(sessionInfo, tt.filename))
		})
	}
}

func TestBuildObjectName(t *testing.T) {
	assert.Equal(t, "devkit/phong/s1/image_1/0", BuildObjectName(sessionInfo, "image_1", 0))
	assert.Equal(t, "devkit/phong/user/user:a/12", BuildObjectName(sessionInfo, "user:a", 12))
	assert.Equal(t, "devkit/phong/s1/image_1/", BuildObjectNamePrefix(sessionInfo, "image_1"))
}

func TestPrefixes(t *testing.T) {
	assert.Equal(t, "devkit/phong/s1/", BuildSessionPrefix(sessionInfo))
	assert.Equal(t, "devkit/phong/user/", BuildUserNamespacePrefix(sessionInfo))
}

func TestParseObjectName(t *testing.T) {
	prefix := BuildSessionPrefix(sessionInfo)

	name, version, ok := ParseObjectName(prefix, BuildObjectName(sessionInfo, "image_7", 3))
	assert.True(t, ok)
	assert.Equal(t, "image_7", name)
	assert.Equal(t, 3, version)

	for _, key := range []string{
		"other/phong/s1/image_7/3",
		prefix + "image_7",
		prefix + "image_7/x",
		prefix + "/3",
		prefix + "image_7/-1",
	} {
		_, _, ok := ParseObjectName(prefix, key)
		assert.False(t, ok, key)
	}
}
