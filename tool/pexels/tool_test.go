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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-agent-devkit/internal/json"
	"trpc.group/trpc-go/trpc-agent-devkit/media"
)

func TestNewTool_Declaration(t *testing.T) {
	decl := NewTool(WithAPIKey("k")).Declaration()
	assert.Equal(t, "pexels_search_photos", decl.Name)
	assert.NotEmpty(t, decl.Description)

	in := decl.InputSchema
	assert.Equal(t, []string{"query"}, in.Required)
	assert.Equal(t, "integer", in.Properties["max_results"].Type)
	assert.Equal(t, []any{"landscape", "portrait", "square"}, in.Properties["orientation"].Enum)
	assert.Equal(t, "landscape", in.Properties["orientation"].Default)
	assert.Contains(t, in.Properties["color"].Description, "turquoise")

	assert.Contains(t, decl.OutputSchema.Properties, "photos")
	assert.Contains(t, decl.OutputSchema.Properties, "summary")

	assert.Equal(t, "stock_photos", NewTool(WithAPIKey("k"), WithName("stock_photos")).Declaration().Name)
}

func TestNewTool_CallRegistersIntoContext(t *testing.T) {
	s := newStub(t, http.StatusOK, twoPhotos)
	tl := NewTool(WithBaseURL(s.URL), WithAPIKey("k"))
	reg := &media.Collector{}
	ctx := media.NewContext(context.Background(), reg)

	res, err := tl.Call(ctx, []byte(`{"query":"nature","max_results":2,"orientation":"landscape"}`))
	require.NoError(t, err)
	out, ok := res.(searchOutput)
	require.True(t, ok)
	assert.Equal(t, StatusFound, out.Status)
	assert.Len(t, out.Photos, 2)
	assert.Nil(t, out.Error)
	assert.Equal(t, out.Photos, reg.Images())

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status":"found",
		"photos":[
			{"id":"photo1","url":"https://example.com/photo1.jpg","alt_text":"green hills","source_query":"nature"},
			{"id":"photo2","url":"https://example.com/photo2.jpg","alt_text":"a lake","source_query":"nature"}
		],
		"summary":"Found 2 Photo(s): [https://example.com/photo1.jpg, https://example.com/photo2.jpg]"
	}`, string(raw))
}

func TestNewTool_CallFailure(t *testing.T) {
	s := newStub(t, http.StatusUnauthorized, `{"error":"bad key"}`)
	tl := NewTool(WithBaseURL(s.URL), WithAPIKey("k"))

	res, err := tl.Call(context.Background(), []byte(`{"query":"nature"}`))
	require.NoError(t, err)
	out := res.(searchOutput)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status":"failed",
		"photos":[],
		"summary":"No photo found",
		"error":{"kind":"provider_error","status_code":401,"detail":"bad key"}
	}`, string(raw))
}

func TestNewTool_InvalidArguments(t *testing.T) {
	tl := NewTool(WithAPIKey("k"))
	_, err := tl.Call(context.Background(), []byte(`{"query":`))
	assert.Error(t, err)

	res, err := tl.Call(context.Background(), nil)
	require.NoError(t, err)
	out := res.(searchOutput)
	assert.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, KindInvalidRequest, out.Error.Kind)
}
