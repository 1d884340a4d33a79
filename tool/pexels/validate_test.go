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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequest_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		in      SearchRequest
		want    SearchRequest
		wantErr string
	}{
		{
			name: "defaults",
			in:   SearchRequest{Query: "  nature "},
			want: SearchRequest{Query: "  nature ", MaxResults: 3, Orientation: Landscape},
		},
		{
			name: "explicit values",
			in:   SearchRequest{Query: "city", MaxResults: 80, Orientation: Square, Color: "Blue"},
			want: SearchRequest{Query: "city", MaxResults: 80, Orientation: Square, Color: "blue"},
		},
		{
			name: "hex color",
			in:   SearchRequest{Query: "sea", MaxResults: 1, Color: "#00AAff"},
			want: SearchRequest{Query: "sea", MaxResults: 1, Orientation: Landscape, Color: "#00aaff"},
		},
		{name: "blank query", in: SearchRequest{Query: " \t"}, wantErr: "query is empty"},
		{name: "negative count", in: SearchRequest{Query: "a", MaxResults: -1}, wantErr: "out of range"},
		{name: "too many", in: SearchRequest{Query: "a", MaxResults: 81}, wantErr: "out of range"},
		{name: "bad orientation", in: SearchRequest{Query: "a", Orientation: "wide"}, wantErr: "orientation"},
		{name: "bad color", in: SearchRequest{Query: "a", Color: "beige"}, wantErr: "color"},
		{name: "short hex", in: SearchRequest{Query: "a", Color: "#fff"}, wantErr: "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.normalize(3)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
