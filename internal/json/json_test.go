//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package json

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardLibraryCompatibility(t *testing.T) {
	type photo struct {
		ID  Number `json:"id"`
		Alt string `json:"alt,omitempty"`
	}

	var p photo
	require.NoError(t, NewDecoder(strings.NewReader(`{"id": 2014422, "alt": "dunes"}`)).Decode(&p))
	assert.Equal(t, "2014422", p.ID.String())
	assert.Equal(t, "dunes", p.Alt)

	b, err := Marshal(photo{ID: "7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7}`, string(b))

	var raw RawMessage
	require.NoError(t, Unmarshal([]byte(`{"a":1}`), &raw))
	assert.Equal(t, `{"a":1}`, string(raw))
}

func TestEncoderAndIndent(t *testing.T) {
	var buf bytes.Buffer
	var enc *Encoder = NewEncoder(&buf)
	require.NoError(t, enc.Encode(map[string]int{"n": 1}))
	assert.Equal(t, "{\"n\":1}\n", buf.String())

	var dec *Decoder = NewDecoder(&buf)
	var got map[string]int
	require.NoError(t, dec.Decode(&got))
	assert.Equal(t, 1, got["n"])

	b, err := MarshalIndent(map[string]int{"n": 1}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"n\": 1\n}", string(b))
}
