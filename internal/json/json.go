//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package json routes encoding/json style calls through json-iterator.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// Marshal returns the JSON encoding of v.
	Marshal = api.Marshal
	// MarshalIndent is like Marshal but indents the output.
	MarshalIndent = api.MarshalIndent
	// Unmarshal parses JSON data into v.
	Unmarshal = api.Unmarshal
	// NewDecoder returns a decoder reading from r.
	NewDecoder = api.NewDecoder
	// NewEncoder returns an encoder writing to w.
	NewEncoder = api.NewEncoder
)

// RawMessage is a raw encoded JSON value.
type RawMessage = jsoniter.RawMessage

// Number is a JSON number literal.
type Number = jsoniter.Number

// Decoder reads JSON values from a stream.
type Decoder = jsoniter.Decoder

// Encoder writes JSON values to a stream.
type Encoder = jsoniter.Encoder
