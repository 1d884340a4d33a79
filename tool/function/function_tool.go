//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package function wraps plain Go functions as callable tools.
package function

import (
	"context"
	"fmt"
	"reflect"

	"trpc.group/trpc-go/trpc-agent-devkit/internal/json"
	itool "trpc.group/trpc-go/trpc-agent-devkit/internal/tool"
	"trpc.group/trpc-go/trpc-agent-devkit/tool"
)

// FunctionTool exposes fn as a tool.CallableTool. Arguments are decoded from
// JSON into I and the result O is returned to the caller as is.
type FunctionTool[I, O any] struct {
	name         string
	description  string
	inputSchema  *tool.Schema
	outputSchema *tool.Schema
	fn           func(context.Context, I) (O, error)
	unmarshaler  unmarshaler
}

// Option configures a FunctionTool.
type Option func(*options)

type options struct {
	name        string
	description string
	unmarshaler unmarshaler
}

// WithName sets the name advertised to the model.
func WithName(name string) Option {
	return func(opts *options) {
		opts.name = name
	}
}

// WithDescription sets the description advertised to the model.
func WithDescription(description string) Option {
	return func(opts *options) {
		opts.description = description
	}
}

// NewFunctionTool creates a FunctionTool for fn. The input and output schemas
// are derived from I and O.
func NewFunctionTool[I, O any](fn func(context.Context, I) (O, error), opts ...Option) *FunctionTool[I, O] {
	o := &options{
		unmarshaler: jsonUnmarshaler{},
	}
	for _, opt := range opts {
		opt(o)
	}

	var (
		emptyI I
		emptyO O
	)
	return &FunctionTool[I, O]{
		name:         o.name,
		description:  o.description,
		fn:           fn,
		unmarshaler:  o.unmarshaler,
		inputSchema:  itool.GenerateJSONSchema(reflect.TypeOf(emptyI)),
		outputSchema: itool.GenerateJSONSchema(reflect.TypeOf(emptyO)),
	}
}

// Call decodes jsonArgs into the input type and invokes the wrapped function.
// Empty arguments decode to the zero value of I.
func (ft *FunctionTool[I, O]) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	var input I
	if len(jsonArgs) > 0 {
		if err := ft.unmarshaler.Unmarshal(jsonArgs, &input); err != nil {
			return nil, fmt.Errorf("function tool %s: invalid arguments: %w", ft.name, err)
		}
	}
	out, err := ft.fn(ctx, input)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Declaration returns the tool's metadata.
func (ft *FunctionTool[I, O]) Declaration() *tool.Declaration {
	return &tool.Declaration{
		Name:         ft.name,
		Description:  ft.description,
		InputSchema:  ft.inputSchema,
		OutputSchema: ft.outputSchema,
	}
}

type unmarshaler interface {
	Unmarshal([]byte, any) error
}

type jsonUnmarshaler struct{}

func (jsonUnmarshaler) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
