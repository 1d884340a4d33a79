//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package tool defines the contract between agent frameworks and devkit tools.
package tool

import (
	"context"
)

// Tool is anything an agent can advertise to a model.
type Tool interface {
	// Declaration returns the metadata describing the tool.
	Declaration() *Declaration
}

// CallableTool is a Tool the agent can invoke with JSON arguments.
type CallableTool interface {
	// Call runs the tool with JSON encoded arguments.
	// The returned value is serialized back to the model by the caller.
	Call(ctx context.Context, jsonArgs []byte) (any, error)
	Tool
}

// Declaration describes a tool: its name, purpose and argument shapes.
type Declaration struct {
	// Name is the unique identifier of the tool.
	Name string `json:"name"`
	// Description explains to the model when to use the tool.
	Description string `json:"description"`
	// InputSchema is the JSON schema of the arguments.
	InputSchema *Schema `json:"inputSchema"`
	// OutputSchema is the JSON schema of the result, if known.
	OutputSchema *Schema `json:"outputSchema,omitempty"`
}

// Schema is the subset of JSON Schema used to describe tool arguments and results.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	// Items is the element schema of array types.
	Items *Schema `json:"items,omitempty"`
	// Enum restricts the value to a fixed set.
	Enum    []any `json:"enum,omitempty"`
	Default any   `json:"default,omitempty"`
	// AdditionalProperties is the value schema of map types.
	AdditionalProperties any `json:"additionalProperties,omitempty"`
}
