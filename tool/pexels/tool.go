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

	"trpc.group/trpc-go/trpc-agent-devkit/media"
	"trpc.group/trpc-go/trpc-agent-devkit/tool"
	"trpc.group/trpc-go/trpc-agent-devkit/tool/function"
)

const description = "Search Pexels for high quality photos matching a text description. " +
	"Use general concepts (nature, city), scenes (sunset over mountains) or objects (red apple). " +
	"Found photos are attached to the conversation and their URLs are listed in the summary. " +
	"Returns status found, empty or failed."

// searchInput is the JSON argument object of the tool.
type searchInput struct {
	Query       string `json:"query" jsonschema:"description=Text description of the photos to find"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"description=Maximum number of photos to return (1 to 80)"`
	Orientation string `json:"orientation,omitempty" jsonschema:"description=Photo orientation,enum=landscape,enum=portrait,enum=square,default=landscape"`
	Color       string `json:"color,omitempty" jsonschema:"description=Dominant colour: red orange yellow green turquoise blue violet pink brown black gray white or a hex code such as #ffffff"`
}

// searchOutput is what the agent sees.
type searchOutput struct {
	Status  Status        `json:"status"`
	Photos  []media.Image `json:"photos"`
	Summary string        `json:"summary"`
	Error   *Error        `json:"error,omitempty"`
}

// NewTool creates the Pexels search tool for an agent. The images of a
// successful search go to the media.Registrar stored in the call context
// with media.NewContext.
func NewTool(opts ...Option) tool.CallableTool {
	t := New(opts...)
	return function.NewFunctionTool(
		t.call,
		function.WithName(t.name),
		function.WithDescription(description),
	)
}

func (t *Tool) call(ctx context.Context, in searchInput) (searchOutput, error) {
	registrar, _ := media.RegistrarFromContext(ctx)
	out := t.Search(ctx, registrar, SearchRequest{
		Query:       in.Query,
		MaxResults:  in.MaxResults,
		Orientation: Orientation(in.Orientation),
		Color:       in.Color,
	})
	photos := out.Images
	if photos == nil {
		photos = []media.Image{}
	}
	return searchOutput{
		Status:  out.Status,
		Photos:  photos,
		Summary: out.Summary,
		Error:   out.Err,
	}, nil
}
