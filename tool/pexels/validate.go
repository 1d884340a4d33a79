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
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Orientation constrains the aspect of returned photos.
type Orientation string

// Orientations accepted by Pexels.
const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Square    Orientation = "square"
)

// maxPerPage is the largest page Pexels serves.
const maxPerPage = 80

var palette = map[string]bool{
	"red": true, "orange": true, "yellow": true, "green": true,
	"turquoise": true, "blue": true, "violet": true, "pink": true,
	"brown": true, "black": true, "gray": true, "white": true,
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// SearchRequest is the input of Tool.Search.
type SearchRequest struct {
	Query string
	// MaxResults of zero selects the tool's default limit.
	MaxResults int
	// Orientation defaults to Landscape.
	Orientation Orientation
	// Color is a palette name or a #RRGGBB code. Empty means any colour.
	Color string
}

// normalize fills defaults and rejects requests Pexels cannot serve.
func (r SearchRequest) normalize(defaultLimit int) (SearchRequest, error) {
	if strings.TrimSpace(r.Query) == "" {
		return r, errors.New("query is empty")
	}

	if r.MaxResults == 0 {
		r.MaxResults = defaultLimit
	}
	if r.MaxResults < 1 || r.MaxResults > maxPerPage {
		return r, fmt.Errorf("max results %d out of range [1, %d]", r.MaxResults, maxPerPage)
	}

	switch r.Orientation {
	case "":
		r.Orientation = Landscape
	case Landscape, Portrait, Square:
	default:
		return r, fmt.Errorf("unsupported orientation %q", r.Orientation)
	}

	if r.Color != "" {
		c := strings.ToLower(strings.TrimSpace(r.Color))
		if !palette[c] && !hexColor.MatchString(c) {
			return r, fmt.Errorf("unsupported color %q", r.Color)
		}
		r.Color = c
	}
	return r, nil
}
