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
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-devkit/media"
)

// Status tells which branch of an Outcome is populated.
type Status string

// Search statuses.
const (
	// StatusFound carries at least one image.
	StatusFound Status = "found"
	// StatusEmpty means the provider matched nothing. It is not a failure.
	StatusEmpty Status = "empty"
	// StatusFailed carries an Error and no images.
	StatusFailed Status = "failed"
)

// ErrorKind classifies a failed search.
type ErrorKind string

// Error kinds.
const (
	// KindProvider is a non-2xx answer from Pexels.
	KindProvider ErrorKind = "provider_error"
	// KindInternal covers transport, decoding and configuration failures.
	KindInternal ErrorKind = "internal_error"
	// KindInvalidRequest rejects a request before anything is sent.
	KindInvalidRequest ErrorKind = "invalid_request"
)

// noPhotoSummary is what callers show for Empty and Failed outcomes.
const noPhotoSummary = "No photo found"

// Error describes why a search failed.
type Error struct {
	Kind ErrorKind `json:"kind"`
	// StatusCode is the provider's HTTP status, zero unless Kind is KindProvider.
	StatusCode int `json:"status_code,omitempty"`
	// Detail is the provider message or the local cause.
	Detail string `json:"detail"`

	cause error
}

// Error implements error.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pexels: %s (status %d): %s", e.Kind, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("pexels: %s: %s", e.Kind, e.Detail)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Outcome is the result of one search. Exactly one of the three shapes is
// returned: Found with Images, Empty, or Failed with Err.
type Outcome struct {
	Status  Status
	Images  []media.Image
	Summary string
	Err     *Error
}

func found(images []media.Image) Outcome {
	return Outcome{
		Status:  StatusFound,
		Images:  images,
		Summary: foundSummary(images),
	}
}

func empty() Outcome {
	return Outcome{Status: StatusEmpty, Summary: noPhotoSummary}
}

func failed(kind ErrorKind, statusCode int, cause error, format string, args ...any) Outcome {
	return Outcome{
		Status:  StatusFailed,
		Summary: noPhotoSummary,
		Err: &Error{
			Kind:       kind,
			StatusCode: statusCode,
			Detail:     fmt.Sprintf(format, args...),
			cause:      cause,
		},
	}
}

// foundSummary renders "Found {n} Photo(s): [url1, url2]".
func foundSummary(images []media.Image) string {
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	return fmt.Sprintf("Found %d Photo(s): [%s]", len(images), strings.Join(urls, ", "))
}
