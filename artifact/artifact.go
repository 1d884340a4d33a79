//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package artifact stores named, versioned media attached to an agent session.
package artifact

// Artifact is one stored version of a named piece of media.
type Artifact struct {
	// Data is the stored payload.
	Data []byte `json:"data,omitempty"`
	// MimeType is the IANA media type of Data.
	MimeType string `json:"mime_type,omitempty"`
	// URL is where the media itself can be fetched, when it lives elsewhere.
	URL string `json:"url,omitempty"`
	// Name is a display name.
	Name string `json:"name,omitempty"`
}

// SessionInfo identifies the session an artifact belongs to.
type SessionInfo struct {
	AppName   string
	UserID    string
	SessionID string
}
