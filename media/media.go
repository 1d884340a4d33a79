//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package media defines the images tools hand back to an agent and the narrow
// capability through which the agent receives them.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
)

// Image describes one picture produced by a tool.
type Image struct {
	// ID is the provider's identifier, opaque to the agent.
	ID string `json:"id"`
	// URL links to the full resolution image.
	URL string `json:"url"`
	// AltText is the provider supplied description. May be empty.
	AltText string `json:"alt_text,omitempty"`
	// SourceQuery is the query that produced the image.
	SourceQuery string `json:"source_query"`
}

// Validate reports whether the image carries a usable absolute URL.
func (img Image) Validate() error {
	if img.URL == "" {
		return errors.New("media: image url is empty")
	}
	u, err := url.Parse(img.URL)
	if err != nil {
		return fmt.Errorf("media: image url %q: %w", img.URL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("media: image url %q is not absolute", img.URL)
	}
	return nil
}

// Registrar receives images produced during an agent run, typically to attach
// them to the calling agent's or team's session.
type Registrar interface {
	RegisterImage(ctx context.Context, img Image) error
}

// RegistrarFunc adapts a function to Registrar.
type RegistrarFunc func(ctx context.Context, img Image) error

// RegisterImage calls f.
func (f RegistrarFunc) RegisterImage(ctx context.Context, img Image) error {
	return f(ctx, img)
}

type registrarKey struct{}

// NewContext returns a copy of ctx carrying r.
func NewContext(ctx context.Context, r Registrar) context.Context {
	return context.WithValue(ctx, registrarKey{}, r)
}

// RegistrarFromContext returns the Registrar stored by NewContext.
func RegistrarFromContext(ctx context.Context) (Registrar, bool) {
	r, ok := ctx.Value(registrarKey{}).(Registrar)
	return r, ok && r != nil
}

// Collector is a Registrar keeping images in memory, in registration order.
// It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	images []Image
}

// RegisterImage appends img.
func (c *Collector) RegisterImage(_ context.Context, img Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = append(c.images, img)
	return nil
}

// Images returns a snapshot of the registered images.
func (c *Collector) Images() []Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Image, len(c.images))
	copy(out, c.images)
	return out
}

// Len returns the number of registered images.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}
