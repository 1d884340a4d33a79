//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package pexels provides a Pexels photo search tool for AI agents.
// Found photos are returned as media.Image values and registered with the
// caller's media.Registrar so the agent can show them later.
package pexels

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelmetric "go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	itelemetry "trpc.group/trpc-go/trpc-agent-devkit/internal/telemetry"
	"trpc.group/trpc-go/trpc-agent-devkit/log"
	"trpc.group/trpc-go/trpc-agent-devkit/media"
	"trpc.group/trpc-go/trpc-agent-devkit/telemetry/metric"
	"trpc.group/trpc-go/trpc-agent-devkit/telemetry/trace"
	"trpc.group/trpc-go/trpc-agent-devkit/tool/pexels/internal/client"
)

const (
	// EnvAPIKey is read when no key is passed to New.
	EnvAPIKey = "PEXELS_API_KEY"
	// defaultBaseURL is the Pexels photo search endpoint.
	defaultBaseURL = "https://api.pexels.com/v1/search"
	// defaultLimit is the number of photos requested when the caller does not say.
	defaultLimit = 3
	// defaultName is the tool name advertised to the model.
	defaultName = "pexels_search_photos"
)

var errMissingAPIKey = errors.New("no Pexels API key configured, set " + EnvAPIKey)

// Option is a functional option for configuring the Pexels tool.
type Option func(*config)

type config struct {
	apiKey     string
	limit      int
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	name       string
}

// WithAPIKey sets the Pexels API key.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// WithLimit sets how many photos a search returns when the request leaves
// MaxResults at zero. Values below one are ignored.
func WithLimit(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.limit = n
		}
	}
}

// WithBaseURL overrides the search endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client. Timeouts and retrying transports are
// configured here; the default client has no timeout and the context passed
// to Search is the only deadline.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// WithRateLimiter throttles outgoing searches.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *config) {
		c.limiter = l
	}
}

// WithName sets the tool name used by NewTool.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Tool searches Pexels. It is immutable after New and safe for concurrent use.
type Tool struct {
	name    string
	apiKey  string
	limit   int
	limiter *rate.Limiter
	client  *client.Client
}

// New creates a Tool. Without WithAPIKey the key is taken from PEXELS_API_KEY;
// when neither is set a warning is logged and every search fails with
// KindInternal.
func New(opts ...Option) *Tool {
	cfg := &config{
		limit:      defaultLimit,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		name:       defaultName,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv(EnvAPIKey)
	}
	if cfg.apiKey == "" {
		log.Warnf("pexels: %v", errMissingAPIKey)
	}

	return &Tool{
		name:    cfg.name,
		apiKey:  cfg.apiKey,
		limit:   cfg.limit,
		limiter: cfg.limiter,
		client:  client.New(cfg.baseURL, cfg.apiKey, cfg.httpClient),
	}
}

// Name returns the tool name.
func (t *Tool) Name() string {
	return t.name
}

// Search runs one photo search. It never panics and never returns an error:
// every failure is reported as a StatusFailed Outcome.
//
// For StatusFound each image is passed to registrar once, in result order.
// Registration failures are logged and do not change the outcome. A nil
// registrar skips registration.
func (t *Tool) Search(ctx context.Context, registrar media.Registrar, req SearchRequest) (out Outcome) {
	start := time.Now()
	ctx, span := trace.Tracer.Start(ctx, itelemetry.SpanNameSearchPhotos,
		oteltrace.WithAttributes(
			attribute.String(itelemetry.KeyToolName, t.name),
			attribute.String(itelemetry.KeyQuery, req.Query),
		),
	)
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("pexels: search %q panicked: %v", req.Query, r)
			out = failed(KindInternal, 0, nil, "unexpected panic: %v", r)
		}
		t.record(ctx, span, out, time.Since(start))
		span.End()
	}()

	out = t.search(ctx, req)
	if out.Status == StatusFound {
		t.register(ctx, registrar, out.Images)
	}
	return out
}

func (t *Tool) search(ctx context.Context, req SearchRequest) Outcome {
	req, err := req.normalize(t.limit)
	if err != nil {
		return failed(KindInvalidRequest, 0, err, "%v", err)
	}
	oteltrace.SpanFromContext(ctx).SetAttributes(
		attribute.String(itelemetry.KeyOrientation, string(req.Orientation)),
		attribute.Int(itelemetry.KeyMaxResults, req.MaxResults),
	)

	if t.apiKey == "" {
		log.Errorf("pexels: search %q: %v", req.Query, errMissingAPIKey)
		return failed(KindInternal, 0, errMissingAPIKey, "%v", errMissingAPIKey)
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return failed(KindInternal, 0, err, "rate limiter: %v", err)
		}
	}

	rsp, err := t.client.Search(ctx, client.Params{
		Query:       req.Query,
		Orientation: string(req.Orientation),
		PerPage:     req.MaxResults,
		Color:       req.Color,
	})
	if err != nil {
		var se *client.StatusError
		if errors.As(err, &se) {
			log.Errorf("pexels: http error occurred: %d - %s", se.StatusCode, se.Message)
			detail := se.Message
			if detail == "" {
				detail = http.StatusText(se.StatusCode)
			}
			return failed(KindProvider, se.StatusCode, err, "%s", detail)
		}
		log.Errorf("pexels: search %q: %v", req.Query, err)
		return failed(KindInternal, 0, err, "%v", err)
	}
	if len(rsp.Photos) == 0 {
		return empty()
	}

	images := make([]media.Image, 0, min(len(rsp.Photos), req.MaxResults))
	for i, p := range rsp.Photos {
		if len(images) == req.MaxResults {
			break
		}
		img := media.Image{
			ID:          p.ID.String(),
			URL:         p.Src.Original,
			AltText:     p.Alt,
			SourceQuery: req.Query,
		}
		if err := img.Validate(); err != nil {
			log.Warnf("pexels: skipping photo #%d (id %q): %v", i, img.ID, err)
			continue
		}
		images = append(images, img)
	}
	if len(images) == 0 {
		return failed(KindInternal, 0, nil, "none of the %d returned photos had a usable url", len(rsp.Photos))
	}
	return found(images)
}

func (t *Tool) register(ctx context.Context, registrar media.Registrar, images []media.Image) {
	if registrar == nil {
		return
	}
	registered := 0
	for _, img := range images {
		if err := registerImage(ctx, registrar, img); err != nil {
			log.Warnf("pexels: failed to register image %s: %v", img.ID, err)
			continue
		}
		registered++
	}
	if counter, err := metric.Meter.Int64Counter(itelemetry.MetricImagesRegistered,
		otelmetric.WithDescription("Images handed to the agent's media registrar."),
	); err == nil {
		counter.Add(ctx, int64(registered),
			otelmetric.WithAttributes(attribute.String(itelemetry.KeyToolName, t.name)))
	}
}

// registerImage shields the search from a misbehaving registrar.
func registerImage(ctx context.Context, registrar media.Registrar, img media.Image) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registrar panicked: %v", r)
		}
	}()
	return registrar.RegisterImage(ctx, img)
}

func (t *Tool) record(ctx context.Context, span oteltrace.Span, out Outcome, elapsed time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String(itelemetry.KeyToolName, t.name),
		attribute.String(itelemetry.KeyStatus, string(out.Status)),
	}
	if out.Err != nil {
		attrs = append(attrs, attribute.String(itelemetry.KeyErrorKind, string(out.Err.Kind)))
	}

	span.SetAttributes(attrs...)
	span.SetAttributes(attribute.Int(itelemetry.KeyResultsCount, len(out.Images)))
	if out.Err != nil {
		if out.Err.StatusCode != 0 {
			span.SetAttributes(attribute.Int(itelemetry.KeyHTTPStatus, out.Err.StatusCode))
		}
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, out.Err.Detail)
	}

	if counter, err := metric.Meter.Int64Counter(itelemetry.MetricSearchOutcomes,
		otelmetric.WithDescription("Photo searches by outcome."),
	); err == nil {
		counter.Add(ctx, 1, otelmetric.WithAttributes(attrs...))
	}
	if hist, err := metric.Meter.Float64Histogram(itelemetry.MetricSearchDuration,
		otelmetric.WithDescription("Photo search latency."),
		otelmetric.WithUnit("s"),
	); err == nil {
		hist.Record(ctx, elapsed.Seconds(), otelmetric.WithAttributes(attrs...))
	}
}
