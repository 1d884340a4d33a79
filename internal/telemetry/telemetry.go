//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry holds names and helpers shared by the trace and metric packages.
package telemetry

import (
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Resource and instrumentation names.
const (
	ServiceName      = "devkit"
	ServiceVersion   = "v0.1.0"
	ServiceNamespace = "trpc-agent-devkit"
	InstrumentName   = "trpc.agent.devkit"
)

// OTLP exporter protocols.
const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"
)

// Span and metric names.
const (
	SpanNameSearchPhotos   = "search_photos"
	MetricSearchOutcomes   = "pexels.search.outcomes"
	MetricSearchDuration   = "pexels.search.duration"
	MetricImagesRegistered = "pexels.images.registered"
)

// Attribute keys.
const (
	KeyToolName     = "gen_ai.tool.name"
	KeyQuery        = "devkit.pexels.query"
	KeyOrientation  = "devkit.pexels.orientation"
	KeyMaxResults   = "devkit.pexels.max_results"
	KeyStatus       = "devkit.pexels.status"
	KeyErrorKind    = "devkit.pexels.error_kind"
	KeyHTTPStatus   = "http.response.status_code"
	KeyResultsCount = "devkit.pexels.results"
)

// NewGRPCConn dials an OpenTelemetry collector without TLS.
func NewGRPCConn(endpoint string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}
	return conn, nil
}

// Endpoint resolves the OTLP collector endpoint for one signal. The signal
// specific variable (e.g. OTEL_EXPORTER_OTLP_TRACES_ENDPOINT) wins over
// OTEL_EXPORTER_OTLP_ENDPOINT; without either the protocol default is used.
func Endpoint(signalEnv, protocol string) string {
	if endpoint := os.Getenv(signalEnv); endpoint != "" {
		return endpoint
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	if protocol == ProtocolHTTP {
		return "localhost:4318"
	}
	return "localhost:4317"
}
