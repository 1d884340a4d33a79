//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGRPCConn(t *testing.T) {
	// grpc.NewClient does not dial eagerly, so any syntactically valid target works.
	conn, err := NewGRPCConn("localhost:4317")
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, conn.Close())
}

func TestEndpoint(t *testing.T) {
	const signalEnv = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"

	t.Setenv(signalEnv, "trace-collector:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	assert.Equal(t, "trace-collector:4317", Endpoint(signalEnv, ProtocolGRPC))

	t.Setenv(signalEnv, "")
	assert.Equal(t, "collector:4317", Endpoint(signalEnv, ProtocolGRPC))

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	assert.Equal(t, "localhost:4317", Endpoint(signalEnv, ProtocolGRPC))
	assert.Equal(t, "localhost:4318", Endpoint(signalEnv, ProtocolHTTP))
}
