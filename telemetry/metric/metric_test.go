//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestSetMeterProvider(t *testing.T) {
	old := Meter
	defer func() { Meter = old }()

	reader := sdkmetric.NewManualReader()
	SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	counter, err := Meter.Int64Counter("pexels.search.outcomes")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	sum := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

func TestOptions(t *testing.T) {
	o := &options{}
	WithEndpoint("collector:4318")(o)
	WithProtocol("http")(o)
	WithServiceName("devpet")(o)
	assert.Equal(t, "collector:4318", o.endpoint)
	assert.Equal(t, "http", o.protocol)
	assert.Equal(t, "devpet", o.serviceName)
}

func TestStartHTTPAndClean(t *testing.T) {
	old := Meter
	defer func() { Meter = old }()

	clean, err := Start(context.Background(), WithProtocol("http"), WithEndpoint("localhost:4318"))
	require.NoError(t, err)
	require.NotNil(t, clean)
	assert.NotEqual(t, old, Meter)
}
