// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "fwbench"

// fileTracer exports every span of a run as JSON into a file.
type fileTracer struct {
	f  *os.File
	tp *sdktrace.TracerProvider
}

func newFileTracer(path string) (*fileTracer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace file: %w", err)
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(f), stdouttrace.WithPrettyPrint())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return &fileTracer{f: f, tp: tp}, nil
}

func (t *fileTracer) Tracer() trace.Tracer {
	return t.tp.Tracer(serviceName)
}

// Shutdown flushes pending spans and closes the file.
func (t *fileTracer) Shutdown(ctx context.Context) error {
	return errors.Join(t.tp.Shutdown(ctx), t.f.Close())
}
