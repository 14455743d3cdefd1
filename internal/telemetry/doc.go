// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

// Package telemetry wraps OpenTelemetry SDK initialization for the
// LightX client: OTLP gRPC exporters for traces and metrics behind a
// single Init call. When telemetry is disabled the global providers
// stay noop and no external connection is made.
package telemetry
