// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

/*
Package metrics provides Prometheus metric collection for the SDK.

# Overview

The Collector registers its metrics through promauto under a single
configurable namespace, so no manual registry management is needed.
Every outbound API call, image upload and polling session is recorded
with endpoint-level labels, ready for Grafana dashboards and alerting.

# Metrics

  - api_requests_total: calls per endpoint and status class
  - api_request_duration_seconds: call latency per endpoint
  - upload_bytes: uploaded payload sizes per content type
  - poll_attempts_total: status calls per endpoint and reported status
  - wait_outcomes_total: polling sessions per endpoint and outcome
  - wait_duration_seconds: end-to-end polling session latency
*/
package metrics
