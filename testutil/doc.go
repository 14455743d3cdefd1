// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

/*
Package testutil provides shared helpers for the SDK tests.

# Overview

The central piece is Backend, an httptest server speaking the complete
LightX wire protocol: upload slots, presigned PUT targets, feature
submission and scripted order-status sequences. Tests configure the
status script, point a client at Backend.URL() and assert on the
per-route call counters afterwards.

# Helpers

  - TestContext / TestContextWithTimeout / CancelledContext
  - MustJSON / MustParseJSON
*/
package testutil
