// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

/*
Package types provides the shared type definitions of the LightX SDK.

# Overview

types is the bottom package of the module. It depends on nothing but the
standard library and supplies the type contract shared by the api,
editors and workflow packages: wire enums, response records, endpoint
descriptors and the structured error hierarchy. Everything that crosses
a package boundary is defined here to avoid import cycles.

# Core types

  - Endpoint: feature endpoint descriptor (version + path)
  - OrderStatus: job state enum (init / active / failed)
  - Order: polled job record with the result output
  - Submission: accepted generation job (orderId + poll hints)
  - UploadSlot: presigned upload target plus the public image URL
  - Error / ErrorCode: structured errors with HTTP status and retry flag

# Error helpers

  - NewError + WithCause / WithHTTPStatus / WithRetryable / WithEndpoint
  - AsError / GetErrorCode / IsErrorCode / IsRetryable
*/
package types
