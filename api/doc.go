// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

/*
Package api implements the generic LightX job client.

# Overview

Every LightX editing feature follows the same asynchronous protocol:
request an upload slot and PUT the image binary, submit a generation
job, then poll the order-status endpoint until the job turns terminal.
This package implements that protocol once; the per-feature request
payloads live in package editors and plug in through the Request
interface.

# Workflow

	client := api.NewClient(cfg, logger, nil)

	url, err := client.UploadImageFile(ctx, "face.jpg", "")
	sub, err := client.Submit(ctx, &editors.CaricatureRequest{
	    ImageURL:   url,
	    TextPrompt: editors.String("funny exaggerated caricature"),
	})
	order, err := client.WaitForOrder(ctx, sub.Endpoint, sub.OrderID)

# Error contract

All failures are *types.Error. Input rejected before any network call
carries code VALIDATION; non-2xx HTTP responses and transport failures
carry REMOTE; 2xx responses whose envelope statusCode is not 2000 carry
APPLICATION; a job reported failed carries PROCESSING_FAILED; an
exhausted polling budget carries TIMEOUT.
*/
package api
