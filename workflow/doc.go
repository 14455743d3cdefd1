// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

/*
Package workflow drives a complete generation job end to end.

# Overview

Runner chains the three phases every LightX feature shares: upload the
input images, submit the feature request, poll until the order turns
terminal. The caller supplies the raw assets and a build function that
turns the uploaded URLs into the feature payload:

	runner := workflow.NewRunner(client, logger)
	order, err := runner.Run(ctx,
	    func(urls []string) (api.Request, error) {
	        return &editors.CaricatureRequest{
	            ImageURL:   urls[0],
	            TextPrompt: editors.String("exaggerated grin"),
	        }, nil
	    },
	    workflow.FileAsset("selfie.jpg"),
	)

Each run carries a generated run id through its log fields and trace
span, so concurrent runs stay distinguishable.
*/
package workflow
