// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

/*
Package editors defines the typed request payloads of the LightX
editing features.

# Overview

Each feature is one struct implementing api.Request: the struct is the
JSON body of the submit call, its Endpoint method names the feature
path, and Validate enforces the service's input rules locally before
anything goes on the wire. Optional fields are pointers with omitempty;
the String and Float64 helpers build them inline:

	req := &editors.CartoonRequest{
	    ImageURL:   url,
	    TextPrompt: editors.String("watercolor style"),
	}

# Feature groups

v1 endpoints: background removal and generation, cleanup, expand,
replace, cartoon, caricature, avatar, product photoshoot, portrait,
face swap, outfit, image-to-image, sketch-to-image, hairstyle.

v2 endpoints: upscale, AI filter, hair color (prompt and RGB), virtual
try-on, headshot, AI design, logo generator, watermark remover. Some v2
paths carry a trailing slash; that spelling is part of the wire
contract and preserved verbatim.
*/
package editors
