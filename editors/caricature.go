package editors

import "github.com/BaSui01/lightx-go/types"

// CaricatureRequest exaggerates a portrait into a caricature.
type CaricatureRequest struct {
	ImageURL      string  `json:"imageUrl"`
	StyleImageURL *string `json:"styleImageUrl,omitempty"`
	TextPrompt    *string `json:"textPrompt,omitempty"`
}

func (r *CaricatureRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "caricature"}
}

func (r *CaricatureRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		optionalPrompt("textPrompt", r.TextPrompt),
	)
}
