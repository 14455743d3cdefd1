package editors

import "github.com/BaSui01/lightx-go/types"

// ProductPhotoshootRequest stages a product shot in a generated scene.
type ProductPhotoshootRequest struct {
	ImageURL      string  `json:"imageUrl"`
	StyleImageURL *string `json:"styleImageUrl,omitempty"`
	TextPrompt    *string `json:"textPrompt,omitempty"`
}

func (r *ProductPhotoshootRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "product-photoshoot"}
}

func (r *ProductPhotoshootRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		optionalPrompt("textPrompt", r.TextPrompt),
	)
}
