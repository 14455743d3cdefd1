package editors

import "github.com/BaSui01/lightx-go/types"

// CartoonRequest turns a photo into a cartoon. Style can be steered by
// a reference image, a text prompt, neither or both.
type CartoonRequest struct {
	ImageURL      string  `json:"imageUrl"`
	StyleImageURL *string `json:"styleImageUrl,omitempty"`
	TextPrompt    *string `json:"textPrompt,omitempty"`
}

func (r *CartoonRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "cartoon"}
}

func (r *CartoonRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		optionalPrompt("textPrompt", r.TextPrompt),
	)
}
