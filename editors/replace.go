package editors

import "github.com/BaSui01/lightx-go/types"

// ReplaceRequest regenerates the masked region from the text prompt.
type ReplaceRequest struct {
	ImageURL       string `json:"imageUrl"`
	MaskedImageURL string `json:"maskedImageUrl"`
	TextPrompt     string `json:"textPrompt"`
}

func (r *ReplaceRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "replace"}
}

func (r *ReplaceRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requireImageURL("maskedImageUrl", r.MaskedImageURL),
		requirePrompt("textPrompt", r.TextPrompt),
	)
}
