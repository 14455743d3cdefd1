package editors

import "github.com/BaSui01/lightx-go/types"

// HairstyleRequest previews a new hairstyle described by the prompt.
type HairstyleRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (r *HairstyleRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "hairstyle"}
}

func (r *HairstyleRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requirePrompt("textPrompt", r.TextPrompt),
	)
}
