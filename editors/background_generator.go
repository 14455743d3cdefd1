package editors

import "github.com/BaSui01/lightx-go/types"

// BackgroundGeneratorRequest replaces the background with a scene
// generated from the text prompt.
type BackgroundGeneratorRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (r *BackgroundGeneratorRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "background-generator"}
}

func (r *BackgroundGeneratorRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requirePrompt("textPrompt", r.TextPrompt),
	)
}
