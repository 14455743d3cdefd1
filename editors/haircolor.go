package editors

import "github.com/BaSui01/lightx-go/types"

// HairColorRequest recolors hair per the text prompt.
type HairColorRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (r *HairColorRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "haircolor/"}
}

func (r *HairColorRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requirePrompt("textPrompt", r.TextPrompt),
	)
}
