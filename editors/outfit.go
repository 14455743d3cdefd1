package editors

import "github.com/BaSui01/lightx-go/types"

// OutfitRequest redresses the person in the image per the text prompt.
type OutfitRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (r *OutfitRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "outfit"}
}

func (r *OutfitRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requirePrompt("textPrompt", r.TextPrompt),
	)
}
