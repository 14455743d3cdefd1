package editors

import "github.com/BaSui01/lightx-go/types"

// HeadshotRequest produces a professional headshot, with the prompt
// describing attire and backdrop.
type HeadshotRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (r *HeadshotRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "headshot/"}
}

func (r *HeadshotRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requirePrompt("textPrompt", r.TextPrompt),
	)
}
