package editors

import "github.com/BaSui01/lightx-go/types"

// PortraitRequest restyles a photo into a studio portrait.
type PortraitRequest struct {
	ImageURL      string  `json:"imageUrl"`
	StyleImageURL *string `json:"styleImageUrl,omitempty"`
	TextPrompt    *string `json:"textPrompt,omitempty"`
}

func (r *PortraitRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "portrait"}
}

func (r *PortraitRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		optionalPrompt("textPrompt", r.TextPrompt),
	)
}
