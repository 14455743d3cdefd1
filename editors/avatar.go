package editors

import "github.com/BaSui01/lightx-go/types"

// AvatarRequest renders a stylized avatar from a portrait.
type AvatarRequest struct {
	ImageURL      string  `json:"imageUrl"`
	StyleImageURL *string `json:"styleImageUrl,omitempty"`
	TextPrompt    *string `json:"textPrompt,omitempty"`
}

func (r *AvatarRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "avatar"}
}

func (r *AvatarRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		optionalPrompt("textPrompt", r.TextPrompt),
	)
}
