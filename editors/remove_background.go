package editors

import "github.com/BaSui01/lightx-go/types"

// RemoveBackgroundRequest cuts the subject out of an image. Background
// picks the replacement: a color name, a hex code or an image URL. When
// nil the service substitutes a transparent background.
type RemoveBackgroundRequest struct {
	ImageURL   string  `json:"imageUrl"`
	Background *string `json:"background,omitempty"`
}

func (r *RemoveBackgroundRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "remove-background"}
}

func (r *RemoveBackgroundRequest) Validate() error {
	return requireImageURL("imageUrl", r.ImageURL)
}
