package editors

import "github.com/BaSui01/lightx-go/types"

// VirtualTryOnRequest dresses the person in ImageURL with the outfit
// shown in StyleImageURL.
type VirtualTryOnRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl"`
}

func (r *VirtualTryOnRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "aivirtualtryon"}
}

func (r *VirtualTryOnRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requireImageURL("styleImageUrl", r.StyleImageURL),
	)
}
