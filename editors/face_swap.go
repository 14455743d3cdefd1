package editors

import "github.com/BaSui01/lightx-go/types"

// FaceSwapRequest puts the face from ImageURL onto the body in
// StyleImageURL. Both images are required.
type FaceSwapRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl"`
}

func (r *FaceSwapRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "face-swap"}
}

func (r *FaceSwapRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requireImageURL("styleImageUrl", r.StyleImageURL),
	)
}
