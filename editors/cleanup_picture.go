package editors

import "github.com/BaSui01/lightx-go/types"

// CleanupPictureRequest erases the region marked white in the mask
// image. The mask must have the same dimensions as the picture.
type CleanupPictureRequest struct {
	ImageURL       string `json:"imageUrl"`
	MaskedImageURL string `json:"maskedImageUrl"`
}

func (r *CleanupPictureRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "cleanup-picture"}
}

func (r *CleanupPictureRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requireImageURL("maskedImageUrl", r.MaskedImageURL),
	)
}
