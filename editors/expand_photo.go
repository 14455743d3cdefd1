package editors

import "github.com/BaSui01/lightx-go/types"

// ExpandPhotoRequest outpaints the image by the given pixel paddings.
// A zero padding leaves that edge untouched.
type ExpandPhotoRequest struct {
	ImageURL      string `json:"imageUrl"`
	LeftPadding   int    `json:"leftPadding"`
	RightPadding  int    `json:"rightPadding"`
	TopPadding    int    `json:"topPadding"`
	BottomPadding int    `json:"bottomPadding"`
}

func (r *ExpandPhotoRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "expand-photo"}
}

func (r *ExpandPhotoRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requirePadding("leftPadding", r.LeftPadding),
		requirePadding("rightPadding", r.RightPadding),
		requirePadding("topPadding", r.TopPadding),
		requirePadding("bottomPadding", r.BottomPadding),
	)
}
