package editors

import "github.com/BaSui01/lightx-go/types"

// WatermarkRemoverRequest removes watermarks from the image.
type WatermarkRemoverRequest struct {
	ImageURL string `json:"imageUrl"`
}

func (r *WatermarkRemoverRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "watermark-remover/"}
}

func (r *WatermarkRemoverRequest) Validate() error {
	return requireImageURL("imageUrl", r.ImageURL)
}
