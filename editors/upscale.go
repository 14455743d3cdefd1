package editors

import (
	"fmt"

	"github.com/BaSui01/lightx-go/types"
)

// UpscaleRequest enlarges the image. Quality is the scale factor and
// must be 2 or 4; the service rejects 4x for inputs above 1024px.
type UpscaleRequest struct {
	ImageURL string `json:"imageUrl"`
	Quality  int    `json:"quality"`
}

func (r *UpscaleRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "upscale/"}
}

func (r *UpscaleRequest) Validate() error {
	if err := requireImageURL("imageUrl", r.ImageURL); err != nil {
		return err
	}
	if r.Quality != 2 && r.Quality != 4 {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("quality must be 2 or 4, got %d", r.Quality))
	}
	return nil
}
