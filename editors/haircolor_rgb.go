package editors

import "github.com/BaSui01/lightx-go/types"

// HairColorRGBRequest recolors hair to an exact hex color.
// ColorStrength blends between the original (0) and the full target
// color (1).
type HairColorRGBRequest struct {
	ImageURL      string  `json:"imageUrl"`
	HairHexColor  string  `json:"hairHexColor"`
	ColorStrength float64 `json:"colorStrength"`
}

func (r *HairColorRGBRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "haircolor-rgb"}
}

func (r *HairColorRGBRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requireHexColor("hairHexColor", r.HairHexColor),
		requireStrength("colorStrength", r.ColorStrength),
	)
}
