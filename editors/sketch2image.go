package editors

import "github.com/BaSui01/lightx-go/types"

// Sketch2ImageRequest renders a drawing into a finished image. The
// strength semantics match Image2ImageRequest.
type Sketch2ImageRequest struct {
	ImageURL      string   `json:"imageUrl"`
	Strength      float64  `json:"strength"`
	TextPrompt    string   `json:"textPrompt"`
	StyleImageURL *string  `json:"styleImageUrl,omitempty"`
	StyleStrength *float64 `json:"styleStrength,omitempty"`
}

func (r *Sketch2ImageRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "sketch2image"}
}

func (r *Sketch2ImageRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requireStrength("strength", r.Strength),
		requirePrompt("textPrompt", r.TextPrompt),
		optionalStrength("styleStrength", r.StyleStrength),
	)
}
