package editors

import "github.com/BaSui01/lightx-go/types"

// Image2ImageRequest regenerates the image under the text prompt.
// Strength steers how far the result may drift from the input: 0 stays
// close, 1 gives the model free rein. StyleStrength does the same for
// the optional style reference.
type Image2ImageRequest struct {
	ImageURL      string   `json:"imageUrl"`
	Strength      float64  `json:"strength"`
	TextPrompt    string   `json:"textPrompt"`
	StyleImageURL *string  `json:"styleImageUrl,omitempty"`
	StyleStrength *float64 `json:"styleStrength,omitempty"`
}

func (r *Image2ImageRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v1", Path: "image2image"}
}

func (r *Image2ImageRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requireStrength("strength", r.Strength),
		requirePrompt("textPrompt", r.TextPrompt),
		optionalStrength("styleStrength", r.StyleStrength),
	)
}
