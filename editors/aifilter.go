package editors

import "github.com/BaSui01/lightx-go/types"

// AIFilterRequest applies a prompt-described filter, optionally guided
// by a reference image whose look should be transferred.
type AIFilterRequest struct {
	ImageURL           string  `json:"imageUrl"`
	TextPrompt         string  `json:"textPrompt"`
	FilterReferenceURL *string `json:"filterReferenceUrl,omitempty"`
}

func (r *AIFilterRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "aifilter"}
}

func (r *AIFilterRequest) Validate() error {
	return firstErr(
		requireImageURL("imageUrl", r.ImageURL),
		requirePrompt("textPrompt", r.TextPrompt),
	)
}
