package editors

import "github.com/BaSui01/lightx-go/types"

// LogoGeneratorRequest generates a logo from the prompt alone.
type LogoGeneratorRequest struct {
	TextPrompt    string `json:"textPrompt"`
	EnhancePrompt bool   `json:"enhancePrompt"`
}

func (r *LogoGeneratorRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "logo-generator"}
}

func (r *LogoGeneratorRequest) Validate() error {
	return requirePrompt("textPrompt", r.TextPrompt)
}
