package editors

import (
	"fmt"

	"github.com/BaSui01/lightx-go/types"
)

// AIDesignRequest generates a design from scratch; it is the one
// feature without an input image. Resolution is an aspect ratio from
// the fixed set 1:1, 9:16, 3:4, 2:3, 16:9 and 4:3. EnhancePrompt lets
// the service expand the prompt before generation.
type AIDesignRequest struct {
	TextPrompt    string `json:"textPrompt"`
	Resolution    string `json:"resolution"`
	EnhancePrompt bool   `json:"enhancePrompt"`
}

func (r *AIDesignRequest) Endpoint() types.Endpoint {
	return types.Endpoint{Version: "v2", Path: "ai-design"}
}

func (r *AIDesignRequest) Validate() error {
	if err := requirePrompt("textPrompt", r.TextPrompt); err != nil {
		return err
	}
	if !designResolutions[r.Resolution] {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("resolution %q not supported, use one of 1:1, 9:16, 3:4, 2:3, 16:9, 4:3", r.Resolution))
	}
	return nil
}
