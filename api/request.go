package api

import "github.com/BaSui01/lightx-go/types"

// Request is one generation job payload bound to its feature endpoint.
// The implementing struct is marshaled verbatim as the JSON body of the
// submit call, so optional fields should be pointers with omitempty.
type Request interface {
	// Endpoint returns the feature endpoint the payload belongs to.
	Endpoint() types.Endpoint
	// Validate checks the payload locally. It must not touch the network
	// and returns a *types.Error with code VALIDATION on rejection.
	Validate() error
}
