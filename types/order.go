package types

// OrderStatus is the job state reported by the order-status endpoint.
type OrderStatus string

const (
	// StatusInit is the pending state a job stays in until the service
	// finishes or rejects it.
	StatusInit OrderStatus = "init"
	// StatusActive is the terminal success state; Output is populated.
	StatusActive OrderStatus = "active"
	// StatusFailed is the terminal failure state.
	StatusFailed OrderStatus = "failed"
)

// Terminal reports whether the status ends a polling session.
func (s OrderStatus) Terminal() bool {
	return s == StatusActive || s == StatusFailed
}

// Limits enforced locally before any network call.
const (
	// MaxUploadBytes is the largest accepted image payload (5 MiB).
	MaxUploadBytes int64 = 5242880
	// MaxPromptLength is the largest accepted text prompt, in runes.
	MaxPromptLength = 500
)

// Accepted upload MIME types.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

// AcceptedContentType reports whether ct is an upload MIME type the
// service accepts.
func AcceptedContentType(ct string) bool {
	return ct == ContentTypeJPEG || ct == ContentTypePNG
}

// Endpoint identifies one generation feature on the service. Path keeps
// the upstream spelling verbatim, trailing slash included where the
// service routes it that way.
type Endpoint struct {
	Version string // "v1" or "v2"
	Path    string // e.g. "caricature", "upscale/"
}

// GeneratePath returns the request path of the feature endpoint,
// relative to the API base URL.
func (e Endpoint) GeneratePath() string {
	return e.Version + "/" + e.Path
}

// StatusPath returns the order-status path matching the feature's API
// version.
func (e Endpoint) StatusPath() string {
	return e.Version + "/order-status"
}

func (e Endpoint) String() string {
	return e.GeneratePath()
}

// UploadSlot is the decoded body of an upload-slot response: a
// presigned PUT target and the public URL the image will be served
// from once the binary lands.
type UploadSlot struct {
	UploadURL string `json:"uploadImage"`
	ImageURL  string `json:"imageUrl"`
	Size      int64  `json:"size"`
}

// Submission is the decoded body of an accepted generation request.
// Endpoint is filled in by the client so the caller can poll the
// matching order-status path without tracking it separately.
type Submission struct {
	OrderID              string      `json:"orderId"`
	MaxRetriesAllowed    int         `json:"maxRetriesAllowed"`
	AvgResponseTimeInSec int         `json:"avgResponseTimeInSec"`
	Status               OrderStatus `json:"status"`
	Endpoint             Endpoint    `json:"-"`
}

// Order is the polled job record. Output is empty until the job
// reaches StatusActive.
type Order struct {
	OrderID string      `json:"orderId"`
	Status  OrderStatus `json:"status"`
	Output  string      `json:"output,omitempty"`
}
