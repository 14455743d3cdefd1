package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BaSui01/lightx-go/config"
)

// Backend is a scripted double of the LightX service. It answers the
// full wire protocol: upload slots, presigned PUTs, feature submission
// and order-status polling with a configurable status sequence.
//
// Status script entries are order statuses ("init", "active", "failed",
// anything else is passed through as an unknown status) or "http:<code>"
// to fail that status call at the HTTP level. The last entry repeats
// when the script runs out.
type Backend struct {
	server *httptest.Server

	mu        sync.Mutex
	statuses  []string
	statusIdx int
	orderID   string
	output    string

	slotCalls   int
	putCalls    int
	submitCalls int
	statusCalls int

	submitPaths    []string
	statusPaths    []string
	lastAPIKey     string
	lastSubmitBody []byte
	lastPutBody    []byte
	lastPutAPIKey  string
	lastPutCT      string
	lastSlotReq    slotRequest

	slotHTTPStatus     int
	submitHTTPStatus   int
	submitHTTPBody     string
	submitEnvelopeCode int
	submitEnvelopeMsg  string
}

type slotRequest struct {
	UploadType  string `json:"uploadType"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type wireEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Body       any    `json:"body,omitempty"`
}

// NewBackend starts the double and registers its shutdown with t.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		statuses: []string{"active"},
		orderID:  "order-123",
		output:   "https://cdn.lightxeditor.test/result.jpg",
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)
	return b
}

// URL returns the base URL of the double.
func (b *Backend) URL() string { return b.server.URL }

// Config returns a client config pointed at the double, with a
// millisecond-scale poll interval so tests stay fast.
func (b *Backend) Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.API.BaseURL = b.server.URL
	cfg.API.APIKey = "test-key"
	cfg.API.RequestTimeout = 5 * time.Second
	cfg.API.UploadTimeout = 5 * time.Second
	cfg.Poll.MaxAttempts = 5
	cfg.Poll.Interval = 10 * time.Millisecond
	return cfg
}

// ScriptStatuses sets the order-status sequence.
func (b *Backend) ScriptStatuses(statuses ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses = statuses
	b.statusIdx = 0
}

// SetOrder overrides the order id and active output the double reports.
func (b *Backend) SetOrder(orderID, output string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orderID = orderID
	b.output = output
}

// FailSlot makes the upload-slot call fail with the given HTTP status.
func (b *Backend) FailSlot(httpStatus int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slotHTTPStatus = httpStatus
}

// FailSubmit makes submission fail with the given HTTP status and body.
func (b *Backend) FailSubmit(httpStatus int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitHTTPStatus = httpStatus
	b.submitHTTPBody = body
}

// FailSubmitEnvelope makes submission answer 200 with a failing
// application envelope.
func (b *Backend) FailSubmitEnvelope(statusCode int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitEnvelopeCode = statusCode
	b.submitEnvelopeMsg = message
}

// SlotCalls returns the number of upload-slot requests received.
func (b *Backend) SlotCalls() int { b.mu.Lock(); defer b.mu.Unlock(); return b.slotCalls }

// PutCalls returns the number of binary PUTs received.
func (b *Backend) PutCalls() int { b.mu.Lock(); defer b.mu.Unlock(); return b.putCalls }

// SubmitCalls returns the number of feature submissions received.
func (b *Backend) SubmitCalls() int { b.mu.Lock(); defer b.mu.Unlock(); return b.submitCalls }

// StatusCalls returns the number of order-status requests received.
func (b *Backend) StatusCalls() int { b.mu.Lock(); defer b.mu.Unlock(); return b.statusCalls }

// TotalCalls returns the number of HTTP requests of any kind received.
func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slotCalls + b.putCalls + b.submitCalls + b.statusCalls
}

// LastAPIKey returns the x-api-key header of the last API call.
func (b *Backend) LastAPIKey() string { b.mu.Lock(); defer b.mu.Unlock(); return b.lastAPIKey }

// SubmitPaths returns the request paths of all submissions, in order,
// without the leading slash.
func (b *Backend) SubmitPaths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.submitPaths...)
}

// StatusPaths returns the request paths of all order-status calls, in
// order, without the leading slash.
func (b *Backend) StatusPaths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.statusPaths...)
}

// LastSubmitBody returns the raw JSON of the last submission.
func (b *Backend) LastSubmitBody() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.lastSubmitBody...)
}

// LastPutBody returns the bytes of the last binary PUT.
func (b *Backend) LastPutBody() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.lastPutBody...)
}

// LastPutHeaders returns the x-api-key and Content-Type headers of the
// last binary PUT.
func (b *Backend) LastPutHeaders() (apiKey, contentType string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastPutAPIKey, b.lastPutCT
}

// LastSlotRequest returns the decoded body of the last slot request.
func (b *Backend) LastSlotRequest() (uploadType string, size int64, contentType string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSlotReq.UploadType, b.lastSlotReq.Size, b.lastSlotReq.ContentType
}

func (b *Backend) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/v2/uploadImageUrl":
		b.handleSlot(w, r)
	case strings.HasPrefix(r.URL.Path, "/upload/"):
		b.handlePut(w, r)
	case strings.HasSuffix(r.URL.Path, "/order-status"):
		b.handleStatus(w, r)
	default:
		b.handleSubmit(w, r)
	}
}

func (b *Backend) handleSlot(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.slotCalls++
	n := b.slotCalls
	b.lastAPIKey = r.Header.Get("x-api-key")
	body, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(body, &b.lastSlotReq)
	failStatus := b.slotHTTPStatus
	size := b.lastSlotReq.Size
	b.mu.Unlock()

	if failStatus != 0 {
		http.Error(w, "slot unavailable", failStatus)
		return
	}

	writeEnvelope(w, 2000, "SUCCESS", map[string]any{
		"uploadImage": fmt.Sprintf("%s/upload/slot-%d", b.server.URL, n),
		"imageUrl":    fmt.Sprintf("https://cdn.lightxeditor.test/img-%d.jpg", n),
		"size":        size,
	})
}

func (b *Backend) handlePut(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.putCalls++
	b.lastPutBody = body
	b.lastPutAPIKey = r.Header.Get("x-api-key")
	b.lastPutCT = r.Header.Get("Content-Type")
	b.mu.Unlock()

	// Real slot targets answer with an arbitrary body; clients must
	// ignore it.
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "stored")
}

func (b *Backend) handleStatus(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.statusCalls++
	b.lastAPIKey = r.Header.Get("x-api-key")
	b.statusPaths = append(b.statusPaths, strings.TrimPrefix(r.URL.Path, "/"))

	entry := "active"
	if len(b.statuses) > 0 {
		idx := b.statusIdx
		if idx >= len(b.statuses) {
			idx = len(b.statuses) - 1
		}
		entry = b.statuses[idx]
		b.statusIdx++
	}
	orderID := b.orderID
	output := b.output
	b.mu.Unlock()

	if code, ok := strings.CutPrefix(entry, "http:"); ok {
		status, err := strconv.Atoi(code)
		if err != nil {
			status = http.StatusInternalServerError
		}
		http.Error(w, "status check failed", status)
		return
	}

	orderBody := map[string]any{
		"orderId": orderID,
		"status":  entry,
	}
	if entry == "active" {
		orderBody["output"] = output
	}
	writeEnvelope(w, 2000, "SUCCESS", orderBody)
}

func (b *Backend) handleSubmit(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.submitCalls++
	b.lastAPIKey = r.Header.Get("x-api-key")
	b.lastSubmitBody = body
	b.submitPaths = append(b.submitPaths, strings.TrimPrefix(r.URL.Path, "/"))
	failStatus, failBody := b.submitHTTPStatus, b.submitHTTPBody
	envCode, envMsg := b.submitEnvelopeCode, b.submitEnvelopeMsg
	orderID := b.orderID
	b.mu.Unlock()

	if failStatus != 0 {
		w.WriteHeader(failStatus)
		fmt.Fprint(w, failBody)
		return
	}
	if envCode != 0 {
		writeEnvelope(w, envCode, envMsg, nil)
		return
	}

	writeEnvelope(w, 2000, "SUCCESS", map[string]any{
		"orderId":              orderID,
		"maxRetriesAllowed":    5,
		"avgResponseTimeInSec": 15,
		"status":               "init",
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, message string, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(wireEnvelope{
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
	})
}
