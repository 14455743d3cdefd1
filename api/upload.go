package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BaSui01/lightx-go/types"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	uploadSlotPath = "v2/uploadImageUrl"
	uploadTypeURL  = "imageUrl"

	// putEndpoint labels metrics and errors for the binary upload leg,
	// whose real target is the presigned slot URL.
	putEndpoint = "upload-put"
)

// uploadSlotRequest is the body of the upload-slot call.
type uploadSlotRequest struct {
	UploadType  string `json:"uploadType"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// UploadImage requests an upload slot for size bytes of contentType,
// streams r to the presigned URL and returns the public image URL.
// Size and content type are validated before any network call.
func (c *Client) UploadImage(ctx context.Context, r io.Reader, size int64, contentType string) (string, error) {
	if err := validateUpload(size, contentType); err != nil {
		return "", err
	}

	ctx, span := c.tracer.Start(ctx, "lightx.upload_image")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("lightx.upload.size", size),
		attribute.String("lightx.upload.content_type", contentType),
	)

	var slot types.UploadSlot
	err := c.postJSON(ctx, uploadSlotPath, uploadSlotRequest{
		UploadType:  uploadTypeURL,
		Size:        size,
		ContentType: contentType,
	}, &slot)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	if err := c.putImage(ctx, slot.UploadURL, r, size, contentType); err != nil {
		span.RecordError(err)
		return "", err
	}

	if c.collector != nil {
		c.collector.RecordUpload(contentType, size)
	}
	c.logger.Debug("image uploaded",
		zap.Int64("size", size),
		zap.String("content_type", contentType),
		zap.String("image_url", slot.ImageURL),
	)

	return slot.ImageURL, nil
}

// UploadImageFile uploads the image at path. An empty contentType is
// inferred from the file extension.
func (c *Client) UploadImageFile(ctx context.Context, path, contentType string) (string, error) {
	if contentType == "" {
		ct, err := contentTypeForFile(path)
		if err != nil {
			return "", err
		}
		contentType = ct
	}

	f, err := os.Open(path)
	if err != nil {
		return "", types.NewError(types.ErrValidation, fmt.Sprintf("cannot open image file %s", path)).
			WithCause(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", types.NewError(types.ErrValidation, fmt.Sprintf("cannot stat image file %s", path)).
			WithCause(err)
	}

	return c.UploadImage(ctx, f, info.Size(), contentType)
}

// putImage streams the binary to the presigned slot URL. The PUT goes
// to external storage, so the API key header is not attached.
func (c *Client) putImage(ctx context.Context, uploadURL string, r io.Reader, size int64, contentType string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, r)
	if err != nil {
		return types.NewError(types.ErrRemote, "invalid upload slot URL").
			WithCause(err).
			WithEndpoint(putEndpoint)
	}
	httpReq.ContentLength = size
	httpReq.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.putClient.Do(httpReq)
	if err != nil {
		c.record(putEndpoint, 0, time.Since(start))
		return types.NewError(types.ErrRemote, "image upload failed").
			WithCause(err).
			WithRetryable(true).
			WithEndpoint(putEndpoint)
	}
	defer closeBody(resp.Body)
	c.record(putEndpoint, resp.StatusCode, time.Since(start))

	// Slot targets respond with plain 2xx and an arbitrary body; only
	// the status matters.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readErrMsg(resp.Body)
		return mapHTTPError(resp.StatusCode, msg, putEndpoint)
	}

	return nil
}

// validateUpload enforces the service's upload limits locally.
func validateUpload(size int64, contentType string) error {
	if size <= 0 {
		return types.NewError(types.ErrValidation, "image size must be positive")
	}
	if size > types.MaxUploadBytes {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("image size %d exceeds the %d byte limit", size, types.MaxUploadBytes))
	}
	if !types.AcceptedContentType(contentType) {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("content type %q not accepted, use %s or %s", contentType, types.ContentTypeJPEG, types.ContentTypePNG))
	}
	return nil
}

// contentTypeForFile derives the upload MIME type from the extension.
func contentTypeForFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return types.ContentTypeJPEG, nil
	case ".png":
		return types.ContentTypePNG, nil
	default:
		return "", types.NewError(types.ErrValidation,
			fmt.Sprintf("cannot infer content type of %s, pass it explicitly", path))
	}
}
