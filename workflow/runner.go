package workflow

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/lightx-go/api"
	"github.com/BaSui01/lightx-go/types"
)

// Asset is one input image of a run. Either Path points at a file on
// disk, or Reader supplies Size bytes of ContentType.
type Asset struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Path        string
}

// FileAsset references an image file on disk. The content type is
// inferred from the extension.
func FileAsset(path string) Asset {
	return Asset{Path: path}
}

// ReaderAsset wraps an in-memory or streamed image.
func ReaderAsset(r io.Reader, size int64, contentType string) Asset {
	return Asset{Reader: r, Size: size, ContentType: contentType}
}

// BuildFunc assembles the feature payload once the assets are uploaded.
// urls holds the public URL of each asset, in the order they were
// passed to Run.
type BuildFunc func(urls []string) (api.Request, error)

// Runner executes generation jobs end to end: upload, submit, wait.
// It is stateless and safe for concurrent runs.
type Runner struct {
	client *api.Client
	logger *zap.Logger
	tracer trace.Tracer
}

// NewRunner creates a Runner on top of an API client.
func NewRunner(client *api.Client, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		client: client,
		logger: logger.With(zap.String("component", "lightx_runner")),
		tracer: otel.Tracer("github.com/BaSui01/lightx-go/workflow"),
	}
}

// Run uploads the assets in order, builds the feature request from
// their public URLs and drives the job to a terminal state. Features
// without an input image run with no assets and an empty urls slice.
//
// The first failing phase aborts the run and its error is returned
// unchanged, so callers can branch on the types error codes.
func (r *Runner) Run(ctx context.Context, build BuildFunc, assets ...Asset) (*types.Order, error) {
	if build == nil {
		return nil, types.NewError(types.ErrValidation, "build function must not be nil")
	}

	runID := uuid.New().String()
	logger := r.logger.With(zap.String("run_id", runID))

	ctx, span := r.tracer.Start(ctx, "lightx.workflow_run")
	defer span.End()
	span.SetAttributes(
		attribute.String("lightx.run_id", runID),
		attribute.Int("lightx.asset_count", len(assets)),
	)

	urls := make([]string, 0, len(assets))
	for i, asset := range assets {
		url, err := r.upload(ctx, asset)
		if err != nil {
			logger.Warn("asset upload failed", zap.Int("asset", i), zap.Error(err))
			span.RecordError(err)
			return nil, err
		}
		urls = append(urls, url)
	}

	req, err := build(urls)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if req == nil {
		return nil, types.NewError(types.ErrValidation, "build function returned no request")
	}

	sub, err := r.client.Submit(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	logger.Debug("run submitted",
		zap.String("order_id", sub.OrderID),
		zap.String("endpoint", sub.Endpoint.GeneratePath()),
	)

	ord, err := r.client.WaitForOrder(ctx, sub.Endpoint, sub.OrderID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	logger.Info("run completed",
		zap.String("order_id", ord.OrderID),
		zap.String("output", ord.Output),
	)
	return ord, nil
}

func (r *Runner) upload(ctx context.Context, asset Asset) (string, error) {
	if asset.Path != "" {
		return r.client.UploadImageFile(ctx, asset.Path, asset.ContentType)
	}
	if asset.Reader == nil {
		return "", types.NewError(types.ErrValidation, "asset needs a path or a reader")
	}
	return r.client.UploadImage(ctx, asset.Reader, asset.Size, asset.ContentType)
}
