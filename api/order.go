package api

import (
	"context"
	"fmt"
	"time"

	"github.com/BaSui01/lightx-go/types"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// orderStatusRequest is the body of an order-status call.
type orderStatusRequest struct {
	OrderID string `json:"orderId"`
}

// Submit validates req locally and posts it to its feature endpoint.
// The returned Submission carries the endpoint so the caller can poll
// without tracking it separately.
func (c *Client) Submit(ctx context.Context, req Request) (*types.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ep := req.Endpoint()

	ctx, span := c.tracer.Start(ctx, "lightx.submit")
	defer span.End()
	span.SetAttributes(attribute.String("lightx.endpoint", ep.GeneratePath()))

	var sub types.Submission
	if err := c.postJSON(ctx, ep.GeneratePath(), req, &sub); err != nil {
		span.RecordError(err)
		return nil, err
	}
	sub.Endpoint = ep

	span.SetAttributes(attribute.String("lightx.order_id", sub.OrderID))
	c.logger.Info("generation job submitted",
		zap.String("endpoint", ep.GeneratePath()),
		zap.String("order_id", sub.OrderID),
		zap.Int("avg_response_time_sec", sub.AvgResponseTimeInSec),
	)

	return &sub, nil
}

// OrderStatus fetches the current state of an order on the status
// endpoint matching the feature's API version.
func (c *Client) OrderStatus(ctx context.Context, ep types.Endpoint, orderID string) (*types.Order, error) {
	if orderID == "" {
		return nil, types.NewError(types.ErrValidation, "order id must not be empty")
	}

	var ord types.Order
	if err := c.postJSON(ctx, ep.StatusPath(), orderStatusRequest{OrderID: orderID}, &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// WaitForOrder polls the order until it turns terminal or the fixed
// budget runs out. The first status call is immediate; every further
// attempt waits the configured interval, honoring ctx cancellation.
//
// A failed order ends the wait immediately with PROCESSING_FAILED.
// Status calls that fail at the HTTP level consume an attempt; if the
// final attempt ends with such an error it is returned as is, otherwise
// an exhausted budget yields TIMEOUT.
func (c *Client) WaitForOrder(ctx context.Context, ep types.Endpoint, orderID string) (*types.Order, error) {
	ctx, span := c.tracer.Start(ctx, "lightx.wait_for_order")
	defer span.End()
	span.SetAttributes(
		attribute.String("lightx.endpoint", ep.GeneratePath()),
		attribute.String("lightx.order_id", orderID),
	)

	start := time.Now()
	var lastErr error

	for attempt := 1; attempt <= c.poll.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.poll.Interval):
			}
		}

		ord, err := c.OrderStatus(ctx, ep, orderID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			c.pollAttempt(ep, "error")
			c.logger.Warn("order status call failed",
				zap.String("order_id", orderID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}
		lastErr = nil
		c.pollAttempt(ep, string(ord.Status))

		switch ord.Status {
		case types.StatusActive:
			c.waitOutcome(ep, "active", time.Since(start))
			c.logger.Info("order completed",
				zap.String("order_id", orderID),
				zap.Int("attempts", attempt),
				zap.String("output", ord.Output),
			)
			return ord, nil

		case types.StatusFailed:
			c.waitOutcome(ep, "failed", time.Since(start))
			err := types.NewError(types.ErrProcessingFailed,
				fmt.Sprintf("generation failed for order %s", orderID)).
				WithEndpoint(ep.GeneratePath())
			span.RecordError(err)
			return nil, err
		}

		c.logger.Debug("order not ready",
			zap.String("order_id", orderID),
			zap.String("status", string(ord.Status)),
			zap.Int("attempt", attempt),
		)
	}

	if lastErr != nil {
		c.waitOutcome(ep, "error", time.Since(start))
		span.RecordError(lastErr)
		return nil, lastErr
	}

	c.waitOutcome(ep, "timeout", time.Since(start))
	err := types.NewError(types.ErrTimeout,
		fmt.Sprintf("order %s not ready after %d attempts", orderID, c.poll.MaxAttempts)).
		WithRetryable(true).
		WithEndpoint(ep.GeneratePath())
	span.RecordError(err)
	return nil, err
}

func (c *Client) pollAttempt(ep types.Endpoint, status string) {
	if c.collector != nil {
		c.collector.RecordPollAttempt(ep.GeneratePath(), status)
	}
}

func (c *Client) waitOutcome(ep types.Endpoint, outcome string, d time.Duration) {
	if c.collector != nil {
		c.collector.RecordWaitOutcome(ep.GeneratePath(), outcome, d)
	}
}
