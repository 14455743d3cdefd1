package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BaSui01/lightx-go/testutil"
	"github.com/BaSui01/lightx-go/types"
)

var testEndpoint = types.Endpoint{Version: "v1", Path: "caricature"}

func TestOrderStatusRejectsEmptyOrderID(t *testing.T) {
	backend := testutil.NewBackend(t)
	c := newTestClient(t, backend)

	_, err := c.OrderStatus(testutil.TestContext(t), testEndpoint, "")
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrValidation))
	assert.Zero(t, backend.TotalCalls())
}

func TestOrderStatusUsesVersionedPath(t *testing.T) {
	backend := testutil.NewBackend(t)
	c := newTestClient(t, backend)
	ctx := testutil.TestContext(t)

	_, err := c.OrderStatus(ctx, testEndpoint, "order-123")
	require.NoError(t, err)

	_, err = c.OrderStatus(ctx, types.Endpoint{Version: "v2", Path: "upscale/"}, "order-123")
	require.NoError(t, err)

	assert.Equal(t, []string{"v1/order-status", "v2/order-status"}, backend.StatusPaths())
}

func TestWaitForOrderImmediateActive(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("active")
	c := newTestClient(t, backend)

	start := time.Now()
	ord, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.NoError(t, err)

	assert.Equal(t, types.StatusActive, ord.Status)
	assert.Equal(t, "https://cdn.lightxeditor.test/result.jpg", ord.Output)
	assert.Equal(t, 1, backend.StatusCalls(), "the first check happens without a delay")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWaitForOrderPollsUntilActive(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("init", "init", "active")
	c := newTestClient(t, backend)

	_, interval := c.PollBudget()
	start := time.Now()
	ord, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.NoError(t, err)

	assert.Equal(t, types.StatusActive, ord.Status)
	assert.NotEmpty(t, ord.Output)
	assert.Equal(t, 3, backend.StatusCalls())
	// Two sleeps separate the three calls.
	assert.GreaterOrEqual(t, time.Since(start), 2*interval)
}

func TestWaitForOrderTimesOut(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("init")
	c := newTestClient(t, backend)

	_, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.Error(t, err)

	apiErr, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrTimeout, apiErr.Code)
	assert.True(t, apiErr.Retryable)
	assert.Equal(t, "v1/caricature", apiErr.Endpoint)
	assert.Equal(t, 5, backend.StatusCalls(), "budget exhausted, no sixth call")
}

func TestWaitForOrderFailedStopsImmediately(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("failed")
	c := newTestClient(t, backend)

	_, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.Error(t, err)

	apiErr, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrProcessingFailed, apiErr.Code)
	assert.False(t, apiErr.Retryable)
	assert.Equal(t, 1, backend.StatusCalls(), "a failed order is never polled again")
}

func TestWaitForOrderFailedAfterInit(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("init", "failed")
	c := newTestClient(t, backend)

	_, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrProcessingFailed))
	assert.Equal(t, 2, backend.StatusCalls())
}

func TestWaitForOrderSurvivesTransientStatusErrors(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("http:500", "http:503", "active")
	c := newTestClient(t, backend)

	ord, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.NoError(t, err)

	assert.Equal(t, types.StatusActive, ord.Status)
	assert.Equal(t, 3, backend.StatusCalls(), "failed status calls consume attempts")
}

func TestWaitForOrderReturnsFinalTransportError(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("http:503")
	c := newTestClient(t, backend)

	_, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.Error(t, err)

	apiErr, ok := types.AsError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrRemote, apiErr.Code, "a wait ending on a broken status call surfaces that error, not TIMEOUT")
	assert.Equal(t, 503, apiErr.HTTPStatus)
	assert.Equal(t, 5, backend.StatusCalls())
}

func TestWaitForOrderRecoveredErrorStillTimesOut(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("http:500", "init")
	c := newTestClient(t, backend)

	_, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.Error(t, err)

	// The early transport error was followed by successful checks, so
	// exhaustion reports TIMEOUT rather than the stale error.
	assert.True(t, types.IsErrorCode(err, types.ErrTimeout))
	assert.Equal(t, 5, backend.StatusCalls())
}

func TestWaitForOrderHonorsContextCancellation(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("init")

	cfg := backend.Config()
	cfg.Poll.Interval = 5 * time.Second
	c := NewClient(cfg, zaptest.NewLogger(t), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.WaitForOrder(ctx, testEndpoint, "order-123")
	require.Error(t, err)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 1, backend.StatusCalls())
	assert.Less(t, time.Since(start), time.Second, "cancellation cuts the interval sleep short")
}

func TestSubmitThenWait(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("init", "active")
	backend.SetOrder("order-77", "https://cdn.lightxeditor.test/out-77.jpg")
	c := newTestClient(t, backend)
	ctx := testutil.TestContext(t)

	sub, err := c.Submit(ctx, stubCaricature())
	require.NoError(t, err)
	require.Equal(t, "order-77", sub.OrderID)

	ord, err := c.WaitForOrder(ctx, sub.Endpoint, sub.OrderID)
	require.NoError(t, err)

	assert.Equal(t, "order-77", ord.OrderID)
	assert.Equal(t, "https://cdn.lightxeditor.test/out-77.jpg", ord.Output)
	assert.Equal(t, []string{"v1/order-status", "v1/order-status"}, backend.StatusPaths())
}

func TestPollBudgetIsConfigurable(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.ScriptStatuses("init")

	cfg := backend.Config()
	cfg.Poll.MaxAttempts = 2
	cfg.Poll.Interval = time.Millisecond
	c := NewClient(cfg, zaptest.NewLogger(t), nil)

	_, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrTimeout))
	assert.Equal(t, 2, backend.StatusCalls())
}
