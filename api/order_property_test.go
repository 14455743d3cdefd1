package api

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"

	"github.com/BaSui01/lightx-go/testutil"
	"github.com/BaSui01/lightx-go/types"
)

// The wait loop must issue exactly min(pending+1, budget) status calls
// for any run of pending statuses before a terminal one, and classify
// the outcome from whichever status it saw last.
func TestProperty_WaitForOrderCallCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("status calls match the poll budget", prop.ForAll(
		func(pending int, succeeds bool) bool {
			backend := testutil.NewBackend(t)

			script := make([]string, 0, pending+1)
			for i := 0; i < pending; i++ {
				script = append(script, "init")
			}
			terminal := "failed"
			if succeeds {
				terminal = "active"
			}
			script = append(script, terminal)
			backend.ScriptStatuses(script...)

			cfg := backend.Config()
			cfg.Poll.Interval = time.Millisecond
			c := NewClient(cfg, zap.NewNop(), nil)

			ord, err := c.WaitForOrder(testutil.TestContext(t), testEndpoint, "order-123")

			wantCalls := pending + 1
			if wantCalls > cfg.Poll.MaxAttempts {
				wantCalls = cfg.Poll.MaxAttempts
			}
			if got := backend.StatusCalls(); got != wantCalls {
				t.Logf("pending=%d: expected %d status calls, got %d", pending, wantCalls, got)
				return false
			}

			if pending >= cfg.Poll.MaxAttempts {
				// The terminal status was never reached.
				if !types.IsErrorCode(err, types.ErrTimeout) {
					t.Logf("pending=%d: expected TIMEOUT, got %v", pending, err)
					return false
				}
				return true
			}

			if succeeds {
				if err != nil {
					t.Logf("pending=%d: expected success, got %v", pending, err)
					return false
				}
				if ord.Status != types.StatusActive || ord.Output == "" {
					t.Logf("pending=%d: unexpected order %+v", pending, ord)
					return false
				}
				return true
			}

			if !types.IsErrorCode(err, types.ErrProcessingFailed) {
				t.Logf("pending=%d: expected PROCESSING_FAILED, got %v", pending, err)
				return false
			}
			return true
		},
		gen.IntRange(0, 8),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
