package ledger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

var testStart = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)

// tickingClock returns a clock that advances one second on every call.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := cur
		cur = cur.Add(time.Second)
		return t
	}
}

func newTestLedger(opts ...Option) *Ledger {
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(tickingClock(testStart)),
	}
	return New(append(base, opts...)...)
}
