package ledger

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ValidationMode selects how Verify checks a block's Merkle root.
type ValidationMode int

const (
	// CachedRoot compares the stored Merkle root with the root of the
	// block's own tree. Both are fixed at construction, so this check
	// never fails on a block built by the ledger.
	CachedRoot ValidationMode = iota
	// RecomputeRoot rebuilds the tree from the block's transactions.
	RecomputeRoot
)

func (m ValidationMode) String() string {
	switch m {
	case CachedRoot:
		return "cached"
	case RecomputeRoot:
		return "recompute"
	default:
		return fmt.Sprintf("ValidationMode(%d)", int(m))
	}
}

// ParseValidationMode accepts the names returned by ValidationMode.String.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cached":
		return CachedRoot, nil
	case "recompute":
		return RecomputeRoot, nil
	}
	return CachedRoot, fmt.Errorf("unknown validation mode %q", s)
}

// Option configures a Ledger at construction.
type Option func(*Ledger)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClock replaces time.Now for transaction and block timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithValidationMode selects how Verify checks Merkle roots.
func WithValidationMode(mode ValidationMode) Option {
	return func(l *Ledger) {
		l.mode = mode
	}
}
