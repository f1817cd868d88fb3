package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyChain      = errors.New("blockchain is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrBrokenLink      = errors.New("previous hash does not match")
	ErrMerkleMismatch  = errors.New("merkle root does not match")
)

// ValidationError reports the first block that failed verification.
type ValidationError struct {
	Index    int
	Err      error
	Expected string
	Got      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("block %d invalid: %v: expected %s, got %s", e.Index, e.Err, e.Expected, e.Got)
}

func (e *ValidationError) Unwrap() error { return e.Err }
