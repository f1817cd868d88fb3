package ledger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/luca-patrignani/merkle-ledger/merkle"
)

// Ledger holds the committed chain and the pending queue. A single RWMutex
// guards both, so a commit drains the queue atomically with respect to
// concurrent submissions.
type Ledger struct {
	mu      sync.RWMutex
	chain   []*Block
	pending []Transaction

	logger *slog.Logger
	now    func() time.Time
	mode   ValidationMode
}

// New creates an empty ledger. There is no genesis block: the first
// committed block records GenesisPrevHash as its previous hash.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		chain:  make([]*Block, 0),
		logger: slog.Default(),
		now:    time.Now,
		mode:   CachedRoot,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Mode returns the validation mode the ledger was created with.
func (l *Ledger) Mode() ValidationMode { return l.mode }

// AddTransaction stamps a new transaction with the ledger clock and queues
// it. Inputs are not validated.
func (l *Ledger) AddTransaction(sender, receiver string, amount float64) Transaction {
	tx := newTransactionAt(sender, receiver, amount, l.now())
	l.Submit(tx)
	return tx
}

// Submit queues a transaction built by the caller.
func (l *Ledger) Submit(tx Transaction) {
	l.mu.Lock()
	l.pending = append(l.pending, tx)
	n := len(l.pending)
	l.mu.Unlock()

	l.logger.Debug("transaction queued", "tx", tx.String(), "pending", n)
}

// AddBlock commits every pending transaction, in submission order, into a
// new block. It returns false and does nothing when the queue is empty.
func (l *Ledger) AddBlock() (*Block, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.pending) == 0 {
		return nil, false
	}

	prevHash := GenesisPrevHash
	if len(l.chain) > 0 {
		prevHash = l.chain[len(l.chain)-1].Hash()
	}

	tree := merkle.New(l.pending)
	block := newBlock(len(l.chain), prevHash, l.pending, tree, l.now())

	l.chain = append(l.chain, block)
	l.pending = nil

	l.logger.Info("block committed",
		"index", block.Index(),
		"hash", block.Hash(),
		"merkle_root", block.MerkleRoot(),
		"transactions", len(block.transactions),
	)
	return block, true
}

// ValidateChain reports whether Verify finds no inconsistency.
func (l *Ledger) ValidateChain() bool {
	return l.Verify() == nil
}

// Verify checks every adjacent pair of blocks and returns a
// *ValidationError for the first failure. Chains of length zero or one are
// valid.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := 1; i < len(l.chain); i++ {
		if err := l.validateBlock(l.chain[i], l.chain[i-1]); err != nil {
			l.logger.Warn("chain validation failed", "index", i, "err", err)
			return err
		}
	}
	return nil
}

func (l *Ledger) validateBlock(current, previous *Block) error {
	if current.previousHash != previous.Hash() {
		return &ValidationError{
			Index:    current.index,
			Err:      ErrBrokenLink,
			Expected: previous.Hash(),
			Got:      current.previousHash,
		}
	}

	var root string
	switch l.mode {
	case RecomputeRoot:
		root = merkle.New(current.transactions).RootHash()
	default:
		root = current.merkleTree.RootHash()
	}
	if current.merkleRoot != root {
		return &ValidationError{
			Index:    current.index,
			Err:      ErrMerkleMismatch,
			Expected: root,
			Got:      current.merkleRoot,
		}
	}
	return nil
}

// FindTransaction reports whether a committed transaction matches all four
// fields.
func (l *Ledger) FindTransaction(sender, receiver string, amount float64, timestamp string) bool {
	return l.Contains(Transaction{
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Timestamp: timestamp,
	})
}

// Contains scans the chain in order for a transaction equal to tx. Pending
// transactions are not searched.
func (l *Ledger) Contains(tx Transaction) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, b := range l.chain {
		if b.contains(tx) {
			return true
		}
	}
	return false
}

// Pending returns a copy of the queued transactions.
func (l *Ledger) Pending() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Transaction(nil), l.pending...)
}

// Blocks returns the committed blocks in chain order.
func (l *Ledger) Blocks() []*Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]*Block(nil), l.chain...)
}

// Summaries returns the display view of every block, in chain order.
func (l *Ledger) Summaries() []BlockSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]BlockSummary, len(l.chain))
	for i, b := range l.chain {
		out[i] = b.Summary()
	}
	return out
}

// Len returns the number of committed blocks.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.chain)
}

// Latest returns the most recently committed block.
func (l *Ledger) Latest() (*Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.chain) == 0 {
		return nil, ErrEmptyChain
	}
	return l.chain[len(l.chain)-1], nil
}

// BlockAt returns the block at position index.
func (l *Ledger) BlockAt(index int) (*Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.chain) {
		return nil, fmt.Errorf("block %d: %w", index, ErrIndexOutOfRange)
	}
	return l.chain[index], nil
}
