package main

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/merkle-ledger/ledger"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func newTestSession(opts ...ledger.Option) session {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append(opts, ledger.WithLogger(logger))
	return session{ledger: ledger.New(opts...), logger: logger, precision: 2}
}

func TestSessionAddAndCommit(t *testing.T) {
	s := newTestSession()

	_, err := s.addTransaction("", "bob", "1")
	assert.ErrorIs(t, err, errEmptyParty)
	assert.Empty(t, s.ledger.Pending(), "rejected input must not reach the ledger")

	tx, err := s.addTransaction("alice", "bob", "10")
	require.NoError(t, err)
	assert.Len(t, s.ledger.Pending(), 1)

	b, ok := s.addBlock()
	require.True(t, ok)
	assert.Equal(t, 0, b.Index())

	_, ok = s.addBlock()
	assert.False(t, ok, "empty commit is a no-op")

	found, err := s.lookup(tx.Sender, tx.Receiver, "10", tx.Timestamp)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.lookup(tx.Sender, tx.Receiver, "10", "1999-01-01 00:00:00")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionValidate(t *testing.T) {
	s := newTestSession(ledger.WithValidationMode(ledger.RecomputeRoot))
	for _, batch := range demoBatches {
		for _, tr := range batch {
			s.ledger.AddTransaction(tr.sender, tr.receiver, tr.amount)
		}
		s.addBlock()
	}
	assert.Equal(t, 2, s.ledger.Len())
	assert.True(t, s.validate())

	summaries := s.ledger.Summaries()
	require.Len(t, summaries, 2)
	latest, err := s.ledger.Latest()
	require.NoError(t, err)
	assert.Equal(t, latest.Hash(), summaries[1].Hash)
	assert.Equal(t, summaries[0].Hash, summaries[1].PreviousHash)

	// rendering must not fail on a populated chain
	s.showPending()
	s.showChain()
}
