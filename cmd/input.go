package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/luca-patrignani/merkle-ledger/ledger"
)

var (
	errEmptyParty     = errors.New("sender and receiver are required")
	errInvalidAmount  = errors.New("amount must be a finite, non-zero number")
	errInvalidTimeVal = errors.New("timestamp must be in YYYY-MM-DD HH:MM:SS form")
)

type transfer struct {
	sender   string
	receiver string
	amount   float64
}

// parseTransfer applies the input policy the ledger itself leaves to its
// callers.
func parseTransfer(sender, receiver, amount string) (transfer, error) {
	sender = strings.TrimSpace(sender)
	receiver = strings.TrimSpace(receiver)
	if sender == "" || receiver == "" {
		return transfer{}, errEmptyParty
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return transfer{}, fmt.Errorf("%w: %q", errInvalidAmount, amount)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return transfer{}, fmt.Errorf("%w: %q", errInvalidAmount, amount)
	}
	return transfer{sender: sender, receiver: receiver, amount: v}, nil
}

// parseLookup builds the transaction to search for. The timestamp has to
// match exactly, so it is checked against ledger.TimeLayout.
func parseLookup(sender, receiver, amount, timestamp string) (ledger.Transaction, error) {
	t, err := parseTransfer(sender, receiver, amount)
	if err != nil {
		return ledger.Transaction{}, err
	}
	timestamp = strings.TrimSpace(timestamp)
	if _, err := time.Parse(ledger.TimeLayout, timestamp); err != nil {
		return ledger.Transaction{}, fmt.Errorf("%w: %q", errInvalidTimeVal, timestamp)
	}
	return ledger.Transaction{
		Sender:    t.sender,
		Receiver:  t.receiver,
		Amount:    t.amount,
		Timestamp: timestamp,
	}, nil
}
