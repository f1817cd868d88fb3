package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the layout of Transaction.Timestamp.
const TimeLayout = "2006-01-02 15:04:05"

// Transaction is a transfer of Amount from Sender to Receiver.
type Transaction struct {
	Sender    string  `json:"sender"`
	Receiver  string  `json:"receiver"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

// NewTransaction stamps the current local time on a new transaction.
//
// No validation is performed: empty parties, NaN and infinite amounts are
// stored as given. Callers that need to reject them must do so before
// calling.
func NewTransaction(sender, receiver string, amount float64) Transaction {
	return newTransactionAt(sender, receiver, amount, time.Now())
}

func newTransactionAt(sender, receiver string, amount float64, at time.Time) Transaction {
	return Transaction{
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Timestamp: at.Local().Format(TimeLayout),
	}
}

// Serialize returns the string hashed into the transaction's Merkle leaf:
// sender, receiver, amount and timestamp joined without a separator.
// Distinct transactions can serialize identically when a boundary shifts
// between sender and receiver ("ab"+"c" and "a"+"bc").
func (tx Transaction) Serialize() string {
	return tx.Sender + tx.Receiver + FormatAmount(tx.Amount) + tx.Timestamp
}

// Equal reports whether all four fields match.
func (tx Transaction) Equal(other Transaction) bool {
	return tx.Sender == other.Sender &&
		tx.Receiver == other.Receiver &&
		tx.Amount == other.Amount &&
		tx.Timestamp == other.Timestamp
}

func (tx Transaction) String() string {
	return fmt.Sprintf("%s -> %s : %s at %s", tx.Sender, tx.Receiver, FormatAmount(tx.Amount), tx.Timestamp)
}

// FormatAmount renders an amount with the shortest digits that round-trip,
// always keeping a fractional part ("100.0") and switching to exponent
// form below 1e-4 or from 1e16 upward ("1e+16", "1.5e-05").
func FormatAmount(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "nan"
	case math.IsInf(amount, 1):
		return "inf"
	case math.IsInf(amount, -1):
		return "-inf"
	}
	abs := math.Abs(amount)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(amount, 'e', -1, 64)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
