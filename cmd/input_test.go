package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransfer(t *testing.T) {
	tr, err := parseTransfer(" alice ", "bob", " 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, transfer{sender: "alice", receiver: "bob", amount: 12.5}, tr)
}

func TestParseTransferRejects(t *testing.T) {
	cases := []struct {
		name                     string
		sender, receiver, amount string
		want                     error
	}{
		{"empty sender", "", "bob", "1", errEmptyParty},
		{"blank receiver", "alice", "   ", "1", errEmptyParty},
		{"not a number", "alice", "bob", "ten", errInvalidAmount},
		{"empty amount", "alice", "bob", "", errInvalidAmount},
		{"zero", "alice", "bob", "0", errInvalidAmount},
		{"nan", "alice", "bob", "NaN", errInvalidAmount},
		{"inf", "alice", "bob", "+Inf", errInvalidAmount},
		{"overflow", "alice", "bob", "1e400", errInvalidAmount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseTransfer(c.sender, c.receiver, c.amount)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseLookup(t *testing.T) {
	tx, err := parseLookup("alice", "bob", "3", "2024-03-01 12:00:00")
	require.NoError(t, err)
	assert.Equal(t, "alice", tx.Sender)
	assert.Equal(t, "bob", tx.Receiver)
	assert.Equal(t, 3.0, tx.Amount)
	assert.Equal(t, "2024-03-01 12:00:00", tx.Timestamp)

	_, err = parseLookup("alice", "bob", "3", "2024-03-01T12:00:00Z")
	assert.ErrorIs(t, err, errInvalidTimeVal)

	_, err = parseLookup("", "bob", "3", "2024-03-01 12:00:00")
	assert.ErrorIs(t, err, errEmptyParty)
}
