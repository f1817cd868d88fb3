package ledger

import (
	"strconv"
	"testing"

	"github.com/luca-patrignani/merkle-ledger/digest"
	"github.com/luca-patrignani/merkle-ledger/merkle"
)

func sampleTransactions() []Transaction {
	return []Transaction{
		{Sender: "alice", Receiver: "bob", Amount: 10, Timestamp: "2024-03-01 12:00:00"},
		{Sender: "bob", Receiver: "carol", Amount: 4.5, Timestamp: "2024-03-01 12:00:01"},
		{Sender: "carol", Receiver: "alice", Amount: 1, Timestamp: "2024-03-01 12:00:02"},
	}
}

// TestBlockHash verifies that the block hash covers index, previous hash,
// Merkle root and timestamp, in that order.
func TestBlockHash(t *testing.T) {
	txs := sampleTransactions()
	tree := merkle.New(txs)
	b := newBlock(3, "abc", txs, tree, testStart)

	wantTS := strconv.FormatInt(testStart.Unix(), 10)
	if b.Timestamp() != wantTS {
		t.Fatalf("timestamp = %s, want %s", b.Timestamp(), wantTS)
	}
	if b.MerkleRoot() != tree.RootHash() {
		t.Fatalf("merkle root = %s, want %s", b.MerkleRoot(), tree.RootHash())
	}
	want := digest.Sum("3" + "abc" + tree.RootHash() + wantTS)
	if b.Hash() != want {
		t.Fatalf("hash = %s, want %s", b.Hash(), want)
	}
	if !isDigest(b.Hash()) {
		t.Fatalf("hash %q is not 64 lowercase hex chars", b.Hash())
	}
}

// TestBlockSnapshotsTransactions verifies that neither the caller's slice nor
// the accessor's result alias the block's own transactions.
func TestBlockSnapshotsTransactions(t *testing.T) {
	txs := sampleTransactions()
	b := NewBlock(0, GenesisPrevHash, txs, merkle.New(txs))

	txs[0].Amount = 999
	if b.Transactions()[0].Amount != 10 {
		t.Fatal("block shares its transaction slice with the caller")
	}

	got := b.Transactions()
	got[1].Sender = "mallory"
	if b.Transactions()[1].Sender != "bob" {
		t.Fatal("Transactions() exposes the block's internal slice")
	}
}

func TestBlockSummary(t *testing.T) {
	txs := sampleTransactions()
	b := newBlock(0, GenesisPrevHash, txs, merkle.New(txs), testStart)
	s := b.Summary()

	if s.Index != 0 || s.PreviousHash != GenesisPrevHash || s.TransactionCount != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Hash != b.Hash() || s.MerkleRoot != b.MerkleRoot() || s.Timestamp != b.Timestamp() {
		t.Fatalf("summary does not mirror block: %+v", s)
	}
}

func TestBlockContains(t *testing.T) {
	txs := sampleTransactions()
	b := newBlock(0, GenesisPrevHash, txs, merkle.New(txs), testStart)

	if !b.contains(txs[2]) {
		t.Fatal("block should contain its own transaction")
	}
	forged := txs[2]
	forged.Timestamp = "2024-03-01 12:00:03"
	if b.contains(forged) {
		t.Fatal("block matched a transaction with a forged timestamp")
	}
}

func isDigest(s string) bool {
	if len(s) != digest.HexSize {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
