package ledger

import (
	"strconv"
	"time"

	"github.com/luca-patrignani/merkle-ledger/digest"
	"github.com/luca-patrignani/merkle-ledger/merkle"
)

// GenesisPrevHash is the previous hash recorded by the first block.
const GenesisPrevHash = "0"

// Block is a committed batch of transactions. All fields are fixed at
// construction.
type Block struct {
	index        int
	previousHash string
	transactions []Transaction
	timestamp    string
	merkleRoot   string
	merkleTree   *merkle.Tree
	hash         string
}

// BlockSummary is the display view of a block.
type BlockSummary struct {
	Index            int    `json:"index"`
	Hash             string `json:"hash"`
	PreviousHash     string `json:"previous_hash"`
	MerkleRoot       string `json:"merkle_root"`
	Timestamp        string `json:"timestamp"`
	TransactionCount int    `json:"transaction_count"`
}

// NewBlock builds a block over txs, stamped with the current Unix time.
// tree must be the Merkle tree the caller built for txs; its root is
// recorded as the block's Merkle root. txs is copied.
func NewBlock(index int, previousHash string, txs []Transaction, tree *merkle.Tree) *Block {
	return newBlock(index, previousHash, txs, tree, time.Now())
}

func newBlock(index int, previousHash string, txs []Transaction, tree *merkle.Tree, at time.Time) *Block {
	b := &Block{
		index:        index,
		previousHash: previousHash,
		transactions: append([]Transaction(nil), txs...),
		timestamp:    strconv.FormatInt(at.Unix(), 10),
		merkleTree:   tree,
		merkleRoot:   tree.RootHash(),
	}
	b.hash = calculateHash(b)
	return b
}

// calculateHash computes SHA256(index ++ previousHash ++ merkleRoot ++ timestamp).
func calculateHash(b *Block) string {
	return digest.Concat(strconv.Itoa(b.index), b.previousHash, b.merkleRoot, b.timestamp)
}

// Index is the block position in the chain, starting at 0.
func (b *Block) Index() int { return b.index }

// PreviousHash is the hash of the preceding block, or GenesisPrevHash.
func (b *Block) PreviousHash() string { return b.previousHash }

// Transactions returns a copy of the committed transactions in order.
func (b *Block) Transactions() []Transaction {
	return append([]Transaction(nil), b.transactions...)
}

// Timestamp is the block creation time as decimal Unix seconds.
func (b *Block) Timestamp() string { return b.timestamp }

// MerkleRoot is the root recorded at construction, "" for an empty block.
func (b *Block) MerkleRoot() string { return b.merkleRoot }

// MerkleTree returns the tree built over the block transactions.
func (b *Block) MerkleTree() *merkle.Tree { return b.merkleTree }

// Hash returns the block hash computed at construction.
func (b *Block) Hash() string { return b.hash }

func (b *Block) contains(tx Transaction) bool {
	for _, t := range b.transactions {
		if t.Equal(tx) {
			return true
		}
	}
	return false
}

// Summary returns the display view of the block.
func (b *Block) Summary() BlockSummary {
	return BlockSummary{
		Index:            b.index,
		Hash:             b.hash,
		PreviousHash:     b.previousHash,
		MerkleRoot:       b.merkleRoot,
		Timestamp:        b.timestamp,
		TransactionCount: len(b.transactions),
	}
}
