// Package ledger implements an append-only, tamper-evident ledger of value
// transfers for a single process.
//
// # Core Components
//
// Transaction: An immutable record of a transfer between two parties,
// stamped with the wall-clock second at which it was created.
//
// Block: A batch of committed transactions, summarised by the root of a
// Merkle tree over them and linked to its predecessor by hash.
//
// Ledger: The ordered chain of blocks plus the queue of pending
// transactions that the next block will commit.
//
// # Integrity
//
// Each block hash covers the block index, the previous block hash, the
// Merkle root and the block timestamp. Transactions reach the block hash
// only through the Merkle root, which is computed once when the block is
// built.
//
// The ledger verifies chain linkage and, depending on the ValidationMode,
// either compares the cached Merkle root with the block's own tree
// (CachedRoot) or rebuilds the tree from the committed transactions
// (RecomputeRoot). Only RecomputeRoot notices a transaction edited after
// commit.
//
// # Usage
//
// Create a ledger with New, submit transfers with AddTransaction and commit
// them with AddBlock. ValidateChain and FindTransaction may be called
// concurrently with each other at any time.
package ledger
