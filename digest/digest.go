// Package digest produces the SHA-256 hex digests used for Merkle nodes and
// block hashes. The hash function is taken from the kyber Ed25519 suite so
// the ledger shares its primitive with the rest of the dedis stack.
package digest

import (
	"encoding/hex"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

// Size is the length in bytes of a raw digest.
const Size = 32

// HexSize is the length of a digest rendered as lowercase hex.
const HexSize = 2 * Size

// suite is resolved at init. MustFind panics if Ed25519 is not registered,
// since the ledger cannot work without its hash primitive.
var suite suites.Suite = suites.MustFind("Ed25519")

// Sum hashes data and returns it as 64 lowercase hex characters.
func Sum(data string) string {
	h := suite.Hash()
	// hash.Hash.Write never returns an error
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// Concat hashes the concatenation of parts, in order, with no delimiter.
func Concat(parts ...string) string {
	h := suite.Hash()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Check verifies that the suite hash produces SHA-256 sized digests.
func Check() error {
	if got := suite.Hash().Size(); got != Size {
		return fmt.Errorf("suite %s: digest size %d, expected %d", suite.String(), got, Size)
	}
	return nil
}
