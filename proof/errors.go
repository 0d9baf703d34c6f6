package proof

import (
	"errors"

	"github.com/forestrie/go-vectorproof/hash"
)

// The proof engine signals exactly these four terminal error kinds; there is
// no recoverable failure mode at this layer (spec §7).
var (
	// ErrEmptyTree is returned when an operation requires a non-empty tree
	// but root == 0 while the witness claims N != 0, or vice versa.
	ErrEmptyTree = errors.New("proof: empty tree")

	// ErrInvalidTree is returned at the boundary of append operations when
	// the claimed emptiness of root and N disagree: (root == 0) XOR (N == 0).
	ErrInvalidTree = errors.New("proof: invalid tree")

	// ErrLengthMismatch is returned when parallel input lists for an update
	// operation differ in length.
	ErrLengthMismatch = errors.New("proof: length mismatch")

	// ErrInvalidProof is returned when the reconstructed root does not equal
	// the claimed root, or a derived sub-witness is internally inconsistent.
	ErrInvalidProof = errors.New("proof: invalid proof")
)

// checkEmptiness enforces (root == 0) <=> (n == 0) as an entry gate, per the
// design note that many subtle off-by-one bugs hide at this boundary.
func checkEmptiness(root hash.Digest, n uint64) error {
	if (root == hash.Zero) != (n == 0) {
		return ErrEmptyTree
	}
	return nil
}
