package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/forestrie/go-vectorproof/codec"
	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/proof"
)

// runVerify checks a proof file against a claimed root and the claimed
// element value(s), without needing the full vector.
func runVerify(args []string) error {
	fs := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	rootHex := fs.String("root", "", "hex-encoded committed root (required)")
	proofPath := fs.String("proof", "", "path to the proof file (required)")
	kind := fs.String("kind", "single", "witness kind: single|multi")
	elementsHex := fs.StringSlice("element", nil, "claimed element(s), hex-encoded; repeat for multi-proof in decreasing index order")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rootHex == "" || *proofPath == "" {
		return fmt.Errorf("verify: --root and --proof are required")
	}

	root, err := decodeDigest(*rootHex)
	if err != nil {
		return err
	}
	data, err := readFile(*proofPath)
	if err != nil {
		return err
	}
	elements, err := decodeDigests(*elementsHex)
	if err != nil {
		return err
	}

	var ok bool
	switch *kind {
	case "single":
		if len(elements) != 1 {
			return fmt.Errorf("verify: kind=single requires exactly one --element")
		}
		w, index, mode, err := codec.UnmarshalSingle(data)
		if err != nil {
			return err
		}
		if mode == hash.Sorted {
			ok = proof.VerifySingleSorted(root, index, elements[0], w)
		} else {
			ok = proof.VerifySingleOrdered(root, index, elements[0], w)
		}
	case "multi":
		w, err := codec.UnmarshalMulti(data)
		if err != nil {
			return err
		}
		ok = proof.VerifyMulti(root, elements, w)
	default:
		return fmt.Errorf("verify: unknown kind %q", *kind)
	}

	if !ok {
		fmt.Println("INVALID")
		return fmt.Errorf("verify: proof did not verify")
	}
	fmt.Println("OK")
	return nil
}

func decodeDigest(s string) (hash.Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return hash.Digest{}, err
	}
	if len(b) != hash.Size {
		return hash.Digest{}, fmt.Errorf("decodeDigest: length %d, want %d", len(b), hash.Size)
	}
	var d hash.Digest
	copy(d[:], b)
	return d, nil
}

func decodeDigests(ss []string) ([]hash.Digest, error) {
	out := make([]hash.Digest, len(ss))
	for i, s := range ss {
		d, err := decodeDigest(s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
