package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/forestrie/go-vectorproof/codec"
	"github.com/forestrie/go-vectorproof/config"
	"github.com/forestrie/go-vectorproof/proof"
)

// runCombine checks a combined multi-and-append witness: the claimed
// elements occupy their claimed positions, and appending the new elements
// extends the root correctly, in one step.
func runCombine(args []string) error {
	fs := pflag.NewFlagSet("combine", pflag.ContinueOnError)
	rootHex := fs.String("root", "", "hex-encoded committed root (required)")
	proofPath := fs.String("proof", "", "path to the combined witness (required)")
	modeFlag := fs.String("mode", "sorted", "hash mode: sorted|ordered")
	elementsHex := fs.StringSlice("element", nil, "claimed element(s), hex-encoded, in decreasing index order")
	indices := fs.String("indices", "", "comma-separated claimed indices, matching --element order")
	newHex := fs.StringSlice("new-element", nil, "new element(s) to append, hex-encoded")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rootHex == "" || *proofPath == "" || len(*newHex) == 0 {
		return fmt.Errorf("combine: --root, --proof, and at least one --new-element are required")
	}

	mode, err := config.ParseMode(*modeFlag)
	if err != nil {
		return err
	}
	root, err := decodeDigest(*rootHex)
	if err != nil {
		return err
	}
	data, err := readFile(*proofPath)
	if err != nil {
		return err
	}
	w, err := codec.UnmarshalCombined(data)
	if err != nil {
		return err
	}
	elements, err := decodeDigests(*elementsHex)
	if err != nil {
		return err
	}
	idx, err := parseIndices(*indices)
	if err != nil {
		return err
	}
	newElements, err := decodeDigests(*newHex)
	if err != nil {
		return err
	}

	newRoot, err := proof.MultiAndAppend(mode, root, elements, idx, newElements, w)
	if err != nil {
		return err
	}
	fmt.Printf("new root=%s\n", hex.EncodeToString(newRoot[:]))
	return nil
}
