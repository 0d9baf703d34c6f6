package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/forestrie/go-vectorproof/codec"
	"github.com/forestrie/go-vectorproof/config"
	"github.com/forestrie/go-vectorproof/proof"
)

// runAppend extends a committed root with new elements using an append
// witness previously written by `vectorctl prove --kind=append`.
func runAppend(args []string) error {
	fs := pflag.NewFlagSet("append", pflag.ContinueOnError)
	rootHex := fs.String("root", "", "hex-encoded committed root (required)")
	proofPath := fs.String("proof", "", "path to the append witness (required)")
	modeFlag := fs.String("mode", "sorted", "hash mode: sorted|ordered")
	newHex := fs.StringSlice("element", nil, "new element(s) to append, hex-encoded; repeat in append order")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rootHex == "" || *proofPath == "" || len(*newHex) == 0 {
		return fmt.Errorf("append: --root, --proof, and at least one --element are required")
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
	w, err := codec.UnmarshalAppend(data)
	if err != nil {
		return err
	}
	newElements, err := decodeDigests(*newHex)
	if err != nil {
		return err
	}

	newRoot, err := proof.AppendMany(mode, root, newElements, w)
	if err != nil {
		return err
	}
	fmt.Printf("new root=%s\n", hex.EncodeToString(newRoot[:]))
	return nil
}
