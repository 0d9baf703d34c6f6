package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/forestrie/go-vectorproof/config"
	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/tree"
)

// runBuild reads one hex-encoded 32-byte element per line from --in (or
// stdin), builds the committed root, and writes a vector file to --out.
func runBuild(args []string) error {
	fs := pflag.NewFlagSet("build", pflag.ContinueOnError)
	in := fs.StringP("in", "i", "", "file of hex-encoded elements, one per line (default stdin)")
	out := fs.StringP("out", "o", "", "path to write the vector file (required)")
	modeFlag := fs.String("mode", "sorted", "hash mode: sorted|ordered")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("build: --out is required")
	}

	mode, err := config.ParseMode(*modeFlag)
	if err != nil {
		return err
	}

	elements, err := readElements(*in)
	if err != nil {
		return err
	}

	root := tree.Root(elements, mode)
	if err := writeVectorFile(*out, newVectorFile(mode, elements)); err != nil {
		return err
	}
	fmt.Printf("built %d elements, root=%s\n", len(elements), hex.EncodeToString(root[:]))
	return nil
}

func readElements(path string) ([]hash.Digest, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var elements []hash.Digest
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		b, err := hex.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("build: invalid hex line %q: %w", line, err)
		}
		if len(b) != hash.Size {
			return nil, fmt.Errorf("build: element %q has length %d, want %d", line, len(b), hash.Size)
		}
		var d hash.Digest
		copy(d[:], b)
		elements = append(elements, d)
	}
	return elements, scanner.Err()
}
