package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/forestrie/go-vectorproof/codec"
	"github.com/forestrie/go-vectorproof/tree"
)

// runProve builds the tree from --vector and writes a witness for --kind to
// --out: single needs --index, multi and combined need --indices, append
// needs neither.
func runProve(args []string) error {
	fs := pflag.NewFlagSet("prove", pflag.ContinueOnError)
	vectorPath := fs.String("vector", "", "path to the vector file (required)")
	kind := fs.String("kind", "single", "witness kind: single|multi|append|combined")
	index := fs.Int64("index", -1, "claimed index (single proof)")
	indices := fs.String("indices", "", "comma-separated claimed indices (multi/combined proof)")
	out := fs.String("out", "", "path to write the proof file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *vectorPath == "" || *out == "" {
		return fmt.Errorf("prove: --vector and --out are required")
	}

	v, err := readVectorFile(*vectorPath)
	if err != nil {
		return err
	}
	mode, elements, err := v.decode()
	if err != nil {
		return err
	}

	b := tree.NewBuilder(mode)
	for _, e := range elements {
		b.Append(e)
	}

	var data []byte
	switch *kind {
	case "single":
		if *index < 0 {
			return fmt.Errorf("prove: --index is required for kind=single")
		}
		w, err := b.ProveSingle(uint64(*index))
		if err != nil {
			return err
		}
		data, err = codec.MarshalSingle(mode, uint64(*index), w)
		if err != nil {
			return err
		}
	case "multi":
		idx, err := parseIndices(*indices)
		if err != nil {
			return err
		}
		_, w, err := b.ProveMulti(idx)
		if err != nil {
			return err
		}
		data, err = codec.MarshalMulti(w)
		if err != nil {
			return err
		}
	case "append":
		data, err = codec.MarshalAppend(b.ProveAppend())
		if err != nil {
			return err
		}
	case "combined":
		idx, err := parseIndices(*indices)
		if err != nil {
			return err
		}
		_, w, err := b.ProveCombined(idx)
		if err != nil {
			return err
		}
		data, err = codec.MarshalCombined(w)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("prove: unknown kind %q", *kind)
	}

	if err := writeFile(*out, data); err != nil {
		return err
	}
	fmt.Printf("wrote %s witness to %s (%d bytes)\n", *kind, *out, len(data))
	return nil
}

func parseIndices(s string) ([]uint64, error) {
	if s == "" {
		return nil, fmt.Errorf("prove: --indices is required")
	}
	parts := strings.Split(s, ",")
	out := make([]uint64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("prove: invalid index %q: %w", p, err)
		}
		out[i] = n
	}
	return out, nil
}
