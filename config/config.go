// Package config holds the settings vectorctl subcommands share: which
// hash mode to build with, where the vector file lives, and how proofs are
// encoded on disk.
package config

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-vectorproof/hash"
)

// Format selects how a proof or vector file is serialized.
type Format uint8

const (
	FormatCBOR Format = iota
	FormatJSON
)

// Config bundles the vector path, proof path, hash mode and format. The
// vectorctl subcommands parse their own flags and do not build a Config.
type Config struct {
	VectorPath string
	ProofPath  string
	Mode       hash.Mode
	Format     Format
}

// ParseMode maps the --mode flag value to a hash.Mode.
func ParseMode(s string) (hash.Mode, error) {
	switch strings.ToLower(s) {
	case "sorted", "":
		return hash.Sorted, nil
	case "ordered":
		return hash.Ordered, nil
	default:
		return 0, fmt.Errorf("config: unknown hash mode %q (want sorted or ordered)", s)
	}
}

// ParseFormat maps a format name ("cbor" or "json", case-insensitive; empty
// means cbor) to a Format. No vectorctl subcommand has a --format flag.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "cbor", "":
		return FormatCBOR, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("config: unknown format %q (want cbor or json)", s)
	}
}
