package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/forestrie/go-vectorproof/config"
	"github.com/forestrie/go-vectorproof/hash"
)

// vectorFile is the on-disk representation of an element sequence: an
// identifier minted once at build time, the hash mode it was built with,
// and the elements themselves as hex-encoded 32-byte digests.
type vectorFile struct {
	ID       string   `json:"id"`
	Mode     string   `json:"mode"`
	Elements []string `json:"elements"`
}

func newVectorFile(mode hash.Mode, elements []hash.Digest) vectorFile {
	modeName := "sorted"
	if mode == hash.Ordered {
		modeName = "ordered"
	}
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = hex.EncodeToString(e[:])
	}
	return vectorFile{ID: uuid.NewString(), Mode: modeName, Elements: out}
}

func (v vectorFile) decode() (hash.Mode, []hash.Digest, error) {
	mode, err := config.ParseMode(v.Mode)
	if err != nil {
		return 0, nil, err
	}
	elems := make([]hash.Digest, len(v.Elements))
	for i, s := range v.Elements {
		b, err := hex.DecodeString(s)
		if err != nil {
			return 0, nil, fmt.Errorf("vectorfile: element %d: %w", i, err)
		}
		if len(b) != hash.Size {
			return 0, nil, fmt.Errorf("vectorfile: element %d has length %d, want %d", i, len(b), hash.Size)
		}
		copy(elems[i][:], b)
	}
	return mode, elems, nil
}

func writeVectorFile(path string, v vectorFile) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readVectorFile(path string) (vectorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return vectorFile{}, err
	}
	var v vectorFile
	if err := json.Unmarshal(data, &v); err != nil {
		return vectorFile{}, err
	}
	return v, nil
}
