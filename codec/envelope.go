// Package codec encodes and decodes proof witnesses for wire transport,
// using the same keyasint CBOR convention the teacher log format uses for
// its own receipts.
package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/proof"
)

// SingleEnvelope is the wire form of a proof.SingleWitness, paired with the
// index and hash mode it was generated against.
type SingleEnvelope struct {
	N             uint64   `cbor:"1,keyasint"`
	Index         uint64   `cbor:"2,keyasint"`
	Mode          uint8    `cbor:"3,keyasint"`
	Decommitments [][]byte `cbor:"4,keyasint"`
}

// MultiEnvelope is the wire form of a proof.MultiWitness.
type MultiEnvelope struct {
	N        uint64   `cbor:"1,keyasint"`
	Flags    []byte   `cbor:"2,keyasint"`
	Skips    []byte   `cbor:"3,keyasint"`
	Decommit [][]byte `cbor:"4,keyasint"`
}

// AppendEnvelope is the wire form of a proof.AppendWitness.
type AppendEnvelope struct {
	N        uint64   `cbor:"1,keyasint"`
	Decommit [][]byte `cbor:"2,keyasint"`
}

// CombinedEnvelope is the wire form of a proof.CombinedWitness.
type CombinedEnvelope struct {
	Multi  MultiEnvelope  `cbor:"1,keyasint"`
	Append AppendEnvelope `cbor:"2,keyasint"`
}

func digestsToBytes(ds []hash.Digest) [][]byte {
	out := make([][]byte, len(ds))
	for i, d := range ds {
		b := make([]byte, hash.Size)
		copy(b, d[:])
		out[i] = b
	}
	return out
}

func bytesToDigests(bs [][]byte) ([]hash.Digest, error) {
	out := make([]hash.Digest, len(bs))
	for i, b := range bs {
		if len(b) != hash.Size {
			return nil, fmt.Errorf("codec: decommitment %d has length %d, want %d", i, len(b), hash.Size)
		}
		copy(out[i][:], b)
	}
	return out, nil
}

// MarshalSingle encodes w as a SingleEnvelope.
func MarshalSingle(mode hash.Mode, index uint64, w proof.SingleWitness) ([]byte, error) {
	env := SingleEnvelope{
		N:             w.N,
		Index:         index,
		Mode:          uint8(mode),
		Decommitments: digestsToBytes(w.Decommitments),
	}
	return cbor.Marshal(env)
}

// UnmarshalSingle decodes a SingleEnvelope back into its witness, index, and
// hash mode.
func UnmarshalSingle(data []byte) (proof.SingleWitness, uint64, hash.Mode, error) {
	var env SingleEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return proof.SingleWitness{}, 0, 0, err
	}
	decommit, err := bytesToDigests(env.Decommitments)
	if err != nil {
		return proof.SingleWitness{}, 0, 0, err
	}
	return proof.SingleWitness{N: env.N, Decommitments: decommit}, env.Index, hash.Mode(env.Mode), nil
}

// MarshalMulti encodes w as a MultiEnvelope.
func MarshalMulti(w proof.MultiWitness) ([]byte, error) {
	flags := w.Flags.ToDigest()
	skips := w.Skips.ToDigest()
	env := MultiEnvelope{
		N:        w.N,
		Flags:    flags[:],
		Skips:    skips[:],
		Decommit: digestsToBytes(w.Decommit),
	}
	return cbor.Marshal(env)
}

// UnmarshalMulti decodes a MultiEnvelope back into a proof.MultiWitness.
func UnmarshalMulti(data []byte) (proof.MultiWitness, error) {
	var env MultiEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return proof.MultiWitness{}, err
	}
	if len(env.Flags) != hash.Size || len(env.Skips) != hash.Size {
		return proof.MultiWitness{}, fmt.Errorf("codec: flags/skips must be %d bytes", hash.Size)
	}
	var flagsDigest, skipsDigest hash.Digest
	copy(flagsDigest[:], env.Flags)
	copy(skipsDigest[:], env.Skips)
	decommit, err := bytesToDigests(env.Decommit)
	if err != nil {
		return proof.MultiWitness{}, err
	}
	return proof.MultiWitness{
		N:        env.N,
		Flags:    proof.Bits256FromDigest(flagsDigest),
		Skips:    proof.Bits256FromDigest(skipsDigest),
		Decommit: decommit,
	}, nil
}

// MarshalAppend encodes w as an AppendEnvelope.
func MarshalAppend(w proof.AppendWitness) ([]byte, error) {
	env := AppendEnvelope{N: w.N, Decommit: digestsToBytes(w.Decommit)}
	return cbor.Marshal(env)
}

// UnmarshalAppend decodes an AppendEnvelope back into a proof.AppendWitness.
func UnmarshalAppend(data []byte) (proof.AppendWitness, error) {
	var env AppendEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return proof.AppendWitness{}, err
	}
	decommit, err := bytesToDigests(env.Decommit)
	if err != nil {
		return proof.AppendWitness{}, err
	}
	return proof.AppendWitness{N: env.N, Decommit: decommit}, nil
}

// MarshalCombined encodes w as a CombinedEnvelope.
func MarshalCombined(w proof.CombinedWitness) ([]byte, error) {
	multiBytes, err := MarshalMulti(w.Multi)
	if err != nil {
		return nil, err
	}
	var multiEnv MultiEnvelope
	if err := cbor.Unmarshal(multiBytes, &multiEnv); err != nil {
		return nil, err
	}
	appendBytes, err := MarshalAppend(w.Append)
	if err != nil {
		return nil, err
	}
	var appendEnv AppendEnvelope
	if err := cbor.Unmarshal(appendBytes, &appendEnv); err != nil {
		return nil, err
	}
	return cbor.Marshal(CombinedEnvelope{Multi: multiEnv, Append: appendEnv})
}

// UnmarshalCombined decodes a CombinedEnvelope back into a
// proof.CombinedWitness.
func UnmarshalCombined(data []byte) (proof.CombinedWitness, error) {
	var env CombinedEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return proof.CombinedWitness{}, err
	}
	multiBytes, err := cbor.Marshal(env.Multi)
	if err != nil {
		return proof.CombinedWitness{}, err
	}
	multi, err := UnmarshalMulti(multiBytes)
	if err != nil {
		return proof.CombinedWitness{}, err
	}
	appendBytes, err := cbor.Marshal(env.Append)
	if err != nil {
		return proof.CombinedWitness{}, err
	}
	appendW, err := UnmarshalAppend(appendBytes)
	if err != nil {
		return proof.CombinedWitness{}, err
	}
	return proof.CombinedWitness{Multi: multi, Append: appendW}, nil
}
