// Package leaf computes the domain-separated leaf hash that distinguishes
// raw element bytes from internal node digests in the element-tree.
package leaf

import "github.com/forestrie/go-vectorproof/hash"

// Hash returns H(0x00...00 || element), the leaf digest for element.
//
// The leading zero word is the domain separator between leaves and internal
// nodes and must never be omitted: without it, a two-level tree whose single
// leaf happens to equal a sibling pair's hash would be ambiguous with an
// internal node.
func Hash(element hash.Digest) hash.Digest {
	return hash.Node(hash.Zero, element)
}
