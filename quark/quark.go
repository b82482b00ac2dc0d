// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package quark implements the quark chained hash used as the block header
// proof of work hash.
//
// Quark runs nine rounds of 512-bit hash functions drawn from BLAKE, BMW,
// Grøstl, JH, Keccak and Skein.  Three of the rounds pick between two functions
// based on bit 3 of the first byte of the previous digest.  The final 512-bit
// digest is truncated to its first 32 bytes.
package quark

import (
	"hash"

	"github.com/dchest/blake512"
	"github.com/phoreproject/go-x11/bmw"
	"github.com/phoreproject/go-x11/groest"
	"github.com/phoreproject/go-x11/jhash"
	"github.com/phoreproject/go-x11/skein"
	"golang.org/x/crypto/sha3"
)

// Size is the size of a quark digest in bytes.
const Size = 32

// selectMask is the bit of the first digest byte that picks the branch in the
// conditional rounds.
const selectMask = 0x08

// round describes one step of the chain.  When alt is set and the select bit
// of the running digest is clear, alt is used instead of fn.
type round struct {
	fn  func() hash.Hash
	alt func() hash.Hash
}

var chain = [9]round{
	{fn: blake512.New},
	{fn: newBMW},
	{fn: newGroestl, alt: newSkein},
	{fn: newGroestl},
	{fn: newJH},
	{fn: blake512.New, alt: newBMW},
	{fn: sha3.NewLegacyKeccak512},
	{fn: newSkein},
	{fn: sha3.NewLegacyKeccak512, alt: newJH},
}

// The x11 constructors return their own digest interface, which carries the
// hash.Hash method set.
func newBMW() hash.Hash     { return bmw.New() }
func newGroestl() hash.Hash { return groest.New() }
func newJH() hash.Hash      { return jhash.New() }
func newSkein() hash.Hash   { return skein.New() }

// Sum256 returns the quark digest of data.  The result is in the same byte
// order as the hash functions produce it, which is the internal byte order of
// a chainhash.Hash.
func Sum256(data []byte) [Size]byte {
	buf := make([]byte, 0, 64)
	in := data
	for _, r := range chain {
		newHash := r.fn
		if r.alt != nil && in[0]&selectMask == 0 {
			newHash = r.alt
		}
		h := newHash()
		h.Write(in)
		buf = h.Sum(buf[:0])
		in = buf
	}

	var out [Size]byte
	copy(out[:], in)
	return out
}
