// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// AddressKind identifies a kind of base58check encoded object whose version
// prefix differs per network.
type AddressKind int

// These constants define the address kinds of a prefix table.
const (
	// PubKeyAddress prefixes pay-to-pubkey-hash addresses.
	PubKeyAddress AddressKind = iota

	// ScriptAddress prefixes pay-to-script-hash addresses.
	ScriptAddress

	// SecretKey prefixes WIF private keys.
	SecretKey

	// ExtPublicKey prefixes BIP32 extended public keys.
	ExtPublicKey

	// ExtSecretKey prefixes BIP32 extended private keys.
	ExtSecretKey

	// ExtCoinType is the hardened BIP44 coin type.
	ExtCoinType

	// numAddressKinds must come last.
	numAddressKinds
)

// checksumLen is the length of the base58check checksum.
const checksumLen = 4

var addressKindStrings = [numAddressKinds]string{
	PubKeyAddress: "PubKeyAddress",
	ScriptAddress: "ScriptAddress",
	SecretKey:     "SecretKey",
	ExtPublicKey:  "ExtPublicKey",
	ExtSecretKey:  "ExtSecretKey",
	ExtCoinType:   "ExtCoinType",
}

// String returns the AddressKind as a human-readable name.
func (k AddressKind) String() string {
	if k < 0 || k >= numAddressKinds {
		return fmt.Sprintf("Unknown AddressKind (%d)", int(k))
	}
	return addressKindStrings[k]
}

// prefixLen returns the fixed prefix length of kind.
func (k AddressKind) prefixLen() int {
	switch k {
	case PubKeyAddress, ScriptAddress, SecretKey:
		return 1
	default:
		return 4
	}
}

// AddressKinds returns every address kind in declaration order.
func AddressKinds() []AddressKind {
	kinds := make([]AddressKind, 0, numAddressKinds)
	for k := AddressKind(0); k < numAddressKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// AddressPrefixTable holds the version prefix of every address kind for a
// network.
type AddressPrefixTable struct {
	prefixes [numAddressKinds][]byte
}

// NewAddressPrefixTable returns a table holding a copy of prefixes.  Every
// address kind must have an entry of the length fixed for its kind.
func NewAddressPrefixTable(prefixes map[AddressKind][]byte) (AddressPrefixTable, error) {
	var t AddressPrefixTable
	for k := range prefixes {
		if k < 0 || k >= numAddressKinds {
			str := fmt.Sprintf("unknown address kind %v", k)
			return AddressPrefixTable{}, paramsError(ErrMissingPrefix, str)
		}
	}
	for _, k := range AddressKinds() {
		prefix, ok := prefixes[k]
		if !ok {
			str := fmt.Sprintf("no prefix for %v", k)
			return AddressPrefixTable{}, paramsError(ErrMissingPrefix, str)
		}
		if len(prefix) != k.prefixLen() {
			str := fmt.Sprintf("prefix for %v is %d bytes, want %d",
				k, len(prefix), k.prefixLen())
			return AddressPrefixTable{}, paramsError(ErrPrefixLength, str)
		}
		t.prefixes[k] = append([]byte(nil), prefix...)
	}
	return t, nil
}

// Prefix returns a copy of the prefix for kind, or nil for an unknown kind.
func (t AddressPrefixTable) Prefix(kind AddressKind) []byte {
	if kind < 0 || kind >= numAddressKinds {
		return nil
	}
	return append([]byte(nil), t.prefixes[kind]...)
}

// HDCoinType returns the BIP44 coin type with the hardened bit cleared.
func (t AddressPrefixTable) HDCoinType() uint32 {
	coinType := t.prefixes[ExtCoinType]
	if len(coinType) != 4 {
		return 0
	}
	return binary.BigEndian.Uint32(coinType) &^ 0x80000000
}

// EncodeAddress returns the base58check encoding of payload prefixed with the
// prefix of kind.
func (t AddressPrefixTable) EncodeAddress(kind AddressKind, payload []byte) string {
	prefix := t.Prefix(kind)
	b := make([]byte, 0, len(prefix)+len(payload)+checksumLen)
	b = append(b, prefix...)
	b = append(b, payload...)
	b = append(b, chainhash.DoubleHashB(b)[:checksumLen]...)
	return base58.Encode(b)
}

// DecodeAddress decodes the base58check string s, checks its checksum and that
// it carries the prefix of kind, and returns the payload.
func (t AddressPrefixTable) DecodeAddress(kind AddressKind, s string) ([]byte, error) {
	prefix := t.Prefix(kind)
	if prefix == nil {
		str := fmt.Sprintf("unknown address kind %v", kind)
		return nil, paramsError(ErrInvalidAddress, str)
	}

	b := base58.Decode(s)
	if len(b) < len(prefix)+checksumLen {
		str := fmt.Sprintf("address %q is too short", s)
		return nil, paramsError(ErrInvalidAddress, str)
	}
	body, sum := b[:len(b)-checksumLen], b[len(b)-checksumLen:]
	if !bytes.Equal(chainhash.DoubleHashB(body)[:checksumLen], sum) {
		str := fmt.Sprintf("address %q has a bad checksum", s)
		return nil, paramsError(ErrInvalidAddress, str)
	}
	if !bytes.HasPrefix(body, prefix) {
		str := fmt.Sprintf("address %q is not a %v for this network", s,
			kind)
		return nil, paramsError(ErrInvalidAddress, str)
	}
	return body[len(prefix):], nil
}

// checkBase58Check returns whether s is a well formed base58check string with
// a one byte version, regardless of which version.
func checkBase58Check(s string) bool {
	_, _, err := base58.CheckDecode(s)
	return err == nil
}
