// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// mainGenesisHeader is the serialized main network genesis header.
var mainGenesisHeader = "0100000000000000000000000000000000000000000000000000000000000000" +
	"00000000cfefa6b8fef406fb7ae29038ed5f48caca146599900318dbff76563f" +
	"a0d2b2edd0729d5bf0ff0f1ee8541700"

func mainGenesisParams() GenesisParams {
	return GenesisParams{
		Timestamp:    genesisTimestamp,
		OutputPubKey: genesisOutputPubKey,
		Version:      1,
		Time:         time.Unix(1537045200, 0),
		Bits:         0x1e0ffff0,
		Nonce:        1529064,
	}
}

// TestGenesisBlock tests the genesis blocks of every network rebuild to their
// recorded hash and merkle root.
func TestGenesisBlock(t *testing.T) {
	testCases := []struct {
		name  string
		time  int64
		nonce uint32
		hash  string
	}{
		{
			name:  "main",
			time:  1537045200,
			nonce: 1529064,
			hash:  "00000d794731fe98c6d703116f701b7437336832e49bbeb46d983e07e23bbb6e",
		},
		{
			name:  "test",
			time:  1535835600,
			nonce: 1853156,
			hash:  "000006fcf37ffdec40c897eb9b1813914da37cc4612738b737658c59c14395f9",
		},
		{
			name:  "regtest",
			time:  1516926684,
			nonce: 769149,
			hash:  "0000001d71e19966939633980998c6741c1d9c33b101f9811bd3a0245d5be280",
		},
	}

	for _, tc := range testCases {
		g := mainGenesisParams()
		g.Time = time.Unix(tc.time, 0)
		g.Nonce = tc.nonce

		block, err := BuildGenesisBlock(g)
		require.NoError(t, err, tc.name)
		require.Len(t, block.Transactions, 1, tc.name)
		require.Equal(t, *genesisMerkleRoot, block.Header.MerkleRoot, tc.name)

		hash := GenesisHash(&block.Header)
		require.Equal(t, tc.hash, hash.String(), tc.name)

		got, err := verifyGenesis(block, newHashFromStr(tc.hash),
			genesisMerkleRoot, mainPowLimit)
		require.NoError(t, err, tc.name)
		require.Equal(t, hash, *got, tc.name)
	}
}

// TestGenesisBlockSerialization tests the main network genesis header and
// coinbase serialize to the expected bytes.
func TestGenesisBlockSerialization(t *testing.T) {
	block, err := BuildGenesisBlock(mainGenesisParams())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, block.Header.Serialize(&buf))
	require.Equal(t, mainGenesisHeader, hex.EncodeToString(buf.Bytes()))

	coinbase := block.Transactions[0]
	require.Equal(t, int32(1), coinbase.Version)
	require.Equal(t, uint32(0), coinbase.LockTime)
	require.Len(t, coinbase.TxIn, 1)
	require.Len(t, coinbase.TxOut, 1)

	txIn := coinbase.TxIn[0]
	require.Equal(t, chainhash.Hash{}, txIn.PreviousOutPoint.Hash)
	require.Equal(t, uint32(wire.MaxPrevOutIndex), txIn.PreviousOutPoint.Index)
	require.Equal(t, uint32(wire.MaxTxInSequenceNum), txIn.Sequence)

	// push(486604799) push(4) OP_PUSHDATA1 98 <timestamp>
	wantSig := append([]byte{0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04, 0x4c, 98},
		genesisTimestamp...)
	require.Equal(t, wantSig, txIn.SignatureScript)

	txOut := coinbase.TxOut[0]
	require.Equal(t, int64(0), txOut.Value)
	require.Len(t, txOut.PkScript, 67)
	require.Equal(t, byte(0x41), txOut.PkScript[0])
	require.Equal(t, byte(0xac), txOut.PkScript[66])
	require.Equal(t, genesisOutputPubKey, hex.EncodeToString(txOut.PkScript[1:66]))
}

// TestBuildGenesisBlockDeterministic tests identical inputs always build
// identical blocks.
func TestBuildGenesisBlockDeterministic(t *testing.T) {
	a, err := BuildGenesisBlock(mainGenesisParams())
	require.NoError(t, err)
	b, err := BuildGenesisBlock(mainGenesisParams())
	require.NoError(t, err)

	require.Equal(t, a.BlockHash(), b.BlockHash())
	require.Equal(t, GenesisHash(&a.Header), GenesisHash(&b.Header))
}

// TestBuildGenesisBlockErrors tests invalid coinbase keys are rejected.
func TestBuildGenesisBlockErrors(t *testing.T) {
	testCases := []struct {
		name   string
		pubKey string
	}{
		{name: "not hex", pubKey: "zz"},
		{name: "empty", pubKey: ""},
		{name: "truncated", pubKey: genesisOutputPubKey[:64]},
		{
			// Same length as a valid key but not on the curve.
			name:   "off curve",
			pubKey: "04" + genesisOutputPubKey[2:128] + "00",
		},
	}

	for _, tc := range testCases {
		g := mainGenesisParams()
		g.OutputPubKey = tc.pubKey
		_, err := BuildGenesisBlock(g)
		if !IsErrorCode(err, ErrInvalidGenesis) {
			t.Fatalf("%s: got error %v, want %v", tc.name, err,
				ErrInvalidGenesis)
		}
	}
}

// TestVerifyGenesisErrors tests every way a genesis block can fail to verify.
func TestVerifyGenesisErrors(t *testing.T) {
	mainHash := newHashFromStr("00000d794731fe98c6d703116f701b7437336832e49bbeb46d983e07e23bbb6e")

	block, err := BuildGenesisBlock(mainGenesisParams())
	require.NoError(t, err)

	g := mainGenesisParams()
	g.Nonce++
	badNonce, err := BuildGenesisBlock(g)
	require.NoError(t, err)

	g = mainGenesisParams()
	g.Timestamp = "another timestamp"
	badCoinbase, err := BuildGenesisBlock(g)
	require.NoError(t, err)

	// A block whose hash is recorded correctly but does not meet the
	// target of its bits.
	hardBits, err := BuildGenesisBlock(mainGenesisParams())
	require.NoError(t, err)
	hardBits.Header.Bits = 0x1d00ffff
	hardHash := GenesisHash(&hardBits.Header)

	testCases := []struct {
		name     string
		block    *wire.MsgBlock
		hash     *chainhash.Hash
		powLimit *big.Int
		want     ErrorCode
	}{
		{
			name:     "wrong nonce",
			block:    badNonce,
			hash:     mainHash,
			powLimit: mainPowLimit,
			want:     ErrGenesisHashMismatch,
		},
		{
			name:     "wrong coinbase",
			block:    badCoinbase,
			hash:     mainHash,
			powLimit: mainPowLimit,
			want:     ErrGenesisMerkleMismatch,
		},
		{
			name:     "hash above target",
			block:    hardBits,
			hash:     &hardHash,
			powLimit: mainPowLimit,
			want:     ErrGenesisPowTarget,
		},
		{
			name:     "target above pow limit",
			block:    block,
			hash:     mainHash,
			powLimit: big.NewInt(1),
			want:     ErrGenesisPowTarget,
		},
	}

	for _, tc := range testCases {
		_, err := verifyGenesis(tc.block, tc.hash, genesisMerkleRoot,
			tc.powLimit)
		if !IsErrorCode(err, tc.want) {
			t.Fatalf("%s: got error %v, want %v", tc.name, err, tc.want)
		}
	}
}
