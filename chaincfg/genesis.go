// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/rdctoken/rdctd/quark"
)

// genesisCoinbaseBits is the difficulty bits value pushed at the start of every
// genesis coinbase signature script.  It is the bitcoin 0x1d00ffff target and
// is unrelated to the bits of the genesis header itself.
const genesisCoinbaseBits = 486604799

// GenesisParams holds the inputs a genesis block is built from.
type GenesisParams struct {
	// Timestamp is the human readable text embedded in the coinbase
	// signature script.
	Timestamp string

	// OutputPubKey is the hex encoded uncompressed public key paid by the
	// coinbase output.
	OutputPubKey string

	// Reward is the value of the coinbase output.
	Reward btcutil.Amount

	// Header fields.
	Version int32
	Time    time.Time
	Bits    uint32
	Nonce   uint32
}

// genesisCoinbaseScript returns the signature script of the genesis coinbase:
// a push of the coinbase bits, a one byte push of the value 4 and a push of
// the timestamp text.
func genesisCoinbaseScript(timestamp string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		// Explicit one byte push rather than the OP_4 small integer
		// opcode AddData would pick.
		AddOps([]byte{txscript.OP_DATA_1, 0x04}).
		AddData([]byte(timestamp)).
		Script()
}

// genesisOutputScript returns the pay-to-pubkey script of the genesis
// coinbase output after checking pubKeyHex is a point on the curve.
func genesisOutputScript(pubKeyHex string) ([]byte, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, err
	}
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return nil, err
	}
	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// BuildGenesisBlock deterministically builds a genesis block holding a single
// coinbase transaction from the passed inputs.  The merkle root is computed
// from that transaction.  The nonce is taken as given; no proof of work search
// is done.
func BuildGenesisBlock(g GenesisParams) (*wire.MsgBlock, error) {
	sigScript, err := genesisCoinbaseScript(g.Timestamp)
	if err != nil {
		str := fmt.Sprintf("genesis coinbase script: %v", err)
		return nil, paramsError(ErrInvalidGenesis, str)
	}
	pkScript, err := genesisOutputScript(g.OutputPubKey)
	if err != nil {
		str := fmt.Sprintf("genesis output public key %q: %v",
			g.OutputPubKey, err)
		return nil, paramsError(ErrInvalidGenesis, str)
	}

	coinbase := wire.NewMsgTx(1)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	coinbase.AddTxOut(wire.NewTxOut(int64(g.Reward), pkScript))

	merkles := blockchain.BuildMerkleTreeStore(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false)
	merkleRoot := merkles[len(merkles)-1]

	block := wire.NewMsgBlock(&wire.BlockHeader{
		Version:    g.Version,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: *merkleRoot,
		Timestamp:  g.Time,
		Bits:       g.Bits,
		Nonce:      g.Nonce,
	})
	if err := block.AddTransaction(coinbase); err != nil {
		return nil, paramsError(ErrInvalidGenesis, err.Error())
	}
	return block, nil
}

// GenesisHash returns the quark hash of the block header.  Quark is the header
// hash of every version 1 block on these networks, so this is also the block
// hash.
func GenesisHash(header *wire.BlockHeader) chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)

	// Writing to a bytes.Buffer cannot fail.
	_ = header.Serialize(&buf)
	return chainhash.Hash(quark.Sum256(buf.Bytes()))
}

// verifyGenesis checks block against the recorded hash and merkle root and
// checks its hash satisfies the header's own target, which in turn may not
// exceed powLimit.  It returns the computed hash.
func verifyGenesis(block *wire.MsgBlock, wantHash, wantMerkle *chainhash.Hash,
	powLimit *big.Int) (*chainhash.Hash, error) {

	header := &block.Header
	if !header.MerkleRoot.IsEqual(wantMerkle) {
		str := fmt.Sprintf("genesis merkle root %v does not match "+
			"expected %v", header.MerkleRoot, wantMerkle)
		return nil, paramsError(ErrGenesisMerkleMismatch, str)
	}

	hash := GenesisHash(header)
	if !hash.IsEqual(wantHash) {
		str := fmt.Sprintf("genesis hash %v does not match expected %v",
			hash, wantHash)
		return nil, paramsError(ErrGenesisHashMismatch, str)
	}

	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 || target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("genesis target %064x from bits %08x is "+
			"outside of the range [1, %064x]", target, header.Bits,
			powLimit)
		return nil, paramsError(ErrGenesisPowTarget, str)
	}
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		str := fmt.Sprintf("genesis hash %v is higher than the target "+
			"%064x", hash, target)
		return nil, paramsError(ErrGenesisPowTarget, str)
	}

	return &hash, nil
}
