// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have.
	// It is the value 2^255 - 1 and is shared by every network.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// NetworkID identifies one of the defined networks.
type NetworkID int

// These constants define the known networks.
const (
	// MainNet is the main network.
	MainNet NetworkID = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is the in-process unit test network.  It is the only
	// network whose parameters may be changed after construction.
	UnitTest

	// UnknownNet is returned by network resolvers for input that does not
	// name a network.  It is never a valid network.
	UnknownNet
)

var networkIDStrings = map[NetworkID]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// String returns the name of the network.
func (id NetworkID) String() string {
	if s, ok := networkIDStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", int(id))
}

// IsValid returns whether id names one of the defined networks.
func (id NetworkID) IsValid() bool {
	_, ok := networkIDStrings[id]
	return ok
}

// Params defines a network by its parameters.  These parameters may be used by
// applications to differentiate networks as well as addresses and keys for one
// network from those intended for use on another network.
//
// Params returned by a Registry must be treated as read-only.  The unit test
// network parameters may only be changed through UnitTestParams.
type Params struct {
	// ID identifies the network.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// AlertPubKey is the public key alerts must be signed with.
	AlertPubKey []byte

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is halved.
	SubsidyHalvingInterval int32

	// MaxReorganizationDepth is the deepest reorganization a node accepts.
	MaxReorganizationDepth int32

	// The block version majority thresholds.  Out of the last
	// ToCheckBlockUpgradeMajority blocks, EnforceBlockUpgradeMajority
	// upgraded blocks enforce the new rules on upgraded blocks and
	// RejectBlockOutdatedMajority upgraded blocks reject outdated ones.
	EnforceBlockUpgradeMajority int32
	RejectBlockOutdatedMajority int32
	ToCheckBlockUpgradeMajority int32

	// MinerThreads is the default number of internal miner threads.  Zero
	// means one per core.
	MinerThreads int

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// MasternodeCountDrift is the tolerated difference between the
	// masternode count seen locally and the network count.
	MasternodeCountDrift int32

	// MaxMoneyOut is the maximum total supply.
	MaxMoneyOut btcutil.Amount

	// These fields define the heights at which the chain switches from
	// proof of work to proof of stake and at which the stake modifier
	// switches to version 2.
	LastPoWBlock        int32
	ModifierUpdateBlock int32

	// Genesis holds the inputs the genesis block is built from.
	Genesis GenesisParams

	// GenesisBlock defines the first block of the chain.  It is built from
	// Genesis when the parameters are assembled.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeedSpecs is the compact list of hard-coded seed peers and
	// FixedSeeds the same peers expanded into addresses.
	FixedSeedSpecs []SeedSpec6
	FixedSeeds     []*wire.NetAddress

	// Prefixes holds the base58 version prefixes of the network.
	Prefixes AddressPrefixTable

	// Checkpoints ordered from oldest to newest.
	Checkpoints *CheckpointTable

	// Masternode and spork parameters.
	SporkKey                   string
	MasternodePoolDummyAddress string
	PoolMaxTransactions        int
	StartMasternodePayments    time.Time
	BudgetFeeConfirmations     int

	// Behavioral flags.
	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool
}

// MessageStart returns the magic bytes that start every wire message on the
// network.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// RetargetInterval returns the number of blocks between difficulty retargets.
func (p *Params) RetargetInterval() int64 {
	if p.TargetTimePerBlock <= 0 {
		return 0
	}
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// EstimateRemainingBlocks estimates how many blocks a node at height still has
// to download using the checkpoints and the block spacing of the network.
func (p *Params) EstimateRemainingBlocks(height int32, now time.Time) int64 {
	return p.Checkpoints.EstimateRemainingBlocks(height, now,
		p.TargetTimePerBlock)
}

// GuessVerificationProgress estimates the fraction of verification work done
// for a chain of chainTxs transactions whose tip was mined at blockTime.
func (p *Params) GuessVerificationProgress(chainTxs int64, blockTime,
	now time.Time, sigchecks bool) float64 {

	return p.Checkpoints.GuessVerificationProgress(chainTxs, blockTime, now,
		sigchecks)
}

// clone returns a deep copy of p.  The genesis block and expanded fixed seeds
// are not copied since they are rebuilt on assembly.  The checkpoint and
// prefix tables are immutable and shared.
func (p *Params) clone() *Params {
	c := *p
	c.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	c.PowLimit = new(big.Int).Set(p.PowLimit)
	c.GenesisBlock = nil
	c.GenesisHash = copyHash(p.GenesisHash)
	c.GenesisMerkleRoot = copyHash(p.GenesisMerkleRoot)
	c.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	c.FixedSeedSpecs = append([]SeedSpec6(nil), p.FixedSeedSpecs...)
	c.FixedSeeds = nil
	return &c
}

func copyHash(h *chainhash.Hash) *chainhash.Hash {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
