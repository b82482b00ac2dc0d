// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// genesisTimestamp is the text embedded in the coinbase of every genesis block.
const genesisTimestamp = "Lendário Fundo Verde, de Stuhlberger, reabre após " +
	"10 anos para clientes da XP e Rico - InfoMoney"

// genesisOutputPubKey is the key the genesis coinbase pays to.
const genesisOutputPubKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e0" +
	"3909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d" +
	"578a4c702b6bf11d5f"

// genesisMerkleRoot is the merkle root shared by the genesis blocks of every
// network since they all carry the same coinbase.
var genesisMerkleRoot = newHashFromStr("edb2d2a03f5676ffdb180390996514caca485fed3890e27afb06f4feb8a6efcf")

// Fixed seed tables.
//
// TODO(rdctd): generate these from a seeder crawl of the main and test
// networks.
var (
	mainFixedSeeds []SeedSpec6
	testFixedSeeds []SeedSpec6
)

// mainCheckpoints are the main network checkpoints.
//
// What makes a good checkpoint block?
//   - Is surrounded by blocks with reasonable timestamps (no blocks before
//     with a timestamp after, none after with timestamp before)
//   - Contains no strange transactions
var mainCheckpoints = []Checkpoint{
	{1, newHashFromStr("73c3ae7b97789ab6634b8204e2f7d5be4f0d8765443f8fad04042dd5908411fe")},
	{200, newHashFromStr("000000f44e9983594124f73594056af2ca0e79140a95f6973a69896905d052fb")},
	{500, newHashFromStr("0dae3b5e357a09d5efe73dd2f444f07fce9f703edb46385ebdb635f12cc18dfd")},
	{1000, newHashFromStr("f793a67f23bc96c174f4cf183b0d61cf51265e94a585fe06c8c9f0a5d938061f")},
	{5000, newHashFromStr("ceaaf70ca45342d3651bc9e7b5129b3a735f74dce57608f0c85ba46d1167af2f")},
	{10000, newHashFromStr("a9313a5d3f0bf2c7e61f6555420abe107e5737c569b06c8689e87b80c3ecc14c")},
	{15000, newHashFromStr("dd567dcde2a313f2fa9dc5b4d94b50ed6132bec4f352122e66c18e0f6803cee8")},
	{20000, newHashFromStr("71e5dbbf9d196f11e5ea638e8aae70aaf602dc28614d8d0bb63e0fdc448f8b22")},
	{25000, newHashFromStr("23f4aca724243927f7006308bb934b5554a6614ac79b732cfa4a01ed4721e7fb")},
	{30000, newHashFromStr("bda2792598a7c601576bc32c3384b44751b68589402811dacf56389c099c6429")},
	{35000, newHashFromStr("a7829e9edf895a3ee572e801d8f0c30f6ab613fa00f18cc699d152a32309d61c")},
	{40000, newHashFromStr("2f3a0a5bd178b3f06d63b0e34eaf2140ab9ffb7f4ca721fa98a81fabd6d1e2c1")},
	{45000, newHashFromStr("f172337991fe3c23cbc8934c1ee93a118d1f5600b41e22094a7c4157f21f8d0b")},
	{50000, newHashFromStr("ddb02f25072c531bc20280bfe4e788776c41336e81c1d627433182197603d661")},
	{100000, newHashFromStr("db9755cde5bead196cf55cbfa02dae7c9ac2480a10640f2e79ac8d61e0cbc35b")},
	{150000, newHashFromStr("250ad64a7751ae939d6eafda3e39ea81f72bdfcbff17fc02b40f17cf60889408")},
	{200000, newHashFromStr("4cfdbad17342d7525ac1efceb33c9b4533ec867506a9acd36a2736f2a405fbdc")},
	{250000, newHashFromStr("611982ef6c6507d95030efbacb8f9b03b51b50b69581ceccd62a1f338954819e")},
	{300000, newHashFromStr("7a36f018bbcc8163700dd7e267a7c0b3ba3d61e68b1889420346b846157858ff")},
	{350000, newHashFromStr("233147d79169ccfccdd54c676f9e26554055c37fd49b6fc84e2ad3d7facdf626")},
	{400000, newHashFromStr("556cf2d42b095fdaf54063e27fc09cca7349e04170e948813be6306e9667dc5c")},
	{450000, newHashFromStr("8bbf04fb7f2a45e1953d1b4559f14705f8deb891079a0a94e66371c2d2e8a519")},
	{500000, newHashFromStr("ac2ca5b5f5279055618ab6008be901375fc342cf253f765bcdac47ea805a581e")},
	{505775, newHashFromStr("b80b66d6199e74438221c99f5b55a461371b0abfd58a6e1dcdd55fd478c86e71")},
	{520000, newHashFromStr("d63d436570a07cc6ea256c2a2c5f05ad6bdaa5e2f2de3934bb2dc2771396c8f1")},
	{530000, newHashFromStr("6a050c2521bddfb83f78b097ed4c753c0cdaffb002e834d71d28ed6a3f2e0e7a")},
	{540000, newHashFromStr("4d9d59ceed1d3b129c90bdfc8fd3ff04d472a69a82d57494363bde62237d0645")},
	{550000, newHashFromStr("78918231eb989fd472b05e513fa6f27f2db476aecd653fd7f3db4dea18f73cba")},
	{560000, newHashFromStr("b29c9c1bd811e3744f9b10fb2cb58526aa731cacff5d5add435375c2778cba4f")},
	{570000, newHashFromStr("75268af020219932e9c9a85aac4cbca1709fd12798fb948782f91a6291be18a1")},
	{580000, newHashFromStr("a71450d60e5fe2bda15272e299b8d5d39361be82f90565ac1f11ae1ab2808ca3")},
	{590000, newHashFromStr("c69cdb4952e3ca910c13fca90ca0a16ab4819b19ada560b3dc8124d9e5ddbef0")},
	{590188, newHashFromStr("f3f6592144e3354b3d9cd870c57f7492117cf7b8fd49ed1550436308963360df")},
	{630000, newHashFromStr("c373cfa29da689252869ee61f1bd415d6fbf89fd132a7f6b5d9632d9229b7828")},
	{680000, newHashFromStr("f38b1256b4b418eb2ba1886138e0777921679e5c38f444e373d5624b095a0a2f")},
	{719775, newHashFromStr("10274773cc0a67ffad97656ea3709f72ef5e02debae7e718b88fdb98bd4a6181")},
	{750000, newHashFromStr("510ace7f19a9ce8e0b371fb249b2bcf2ca2dcd7d166688721c1bda422656c63c")},
	{779000, newHashFromStr("4bc2c516ebfed2d7178be5f1ca0fddf054eeb0dbc3910e7f47b1673bcb1a6d21")},
}

var mainCheckpointData = CheckpointData{
	LastCheckpointTime: time.Unix(1584399185, 0),
	TotalTxs:           1610582,
	TxsPerDay:          3000,
}

// genesisAnchor is the placeholder checkpoint at height 0 used by the test
// networks.  Its hash is the integer 1.
var genesisAnchor = []Checkpoint{
	{0, newHashFromStr("01")},
}

var (
	testCheckpointData = CheckpointData{
		LastCheckpointTime: time.Unix(1740710, 0),
		TxsPerDay:          250,
	}
	regTestCheckpointData = CheckpointData{
		LastCheckpointTime: time.Unix(1454124731, 0),
		TxsPerDay:          100,
	}
)

// mainNetParams returns the fully specified main network parameters every
// other network is derived from.
func mainNetParams() (*Params, error) {
	prefixes, err := NewAddressPrefixTable(map[AddressKind][]byte{
		PubKeyAddress: {60},                     // starts with R
		ScriptAddress: {6},                      // starts with 3
		SecretKey:     {46},
		ExtPublicKey:  {0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
		ExtSecretKey:  {0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		ExtCoinType:   {0x80, 0x00, 0x00, 0xde}, // 222
	})
	if err != nil {
		return nil, err
	}
	checkpoints, err := NewCheckpointTable(mainCheckpoints,
		mainCheckpointData)
	if err != nil {
		return nil, err
	}

	return &Params{
		ID:          MainNet,
		Name:        MainNet.String(),
		Net:         wire.BitcoinNet(0xe6cc23f0),
		DefaultPort: "49846",
		AlertPubKey: mustDecodeHex("04a94fa4b884aa5435fa8e44e002380b931372de" +
			"c4ca071a5d167c6129ce6a170991d9071c020ba4906c98a3c350a622b7" +
			"d830fa94b0a57021596d106194d99dc4"),

		// Chain parameters
		PowLimit:                    new(big.Int).Set(mainPowLimit),
		PowLimitBits:                0x207fffff,
		SubsidyHalvingInterval:      1050000,
		MaxReorganizationDepth:      100,
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		MinerThreads:                0,
		TargetTimespan:              2 * time.Minute,
		TargetTimePerBlock:          2 * time.Minute,
		CoinbaseMaturity:            15,
		MasternodeCountDrift:        20,
		MaxMoneyOut:                 25500000 * btcutil.SatoshiPerBitcoin,
		LastPoWBlock:                200,
		ModifierUpdateBlock:         1,

		Genesis: GenesisParams{
			Timestamp:    genesisTimestamp,
			OutputPubKey: genesisOutputPubKey,
			Reward:       0,
			Version:      1,
			Time:         time.Unix(1537045200, 0),
			Bits:         0x1e0ffff0,
			Nonce:        1529064,
		},
		GenesisHash:       newHashFromStr("00000d794731fe98c6d703116f701b7437336832e49bbeb46d983e07e23bbb6e"),
		GenesisMerkleRoot: copyHash(genesisMerkleRoot),

		DNSSeeds: []DNSSeed{
			{"seed1.rdctoken.io", false},
		},
		FixedSeedSpecs: mainFixedSeeds,

		Prefixes:    prefixes,
		Checkpoints: checkpoints,

		SporkKey: "043cadcd65fbac1c66f2067ce513f1ea0be0acb36af2c53518dcdb534bf5c1f8a0c14c28a" +
			"47aaf4f26048121e32a35e39c4444a0dfd87292b403d689f51b2aa236",
		MasternodePoolDummyAddress: "GSJVWUkt6HtSCY2SaJ2akeyJUg8bg1hW3S",
		PoolMaxTransactions:        3,
		StartMasternodePayments:    time.Unix(1537466400, 0),
		BudgetFeeConfirmations:     6,

		MiningRequiresPeers:           false,
		AllowMinDifficultyBlocks:      false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,
	}, nil
}

// derivation describes a network built from the fully assembled parameters
// of its parent by applying overrides.  Fields the overrides do not touch keep
// the parent's value, so a chain of derivations inherits transitively.
type derivation struct {
	id     NetworkID
	parent NetworkID
	apply  func(p *Params) error
}

// derivations lists the derived networks.  A parent must appear before its
// children.
var derivations = []derivation{
	{id: TestNet, parent: MainNet, apply: applyTestNet},
	{id: RegTest, parent: TestNet, apply: applyRegTest},
	{id: UnitTest, parent: MainNet, apply: applyUnitTest},
}

// applyTestNet overrides the main network parameters for the public test
// network.
func applyTestNet(p *Params) error {
	prefixes, err := NewAddressPrefixTable(map[AddressKind][]byte{
		PubKeyAddress: {35},                     // starts with F
		ScriptAddress: {10},                     // starts with 5
		SecretKey:     {108},
		ExtPublicKey:  {0x04, 0x35, 0x87, 0xcf}, // starts with tpub
		ExtSecretKey:  {0x04, 0x35, 0x83, 0x94}, // starts with tprv
		ExtCoinType:   {0x80, 0x00, 0x00, 0x01}, // testnet default
	})
	if err != nil {
		return err
	}
	checkpoints, err := NewCheckpointTable(genesisAnchor, testCheckpointData)
	if err != nil {
		return err
	}

	p.Name = TestNet.String()
	p.Net = wire.BitcoinNet(0x2cd2209a)
	p.AlertPubKey = mustDecodeHex("04be5ed545841909acdd0b620cfd5806a0f142c0" +
		"2d0ec01f0cb3c5674551cc474b00895e1974fbd09de17b137850092b967850" +
		"afb0a6facbfbcc2528b582e41fb7")
	p.DefaultPort = "17117"
	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.TargetTimespan = time.Minute
	p.TargetTimePerBlock = 2 * time.Minute
	p.LastPoWBlock = 200
	p.CoinbaseMaturity = 15
	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = 1
	p.MaxMoneyOut = 25000000 * btcutil.SatoshiPerBitcoin

	p.Genesis.Time = time.Unix(1535835600, 0)
	p.Genesis.Nonce = 1853156
	p.GenesisHash = newHashFromStr("000006fcf37ffdec40c897eb9b1813914da37cc4612738b737658c59c14395f9")

	p.DNSSeeds = nil
	p.FixedSeedSpecs = append([]SeedSpec6(nil), testFixedSeeds...)
	p.Prefixes = prefixes
	p.Checkpoints = checkpoints

	p.MiningRequiresPeers = true
	p.AllowMinDifficultyBlocks = false
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	p.PoolMaxTransactions = 2
	p.SporkKey = "04ff1765b5c2f5409e540e998133fbced768d3f5fee7da22ea906db467cb9f5d3f16ba5b11" +
		"adb0eab7ce3ea032995636cdb6a4e6e40d5e418445f28b014cead9dc"
	p.MasternodePoolDummyAddress = "gbJ4Qad4xc77PpLzMx6rUegAs6aUPWkcUq"
	p.StartMasternodePayments = p.Genesis.Time.Add(24 * time.Hour)

	// The finalization window on the test network is only 8 blocks.
	p.BudgetFeeConfirmations = 3
	return nil
}

// applyRegTest overrides the test network parameters for the regression test
// network.  Everything not set here, such as the supply cap, prefixes and
// keys, is inherited from the test network.
func applyRegTest(p *Params) error {
	checkpoints, err := NewCheckpointTable(genesisAnchor,
		regTestCheckpointData)
	if err != nil {
		return err
	}

	p.Name = RegTest.String()
	p.Net = wire.BitcoinNet(0xbb1155aa)
	p.SubsidyHalvingInterval = 150
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetTimespan = 24 * time.Hour
	p.TargetTimePerBlock = 2 * time.Minute
	p.PowLimit = new(big.Int).Set(mainPowLimit)

	p.Genesis.Time = time.Unix(1516926684, 0)
	p.Genesis.Bits = 0x1e0ffff0
	p.Genesis.Nonce = 769149
	p.GenesisHash = newHashFromStr("0000001d71e19966939633980998c6741c1d9c33b101f9811bd3a0245d5be280")

	p.DefaultPort = "23133"
	p.DNSSeeds = nil
	p.FixedSeedSpecs = nil
	p.Checkpoints = checkpoints

	p.MiningRequiresPeers = false
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false
	return nil
}

// applyUnitTest overrides the main network parameters for the unit test
// network.  It shares the main network checkpoints.
func applyUnitTest(p *Params) error {
	p.Name = UnitTest.String()
	p.DefaultPort = "51478"
	p.DNSSeeds = nil
	p.FixedSeedSpecs = nil

	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.AllowMinDifficultyBlocks = false
	p.MineBlocksOnDemand = true
	return nil
}

// mustDecodeHex decodes a hard-coded hex string and panics on an error.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
