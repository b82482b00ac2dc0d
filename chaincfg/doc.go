// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the chain configuration parameters of the four
// rdct networks.
//
// In addition to the main network, which is intended for the transfer of
// monetary value, there exists a public test network, a regression test
// network and an in-process unit test network.  These networks are
// incompatible with each other (each sharing a different genesis block) and
// software should handle errors where input intended for one network is used
// on an application instance running on a different network.
//
// Every network is described by a Params value.  The main network parameters
// are fully specified; the other networks are derived from a parent network by
// overriding only the fields that differ:
//
//	main -> test -> regtest
//	main -> unittest
//
// Each network rebuilds its genesis block from its recorded inputs and refuses
// to construct unless the quark hash and merkle root of that block match the
// recorded values.
//
// The parameters are owned by a Registry which the host constructs once at
// startup, selects the active network on and then hands to every consumer:
//
//	registry, err := chaincfg.NewRegistry()
//	if err != nil {
//		// A genesis block or checkpoint table failed to verify.
//		return err
//	}
//	if err := registry.Select(chaincfg.TestNet); err != nil {
//		return err
//	}
//	params, _ := registry.Active()
//	fmt.Println(params.Name, params.DefaultPort)
//
// The unit test network is the only one whose parameters may change after
// construction, and only through the UnitTestParams capability returned by
// Registry.Mutable while it is the active network.
package chaincfg
