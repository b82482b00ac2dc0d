// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// UnitTestParams is the capability to change the few unit test network
// parameters that tests need to vary.  It is only handed out by
// Registry.Mutable while the unit test network is active.
//
// Changes are made in place on the shared parameters without locking, so
// callers must not run tests that mutate parameters concurrently.
type UnitTestParams struct {
	params *Params
}

// Params returns the parameters being changed.
func (u *UnitTestParams) Params() *Params {
	return u.params
}

// SetSubsidyHalvingInterval sets the subsidy halving interval.
func (u *UnitTestParams) SetSubsidyHalvingInterval(interval int32) {
	u.params.SubsidyHalvingInterval = interval
}

// SetEnforceBlockUpgradeMajority sets the enforce block upgrade majority.
func (u *UnitTestParams) SetEnforceBlockUpgradeMajority(majority int32) {
	u.params.EnforceBlockUpgradeMajority = majority
}

// SetRejectBlockOutdatedMajority sets the reject block outdated majority.
func (u *UnitTestParams) SetRejectBlockOutdatedMajority(majority int32) {
	u.params.RejectBlockOutdatedMajority = majority
}

// SetToCheckBlockUpgradeMajority sets the block upgrade majority window.
func (u *UnitTestParams) SetToCheckBlockUpgradeMajority(window int32) {
	u.params.ToCheckBlockUpgradeMajority = window
}

// SetDefaultConsistencyChecks sets whether consistency checks run by default.
func (u *UnitTestParams) SetDefaultConsistencyChecks(enabled bool) {
	u.params.DefaultConsistencyChecks = enabled
}

// SetAllowMinDifficultyBlocks sets whether minimum difficulty blocks are
// allowed.
func (u *UnitTestParams) SetAllowMinDifficultyBlocks(allow bool) {
	u.params.AllowMinDifficultyBlocks = allow
}

// SetSkipProofOfWorkCheck sets whether proof of work checks are skipped.
func (u *UnitTestParams) SetSkipProofOfWorkCheck(skip bool) {
	u.params.SkipProofOfWorkCheck = skip
}
