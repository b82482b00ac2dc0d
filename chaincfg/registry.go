// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"
)

// registryConfig holds the collaborators a Registry is built with.
type registryConfig struct {
	now  Clock
	rand RandSource
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// WithClock sets the clock used to age fixed seeds.  It defaults to time.Now.
func WithClock(now Clock) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.now = now
	}
}

// WithRand sets the random source used to age fixed seeds.  It defaults to a
// math/rand source seeded with the current time.
func WithRand(rnd RandSource) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.rand = rnd
	}
}

// Registry owns the parameters of every network and the active network
// selection of a process.
//
// Construction and selection are expected to happen once, during startup and
// before the parameters are shared.  After that the registry and the
// parameters it returns are safe for concurrent reads.  The registry does no
// locking of its own.
type Registry struct {
	params map[NetworkID]*Params
	active *Params
}

// NewRegistry builds and verifies the parameters of every network.  An error
// means a genesis block, checkpoint table or prefix table of a network failed
// to verify and the process must not continue.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	cfg := registryConfig{
		now:  time.Now,
		rand: newDefaultRand(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	mainParams, err := mainNetParams()
	if err != nil {
		return nil, fmt.Errorf("%v network: %w", MainNet, err)
	}
	if err := finalize(mainParams, &cfg); err != nil {
		return nil, fmt.Errorf("%v network: %w", MainNet, err)
	}

	r := &Registry{
		params: map[NetworkID]*Params{MainNet: mainParams},
	}
	for _, d := range derivations {
		parent, ok := r.params[d.parent]
		if !ok {
			str := fmt.Sprintf("%v network derives from unbuilt "+
				"network %v", d.id, d.parent)
			return nil, paramsError(ErrUnknownNetwork, str)
		}

		p := parent.clone()
		p.ID = d.id
		if err := d.apply(p); err != nil {
			return nil, fmt.Errorf("%v network: %w", d.id, err)
		}
		if err := finalize(p, &cfg); err != nil {
			return nil, fmt.Errorf("%v network: %w", d.id, err)
		}
		r.params[d.id] = p
	}

	return r, nil
}

// finalize builds and verifies the genesis block of p, expands its fixed
// seeds and checks the remaining invariants of a fully assembled network.
func finalize(p *Params, cfg *registryConfig) error {
	block, err := BuildGenesisBlock(p.Genesis)
	if err != nil {
		return err
	}
	hash, err := verifyGenesis(block, p.GenesisHash, p.GenesisMerkleRoot,
		p.PowLimit)
	if err != nil {
		return err
	}
	p.GenesisBlock = block
	p.GenesisHash = hash

	if !checkBase58Check(p.MasternodePoolDummyAddress) {
		str := fmt.Sprintf("masternode pool dummy address %q is not "+
			"valid base58check", p.MasternodePoolDummyAddress)
		return paramsError(ErrInvalidAddress, str)
	}

	p.FixedSeeds = ConvertSeeds(p.FixedSeedSpecs, cfg.now(), cfg.rand)

	log.Debugf("Assembled %v network parameters with genesis %v", p.Name,
		p.GenesisHash)
	return nil
}

// Networks returns the identifiers of every network in the registry.
func (r *Registry) Networks() []NetworkID {
	return []NetworkID{MainNet, TestNet, RegTest, UnitTest}
}

// Params returns the parameters of the network id.  The same instance is
// returned on every call and shared by every caller, so callers must treat it
// as read only.  Writing to its fields, or to the big.Int, hash and block
// values it points to, changes the network for the whole process.  The unit
// test network is the one exception and is changed through Mutable.
func (r *Registry) Params(id NetworkID) (*Params, error) {
	p, ok := r.params[id]
	if !ok {
		str := fmt.Sprintf("unknown network %v", id)
		return nil, paramsError(ErrUnknownNetwork, str)
	}
	return p, nil
}

// Select makes the network id the active network.  Selecting is meant to
// happen once at startup; selecting again is allowed for tests but logged.
func (r *Registry) Select(id NetworkID) error {
	p, err := r.Params(id)
	if err != nil {
		return err
	}
	if r.active != nil {
		log.Warnf("Reselecting active network from %v to %v",
			r.active.Name, p.Name)
	}
	r.active = p
	log.Infof("Active network is %v", p.Name)
	return nil
}

// Active returns the parameters of the active network.  They are the same
// shared instance Params returns and must not be written to.
func (r *Registry) Active() (*Params, error) {
	if r.active == nil {
		return nil, paramsError(ErrNoActiveNetwork, "no network selected")
	}
	return r.active, nil
}

// Mutable returns the mutation capability of the unit test network.  It fails
// unless the unit test network is active.
func (r *Registry) Mutable() (*UnitTestParams, error) {
	p, err := r.Active()
	if err != nil {
		return nil, err
	}
	if p.ID != UnitTest {
		str := fmt.Sprintf("parameters of the %v network are "+
			"immutable", p.Name)
		return nil, paramsError(ErrNotUnitTest, str)
	}
	return &UnitTestParams{params: p}, nil
}
