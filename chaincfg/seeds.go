// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// oneWeek is the width of the window fixed seed timestamps are drawn from.
const oneWeek = 7 * 24 * time.Hour

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// SeedSpec6 is a compact fixed seed entry: a 16 byte IPv6 address, which may
// be an IPv4-mapped address, and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// RandSource is the source of randomness used to age fixed seeds.  It is
// satisfied by *rand.Rand.
type RandSource interface {
	// Int63n returns a non-negative pseudo-random number in [0,n).
	Int63n(n int64) int64
}

// Clock returns the current time.
type Clock func() time.Time

// newDefaultRand returns the RandSource used when none is supplied.
func newDefaultRand() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// ConvertSeeds expands seeds into peer addresses advertising full node
// service.  Each address is given a last seen time between one and two weeks
// before now, so that fresher addresses learned from peers are preferred over
// the fixed seeds.  One address is returned per seed, in order.
func ConvertSeeds(seeds []SeedSpec6, now time.Time, rnd RandSource) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(seeds))
	week := int64(oneWeek / time.Second)
	for _, seed := range seeds {
		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.Addr[:])

		age := time.Duration(rnd.Int63n(week)+week) * time.Second
		addrs = append(addrs, &wire.NetAddress{
			Timestamp: time.Unix(now.Add(-age).Unix(), 0),
			Services:  wire.SFNodeNetwork,
			IP:        ip,
			Port:      seed.Port,
		})
	}
	return addrs
}
