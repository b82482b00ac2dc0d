// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// fixedRand is a RandSource that always returns the same fraction of n.
type fixedRand struct {
	num, den int64
}

func (r fixedRand) Int63n(n int64) int64 {
	return n * r.num / r.den
}

func testSeeds() []SeedSpec6 {
	v4 := net.ParseIP("192.0.2.7").To16()
	v6 := net.ParseIP("2001:db8::1")

	var a, b SeedSpec6
	copy(a.Addr[:], v4)
	a.Port = 49846
	copy(b.Addr[:], v6)
	b.Port = 17117
	return []SeedSpec6{a, b}
}

func TestConvertSeeds(t *testing.T) {
	now := time.Unix(1700000000, 500)
	seeds := testSeeds()

	addrs := ConvertSeeds(seeds, now, fixedRand{0, 1})
	require.Len(t, addrs, len(seeds))

	for i, addr := range addrs {
		require.Equal(t, net.IP(seeds[i].Addr[:]), addr.IP)
		require.Equal(t, seeds[i].Port, addr.Port)
		require.Equal(t, wire.SFNodeNetwork, addr.Services)
	}
	require.Equal(t, "192.0.2.7", addrs[0].IP.String())
	require.Equal(t, "2001:db8::1", addrs[1].IP.String())

	// Returned addresses do not alias the seed table.
	addrs[0].IP[15] = 99
	require.Equal(t, byte(7), seeds[0].Addr[15])
}

// TestConvertSeedsTimestamps tests every timestamp falls between one and two
// weeks before now and only depends on the random source.
func TestConvertSeedsTimestamps(t *testing.T) {
	now := time.Unix(1700000000, 0)
	seeds := testSeeds()

	testCases := []struct {
		name string
		rnd  fixedRand
		want time.Time
	}{
		{"low", fixedRand{0, 1}, now.Add(-oneWeek)},
		{"middle", fixedRand{1, 2}, now.Add(-oneWeek - oneWeek/2)},
		{"high", fixedRand{604799, 604800}, now.Add(-2*oneWeek + time.Second)},
	}

	for _, tc := range testCases {
		addrs := ConvertSeeds(seeds, now, tc.rnd)
		for _, addr := range addrs {
			require.Equal(t, tc.want.Unix(), addr.Timestamp.Unix(), tc.name)
			require.False(t, addr.Timestamp.After(now.Add(-oneWeek)), tc.name)
			require.True(t, addr.Timestamp.After(now.Add(-2*oneWeek)), tc.name)
		}
	}

	a := ConvertSeeds(seeds, now, fixedRand{0, 1})
	b := ConvertSeeds(seeds, now, fixedRand{1, 2})
	for i := range a {
		require.NotEqual(t, a[i].Timestamp, b[i].Timestamp)
		require.Equal(t, a[i].IP, b[i].IP)
		require.Equal(t, a[i].Port, b[i].Port)
	}
}

func TestConvertSeedsRandomWindow(t *testing.T) {
	now := time.Now()
	rnd := newDefaultRand()
	seeds := make([]SeedSpec6, 200)

	for _, addr := range ConvertSeeds(seeds, now, rnd) {
		age := now.Sub(addr.Timestamp)
		require.GreaterOrEqual(t, age, oneWeek)
		require.LessOrEqual(t, age, 2*oneWeek+time.Second)
	}
}

func TestConvertSeedsEmpty(t *testing.T) {
	addrs := ConvertSeeds(nil, time.Now(), fixedRand{0, 1})
	require.NotNil(t, addrs)
	require.Empty(t, addrs)
}
