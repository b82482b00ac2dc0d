// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rdctoken/rdctd/chaincfg"
)

func TestConfigNetwork(t *testing.T) {
	testCases := []struct {
		args []string
		want chaincfg.NetworkID
	}{
		{nil, chaincfg.MainNet},
		{[]string{"--testnet"}, chaincfg.TestNet},
		{[]string{"--regtest"}, chaincfg.RegTest},
		{[]string{"--unittest"}, chaincfg.UnitTest},
		{[]string{"--testnet", "--regtest"}, chaincfg.UnknownNet},
		{[]string{"--regtest", "--unittest"}, chaincfg.UnknownNet},
		{[]string{"--testnet", "--regtest", "--unittest"}, chaincfg.UnknownNet},
	}

	for _, tc := range testCases {
		args := append([]string{"--nologfile"}, tc.args...)
		cfg, err := loadConfig(args)
		if tc.want == chaincfg.UnknownNet {
			require.Error(t, err, "%v", tc.args)
			continue
		}
		require.NoError(t, err, "%v", tc.args)
		require.Equal(t, tc.want, cfg.network(), "%v", tc.args)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := [][]string{
		{"--nologfile", "--height=-1"},
		{"--nologfile", "--blocktime=-1"},
		{"--nologfile", "--debuglevel=loud"},
		{"--nologfile", "--debuglevel=NOPE=debug"},
		{"--nologfile", "--debuglevel=CCFG=debug=x"},
		{"--nologfile", "--nosuchflag"},
	}

	for _, args := range testCases {
		_, err := loadConfig(args)
		require.Error(t, err, "%v", args)
	}
}

func TestParseAndSetDebugLevels(t *testing.T) {
	require.NoError(t, parseAndSetDebugLevels("debug"))
	require.NoError(t, parseAndSetDebugLevels("CCFG=trace,RDCT=warn"))
	require.Error(t, parseAndSetDebugLevels("CCFG=trace,"))
	require.NoError(t, parseAndSetDebugLevels(defaultLogLevel))
}

func TestPrintParams(t *testing.T) {
	registry, err := chaincfg.NewRegistry()
	require.NoError(t, err)
	params, err := registry.Params(chaincfg.MainNet)
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg := &config{ShowCheckpoints: true, ShowSeeds: true, Height: 1000}
	require.NoError(t, printParams(&buf, params, cfg, time.Now()))

	out := buf.String()
	require.Contains(t, out, "network:          main\n")
	require.Contains(t, out, "message start:    f023cce6\n")
	require.Contains(t, out,
		"00000d794731fe98c6d703116f701b7437336832e49bbeb46d983e07e23bbb6e")
	require.Contains(t, out, "dns   seed1.rdctoken.io")
	require.Contains(t, out, "    779000 4bc2c516")
	require.Contains(t, out, "blocks remaining: ")

	buf.Reset()
	require.NoError(t, printParams(&buf, params, &config{Dump: true},
		time.Now()))
	require.True(t, strings.Contains(buf.String(), "SporkKey"))
}

// TestPrintParamsProgress tests verification progress is measured from the
// time of the block at the given height rather than the current time.
func TestPrintParamsProgress(t *testing.T) {
	registry, err := chaincfg.NewRegistry()
	require.NoError(t, err)
	params, err := registry.Params(chaincfg.MainNet)
	require.NoError(t, err)

	data := params.Checkpoints.Data()
	lastHeight := params.Checkpoints.LastCheckpointHeight()
	now := data.LastCheckpointTime.Add(30 * 24 * time.Hour)
	day := int64(24 * 60 * 60)

	testCases := []struct {
		name string
		cfg  config
		want string
	}{
		{
			// Ten days of blocks past the checkpoint leave twenty days
			// of transactions to verify.
			name: "explicit block time",
			cfg: config{
				Height:    lastHeight + 1000,
				ChainTxs:  data.TotalTxs + 30000,
				BlockTime: data.LastCheckpointTime.Unix() + 10*day,
			},
			want: "progress:         0.9647\n",
		},
		{
			// 7200 blocks at two minutes each are ten days past the
			// checkpoint.
			name: "derived block time",
			cfg: config{
				Height:   lastHeight + 7200,
				ChainTxs: data.TotalTxs + 15000,
			},
			want: "progress:         0.9644\n",
		},
		{
			name: "derived block time after now",
			cfg: config{
				Height:   lastHeight + 1000000,
				ChainTxs: data.TotalTxs + 15000,
			},
			want: "progress:         1.0000\n",
		},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		require.NoError(t, printParams(&buf, params, &tc.cfg, now), tc.name)
		require.Contains(t, buf.String(), tc.want, tc.name)
	}
}

func TestTipTime(t *testing.T) {
	registry, err := chaincfg.NewRegistry()
	require.NoError(t, err)
	params, err := registry.Params(chaincfg.MainNet)
	require.NoError(t, err)

	lastTime := params.Checkpoints.Data().LastCheckpointTime
	lastHeight := params.Checkpoints.LastCheckpointHeight()
	now := lastTime.Add(48 * time.Hour)

	cfg := &config{Height: lastHeight + 60, BlockTime: 1600000000}
	require.Equal(t, time.Unix(1600000000, 0), tipTime(params, cfg, now))

	cfg = &config{Height: lastHeight + 60}
	require.Equal(t, lastTime.Add(60*params.TargetTimePerBlock),
		tipTime(params, cfg, now))

	cfg = &config{Height: lastHeight - 60}
	require.Equal(t, lastTime.Add(-60*params.TargetTimePerBlock),
		tipTime(params, cfg, now))

	cfg = &config{Height: lastHeight + 1000000}
	require.Equal(t, now, tipTime(params, cfg, now))
}
