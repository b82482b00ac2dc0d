// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// rdctparams builds and verifies the parameters of every rdct network and
// prints those of the selected one.
package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/rdctoken/rdctd/chaincfg"
)

// dumpConfig is the spew configuration used by --dump.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// rdctparamsMain is the real main function for rdctparams.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit()
// is called.
func rdctparamsMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	registry, err := chaincfg.NewRegistry()
	if err != nil {
		rdctLog.Criticalf("Unable to build network parameters: %v", err)
		return err
	}
	if err := registry.Select(cfg.network()); err != nil {
		rdctLog.Criticalf("Unable to select network: %v", err)
		return err
	}
	params, err := registry.Active()
	if err != nil {
		return err
	}

	return printParams(os.Stdout, params, cfg, time.Now())
}

// printParams writes the summary of params, and whatever else cfg asks for,
// to w.
func printParams(w io.Writer, params *chaincfg.Params, cfg *config,
	now time.Time) error {

	if cfg.Dump {
		dumpConfig.Fdump(w, params)
		return nil
	}

	start := params.MessageStart()
	fmt.Fprintf(w, "network:          %s\n", params.Name)
	fmt.Fprintf(w, "message start:    %x\n", start[:])
	fmt.Fprintf(w, "default port:     %s\n", params.DefaultPort)
	fmt.Fprintf(w, "genesis hash:     %v\n", params.GenesisHash)
	fmt.Fprintf(w, "genesis merkle:   %v\n", params.GenesisMerkleRoot)
	fmt.Fprintf(w, "genesis time:     %v\n", params.Genesis.Time.UTC())
	fmt.Fprintf(w, "pow limit bits:   %08x\n", params.PowLimitBits)
	fmt.Fprintf(w, "block spacing:    %v\n", params.TargetTimePerBlock)
	fmt.Fprintf(w, "retarget blocks:  %d\n", params.RetargetInterval())
	fmt.Fprintf(w, "max money:        %v\n", params.MaxMoneyOut)
	fmt.Fprintf(w, "last pow block:   %d\n", params.LastPoWBlock)
	fmt.Fprintf(w, "hd coin type:     %d\n", params.Prefixes.HDCoinType())
	for _, kind := range chaincfg.AddressKinds() {
		fmt.Fprintf(w, "%-17s %x\n", kind.String()+":",
			params.Prefixes.Prefix(kind))
	}
	fmt.Fprintf(w, "checkpoints:      %d (last at %d)\n",
		params.Checkpoints.Len(), params.Checkpoints.LastCheckpointHeight())

	if cfg.ShowCheckpoints {
		for _, cp := range params.Checkpoints.Checkpoints() {
			fmt.Fprintf(w, "  %8d %v\n", cp.Height, cp.Hash)
		}
	}

	if cfg.ShowSeeds {
		for _, seed := range params.DNSSeeds {
			fmt.Fprintf(w, "  dns   %s (filtering %v)\n", seed.Host,
				seed.HasFiltering)
		}
		for _, addr := range params.FixedSeeds {
			host := net.JoinHostPort(addr.IP.String(),
				strconv.Itoa(int(addr.Port)))
			fmt.Fprintf(w, "  fixed %s last seen %v\n", host,
				addr.Timestamp.UTC())
		}
	}

	if cfg.Height > 0 || cfg.ChainTxs > 0 {
		remaining := params.EstimateRemainingBlocks(cfg.Height, now)
		progress := params.GuessVerificationProgress(cfg.ChainTxs,
			tipTime(params, cfg, now), now, cfg.SigChecks)
		fmt.Fprintf(w, "blocks remaining: %d\n", remaining)
		fmt.Fprintf(w, "progress:         %.4f\n", progress)
	}

	return nil
}

// tipTime returns the time of the block at the configured height.  Without
// --blocktime it is projected from the last checkpoint at one block per
// target spacing and never placed after now.
func tipTime(params *chaincfg.Params, cfg *config, now time.Time) time.Time {
	if cfg.BlockTime > 0 {
		return time.Unix(cfg.BlockTime, 0)
	}

	lastTime := params.Checkpoints.Data().LastCheckpointTime
	blocks := int64(cfg.Height) -
		int64(params.Checkpoints.LastCheckpointHeight())
	tip := lastTime.Add(time.Duration(blocks) * params.TargetTimePerBlock)
	if tip.After(now) {
		return now
	}
	return tip
}

func main() {
	if err := rdctparamsMain(); err != nil {
		os.Exit(1)
	}
}
