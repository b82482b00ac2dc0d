// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"

	"github.com/rdctoken/rdctd/chaincfg"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "rdctparams.log"
)

var (
	defaultHomeDir = btcutil.AppDataDir("rdctparams", false)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for rdctparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet         bool   `long:"testnet" description:"Use the test network"`
	RegressionTest  bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest        bool   `long:"unittest" description:"Use the unit test network"`
	DebugLevel      string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir          string `long:"logdir" description:"Directory to log output"`
	NoLogFile       bool   `long:"nologfile" description:"Only log to standard error"`
	ShowCheckpoints bool   `long:"checkpoints" description:"List the checkpoints of the network"`
	ShowSeeds       bool   `long:"seeds" description:"List the DNS and fixed seeds of the network"`
	Dump            bool   `long:"dump" description:"Dump every parameter of the network"`
	Height          int32  `long:"height" description:"Estimate the sync progress of a node at this height"`
	ChainTxs        int64  `long:"chaintxs" description:"Transactions up to --height, used to estimate verification progress"`
	SigChecks       bool   `long:"sigchecks" description:"Weight blocks after the last checkpoint as signature checked"`
	BlockTime       int64  `long:"blocktime" description:"Unix time of the block at --height, used to estimate verification progress (default: derived from --height and the block spacing)"`
}

// network returns the network selected by the network flags.  UnknownNet is
// returned when more than one network flag is set.
func (cfg *config) network() chaincfg.NetworkID {
	id := chaincfg.MainNet
	numNets := 0
	if cfg.TestNet {
		numNets++
		id = chaincfg.TestNet
	}
	if cfg.RegressionTest {
		numNets++
		id = chaincfg.RegTest
	}
	if cfg.UnitTest {
		numNets++
		id = chaincfg.UnitTest
	}
	if numNets > 1 {
		return chaincfg.UnknownNet
	}
	return id
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.ContainsAny(debugLevel, ",=") {
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		setLogLevels(debugLevel)
		return nil
	}

	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		subsysID, logLevel := fields[0], fields[1]
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid"
			return fmt.Errorf(str, subsysID)
		}
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse CLI options and overwrite/add any specified options
//
// The above results in rdctparams functioning properly without any config
// settings while still allowing the user to override settings with command
// line options.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if cfg.network() == chaincfg.UnknownNet {
		str := "%s: the testnet, regtest and unittest params can't be " +
			"used together -- choose one of the three"
		err := fmt.Errorf(str, "loadConfig")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	if cfg.Height < 0 {
		err := fmt.Errorf("loadConfig: --height may not be negative")
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	if cfg.BlockTime < 0 {
		err := fmt.Errorf("loadConfig: --blocktime may not be negative")
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	if !cfg.NoLogFile {
		// Append the network type to the log directory so it is
		// "namespaced" per network in the same fashion as the data
		// directory.
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		cfg.LogDir = filepath.Join(cfg.LogDir, cfg.network().String())

		if err := initLogRotator(filepath.Join(cfg.LogDir,
			defaultLogFilename)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, err
		}
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %v", err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	return &cfg, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
