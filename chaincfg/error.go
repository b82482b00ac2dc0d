// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific ParamsError.
const (
	// ErrGenesisHashMismatch indicates the hash computed from a network's
	// genesis block does not match the hash recorded for that network.
	ErrGenesisHashMismatch ErrorCode = iota

	// ErrGenesisMerkleMismatch indicates the merkle root computed from a
	// network's genesis block does not match the recorded merkle root.
	ErrGenesisMerkleMismatch

	// ErrGenesisPowTarget indicates the genesis block hash does not satisfy
	// the target encoded in its own difficulty bits, or that target is
	// above the network proof of work limit.
	ErrGenesisPowTarget

	// ErrInvalidGenesis indicates the genesis block inputs could not be
	// assembled into a block, for example an invalid coinbase public key.
	ErrInvalidGenesis

	// ErrCheckpointOrder indicates a checkpoint has a height lower than the
	// checkpoint before it.
	ErrCheckpointOrder

	// ErrDuplicateCheckpoint indicates two checkpoints share a height.
	ErrDuplicateCheckpoint

	// ErrDuplicateCheckpointHash indicates two checkpoints share a hash.
	ErrDuplicateCheckpointHash

	// ErrInvalidCheckpoint indicates a checkpoint with a negative height
	// or a missing hash.
	ErrInvalidCheckpoint

	// ErrMissingPrefix indicates an address kind has no prefix.
	ErrMissingPrefix

	// ErrPrefixLength indicates an address prefix has the wrong length
	// for its kind.
	ErrPrefixLength

	// ErrInvalidAddress indicates an encoded address failed to decode, has
	// a bad checksum or carries a prefix of a different kind or network.
	ErrInvalidAddress

	// ErrUnknownNetwork indicates a network identifier that does not name
	// one of the defined networks.
	ErrUnknownNetwork

	// ErrNoActiveNetwork indicates the active network was requested
	// before one was selected.
	ErrNoActiveNetwork

	// ErrNotUnitTest indicates the mutation capability was requested
	// while a network other than the unit test network is active.
	ErrNotUnitTest

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrGenesisHashMismatch:     "ErrGenesisHashMismatch",
	ErrGenesisMerkleMismatch:   "ErrGenesisMerkleMismatch",
	ErrGenesisPowTarget:        "ErrGenesisPowTarget",
	ErrInvalidGenesis:          "ErrInvalidGenesis",
	ErrCheckpointOrder:         "ErrCheckpointOrder",
	ErrDuplicateCheckpoint:     "ErrDuplicateCheckpoint",
	ErrDuplicateCheckpointHash: "ErrDuplicateCheckpointHash",
	ErrInvalidCheckpoint:       "ErrInvalidCheckpoint",
	ErrMissingPrefix:           "ErrMissingPrefix",
	ErrPrefixLength:            "ErrPrefixLength",
	ErrInvalidAddress:          "ErrInvalidAddress",
	ErrUnknownNetwork:          "ErrUnknownNetwork",
	ErrNoActiveNetwork:         "ErrNoActiveNetwork",
	ErrNotUnitTest:             "ErrNotUnitTest",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ParamsError identifies a failure to build, verify or select a set of network
// parameters.  None of them are recoverable: a host that receives one must not
// continue with the affected parameters.
//
// The caller can use type assertions or IsErrorCode to determine the specific
// failure.
type ParamsError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e ParamsError) Error() string {
	return e.Description
}

// paramsError creates a ParamsError given a set of arguments.
func paramsError(c ErrorCode, desc string) ParamsError {
	return ParamsError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a ParamsError, or wraps one, with the
// given error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var perr ParamsError
	return errors.As(err, &perr) && perr.ErrorCode == c
}
