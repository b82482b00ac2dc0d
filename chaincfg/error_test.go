// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrGenesisHashMismatch, "ErrGenesisHashMismatch"},
		{ErrGenesisMerkleMismatch, "ErrGenesisMerkleMismatch"},
		{ErrGenesisPowTarget, "ErrGenesisPowTarget"},
		{ErrInvalidGenesis, "ErrInvalidGenesis"},
		{ErrCheckpointOrder, "ErrCheckpointOrder"},
		{ErrDuplicateCheckpoint, "ErrDuplicateCheckpoint"},
		{ErrDuplicateCheckpointHash, "ErrDuplicateCheckpointHash"},
		{ErrInvalidCheckpoint, "ErrInvalidCheckpoint"},
		{ErrMissingPrefix, "ErrMissingPrefix"},
		{ErrPrefixLength, "ErrPrefixLength"},
		{ErrInvalidAddress, "ErrInvalidAddress"},
		{ErrUnknownNetwork, "ErrUnknownNetwork"},
		{ErrNoActiveNetwork, "ErrNoActiveNetwork"},
		{ErrNotUnitTest, "ErrNotUnitTest"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestParamsError tests the error output for the ParamsError type.
func TestParamsError(t *testing.T) {
	tests := []struct {
		in   ParamsError
		want string
	}{
		{
			ParamsError{Description: "duplicate checkpoint at height 5"},
			"duplicate checkpoint at height 5",
		},
		{
			ParamsError{Description: "human-readable error"},
			"human-readable error",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestIsErrorCode ensures IsErrorCode sees through wrapping.
func TestIsErrorCode(t *testing.T) {
	base := paramsError(ErrNotUnitTest, "immutable")
	wrapped := fmt.Errorf("main network: %w", base)

	tests := []struct {
		err  error
		code ErrorCode
		want bool
	}{
		{base, ErrNotUnitTest, true},
		{wrapped, ErrNotUnitTest, true},
		{wrapped, ErrUnknownNetwork, false},
		{errors.New("other"), ErrNotUnitTest, false},
		{nil, ErrNotUnitTest, false},
	}

	for i, test := range tests {
		if got := IsErrorCode(test.err, test.code); got != test.want {
			t.Errorf("IsErrorCode #%d: got %v want %v", i, got,
				test.want)
		}
	}
}
