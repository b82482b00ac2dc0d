// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The rdctd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigcheckVerificationFactor is how much more expensive a block is to verify
// after the last checkpoint, where signatures are checked, than before it.
const sigcheckVerificationFactor = 5.0

// secondsPerDay is used to scale the transactions per day estimate.
const secondsPerDay = 24 * 60 * 60

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData holds the sync rate metadata recorded alongside the
// checkpoints of a network.
type CheckpointData struct {
	// LastCheckpointTime is the block timestamp of the last checkpoint.
	LastCheckpointTime time.Time

	// TotalTxs is the total number of transactions between genesis and the
	// last checkpoint.
	TotalTxs int64

	// TxsPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxsPerDay float64
}

// CheckpointTable is an immutable list of checkpoints ordered by strictly
// increasing height along with the metadata used to estimate sync progress.
type CheckpointTable struct {
	points   []Checkpoint
	byHeight map[int32]*chainhash.Hash
	data     CheckpointData
}

// NewCheckpointTable returns a table holding points and data.  The points must
// already be sorted by strictly increasing height and every hash must be
// unique.  Violations are reported rather than corrected.
func NewCheckpointTable(points []Checkpoint, data CheckpointData) (*CheckpointTable, error) {
	t := &CheckpointTable{
		points:   make([]Checkpoint, 0, len(points)),
		byHeight: make(map[int32]*chainhash.Hash, len(points)),
		data:     data,
	}

	hashes := make(map[chainhash.Hash]int32, len(points))
	for i, cp := range points {
		if cp.Hash == nil || cp.Height < 0 {
			str := fmt.Sprintf("checkpoint %d at height %d is invalid",
				i, cp.Height)
			return nil, paramsError(ErrInvalidCheckpoint, str)
		}
		if i > 0 {
			prev := points[i-1].Height
			switch {
			case cp.Height == prev:
				str := fmt.Sprintf("duplicate checkpoint at "+
					"height %d", cp.Height)
				return nil, paramsError(ErrDuplicateCheckpoint, str)

			case cp.Height < prev:
				str := fmt.Sprintf("checkpoint at height %d "+
					"follows checkpoint at height %d",
					cp.Height, prev)
				return nil, paramsError(ErrCheckpointOrder, str)
			}
		}
		if other, ok := hashes[*cp.Hash]; ok {
			str := fmt.Sprintf("checkpoint hash %v at height %d "+
				"already used at height %d", cp.Hash, cp.Height,
				other)
			return nil, paramsError(ErrDuplicateCheckpointHash, str)
		}

		hash := *cp.Hash
		hashes[hash] = cp.Height
		t.byHeight[cp.Height] = &hash
		t.points = append(t.points, Checkpoint{Height: cp.Height, Hash: &hash})
	}

	return t, nil
}

// Lookup returns the checkpoint hash at height, if there is one.
func (t *CheckpointTable) Lookup(height int32) (*chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	if !ok {
		return nil, false
	}
	h := *hash
	return &h, true
}

// IsCheckpointHeightValid returns false only when there is a checkpoint at
// height and hash does not match it.
func (t *CheckpointTable) IsCheckpointHeightValid(height int32, hash *chainhash.Hash) bool {
	want, ok := t.byHeight[height]
	if !ok {
		return true
	}
	return want.IsEqual(hash)
}

// Len returns the number of checkpoints.
func (t *CheckpointTable) Len() int {
	return len(t.points)
}

// Checkpoints returns a copy of the checkpoints ordered by height.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	points := make([]Checkpoint, len(t.points))
	for i, cp := range t.points {
		hash := *cp.Hash
		points[i] = Checkpoint{Height: cp.Height, Hash: &hash}
	}
	return points
}

// LastCheckpoint returns the checkpoint with the greatest height.  The zero
// Checkpoint is returned for an empty table.
func (t *CheckpointTable) LastCheckpoint() Checkpoint {
	if len(t.points) == 0 {
		return Checkpoint{}
	}
	cp := t.points[len(t.points)-1]
	hash := *cp.Hash
	return Checkpoint{Height: cp.Height, Hash: &hash}
}

// LastCheckpointHeight returns the height of the last checkpoint, or 0 for an
// empty table.
func (t *CheckpointTable) LastCheckpointHeight() int32 {
	return t.LastCheckpoint().Height
}

// Data returns the sync rate metadata of the table.
func (t *CheckpointTable) Data() CheckpointData {
	return t.data
}

// LatestCheckpointBefore returns the checkpoint with the greatest height that
// is not above height.
func (t *CheckpointTable) LatestCheckpointBefore(height int32) (Checkpoint, bool) {
	i := sort.Search(len(t.points), func(i int) bool {
		return t.points[i].Height > height
	})
	if i == 0 {
		return Checkpoint{}, false
	}
	cp := t.points[i-1]
	hash := *cp.Hash
	return Checkpoint{Height: cp.Height, Hash: &hash}, true
}

// EstimateRemainingBlocks estimates how many blocks a node at height still has
// to download.  This is a progress heuristic only.
//
// The chain tip is projected from the last checkpoint using the transactions
// per day recorded after it, converted to blocks with the average number of
// transactions per block up to the checkpoint.  Tables without a transaction
// rate or history fall back to one block every spacing.
func (t *CheckpointTable) EstimateRemainingBlocks(height int32, now time.Time,
	spacing time.Duration) int64 {

	var elapsed time.Duration
	if now.After(t.data.LastCheckpointTime) {
		elapsed = now.Sub(t.data.LastCheckpointTime)
	}

	lastHeight := int64(t.LastCheckpointHeight())
	var projected int64
	switch {
	case t.data.TxsPerDay > 0 && t.data.TotalTxs > 0 && lastHeight > 0:
		txsPerBlock := float64(t.data.TotalTxs) / float64(lastHeight)
		days := elapsed.Seconds() / secondsPerDay
		projected = int64(days * t.data.TxsPerDay / txsPerBlock)

	case spacing > 0:
		projected = int64(elapsed / spacing)
	}

	if remaining := lastHeight + projected - int64(height); remaining > 0 {
		return remaining
	}
	return 0
}

// GuessVerificationProgress returns a rough estimate in [0, 1] of how much of
// the verification work is done for a chain holding chainTxs transactions
// whose tip was mined at blockTime.  Work before the last checkpoint is
// counted as cheap.  With sigchecks set, work after it is weighted as
// sigcheckVerificationFactor times more expensive.
func (t *CheckpointTable) GuessVerificationProgress(chainTxs int64, blockTime,
	now time.Time, sigchecks bool) float64 {

	factor := 1.0
	if sigchecks {
		factor = sigcheckVerificationFactor
	}
	days := func(from time.Time) float64 {
		return now.Sub(from).Seconds() / secondsPerDay
	}

	var workBefore, workAfter float64
	if chainTxs <= t.data.TotalTxs {
		cheapBefore := float64(chainTxs)
		cheapAfter := float64(t.data.TotalTxs - chainTxs)
		expensiveAfter := days(t.data.LastCheckpointTime) * t.data.TxsPerDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*factor
	} else {
		cheapBefore := float64(t.data.TotalTxs)
		expensiveBefore := float64(chainTxs - t.data.TotalTxs)
		expensiveAfter := days(blockTime) * t.data.TxsPerDay
		workBefore = cheapBefore + expensiveBefore*factor
		workAfter = expensiveAfter * factor
	}

	if workAfter < 0 {
		workAfter = 0
	}
	if workBefore+workAfter <= 0 {
		return 0
	}
	return workBefore / (workBefore + workAfter)
}
