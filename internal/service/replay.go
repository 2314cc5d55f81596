package service

import (
	"context"
	"fmt"

	"smart-voucher/internal/core/ports"
)

const replayBatchSize = 500

// Replay re-applies every transition of src, in commit order, to dst and
// returns how many were applied. dst must start empty. Replay stops at the
// first transition whose recorded outcome differs from the rebuilt state.
func Replay(ctx context.Context, src, dst ports.TransitionRepository) (int, error) {
	var (
		after   int64
		applied int
	)
	for {
		batch, err := src.List(ctx, after, replayBatchSize)
		if err != nil {
			return applied, fmt.Errorf("list transitions after %d: %w", after, err)
		}
		if len(batch) == 0 {
			return applied, nil
		}

		for _, t := range batch {
			// Commit renumbers t in dst; paging follows the source sequence,
			// which may have gaps.
			seq, recorded := t.Seq, t.Balance
			if err := dst.Commit(ctx, t); err != nil {
				return applied, fmt.Errorf("replay %s seq %d: %w", t.Kind, seq, err)
			}
			if recorded != nil && t.Balance != nil && !recorded.Eq(t.Balance) {
				return applied, fmt.Errorf("replay %s seq %d: balance %s, journal recorded %s",
					t.Kind, seq, t.Balance.Dec(), recorded.Dec())
			}
			applied++
			after = seq
		}
	}
}
