package state

import (
	"context"
	"errors"
	"strings"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
)

// ErrMissingBeneficiary is returned when a mine request doesn't name the
// address to credit with the reward.
var ErrMissingBeneficiary = errors.New("miner address is required")

// MineNewBlock runs the proof of work over the current pending pool and
// commits the solved block to the chain. An empty pool still mines: the
// block then carries only the reward transaction. That is deliberate so a
// mine request always produces a block.
//
// If consensus replaces the chain while the search runs, the stale result
// is discarded and the search re-runs against the new tip. The last writer
// wins; there is no cancellation of the in-flight search.
func (s *State) MineNewBlock(ctx context.Context, beneficiary string) (database.Block, error) {
	if strings.TrimSpace(beneficiary) == "" {
		return database.Block{}, ErrMissingBeneficiary
	}

	// One mining operation at a time. Submissions keep flowing into the
	// mempool while this lock is held.
	s.mineMu.Lock()
	defer s.mineMu.Unlock()

	for {
		s.evHandler("state: MineNewBlock: MINING: pool[%d]", s.mempool.Count())

		// Snapshot the pool up to the block capacity and append the reward.
		trans := s.mempool.PickBest(s.genesis.TransPerBlock)
		trans = append(trans, database.NewRewardTx(beneficiary, s.genesis.MiningReward))

		parent := s.db.LatestBlock()

		block, err := database.POW(ctx, s.genesis.Difficulty, parent, trans, s.evHandler)
		if err != nil {
			return database.Block{}, err
		}

		// Commit the block. The database holds its lock only here, so a
		// concurrent consensus replacement can never observe a half-built
		// block; it instead shows up as a stale parent.
		if err := s.db.Append(block); err != nil {
			if errors.Is(err, database.ErrStaleParent) {
				s.evHandler("state: MineNewBlock: MINING: chain moved during the search, remining")
				continue
			}
			return database.Block{}, err
		}

		// Remove exactly the absorbed transactions. Anything submitted
		// during the search stays queued in arrival order.
		for _, tx := range block.Trans {
			s.mempool.Delete(tx)
		}

		s.evHandler("state: MineNewBlock: MINING: committed: blk[%d] hash[%s]", block.Header.Number, block.Hash())

		if s.Worker != nil {
			s.Worker.SignalShareBlock(block)
		}

		return block, nil
	}
}

// ProcessProposedBlock takes a block mined by a peer and attempts to append
// it to the chain. The block must extend the current latest block; any
// longer divergence is repaired by consensus resolution, not here.
func (s *State) ProcessProposedBlock(block database.Block) error {
	s.evHandler("state: ProcessProposedBlock: started: blk[%d] hash[%s]", block.Header.Number, block.Hash())
	defer s.evHandler("state: ProcessProposedBlock: completed")

	if err := s.db.Append(block); err != nil {
		return err
	}

	// The peer settled these transactions; they must not be mined again.
	for _, tx := range block.Trans {
		s.mempool.Delete(tx)
	}

	return nil
}
