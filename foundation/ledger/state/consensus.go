package state

import (
	"context"
	"errors"
	"sync"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
)

// Resolve implements the longest valid chain consensus rule. Every known
// peer's chain is fetched and validated; the longest strictly greater chain
// replaces the local one. Ties keep the local chain so running Resolve
// twice with no new peer data leaves the chain unchanged the second time.
//
// When a peer chain is adopted the pending pool is discarded wholesale:
// transactions already settled in the adopted chain must not be mined
// again, and the pool can't be filtered against a chain built by another
// node. Reports whether the local chain was replaced.
func (s *State) Resolve(ctx context.Context) (bool, error) {
	s.evHandler("state: Resolve: started")
	defer s.evHandler("state: Resolve: completed")

	peers := s.knownPeers.Copy(s.host)
	if len(peers) == 0 {
		return false, nil
	}

	// Fetch every peer's chain concurrently. A peer that is unreachable,
	// malformed, or invalid is skipped; one bad peer must not block
	// resolution against the others.
	candidates := make(chan []database.Block, len(peers))

	var wg sync.WaitGroup
	wg.Add(len(peers))

	for _, pr := range peers {
		pr := pr
		go func() {
			defer wg.Done()

			blocks, err := s.NetRequestPeerChain(ctx, pr)
			if err != nil {
				s.evHandler("state: Resolve: peer[%s]: unreachable or malformed: %s", pr.Host, err)
				return
			}

			if err := database.ValidateChain(blocks, s.genesis.Difficulty); err != nil {
				s.evHandler("state: Resolve: peer[%s]: invalid chain discarded: %s", pr.Host, err)
				return
			}

			candidates <- blocks
		}()
	}

	wg.Wait()
	close(candidates)

	// Select the longest valid candidate.
	var longest []database.Block
	for blocks := range candidates {
		if len(blocks) > len(longest) {
			longest = blocks
		}
	}

	if longest == nil {
		return false, nil
	}

	// ReplaceChain enforces strictly-greater against the chain as it is at
	// swap time, so a local mine that landed during the fetch still wins a
	// tie.
	if err := s.db.ReplaceChain(longest); err != nil {
		if errors.Is(err, database.ErrNotLonger) {
			return false, nil
		}
		return false, err
	}

	s.mempool.Truncate()
	s.evHandler("state: Resolve: chain replaced: length[%d]", len(longest))

	return true, nil
}
