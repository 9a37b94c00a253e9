package state

import (
	"github.com/ardanlabs/ledger/foundation/ledger/database"
)

// SubmitTransaction enqueues a validated transaction into the pending pool
// and shares it with the known peers. The returned block number is where
// the transaction lands if it is mined next; it is informational only,
// other submissions may push it into a later block.
func (s *State) SubmitTransaction(tx database.Tx) (uint64, error) {
	n := s.mempool.Upsert(tx)
	s.evHandler("state: SubmitTransaction: tx[%s] from[%s] to[%s] value[%d] pool[%d]", tx.ID, tx.From, tx.To, tx.Value, n)

	if s.Worker != nil {
		s.Worker.SignalShareTx(tx)
	}

	return s.db.LatestBlock().Header.Number + 1, nil
}

// UpsertMempool adds a transaction received from a peer into the pending
// pool without resharing it.
func (s *State) UpsertMempool(tx database.Tx) {
	s.mempool.Upsert(tx)
}
