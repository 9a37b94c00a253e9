// Package mempool maintains the pool of transactions accepted but not yet
// embedded in a mined block. Order is FIFO: transactions are mined in the
// order they arrived.
package mempool

import (
	"sync"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
)

// Mempool represents a cache of transactions ordered by arrival.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Upsert adds the transaction to the pool, or replaces it in place when a
// transaction with the same id is already queued. Returns the new pool size.
func (mp *Mempool) Upsert(tx database.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	for i, pooled := range mp.pool {
		if pooled.ID == tx.ID {
			mp.pool[i] = tx
			return len(mp.pool)
		}
	}

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Delete removes the transaction with the matching id from the pool. The
// arrival order of the remaining transactions is preserved.
func (mp *Mempool) Delete(tx database.Tx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	for i, pooled := range mp.pool {
		if pooled.ID == tx.ID {
			mp.pool = append(mp.pool[:i], mp.pool[i+1:]...)
			return
		}
	}
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}

// Copy returns the transactions in arrival order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	pool := make([]database.Tx, len(mp.pool))
	copy(pool, mp.pool)

	return pool
}

// PickBest returns up to howMany transactions in arrival order. Pass -1 for
// the entire pool. The pool itself is not modified; the caller removes
// transactions once they are committed inside a block.
func (mp *Mempool) PickBest(howMany int) []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	if howMany == -1 || howMany > len(mp.pool) {
		howMany = len(mp.pool)
	}

	pool := make([]database.Tx, howMany)
	copy(pool, mp.pool[:howMany])

	return pool
}
