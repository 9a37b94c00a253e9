// Package worker implements the background operations for the node:
// periodic consensus polling, mined block broadcast, and transaction
// sharing.
package worker

import (
	"sync"
	"time"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/ardanlabs/ledger/foundation/ledger/state"
)

// maxTxShareRequests represents the max number of transaction share
// requests that can be queued before they are dropped.
const maxTxShareRequests = 100

// Worker manages the background workflows for the node.
type Worker struct {
	state      *state.State
	wg         sync.WaitGroup
	ticker     *time.Ticker
	shut       chan struct{}
	blockShare chan database.Block
	txShare    chan database.Tx
	evHandler  state.EventHandler
}

// Run creates a worker, registers the worker with the state package, and
// starts up all the background processes.
func Run(st *state.State, syncInterval time.Duration, evHandler state.EventHandler) {
	w := Worker{
		state:      st,
		ticker:     time.NewTicker(syncInterval),
		shut:       make(chan struct{}),
		blockShare: make(chan database.Block, 1),
		txShare:    make(chan database.Tx, maxTxShareRequests),
		evHandler:  evHandler,
	}

	// Register this worker with the state package.
	st.Worker = &w

	// Load the set of operations we need to run.
	operations := []func(){
		w.syncOperations,
		w.shareBlockOperations,
		w.shareTxOperations,
	}

	// Set waitgroup to match the number of G's we need for the set
	// of operations we have.
	g := len(operations)
	w.wg.Add(g)

	// We don't want to return until we know all the G's are up and running.
	hasStarted := make(chan bool)

	// Start all the operational G's.
	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	// Wait for the G's to report they are running.
	for i := 0; i < g; i++ {
		<-hasStarted
	}
}

// =============================================================================
// These methods implement the state.Worker interface.

// Shutdown terminates the goroutines performing work.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.evHandler("worker: shutdown: stop ticker")
	w.ticker.Stop()

	w.evHandler("worker: shutdown: terminate goroutines")
	close(w.shut)
	w.wg.Wait()
}

// SignalShareBlock queues a freshly mined block to be pushed to the known
// peers. If the queue is full the push is skipped; peers catch up through
// consensus polling.
func (w *Worker) SignalShareBlock(block database.Block) {
	select {
	case w.blockShare <- block:
		w.evHandler("worker: SignalShareBlock: block share signaled: blk[%d]", block.Header.Number)
	default:
		w.evHandler("worker: SignalShareBlock: queue full, block won't be pushed")
	}
}

// SignalShareTx queues a transaction share operation. If maxTxShareRequests
// signals exist in the channel, this transaction won't be shared.
func (w *Worker) SignalShareTx(tx database.Tx) {
	select {
	case w.txShare <- tx:
		w.evHandler("worker: SignalShareTx: tx share signaled")
	default:
		w.evHandler("worker: SignalShareTx: queue full, transaction won't be shared")
	}
}

// =============================================================================

// isShutdown is used to test if a shutdown has been signaled.
func (w *Worker) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}
