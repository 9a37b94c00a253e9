package worker

import "context"

// syncOperations polls the known peers on every tick and resolves the
// chain against them.
func (w *Worker) syncOperations() {
	w.evHandler("worker: syncOperations: G started")
	defer w.evHandler("worker: syncOperations: G completed")

	for {
		select {
		case <-w.ticker.C:
			if !w.isShutdown() {
				w.runSyncOperation()
			}
		case <-w.shut:
			w.evHandler("worker: syncOperations: received shut signal")
			return
		}
	}
}

// runSyncOperation checks every peer's status and runs a full consensus
// resolution when any peer claims a longer chain.
func (w *Worker) runSyncOperation() {
	w.evHandler("worker: runSyncOperation: started")
	defer w.evHandler("worker: runSyncOperation: completed")

	ctx := context.Background()

	var behind bool
	for _, pr := range w.state.RetrieveKnownPeers() {
		status, err := w.state.NetRequestPeerStatus(ctx, pr)
		if err != nil {
			w.evHandler("worker: runSyncOperation: peer[%s]: ERROR: %s", pr.Host, err)
			continue
		}

		if status.ChainLength > w.state.RetrieveChainLength() {
			w.evHandler("worker: runSyncOperation: peer[%s] has length[%d]", pr.Host, status.ChainLength)
			behind = true
		}
	}

	if !behind {
		return
	}

	if _, err := w.state.Resolve(ctx); err != nil {
		w.evHandler("worker: runSyncOperation: resolve: ERROR: %s", err)
	}
}
