package worker

import "context"

// shareTxOperations handles sharing new transactions with the known peers.
func (w *Worker) shareTxOperations() {
	w.evHandler("worker: shareTxOperations: G started")
	defer w.evHandler("worker: shareTxOperations: G completed")

	for {
		select {
		case tx := <-w.txShare:
			if !w.isShutdown() {
				w.state.NetSendTxToPeers(context.Background(), tx)
			}
		case <-w.shut:
			w.evHandler("worker: shareTxOperations: received shut signal")
			return
		}
	}
}
