package worker

import "context"

// shareBlockOperations handles pushing freshly mined blocks to the known
// peers.
func (w *Worker) shareBlockOperations() {
	w.evHandler("worker: shareBlockOperations: G started")
	defer w.evHandler("worker: shareBlockOperations: G completed")

	for {
		select {
		case block := <-w.blockShare:
			if !w.isShutdown() {
				w.state.NetSendBlockToPeers(context.Background(), block)
			}
		case <-w.shut:
			w.evHandler("worker: shareBlockOperations: received shut signal")
			return
		}
	}
}
