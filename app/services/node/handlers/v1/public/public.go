// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/ardanlabs/ledger/foundation/ledger/state"
	"github.com/ardanlabs/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of public ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Chain returns the full chain with its length.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blocks := h.State.RetrieveChain()

	resp := chain{
		Length: len(blocks),
		Blocks: blocks,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// LatestBlock returns the block at the tip of the chain.
func (h Handlers) LatestBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	latest := h.State.RetrieveLatestBlock()

	resp := minedBlock{
		Hash:  latest.Hash(),
		Block: latest,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SubmitTransaction adds a new transaction to the pending pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var nt newTx
	if err := web.Decode(r, &nt); err != nil {
		return err
	}

	tx, err := database.NewTx(nt.Sender, nt.Recipient, uint64(nt.Amount))
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "from", tx.From, "to", tx.To, "value", tx.Value)

	blockNumber, err := h.State.SubmitTransaction(tx)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	resp := submitResult{
		Status:      "transaction added to the pending pool",
		Tx:          tx,
		BlockNumber: blockNumber,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Mempool returns the set of uncommitted transactions in arrival order.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.RetrieveMempool(), http.StatusOK)
}

// Mine runs the proof of work over the pending pool and returns the newly
// mined block. The request blocks until the search completes.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var mr mineRequest
	if err := web.Decode(r, &mr); err != nil {
		return err
	}

	h.Log.Infow("mine request", "traceid", v.TraceID, "miner", mr.Miner)

	block, err := h.State.MineNewBlock(ctx, mr.Miner)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	resp := minedBlock{
		Hash:  block.Hash(),
		Block: block,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Balance returns the derived balance for the specified address.
func (h Handlers) Balance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	address := web.Param(r, "address")

	resp := balanceResult{
		Address: address,
		Balance: h.State.RetrieveBalance(address),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Balances returns the full derived balance sheet.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.RetrieveBalanceSheet().Copy(), http.StatusOK)
}

// RegisterNode adds a peer to the registry. Registering the same peer
// twice is a no-op.
func (h Handlers) RegisterNode(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var rn registerNode
	if err := web.Decode(r, &rn); err != nil {
		return err
	}

	h.State.AddKnownPeer(rn.Node)

	resp := nodeList{
		Nodes: knownHosts(h.State),
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Nodes returns the registered peer set.
func (h Handlers) Nodes(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := nodeList{
		Nodes: knownHosts(h.State),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Sync runs consensus resolution against the registered peers and reports
// whether the local chain was replaced.
func (h Handlers) Sync(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	replaced, err := h.State.Resolve(ctx)
	if err != nil {
		return err
	}

	resp := syncResult{
		Replaced: replaced,
		Length:   h.State.RetrieveChainLength(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// knownHosts flattens the peer set for responses.
func knownHosts(st *state.State) []string {
	peers := st.RetrieveKnownPeers()

	hosts := make([]string, 0, len(peers))
	for _, pr := range peers {
		hosts = append(hosts, pr.Host)
	}

	return hosts
}
