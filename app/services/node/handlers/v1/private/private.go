// Package private maintains the group of handlers for node to node access.
package private

import (
	"context"
	"net/http"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/ardanlabs/ledger/foundation/ledger/state"
	"github.com/ardanlabs/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node to node endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Status returns the chain summary peers poll during consensus.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.RetrieveStatus(), http.StatusOK)
}

// ProposeBlock accepts a block freshly mined by a peer. The block must
// extend this node's latest block; anything else is rejected and left to
// consensus resolution.
func (h Handlers) ProposeBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var block database.Block
	if err := web.Decode(r, &block); err != nil {
		return err
	}

	h.Log.Infow("proposed block", "traceid", v.TraceID, "number", block.Header.Number, "hash", block.Hash())

	if err := h.State.ProcessProposedBlock(block); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "block accepted",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// ShareTx accepts a transaction a peer is sharing and adds it to the
// pending pool.
func (h Handlers) ShareTx(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var tx database.Tx
	if err := web.Decode(r, &tx); err != nil {
		return err
	}

	if tx.ID == "" || tx.From == "" || tx.To == "" {
		return errs.NewTrusted(database.ErrInvalidTx, http.StatusBadRequest)
	}

	h.State.UpsertMempool(tx)

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "transaction added to the pending pool",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
