// Package v1 contains the full set of handler functions and routes
// supported by the web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/ledger/app/services/node/handlers/v1/private"
	"github.com/ardanlabs/ledger/app/services/node/handlers/v1/public"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/ledger/state"
	"github.com/ardanlabs/ledger/foundation/web"
	"go.uber.org/zap"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// Routes binds all the routes for the node. The user facing paths are a
// fixed external contract and carry no version prefix; the node-to-node
// paths live under /node.
func Routes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, "", "/chain", pbl.Chain)
	app.Handle(http.MethodGet, "", "/chain/latest", pbl.LatestBlock)
	app.Handle(http.MethodPost, "", "/transactions/new", pbl.SubmitTransaction)
	app.Handle(http.MethodGet, "", "/transactions", pbl.Mempool)
	app.Handle(http.MethodPost, "", "/mine", pbl.Mine)
	app.Handle(http.MethodGet, "", "/balance/:address", pbl.Balance)
	app.Handle(http.MethodGet, "", "/balances", pbl.Balances)
	app.Handle(http.MethodPost, "", "/register_node", pbl.RegisterNode)
	app.Handle(http.MethodGet, "", "/nodes", pbl.Nodes)
	app.Handle(http.MethodGet, "", "/sync", pbl.Sync)
	app.Handle(http.MethodGet, "", "/events", pbl.Events)

	prv := private.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodGet, "", "/node/status", prv.Status)
	app.Handle(http.MethodPost, "", "/node/block/propose", prv.ProposeBlock)
	app.Handle(http.MethodPost, "", "/node/tx/share", prv.ShareTx)
}
