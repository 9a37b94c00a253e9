// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/ardanlabs/ledger/foundation/ledger/genesis"
	"github.com/ardanlabs/ledger/foundation/ledger/mempool"
	"github.com/ardanlabs/ledger/foundation/ledger/peer"
)

// EventHandler defines a function that is called when events occur in the
// processing of the node.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by
// any package providing support for the background node operations.
type Worker interface {
	Shutdown()
	SignalShareTx(tx database.Tx)
	SignalShareBlock(block database.Block)
}

// =============================================================================

// Config represents the configuration required to start the node.
type Config struct {
	Host       string
	Genesis    genesis.Genesis
	KnownPeers *peer.PeerSet
	EvHandler  EventHandler
}

// State manages the ledger node. A single State value owns the chain for
// the lifetime of the process; there is no hidden package level instance.
type State struct {
	host       string
	genesis    genesis.Genesis
	evHandler  EventHandler
	knownPeers *peer.PeerSet

	db      *database.Database
	mempool *mempool.Mempool

	// mineMu serializes mining operations. The proof search runs while
	// holding only this lock, so transaction submission and chain reads are
	// never starved by a long search.
	mineMu sync.Mutex

	Worker Worker
}

// New constructs a new ledger node state for data management.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	// The chain starts from the genesis block derived from the genesis
	// document. Nothing is loaded from disk; the chain is memory only.
	db, err := database.New(cfg.Genesis, ev)
	if err != nil {
		return nil, err
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	state := State{
		host:       cfg.Host,
		genesis:    cfg.Genesis,
		evHandler:  ev,
		knownPeers: knownPeers,

		db:      db,
		mempool: mempool.New(),
	}

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {

	// Stop all background node activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}
