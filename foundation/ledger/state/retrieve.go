package state

import (
	"github.com/ardanlabs/ledger/foundation/ledger/balance"
	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/ardanlabs/ledger/foundation/ledger/genesis"
	"github.com/ardanlabs/ledger/foundation/ledger/peer"
)

// RetrieveHost returns a copy of host information.
func (s *State) RetrieveHost() string {
	return s.host
}

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveLatestBlock returns a copy of the current latest block.
func (s *State) RetrieveLatestBlock() database.Block {
	return s.db.LatestBlock()
}

// RetrieveChain returns a copy of the full chain.
func (s *State) RetrieveChain() []database.Block {
	return s.db.CopyBlocks()
}

// RetrieveChainLength returns the current number of blocks in the chain.
func (s *State) RetrieveChainLength() int {
	return s.db.Height()
}

// RetrieveMempool returns a copy of the pending pool in arrival order.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.Copy()
}

// RetrieveKnownPeers retrieves a copy of the known peer list, excluding
// this node.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	return s.knownPeers.Copy(s.host)
}

// RetrieveStatus returns the chain summary peers poll during consensus.
func (s *State) RetrieveStatus() peer.PeerStatus {
	latest := s.db.LatestBlock()

	return peer.PeerStatus{
		LatestBlockHash:   latest.Hash(),
		LatestBlockNumber: latest.Header.Number,
		ChainLength:       s.db.Height(),
	}
}

// AddKnownPeer registers a peer address. Duplicate registration is a no-op.
// Reports whether the peer was new.
func (s *State) AddKnownPeer(host string) bool {
	added := s.knownPeers.Add(peer.New(host))
	if added {
		s.evHandler("state: AddKnownPeer: registered peer[%s]", host)
	}

	return added
}

// RetrieveBalanceSheet replays the current chain and returns the derived
// balances for every address that transacted.
func (s *State) RetrieveBalanceSheet() *balance.Sheet {
	return balance.NewSheet(s.db.CopyBlocks())
}

// RetrieveBalance replays the current chain and returns the derived balance
// for the specified address.
func (s *State) RetrieveBalance(address string) int64 {
	return s.RetrieveBalanceSheet().Balance(address)
}
