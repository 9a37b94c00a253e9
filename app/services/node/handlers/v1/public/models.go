package public

import (
	"github.com/ardanlabs/ledger/foundation/ledger/database"
)

// newTx is the payload accepted on transaction submission. Bodies arrive
// loosely typed; everything is validated here before a core transaction is
// ever constructed.
type newTx struct {
	Sender    string `json:"sender" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Amount    int64  `json:"amount" validate:"gte=0"`
}

// submitResult confirms a queued transaction. The block number is where
// the transaction lands if it is mined next; it is not a reservation.
type submitResult struct {
	Status      string      `json:"status"`
	Tx          database.Tx `json:"tx"`
	BlockNumber uint64      `json:"block_number"`
}

// mineRequest names the address credited with the mining reward.
type mineRequest struct {
	Miner string `json:"miner" validate:"required"`
}

// minedBlock is the response to a successful mine.
type minedBlock struct {
	Hash  string         `json:"hash"`
	Block database.Block `json:"block"`
}

// chain is the wire shape of the full chain. Peers running consensus
// resolution depend on this exact form.
type chain struct {
	Length int              `json:"length"`
	Blocks []database.Block `json:"blocks"`
}

// registerNode is the payload for peer registration. The node value may be
// a bare host:port or a full URL.
type registerNode struct {
	Node string `json:"node" validate:"required"`
}

// nodeList reports the known peer set.
type nodeList struct {
	Nodes []string `json:"nodes"`
}

// balanceResult reports the derived balance for one address.
type balanceResult struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

// syncResult reports the outcome of a consensus resolution.
type syncResult struct {
	Replaced bool `json:"replaced"`
	Length   int  `json:"length"`
}
