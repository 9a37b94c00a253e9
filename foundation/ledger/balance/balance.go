// Package balance derives account balances by replaying the transactions
// recorded in a chain of blocks. Balances are not stored state: a sheet is
// a pure function of the block sequence it was built from.
package balance

import (
	"github.com/ardanlabs/ledger/foundation/ledger/database"
)

// Sheet represents the balances derived from a block sequence. Balances are
// signed because the ledger records transfers without checking funds.
type Sheet struct {
	sheet map[string]int64
}

// NewSheet replays every transaction in every block in order and
// accumulates the per-address balances. The reward sentinel sender is
// credited into recipients but never debited.
func NewSheet(blocks []database.Block) *Sheet {
	sheet := make(map[string]int64)

	for _, block := range blocks {
		for _, tx := range block.Trans {
			if !tx.IsReward() {
				sheet[tx.From] -= int64(tx.Value)
			}
			sheet[tx.To] += int64(tx.Value)
		}
	}

	return &Sheet{
		sheet: sheet,
	}
}

// Balance returns the balance for the specified address. Addresses that
// never transacted have a zero balance.
func (s *Sheet) Balance(address string) int64 {
	return s.sheet[address]
}

// Copy makes a copy of the current sheet but returns the raw data.
func (s *Sheet) Copy() map[string]int64 {
	sheet := make(map[string]int64, len(s.sheet))
	for address, value := range s.sheet {
		sheet[address] = value
	}

	return sheet
}
