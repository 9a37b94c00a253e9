package database

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RewardAccount is the sentinel sender for mining rewards and the genesis
// premine. It is never debited during balance replay.
const RewardAccount = "SYSTEM"

// ErrInvalidTx is returned when a transaction arriving over the wire is
// missing required fields.
var ErrInvalidTx = errors.New("transaction is missing required fields")

// Tx represents a value transfer between two addresses. Once a transaction
// is part of a mined block it is never mutated.
type Tx struct {
	ID        string `json:"id"`        // Unique id assigned when the transaction is accepted.
	From      string `json:"from"`      // Address sending the value.
	To        string `json:"to"`        // Address receiving the value.
	Value     uint64 `json:"value"`     // Monetary value received from this transaction.
	TimeStamp uint64 `json:"timestamp"` // The time the transaction was received.
}

// NewTx constructs a new transaction for the pending pool. The ledger does
// not track account existence, so unknown addresses are not an error.
func NewTx(from string, to string, value uint64) (Tx, error) {
	if strings.TrimSpace(from) == "" {
		return Tx{}, errors.New("sender address is required")
	}
	if strings.TrimSpace(to) == "" {
		return Tx{}, errors.New("recipient address is required")
	}

	tx := Tx{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Value:     value,
		TimeStamp: uint64(time.Now().UTC().Unix()),
	}

	return tx, nil
}

// NewRewardTx constructs the synthetic transaction crediting the miner of
// a block.
func NewRewardTx(beneficiary string, reward uint64) Tx {
	return Tx{
		ID:        uuid.NewString(),
		From:      RewardAccount,
		To:        beneficiary,
		Value:     reward,
		TimeStamp: uint64(time.Now().UTC().Unix()),
	}
}

// IsReward tests if the transaction is a mining credit or premine.
func (tx Tx) IsReward() bool {
	return tx.From == RewardAccount
}
