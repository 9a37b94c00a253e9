// Package database handles all the lower level support for maintaining the
// blockchain in memory: block and transaction types, proof of work, chain
// validation, and the chain store.
package database

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ardanlabs/ledger/foundation/ledger/genesis"
)

// ErrStaleParent is returned from Append when the block being committed
// doesn't extend the current latest block. Mining uses this to detect that
// consensus replaced the chain while the proof search was running.
var ErrStaleParent = errors.New("block doesn't extend the latest block")

// Database manages data related to the in-memory chain of blocks. The chain
// lives only in process memory and is lost on restart.
type Database struct {
	mu      sync.RWMutex
	genesis genesis.Genesis
	blocks  []Block
}

// New constructs a new database with the genesis block in place. The chain
// is never empty.
func New(gen genesis.Genesis, ev func(v string, args ...any)) (*Database, error) {
	db := Database{
		genesis: gen,
		blocks:  []Block{newGenesisBlock(gen)},
	}

	ev("database: New: genesis block hash[%s]", db.blocks[0].Hash())

	return &db, nil
}

// Genesis returns a copy of the genesis information.
func (db *Database) Genesis() genesis.Genesis {
	return db.genesis
}

// LatestBlock returns the latest block in the chain.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.blocks[len(db.blocks)-1]
}

// Height returns the current number of blocks in the chain.
func (db *Database) Height() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.blocks)
}

// CopyBlocks returns a copy of the full chain. Blocks are immutable once
// appended so the copy shares the block values themselves.
func (db *Database) CopyBlocks() []Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	blocks := make([]Block, len(db.blocks))
	copy(blocks, db.blocks)

	return blocks
}

// Append validates the block against the current latest block and commits
// it to the chain. The lock is held only for this commit, never for the
// proof search that produced the block.
func (db *Database) Append(block Block) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	latest := db.blocks[len(db.blocks)-1]

	if block.Header.PrevBlockHash != latest.Hash() {
		return ErrStaleParent
	}

	if block.Header.Number != latest.Header.Number+1 {
		return fmt.Errorf("block is not the next number, got %d, exp %d", block.Header.Number, latest.Header.Number+1)
	}

	if !IsValidProof(latest.Header.Proof, block.Header.Proof, db.genesis.Difficulty) {
		return fmt.Errorf("block proof %d does not satisfy the work rule", block.Header.Proof)
	}

	db.blocks = append(db.blocks, block)

	return nil
}

// ErrNotLonger is returned from ReplaceChain when the candidate chain is
// not strictly longer than the current chain. Ties keep the local chain so
// resolution never flaps between equal length chains.
var ErrNotLonger = errors.New("candidate chain is not longer than the current chain")

// ReplaceChain validates the candidate chain and atomically swaps it in
// when it is strictly longer than the current chain.
func (db *Database) ReplaceChain(blocks []Block) error {
	if err := ValidateChain(blocks, db.genesis.Difficulty); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if len(blocks) <= len(db.blocks) {
		return ErrNotLonger
	}

	chain := make([]Block, len(blocks))
	copy(chain, blocks)
	db.blocks = chain

	return nil
}
