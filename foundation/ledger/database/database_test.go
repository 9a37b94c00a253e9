package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/ardanlabs/ledger/foundation/ledger/genesis"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// testGenesis returns a genesis document with a difficulty low enough to
// keep the proof searches interactive.
func testGenesis() genesis.Genesis {
	return genesis.Genesis{
		Date:          time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		ChainID:       1,
		Difficulty:    1,
		MiningReward:  50,
		TransPerBlock: 100,
		Balances: map[string]uint64{
			"genesis": 5000,
		},
	}
}

func nopEv(v string, args ...any) {}

// mine produces and commits the next block over the given transactions.
func mine(t *testing.T, db *database.Database, gen genesis.Genesis, trans []database.Tx) database.Block {
	t.Helper()

	block, err := database.POW(context.Background(), gen.Difficulty, db.LatestBlock(), trans, nopEv)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to perform the proof of work: %v", failed, err)
	}

	if err := db.Append(block); err != nil {
		t.Fatalf("\t%s\tShould be able to append the mined block: %v", failed, err)
	}

	return block
}

func Test_GenesisBlock(t *testing.T) {
	t.Log("Given the need to validate the genesis conventions.")
	{
		t.Logf("\tTest 0:\tWhen constructing a new database.")
		{
			gen := testGenesis()

			db, err := database.New(gen, nopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the database: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to construct the database.", success)

			if db.Height() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould start with just the genesis block, got height %d.", failed, db.Height())
			}
			t.Logf("\t%s\tTest 0:\tShould start with just the genesis block.", success)

			latest := db.LatestBlock()
			if latest.Header.Number != 1 {
				t.Errorf("\t%s\tTest 0:\tShould number the genesis block 1, got %d.", failed, latest.Header.Number)
			} else {
				t.Logf("\t%s\tTest 0:\tShould number the genesis block 1.", success)
			}

			// Two databases built from the same genesis document must agree
			// on the genesis hash or the nodes can never reach consensus.
			db2, err := database.New(gen, nopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct a second database: %v", failed, err)
			}
			if db.LatestBlock().Hash() != db2.LatestBlock().Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould derive identical genesis blocks from the same document.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould derive identical genesis blocks from the same document.", success)
		}
	}
}

func Test_POW(t *testing.T) {
	t.Log("Given the need to validate the proof of work search.")
	{
		t.Logf("\tTest 0:\tWhen mining on a fixed parent block.")
		{
			gen := testGenesis()

			db, err := database.New(gen, nopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the database: %v", failed, err)
			}

			parent := db.LatestBlock()
			block := mine(t, db, gen, []database.Tx{database.NewRewardTx("miner1", gen.MiningReward)})
			t.Logf("\t%s\tTest 0:\tShould be able to mine a block.", success)

			if !database.IsValidProof(parent.Header.Proof, block.Header.Proof, gen.Difficulty) {
				t.Fatalf("\t%s\tTest 0:\tShould find a proof that satisfies the predicate.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould find a proof that satisfies the predicate.", success)

			// The scan starts at zero, so no smaller proof may satisfy the
			// predicate and an independent run must find the same value.
			for proof := uint64(0); proof < block.Header.Proof; proof++ {
				if database.IsValidProof(parent.Header.Proof, proof, gen.Difficulty) {
					t.Fatalf("\t%s\tTest 0:\tShould find the smallest satisfying proof, but %d also satisfies.", failed, proof)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould find the smallest satisfying proof.", success)
		}
	}
}

func Test_ChainValidation(t *testing.T) {
	t.Log("Given the need to detect tampering anywhere in the chain.")
	{
		t.Logf("\tTest 0:\tWhen validating a mined chain.")
		{
			gen := testGenesis()

			db, err := database.New(gen, nopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the database: %v", failed, err)
			}

			tx, err := database.NewTx("aaron", "bill", 10)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct a transaction: %v", failed, err)
			}
			mine(t, db, gen, []database.Tx{tx, database.NewRewardTx("miner1", gen.MiningReward)})
			mine(t, db, gen, []database.Tx{database.NewRewardTx("miner1", gen.MiningReward)})

			blocks := db.CopyBlocks()
			if err := database.ValidateChain(blocks, gen.Difficulty); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould validate the untouched chain: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould validate the untouched chain.", success)

			// Tamper with the recorded proof.
			tampered := db.CopyBlocks()
			tampered[1].Header.Proof++
			if err := database.ValidateChain(tampered, gen.Difficulty); err == nil {
				t.Errorf("\t%s\tTest 0:\tShould reject a chain with a tampered proof.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould reject a chain with a tampered proof.", success)
			}

			// Tamper with the hash link.
			tampered = db.CopyBlocks()
			tampered[2].Header.PrevBlockHash = tampered[1].Header.PrevBlockHash
			if err := database.ValidateChain(tampered, gen.Difficulty); err == nil {
				t.Errorf("\t%s\tTest 0:\tShould reject a chain with a broken hash link.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould reject a chain with a broken hash link.", success)
			}

			// Tamper with a historical transaction's value. The block hash
			// covers the transaction list, so the next block's link breaks.
			tampered = db.CopyBlocks()
			tampered[1].Trans = append([]database.Tx{}, tampered[1].Trans...)
			tampered[1].Trans[0].Value += 1_000
			if err := database.ValidateChain(tampered, gen.Difficulty); err == nil {
				t.Errorf("\t%s\tTest 0:\tShould reject a chain with a tampered transaction.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould reject a chain with a tampered transaction.", success)
			}

			// Tamper with the genesis conventions.
			tampered = db.CopyBlocks()
			tampered[0].Header.Proof = 7
			if err := database.ValidateChain(tampered, gen.Difficulty); err == nil {
				t.Errorf("\t%s\tTest 0:\tShould reject a chain with a non conventional genesis block.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould reject a chain with a non conventional genesis block.", success)
			}
		}
	}
}

func Test_AppendAndReplace(t *testing.T) {
	t.Log("Given the need to guard chain mutation.")
	{
		t.Logf("\tTest 0:\tWhen committing blocks and replacing chains.")
		{
			gen := testGenesis()

			db, err := database.New(gen, nopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the database: %v", failed, err)
			}

			// Mine a block against genesis but don't commit it yet.
			stale, err := database.POW(context.Background(), gen.Difficulty, db.LatestBlock(), []database.Tx{database.NewRewardTx("miner1", gen.MiningReward)}, nopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to perform the proof of work: %v", failed, err)
			}

			// Commit a different block first, so the mined block is stale.
			mine(t, db, gen, []database.Tx{database.NewRewardTx("miner2", gen.MiningReward)})

			if err := db.Append(stale); !errors.Is(err, database.ErrStaleParent) {
				t.Fatalf("\t%s\tTest 0:\tShould reject a block with a stale parent, got %v.", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould reject a block with a stale parent.", success)

			// Build a longer chain on a second database and replace.
			db2, err := database.New(gen, nopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct a second database: %v", failed, err)
			}
			mine(t, db2, gen, []database.Tx{database.NewRewardTx("miner3", gen.MiningReward)})
			mine(t, db2, gen, []database.Tx{database.NewRewardTx("miner3", gen.MiningReward)})

			if err := db.ReplaceChain(db2.CopyBlocks()); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to replace with a longer chain: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to replace with a longer chain.", success)

			// An equal length chain must not replace: ties keep the local chain.
			if err := db.ReplaceChain(db2.CopyBlocks()); !errors.Is(err, database.ErrNotLonger) {
				t.Fatalf("\t%s\tTest 0:\tShould keep the local chain on a tie, got %v.", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould keep the local chain on a tie.", success)
		}
	}
}
