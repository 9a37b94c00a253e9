package database

import (
	"fmt"
	"sort"

	"github.com/ardanlabs/ledger/foundation/ledger/genesis"
	"github.com/ardanlabs/ledger/foundation/ledger/signature"
	"github.com/google/uuid"
)

// genesisProof is the proof value every genesis block carries by convention.
// It is never checked against the proof of work predicate.
const genesisProof uint64 = 0

// =============================================================================

// BlockHeader represents common information required for each block.
type BlockHeader struct {
	Number        uint64 `json:"number"`          // Block number in the chain. The genesis block is number 1.
	TimeStamp     uint64 `json:"timestamp"`       // Time the block was mined.
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block in the chain.
	Proof         uint64 `json:"proof"`           // Value satisfying the proof of work predicate.
}

// Block represents a group of transactions batched together.
type Block struct {
	Header BlockHeader `json:"header"`
	Trans  []Tx        `json:"trans"`
}

// Hash returns the unique hash for the Block. The hash covers the header
// and the full transaction list, so changing any recorded transaction
// breaks the link from the next block.
func (b Block) Hash() string {
	return signature.Hash(b)
}

// =============================================================================

// newGenesisBlock derives the fixed first block from the genesis document.
// The premine balances become reward-sentinel transactions with name-based
// ids and a sorted address order, so every node running the same genesis
// document produces a byte identical genesis block.
func newGenesisBlock(gen genesis.Genesis) Block {
	addresses := make([]string, 0, len(gen.Balances))
	for address := range gen.Balances {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	trans := make([]Tx, 0, len(addresses))
	for _, address := range addresses {
		tx := Tx{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(address)).String(),
			From:      RewardAccount,
			To:        address,
			Value:     gen.Balances[address],
			TimeStamp: uint64(gen.Date.Unix()),
		}
		trans = append(trans, tx)
	}

	return Block{
		Header: BlockHeader{
			Number:        1,
			TimeStamp:     uint64(gen.Date.Unix()),
			PrevBlockHash: signature.ZeroHash,
			Proof:         genesisProof,
		},
		Trans: trans,
	}
}

// validateGenesisBlock checks the genesis conventions: first position,
// zero previous hash, and the fixed genesis proof.
func validateGenesisBlock(b Block) error {
	if b.Header.Number != 1 {
		return fmt.Errorf("genesis block number is %d, expected 1", b.Header.Number)
	}
	if b.Header.PrevBlockHash != signature.ZeroHash {
		return fmt.Errorf("genesis block parent hash is %s, expected the zero hash", b.Header.PrevBlockHash)
	}
	if b.Header.Proof != genesisProof {
		return fmt.Errorf("genesis block proof is %d, expected %d", b.Header.Proof, genesisProof)
	}

	return nil
}

// ValidateChain checks an entire block sequence: the genesis conventions,
// the hash link between every adjacent pair, and the proof of work
// predicate for every block after genesis. It is a pure function of the
// sequence and does not mutate it.
func ValidateChain(blocks []Block, difficulty uint) error {
	if len(blocks) == 0 {
		return fmt.Errorf("chain has no blocks")
	}

	if err := validateGenesisBlock(blocks[0]); err != nil {
		return err
	}

	for i := 1; i < len(blocks); i++ {
		block := blocks[i]
		prevBlock := blocks[i-1]

		if block.Header.Number != prevBlock.Header.Number+1 {
			return fmt.Errorf("block %d is not the next number, got %d, exp %d", i, block.Header.Number, prevBlock.Header.Number+1)
		}

		if block.Header.PrevBlockHash != prevBlock.Hash() {
			return fmt.Errorf("block %d parent hash doesn't match parent block, got %s, exp %s", block.Header.Number, block.Header.PrevBlockHash, prevBlock.Hash())
		}

		if !IsValidProof(prevBlock.Header.Proof, block.Header.Proof, difficulty) {
			return fmt.Errorf("block %d proof %d does not satisfy the work rule", block.Header.Number, block.Header.Proof)
		}
	}

	return nil
}
