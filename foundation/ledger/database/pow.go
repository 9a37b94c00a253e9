package database

import (
	"context"
	"time"

	"github.com/ardanlabs/ledger/foundation/ledger/signature"
)

// POW constructs the next block in the chain and performs the work to find
// a proof that solves the cryptographic puzzle. The search is a linear scan
// starting at zero, so the proof that is found is the smallest satisfying
// value and any two nodes mining on the same parent find the same proof.
func POW(ctx context.Context, difficulty uint, prevBlock Block, trans []Tx, ev func(v string, args ...any)) (Block, error) {
	nb := Block{
		Header: BlockHeader{
			Number:        prevBlock.Header.Number + 1,
			TimeStamp:     uint64(time.Now().UTC().Unix()),
			PrevBlockHash: prevBlock.Hash(),
		},
		Trans: trans,
	}

	if err := nb.performPOW(ctx, difficulty, prevBlock.Header.Proof, ev); err != nil {
		return Block{}, err
	}

	return nb, nil
}

// performPOW does the work of mining to find a valid proof for a specified
// block. Pointer semantics are being used since a proof is being discovered.
func (b *Block) performPOW(ctx context.Context, difficulty uint, prevProof uint64, ev func(v string, args ...any)) error {
	ev("database: performPOW: MINING: started: blk[%d]", b.Header.Number)
	defer ev("database: performPOW: MINING: completed: blk[%d]", b.Header.Number)

	for proof := uint64(0); ; proof++ {
		if proof%1_000_000 == 0 && proof > 0 {
			ev("database: performPOW: MINING: attempts[%d]", proof)
		}

		// Did the caller give up on the search.
		if ctx.Err() != nil {
			ev("database: performPOW: MINING: CANCELLED")
			return ctx.Err()
		}

		if !IsValidProof(prevProof, proof, difficulty) {
			continue
		}

		ev("database: performPOW: MINING: SOLVED: proof[%d] attempts[%d]", proof, proof+1)
		b.Header.Proof = proof

		return nil
	}
}

// IsValidProof checks a candidate proof against the previous block's proof.
// The predicate is cheap to verify and expensive to search.
func IsValidProof(prevProof uint64, proof uint64, difficulty uint) bool {
	return isHashSolved(difficulty, signature.HashProofPair(prevProof, proof))
}

// isHashSolved checks the hash to make sure it complies with
// the POW rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "00000000000000000"

	// Hashes are hex encoded with a 0x prefix.
	if len(hash) != 66 || difficulty > uint(len(match)) {
		return false
	}

	return hash[2:2+difficulty] == match[:difficulty]
}
