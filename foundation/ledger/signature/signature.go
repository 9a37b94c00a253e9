// Package signature provides canonical serialization and hashing support
// for the ledger.
package signature

import (
	"crypto/sha256"
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns a unique string for the value. The value is serialized with
// the standard library JSON encoder, which writes struct fields in
// declaration order, so two logically equal values always produce the same
// bytes and therefore the same hash.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}

// HashProofPair hashes the decimal concatenation of the previous block's
// proof and a candidate proof. The proof of work predicate is defined over
// this digest.
func HashProofPair(prevProof uint64, proof uint64) string {
	data := []byte(strconv.FormatUint(prevProof, 10) + strconv.FormatUint(proof, 10))

	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}
