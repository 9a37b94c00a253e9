// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the genesis file. Every node on the same network must
// run with an identical genesis document or the genesis blocks won't match
// and the nodes will never agree on a chain.
type Genesis struct {
	Date          time.Time         `json:"date"`
	ChainID       uint16            `json:"chain_id"`        // An unique id for this running network.
	Difficulty    uint              `json:"difficulty"`      // Number of leading 0's needed to solve the work problem.
	MiningReward  uint64            `json:"mining_reward"`   // Reward for mining a block.
	TransPerBlock int               `json:"trans_per_block"` // The maximum number of transactions that can be in a block.
	Balances      map[string]uint64 `json:"balances"`        // Premined balances credited inside the genesis block.
}

// Default returns the genesis document compiled into the node. It is used
// when no genesis file is configured, which keeps a single-node dev setup
// to just running the binary.
func Default() Genesis {
	return Genesis{
		Date:          time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		ChainID:       1,
		Difficulty:    3,
		MiningReward:  50,
		TransPerBlock: 100,
		Balances: map[string]uint64{
			"genesis": 5000,
		},
	}
}

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
