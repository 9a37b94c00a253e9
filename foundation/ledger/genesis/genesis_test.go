package genesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/ledger/foundation/ledger/genesis"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Load(t *testing.T) {
	t.Log("Given the need to load a genesis document from disk.")
	{
		t.Logf("\tTest 0:\tWhen loading a well formed genesis file.")
		{
			doc := `{
				"date": "2025-01-01T00:00:00Z",
				"chain_id": 7,
				"difficulty": 2,
				"mining_reward": 25,
				"trans_per_block": 10,
				"balances": {
					"genesis": 1000
				}
			}`

			path := filepath.Join(t.TempDir(), "genesis.json")
			if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to write the genesis file: %v", failed, err)
			}

			gen, err := genesis.Load(path)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to load the genesis file: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to load the genesis file.", success)

			if gen.ChainID != 7 || gen.Difficulty != 2 || gen.MiningReward != 25 || gen.TransPerBlock != 10 {
				t.Errorf("\t%s\tTest 0:\tShould decode the document fields, got %+v.", failed, gen)
			} else {
				t.Logf("\t%s\tTest 0:\tShould decode the document fields.", success)
			}

			if gen.Balances["genesis"] != 1000 {
				t.Errorf("\t%s\tTest 0:\tShould decode the premined balances, got %d.", failed, gen.Balances["genesis"])
			} else {
				t.Logf("\t%s\tTest 0:\tShould decode the premined balances.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen the genesis file is missing.")
		{
			if _, err := genesis.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould report an error for a missing file.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould report an error for a missing file.", success)
		}
	}
}
