package balance_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/ledger/balance"
	"github.com/ardanlabs/ledger/foundation/ledger/database"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func newTx(t *testing.T, from string, to string, value uint64) database.Tx {
	t.Helper()

	tx, err := database.NewTx(from, to, value)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a transaction: %v", failed, err)
	}

	return tx
}

func Test_Replay(t *testing.T) {
	t.Log("Given the need to derive balances by replaying the chain.")
	{
		t.Logf("\tTest 0:\tWhen replaying a transfer and a mining reward.")
		{
			blocks := []database.Block{
				{Trans: []database.Tx{
					newTx(t, "aaron", "bill", 10),
					database.NewRewardTx("miner1", 50),
				}},
			}

			sheet := balance.NewSheet(blocks)

			if got := sheet.Balance("bill"); got != 10 {
				t.Errorf("\t%s\tTest 0:\tShould credit the recipient 10, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould credit the recipient 10.", success)
			}

			// The sender had no funds, so the transfer drives the
			// balance negative.
			if got := sheet.Balance("aaron"); got != -10 {
				t.Errorf("\t%s\tTest 0:\tShould debit the sender to -10, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould debit the sender to -10.", success)
			}

			if got := sheet.Balance("miner1"); got != 50 {
				t.Errorf("\t%s\tTest 0:\tShould credit the miner the reward, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould credit the miner the reward.", success)
			}

			// The reward sentinel is never debited.
			if got := sheet.Balance(database.RewardAccount); got != 0 {
				t.Errorf("\t%s\tTest 0:\tShould never debit the reward sentinel, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould never debit the reward sentinel.", success)
			}

			if got := sheet.Balance("nobody"); got != 0 {
				t.Errorf("\t%s\tTest 0:\tShould report zero for an unknown address, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould report zero for an unknown address.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen replaying transfers spread across blocks.")
		{
			blocks := []database.Block{
				{Trans: []database.Tx{
					newTx(t, "aaron", "bill", 30),
					database.NewRewardTx("miner1", 50),
				}},
				{Trans: []database.Tx{
					newTx(t, "bill", "cindy", 5),
					newTx(t, "bill", "aaron", 10),
					database.NewRewardTx("miner1", 50),
				}},
			}

			sheet := balance.NewSheet(blocks)

			if got := sheet.Balance("aaron"); got != -20 {
				t.Errorf("\t%s\tTest 1:\tShould net the sender to -20, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 1:\tShould net the sender to -20.", success)
			}

			if got := sheet.Balance("bill"); got != 15 {
				t.Errorf("\t%s\tTest 1:\tShould net bill to 15, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 1:\tShould net bill to 15.", success)
			}

			if got := sheet.Balance("miner1"); got != 100 {
				t.Errorf("\t%s\tTest 1:\tShould accumulate rewards across blocks, got %d.", failed, got)
			} else {
				t.Logf("\t%s\tTest 1:\tShould accumulate rewards across blocks.", success)
			}

			// Every unit credited was debited somewhere except rewards,
			// so the sheet sums to the total rewards issued.
			var sum int64
			for _, value := range sheet.Copy() {
				sum += value
			}
			if sum != 100 {
				t.Errorf("\t%s\tTest 1:\tShould sum the sheet to the rewards issued, got %d.", failed, sum)
			} else {
				t.Logf("\t%s\tTest 1:\tShould sum the sheet to the rewards issued.", success)
			}
		}
	}
}
