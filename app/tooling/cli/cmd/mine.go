package cmd

import (
	"fmt"
	"log"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/spf13/cobra"
)

var mineMiner string

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the pending pool into a new block.",
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
	mineCmd.Flags().StringVarP(&mineMiner, "miner", "m", "", "Address credited with the mining reward.")
	mineCmd.MarkFlagRequired("miner")
}

func mineRun(cmd *cobra.Command, args []string) {
	body := struct {
		Miner string `json:"miner"`
	}{
		Miner: mineMiner,
	}

	var result struct {
		Hash  string         `json:"hash"`
		Block database.Block `json:"block"`
	}
	if err := httpPost("/mine", body, &result); err != nil {
		log.Fatal(err)
	}

	fmt.Println("mined block:", result.Block.Header.Number)
	fmt.Println("proof:", result.Block.Header.Proof)
	fmt.Println("hash:", result.Hash)
}
