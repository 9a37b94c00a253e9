package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Print the derived balance for an address.",
	Args:  cobra.ExactArgs(1),
	Run:   balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) {
	var result struct {
		Address string `json:"address"`
		Balance int64  `json:"balance"`
	}
	if err := httpGet("/balance/"+args[0], &result); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %d\n", result.Address, result.Balance)
}
