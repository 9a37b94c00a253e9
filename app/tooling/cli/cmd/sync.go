package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run consensus resolution against the registered peers.",
	Run:   syncRun,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func syncRun(cmd *cobra.Command, args []string) {
	var result struct {
		Replaced bool `json:"replaced"`
		Length   int  `json:"length"`
	}
	if err := httpGet("/sync", &result); err != nil {
		log.Fatal(err)
	}

	fmt.Println("replaced:", result.Replaced)
	fmt.Println("length:", result.Length)
}
