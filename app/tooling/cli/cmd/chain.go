package cmd

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the node's chain.",
	Run:   chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func chainRun(cmd *cobra.Command, args []string) {
	var chain struct {
		Length int              `json:"length"`
		Blocks []database.Block `json:"blocks"`
	}
	if err := httpGet("/chain", &chain); err != nil {
		log.Fatal(err)
	}

	rows := pterm.TableData{
		{"Block", "Mined", "Trans", "Proof", "Hash"},
	}
	for _, block := range chain.Blocks {
		rows = append(rows, []string{
			strconv.FormatUint(block.Header.Number, 10),
			time.Unix(int64(block.Header.TimeStamp), 0).UTC().Format(time.RFC3339),
			strconv.Itoa(len(block.Trans)),
			strconv.FormatUint(block.Header.Proof, 10),
			block.Hash()[:18] + "...",
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("length:", chain.Length)
}
