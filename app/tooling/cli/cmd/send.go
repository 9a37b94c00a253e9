package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	sendFrom  string
	sendTo    string
	sendValue int64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transaction to the pending pool.",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&sendFrom, "from", "f", "", "Address sending the value.")
	sendCmd.Flags().StringVarP(&sendTo, "to", "t", "", "Address receiving the value.")
	sendCmd.Flags().Int64VarP(&sendValue, "value", "v", 0, "Value to send.")
	sendCmd.MarkFlagRequired("from")
	sendCmd.MarkFlagRequired("to")
}

func sendRun(cmd *cobra.Command, args []string) {
	body := struct {
		Sender    string `json:"sender"`
		Recipient string `json:"recipient"`
		Amount    int64  `json:"amount"`
	}{
		Sender:    sendFrom,
		Recipient: sendTo,
		Amount:    sendValue,
	}

	var result struct {
		Status      string `json:"status"`
		BlockNumber uint64 `json:"block_number"`
	}
	if err := httpPost("/transactions/new", body, &result); err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Status)
	fmt.Println("expected block:", result.BlockNumber)
}
