package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var nodesAdd string

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Print the registered peers, optionally registering a new one.",
	Run:   nodesRun,
}

func init() {
	rootCmd.AddCommand(nodesCmd)
	nodesCmd.Flags().StringVarP(&nodesAdd, "add", "a", "", "Peer host to register first.")
}

func nodesRun(cmd *cobra.Command, args []string) {
	var result struct {
		Nodes []string `json:"nodes"`
	}

	if nodesAdd != "" {
		body := struct {
			Node string `json:"node"`
		}{
			Node: nodesAdd,
		}
		if err := httpPost("/register_node", body, &result); err != nil {
			log.Fatal(err)
		}
	} else {
		if err := httpGet("/nodes", &result); err != nil {
			log.Fatal(err)
		}
	}

	for _, node := range result.Nodes {
		fmt.Println(node)
	}
}
