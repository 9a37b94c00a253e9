// Package cmd contains the client commands for talking to a running node.
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var url string

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
}

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "A client for a running ledger node",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// httpGet performs a GET against the node and decodes the JSON response.
func httpGet(path string, dataRecv any) error {
	resp, err := http.Get(url + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, dataRecv)
}

// httpPost performs a POST against the node and decodes the JSON response.
func httpPost(path string, dataSend any, dataRecv any) error {
	data, err := json.Marshal(dataSend)
	if err != nil {
		return err
	}

	resp, err := http.Post(url+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, dataRecv)
}

func decode(resp *http.Response, dataRecv any) error {
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("node returned %d: %s", resp.StatusCode, string(msg))
	}

	if dataRecv == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(dataRecv)
}
