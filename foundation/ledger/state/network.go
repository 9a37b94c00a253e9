package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/foundation/ledger/database"
	"github.com/ardanlabs/ledger/foundation/ledger/peer"
	"github.com/cenkalti/backoff/v4"
)

const baseURL = "http://%s"

// Peer calls are kept short and retried a couple of times. Anything still
// failing after that is reported to the caller, who skips the peer.
const (
	sendTimeout   = 2 * time.Second
	sendRetryWait = 250 * time.Millisecond
	sendRetryMax  = 2
)

// PeerChain is the wire shape of a node's /chain endpoint.
type PeerChain struct {
	Length int              `json:"length"`
	Blocks []database.Block `json:"blocks"`
}

// NetRequestPeerChain fetches the full chain from the specified peer.
func (s *State) NetRequestPeerChain(ctx context.Context, pr peer.Peer) ([]database.Block, error) {
	s.evHandler("state: NetRequestPeerChain: started: %s", pr.Host)
	defer s.evHandler("state: NetRequestPeerChain: completed: %s", pr.Host)

	url := fmt.Sprintf("%s/chain", fmt.Sprintf(baseURL, pr.Host))

	var pc PeerChain
	if err := send(ctx, http.MethodGet, url, nil, &pc); err != nil {
		return nil, err
	}

	if pc.Length != len(pc.Blocks) {
		return nil, fmt.Errorf("peer reported length %d but sent %d blocks", pc.Length, len(pc.Blocks))
	}

	return pc.Blocks, nil
}

// NetRequestPeerStatus retrieves the chain summary from the specified peer.
func (s *State) NetRequestPeerStatus(ctx context.Context, pr peer.Peer) (peer.PeerStatus, error) {
	s.evHandler("state: NetRequestPeerStatus: started: %s", pr.Host)
	defer s.evHandler("state: NetRequestPeerStatus: completed: %s", pr.Host)

	url := fmt.Sprintf("%s/node/status", fmt.Sprintf(baseURL, pr.Host))

	var ps peer.PeerStatus
	if err := send(ctx, http.MethodGet, url, nil, &ps); err != nil {
		return peer.PeerStatus{}, err
	}

	return ps, nil
}

// NetSendBlockToPeers shares a freshly mined block with the known peers.
// Failures are logged and skipped; a peer that misses the push catches up
// through consensus polling.
func (s *State) NetSendBlockToPeers(ctx context.Context, block database.Block) {
	s.evHandler("state: NetSendBlockToPeers: started: blk[%d]", block.Header.Number)
	defer s.evHandler("state: NetSendBlockToPeers: completed")

	for _, pr := range s.knownPeers.Copy(s.host) {
		url := fmt.Sprintf("%s/node/block/propose", fmt.Sprintf(baseURL, pr.Host))
		if err := send(ctx, http.MethodPost, url, block, nil); err != nil {
			s.evHandler("state: NetSendBlockToPeers: WARNING: peer[%s]: %s", pr.Host, err)
		}
	}
}

// NetSendTxToPeers shares a new transaction with the known peers so any of
// them can mine it.
func (s *State) NetSendTxToPeers(ctx context.Context, tx database.Tx) {
	s.evHandler("state: NetSendTxToPeers: started: tx[%s]", tx.ID)
	defer s.evHandler("state: NetSendTxToPeers: completed")

	for _, pr := range s.knownPeers.Copy(s.host) {
		url := fmt.Sprintf("%s/node/tx/share", fmt.Sprintf(baseURL, pr.Host))
		if err := send(ctx, http.MethodPost, url, tx, nil); err != nil {
			s.evHandler("state: NetSendTxToPeers: WARNING: peer[%s]: %s", pr.Host, err)
		}
	}
}

// =============================================================================

// send is a helper function to send an HTTP request to a node, retrying
// with a constant backoff on failure.
func send(ctx context.Context, method string, url string, dataSend any, dataRecv any) error {
	var body []byte
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		body = data
	}

	op := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		client := http.Client{Timeout: sendTimeout}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNoContent {
			return nil
		}

		if resp.StatusCode != http.StatusOK {
			msg, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			return backoff.Permanent(errors.New(string(msg)))
		}

		if dataRecv != nil {
			if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
				return err
			}
		}

		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(sendRetryWait), sendRetryMax), ctx)
	return backoff.Retry(op, b)
}
