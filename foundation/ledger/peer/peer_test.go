package peer_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/ledger/peer"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Normalization(t *testing.T) {
	t.Log("Given the need to register the same node written different ways.")
	{
		tests := []struct {
			name string
			host string
			want string
		}{
			{"bare", "localhost:8080", "localhost:8080"},
			{"scheme", "http://localhost:8080", "localhost:8080"},
			{"slash", "http://localhost:8080/", "localhost:8080"},
			{"spaces", "  localhost:8080 ", "localhost:8080"},
		}

		for testID, tt := range tests {
			t.Logf("\tTest %d:\tWhen registering %q.", testID, tt.host)
			{
				p := peer.New(tt.host)
				if p.Host != tt.want {
					t.Errorf("\t%s\tTest %d:\tShould normalize to %q, got %q.", failed, testID, tt.want, p.Host)
				} else {
					t.Logf("\t%s\tTest %d:\tShould normalize to %q.", success, testID, tt.want)
				}
			}
		}
	}
}

func Test_PeerSet(t *testing.T) {
	t.Log("Given the need to maintain the set of known peers.")
	{
		t.Logf("\tTest 0:\tWhen adding peers to the set.")
		{
			ps := peer.NewPeerSet()

			if !ps.Add(peer.New("localhost:8080")) {
				t.Errorf("\t%s\tTest 0:\tShould report a new peer as added.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould report a new peer as added.", success)
			}

			// The same node registered with a scheme is still one peer.
			if ps.Add(peer.New("http://localhost:8080/")) {
				t.Errorf("\t%s\tTest 0:\tShould treat a duplicate registration as a no-op.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould treat a duplicate registration as a no-op.", success)
			}

			ps.Add(peer.New("localhost:8081"))

			if ps.Count() != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould have 2 known peers, got %d.", failed, ps.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould have 2 known peers.", success)
		}

		t.Logf("\tTest 1:\tWhen copying the set for outbound calls.")
		{
			ps := peer.NewPeerSet()
			ps.Add(peer.New("localhost:8080"))
			ps.Add(peer.New("localhost:8081"))

			peers := ps.Copy("localhost:8080")
			if len(peers) != 1 || peers[0].Host != "localhost:8081" {
				t.Fatalf("\t%s\tTest 1:\tShould exclude the local host from the copy.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould exclude the local host from the copy.", success)
		}
	}
}
