package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2025-CapStone-1-Pokemon/battlecore/battle"
)

// HTTPOracle is the reference implementation of the pruning oracle's wire
// contract (spec §6.4): request carries a summary of the BattleState plus
// the candidate action ids, response carries the pruned ids as a JSON object
// `{"pruned_action_ids": [...]}` — the reference representation; the wire
// format itself is otherwise free per spec.
//
// The oracle is treated as "a single well-contained failure boundary with
// aggressive timeouts" (DESIGN NOTES §9): every call is bounded by Timeout,
// and any transport/decode error is returned to the caller rather than
// silently swallowed here — the "no actions pruned" fallback lives at the
// search's call site (spec §7), keeping this type a thin, honest transport.
type HTTPOracle struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

// NewHTTPOracle builds an HTTPOracle with a default 200ms timeout and the
// shared *http.Client if client is nil.
func NewHTTPOracle(url string, client *http.Client, timeout time.Duration) *HTTPOracle {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 200 * time.Millisecond
	}
	return &HTTPOracle{URL: url, Client: client, Timeout: timeout}
}

type pruneRequest struct {
	Turn              int      `json:"turn"`
	OwnSpecies        string   `json:"own_species"`
	OwnHPRatio        float64  `json:"own_hp_ratio"`
	OppSpecies        string   `json:"opponent_species"`
	OppHPRatio        float64  `json:"opponent_hp_ratio"`
	CandidateActionID []string `json:"candidate_action_ids"`
}

type pruneResponse struct {
	PrunedActionIDs []string `json:"pruned_action_ids"`
}

// Prune sends state and candidates to the configured endpoint and returns
// the set of candidate ids the oracle wants removed. ctx bounds the whole
// call together with o.Timeout, whichever is tighter.
func (o *HTTPOracle) Prune(ctx context.Context, state *battle.State, candidates []battle.Action) (map[string]bool, error) {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	req := pruneRequest{Turn: state.Turn}
	if own := state.Active(battle.Own); own != nil {
		req.OwnSpecies = own.Species
		req.OwnHPRatio = float64(own.CurrentHP) / float64(own.MaxHP)
	}
	if opp := state.Active(battle.Opp); opp != nil {
		req.OppSpecies = opp.Species
		req.OppHPRatio = float64(opp.CurrentHP) / float64(opp.MaxHP)
	}
	for _, c := range candidates {
		if id := c.ID(); id != "" {
			req.CandidateActionID = append(req.CandidateActionID, id)
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("oracle: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("oracle: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("oracle: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle: unexpected status %d", resp.StatusCode)
	}

	var out pruneResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("oracle: decode response: %w", err)
	}

	pruned := make(map[string]bool, len(out.PrunedActionIDs))
	for _, id := range out.PrunedActionIDs {
		pruned[id] = true
	}
	return pruned, nil
}
