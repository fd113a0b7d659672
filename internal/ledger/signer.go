package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSigner forwards Move calls to an external wallet bridge that holds
// the keys, signs, submits, and returns the raw transaction result. The
// bridge is the wallet-connector boundary; this module never sees key
// material.
type HTTPSigner struct {
	http *http.Client
	url  string
}

func NewHTTPSigner(url string, timeout time.Duration) *HTTPSigner {
	return &HTTPSigner{
		http: &http.Client{Timeout: timeout},
		url:  url,
	}
}

func (s *HTTPSigner) SignAndExecute(ctx context.Context, call MoveCall) (json.RawMessage, error) {
	if s.url == "" {
		return nil, ErrNoWallet
	}

	body, err := json.Marshal(call)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal move call: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build signer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wallet signer unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read signer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wallet signer rejected transaction: status %d", resp.StatusCode)
	}

	return raw, nil
}
