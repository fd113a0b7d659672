package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

// Argument is one Move call argument: either an object reference or a
// pure value.
type Argument struct {
	Object string `json:"object,omitempty"`
	Pure   any    `json:"pure,omitempty"`
}

// MoveCall describes a transaction the wallet should sign and execute.
type MoveCall struct {
	Target    string     `json:"target"`
	Arguments []Argument `json:"arguments"`
}

// Signer is the wallet boundary: it signs a Move call and submits it,
// returning the raw transaction result payload. Out of scope for this
// module; real deployments plug in the wallet connector.
type Signer interface {
	SignAndExecute(ctx context.Context, call MoveCall) (json.RawMessage, error)
}

// RPCClient talks to a Sui-style fullnode over JSON-RPC for reads and
// delegates transaction submission to the Signer.
type RPCClient struct {
	http      *http.Client
	url       string
	packageID string
	wallet    string
	signer    Signer
}

func NewRPCClient(url, packageID, wallet string, timeout time.Duration, signer Signer) *RPCClient {
	return &RPCClient{
		http:      &http.Client{Timeout: timeout},
		url:       url,
		packageID: packageID,
		wallet:    wallet,
		signer:    signer,
	}
}

func (c *RPCClient) target(module, fn string) string {
	return fmt.Sprintf("%s::%s::%s", c.packageID, module, fn)
}

func (c *RPCClient) MintClientIdentity(ctx context.Context, displayName string) (string, error) {
	if c.wallet == "" {
		return "", ErrNoWallet
	}

	call := MoveCall{
		Target: c.target(identityModule, mintClientFn),
		Arguments: []Argument{
			{Pure: []byte(displayName)},
			{Pure: time.Now().Unix()},
		},
	}

	result, err := c.signer.SignAndExecute(ctx, call)
	if err != nil {
		return "", fmt.Errorf("mint transaction failed: %w", err)
	}

	if id := ExtractCreatedObjectID(result, ClientTypeSuffix); id != "" {
		return id, nil
	}

	// Some nodes omit object changes from the result; fall back to
	// querying owned objects for the freshly minted token.
	id, err := c.FindOwnedObject(ctx, c.wallet, ClientStructType(c.packageID))
	if err != nil {
		return "", fmt.Errorf("failed to locate minted identity token: %w", err)
	}
	return id, nil
}

func (c *RPCClient) FindOwnedObject(ctx context.Context, owner, structType string) (string, error) {
	if owner == "" {
		return "", ErrNoWallet
	}

	params := []any{
		owner,
		map[string]any{
			"filter":  map[string]any{"StructType": structType},
			"options": map[string]any{"showType": true},
		},
		nil,
		// Fullnodes cap the page size at 50; larger values error out.
		50,
	}

	var result ownedObjectsResult
	if err := c.rpc(ctx, "suix_getOwnedObjects", params, &result); err != nil {
		return "", err
	}

	id := LastOwnedObjectID(result)
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

func (c *RPCClient) CreateAppointment(ctx context.Context, clientID, providerName string, start, end int64) (string, error) {
	call := MoveCall{
		Target: c.target(appointmentsModule, createAppointmentFn),
		Arguments: []Argument{
			{Object: clientID},
			{Pure: providerName},
			{Pure: start},
			{Pure: end},
			{Pure: time.Now().Unix()},
		},
	}

	result, err := c.signer.SignAndExecute(ctx, call)
	if err != nil {
		return "", fmt.Errorf("create appointment transaction failed: %w", err)
	}

	// An empty id is not an error: the booking falls back to a local
	// identifier and the appointment stays untracked.
	id := ExtractCreatedObjectID(result, AppointmentTypeSuffix, LightAppointmentTypeSuffix)
	if id == "" {
		logger.WarnContext(ctx, "Appointment created but id not extractable from result")
	}
	return id, nil
}

func (c *RPCClient) CancelAppointment(ctx context.Context, clientID, appointmentID string) error {
	call := MoveCall{
		Target: c.target(appointmentsModule, cancelAppointmentFn),
		Arguments: []Argument{
			{Object: clientID},
			{Object: appointmentID},
		},
	}

	if _, err := c.signer.SignAndExecute(ctx, call); err != nil {
		return fmt.Errorf("cancel appointment transaction failed: %w", err)
	}
	return nil
}

func (c *RPCClient) CompleteAppointment(ctx context.Context, providerID, appointmentID string) error {
	call := MoveCall{
		Target: c.target(appointmentsModule, completeFn),
		Arguments: []Argument{
			{Object: providerID},
			{Object: appointmentID},
		},
	}

	if _, err := c.signer.SignAndExecute(ctx, call); err != nil {
		return fmt.Errorf("complete appointment transaction failed: %w", err)
	}
	return nil
}

func (c *RPCClient) GetAppointmentStatus(ctx context.Context, appointmentID string) (AppointmentStatus, error) {
	params := []any{
		appointmentID,
		map[string]any{"showContent": true},
	}

	var result objectResult
	if err := c.rpc(ctx, "sui_getObject", params, &result); err != nil {
		return 0, err
	}

	status, ok := ExtractObjectStatus(result)
	if !ok {
		return 0, ErrNotFound
	}
	return status, nil
}

// rpc performs one JSON-RPC 2.0 call and decodes the result field.
func (c *RPCClient) rpc(ctx context.Context, method string, params []any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rpc call %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc call %s failed with status %d", method, resp.StatusCode)
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode rpc response: %w", err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("rpc call %s failed: %s (code %d)", method, envelope.Error.Message, envelope.Error.Code)
	}

	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
