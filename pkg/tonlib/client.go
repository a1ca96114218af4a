package tonlib

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// Client executes single naming-registry lookups and liveness probes against
// the ledger. An empty resolverAddress means the root registry.
type Client interface {
	Query(ctx context.Context, resolverAddress, name string, category [32]byte, ttlHint int32) ([]Entry, error)
	Sync(ctx context.Context) error
}

// RPCClient is a Client backed by a tonlib JSON-RPC gateway.
type RPCClient struct {
	rpc *rpc.Client
}

// NewClient connects to the tonlib gateway at rpcURL.
func NewClient(rpcURL string) (*RPCClient, error) {
	c, err := rpc.Dial(rpcURL)
	if err != nil {
		return nil, err
	}
	return &RPCClient{rpc: c}, nil
}

// Close closes the gateway connection.
func (c *RPCClient) Close() {
	c.rpc.Close()
}

// Query runs one dns_resolve call against the given registry contract
// (or the root registry when resolverAddress is empty).
func (c *RPCClient) Query(ctx context.Context, resolverAddress, name string, category [32]byte, ttlHint int32) ([]Entry, error) {
	var resolver interface{}
	if resolverAddress != "" {
		resolver = resolverAddress
	}

	var raw json.RawMessage
	err := c.rpc.CallContext(ctx, &raw, "dns_resolve", resolver, name, hexutil.Bytes(category[:]), ttlHint)
	if err != nil {
		return nil, err
	}
	return DecodeEntries(raw)
}

// Sync asks the gateway to catch up with the ledger; it returns once the
// gateway reports a synchronized block, or an error.
func (c *RPCClient) Sync(ctx context.Context) error {
	var blockID json.RawMessage
	return c.rpc.CallContext(ctx, &blockID, "ton_sync")
}

// IsUnregistered reports whether a lookup error means the queried contract
// simply does not exist on the ledger, as opposed to a transport or
// execution failure.
func IsUnregistered(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "uninitialized") ||
		strings.Contains(msg, "not initialized") ||
		strings.Contains(msg, "account does not exist") ||
		strings.Contains(msg, "unknown account")
}
