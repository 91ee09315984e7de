package solana

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sisu-network/lib/log"
	solanatypes "github.com/solana-turbin3/Q4-25-Builder-tSMBoA/chains/solana/types"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/config"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
	"github.com/ybbus/jsonrpc/v3"
)

type defaultClient struct {
	pool          *clientPool
	commitment    types.Commitment
	skipPreflight bool
}

func NewClient(cfg config.Solana) Client {
	return NewClientWithHttp(cfg, nil)
}

// NewClientWithHttp creates a client whose endpoints share the given http client. A nil http
// client uses the jsonrpc default.
func NewClientWithHttp(cfg config.Solana, httpClient *http.Client) Client {
	cfg = cfg.WithDefaults()
	clients := make([]jsonrpc.RPCClient, 0, len(cfg.Rpcs))
	for _, url := range cfg.Rpcs {
		clients = append(clients, jsonrpc.NewClientWithOpts(url, &jsonrpc.RPCClientOpts{
			HTTPClient: httpClient,
		}))
	}

	return &defaultClient{
		pool:          newClientPool(clients),
		commitment:    cfg.GetCommitment(),
		skipPreflight: cfg.SkipPreflight,
	}
}

// call runs one JSON-RPC method against the pool. An error object from a node stops the failover
// since every node would evaluate the request the same way.
func (c *defaultClient) call(ctx context.Context, method string, result interface{}, params ...interface{}) error {
	_, err := executeWithClients(ctx, c.pool, func(client jsonrpc.RPCClient) (bool, bool, error) {
		res, err := client.Call(ctx, method, params)
		if res != nil && res.Error != nil {
			return false, true, &types.RpcError{
				Code:    res.Error.Code,
				Message: res.Error.Message,
				Data:    res.Error.Data,
			}
		}

		if err != nil {
			log.Verbosef("Failed to call %s, err = %v", method, err)
			return false, false, errors.Wrapf(err, "failed to call %s", method)
		}

		if res == nil {
			return false, false, errors.Errorf("empty response for %s", method)
		}

		if err := res.GetObject(result); err != nil {
			return false, true, errors.Wrapf(err, "failed to decode %s result", method)
		}

		return true, true, nil
	})

	return err
}

func (c *defaultClient) commitmentConfig() solanatypes.CommitmentConfig {
	return solanatypes.CommitmentConfig{Commitment: string(c.commitment)}
}

func (c *defaultClient) RequestAirdrop(ctx context.Context, addr types.Address, lamports uint64) (types.Signature, error) {
	var sig string
	if err := c.call(ctx, "requestAirdrop", &sig, addr.String(), lamports, c.commitmentConfig()); err != nil {
		return types.Signature{}, err
	}

	return types.SignatureFromBase58(sig)
}

func (c *defaultClient) GetLatestBlockhash(ctx context.Context) (*types.Blockhash, error) {
	result := new(solanatypes.LatestBlockhashResult)
	if err := c.call(ctx, "getLatestBlockhash", result, c.commitmentConfig()); err != nil {
		return nil, err
	}

	hash, err := types.HashFromBase58(result.Value.Blockhash)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid blockhash %q", result.Value.Blockhash)
	}

	return &types.Blockhash{
		Hash:                 hash,
		LastValidBlockHeight: result.Value.LastValidBlockHeight,
	}, nil
}

func (c *defaultClient) GetBalance(ctx context.Context, addr types.Address) (uint64, error) {
	result := new(solanatypes.BalanceResult)
	if err := c.call(ctx, "getBalance", result, addr.String(), c.commitmentConfig()); err != nil {
		return 0, err
	}

	return result.Value, nil
}

func (c *defaultClient) GetFeeForMessage(ctx context.Context, message []byte) (*uint64, error) {
	result := new(solanatypes.FeeForMessageResult)
	encoded := base64.StdEncoding.EncodeToString(message)
	if err := c.call(ctx, "getFeeForMessage", result, encoded, c.commitmentConfig()); err != nil {
		return nil, err
	}

	return result.Value, nil
}

func (c *defaultClient) SendTransaction(ctx context.Context, tx []byte) (types.Signature, error) {
	var sig string
	cfg := solanatypes.SendTransactionConfig{
		Encoding:            "base64",
		SkipPreflight:       c.skipPreflight,
		PreflightCommitment: string(c.commitment),
	}
	encoded := base64.StdEncoding.EncodeToString(tx)
	if err := c.call(ctx, "sendTransaction", &sig, encoded, cfg); err != nil {
		return types.Signature{}, err
	}

	return types.SignatureFromBase58(sig)
}

func (c *defaultClient) GetSignatureStatus(ctx context.Context, sig types.Signature) (*solanatypes.SignatureStatus, error) {
	result := new(solanatypes.SignatureStatusesResult)
	cfg := solanatypes.SignatureStatusesConfig{SearchTransactionHistory: false}
	if err := c.call(ctx, "getSignatureStatuses", result, []string{sig.String()}, cfg); err != nil {
		return nil, err
	}

	if len(result.Value) == 0 {
		return nil, nil
	}

	return result.Value[0], nil
}

func (c *defaultClient) GetBlockHeight(ctx context.Context) (uint64, error) {
	var height uint64
	if err := c.call(ctx, "getBlockHeight", &height, c.commitmentConfig()); err != nil {
		return 0, err
	}

	return height, nil
}
