package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/pkg/errors"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/config"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
	"github.com/stretchr/testify/require"
)

const (
	testRpc1 = "http://rpc1.local/rpc"
	testRpc2 = "http://rpc2.local/rpc"

	testSignature = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

func rpcResult(result interface{}) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		return httpmock.NewJsonResponse(200, map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      0,
			"result":  result,
		})
	}
}

func rpcFailure(code int, message string) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		return httpmock.NewJsonResponse(200, map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      0,
			"error": map[string]interface{}{
				"code":    code,
				"message": message,
			},
		})
	}
}

// recordRequests wraps a responder and keeps every decoded request.
func recordRequests(t *testing.T, requests *[]rpcRequest, responder httpmock.Responder) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		var r rpcRequest
		require.Nil(t, json.NewDecoder(req.Body).Decode(&r))
		*requests = append(*requests, r)
		return responder(req)
	}
}

func newTestClient(urls ...string) (*defaultClient, *httpmock.MockTransport) {
	transport := httpmock.NewMockTransport()
	cfg := config.Default().Solana
	cfg.Rpcs = urls
	client := NewClientWithHttp(cfg, &http.Client{Transport: transport})

	return client.(*defaultClient), transport
}

func TestGetLatestBlockhash(t *testing.T) {
	client, transport := newTestClient(testRpc1)
	var requests []rpcRequest
	transport.RegisterResponder("POST", testRpc1, recordRequests(t, &requests, rpcResult(map[string]interface{}{
		"context": map[string]interface{}{"slot": 100},
		"value": map[string]interface{}{
			"blockhash":            "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N",
			"lastValidBlockHeight": 3090,
		},
	})))

	blockhash, err := client.GetLatestBlockhash(context.Background())
	require.Nil(t, err)
	require.Equal(t, "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N", blockhash.Hash.String())
	require.Equal(t, uint64(3090), blockhash.LastValidBlockHeight)

	require.Len(t, requests, 1)
	require.Equal(t, "getLatestBlockhash", requests[0].Method)
	require.JSONEq(t, `{"commitment":"confirmed"}`, string(requests[0].Params[0]))
}

func TestGetBalance(t *testing.T) {
	client, transport := newTestClient(testRpc1)
	var requests []rpcRequest
	transport.RegisterResponder("POST", testRpc1, recordRequests(t, &requests, rpcResult(map[string]interface{}{
		"context": map[string]interface{}{"slot": 1},
		"value":   2_000_000_000,
	})))

	addr := types.MustAddressFromBase58("CvocQ9ivbdz5rUnTh6zBgxaiR4asMNbXRrG2VPUYpoau")
	balance, err := client.GetBalance(context.Background(), addr)
	require.Nil(t, err)
	require.Equal(t, uint64(2_000_000_000), balance)
	require.Equal(t, `"CvocQ9ivbdz5rUnTh6zBgxaiR4asMNbXRrG2VPUYpoau"`, string(requests[0].Params[0]))
}

func TestGetFeeForMessage(t *testing.T) {
	client, transport := newTestClient(testRpc1)
	var requests []rpcRequest
	transport.RegisterResponder("POST", testRpc1, recordRequests(t, &requests, rpcResult(map[string]interface{}{
		"context": map[string]interface{}{"slot": 1},
		"value":   5000,
	})))

	message := []byte{1, 2, 3}
	fee, err := client.GetFeeForMessage(context.Background(), message)
	require.Nil(t, err)
	require.NotNil(t, fee)
	require.Equal(t, uint64(5000), *fee)

	var encoded string
	require.Nil(t, json.Unmarshal(requests[0].Params[0], &encoded))
	require.Equal(t, base64.StdEncoding.EncodeToString(message), encoded)

	// Unknown blockhash.
	transport.RegisterResponder("POST", testRpc1, rpcResult(map[string]interface{}{
		"context": map[string]interface{}{"slot": 1},
		"value":   nil,
	}))
	fee, err = client.GetFeeForMessage(context.Background(), message)
	require.Nil(t, err)
	require.Nil(t, fee)
}

func TestSendTransaction(t *testing.T) {
	client, transport := newTestClient(testRpc1)
	var requests []rpcRequest
	transport.RegisterResponder("POST", testRpc1, recordRequests(t, &requests, rpcResult(testSignature)))

	sig, err := client.SendTransaction(context.Background(), []byte{9, 9})
	require.Nil(t, err)
	require.Equal(t, testSignature, sig.String())

	require.Equal(t, "sendTransaction", requests[0].Method)
	require.JSONEq(t, `{"encoding":"base64","skipPreflight":false,"preflightCommitment":"confirmed"}`,
		string(requests[0].Params[1]))
}

func TestSendTransactionPreflightFailure(t *testing.T) {
	client, transport := newTestClient(testRpc1, testRpc2)
	var requests []rpcRequest
	responder := recordRequests(t, &requests,
		rpcFailure(types.RpcCodeSendTransactionPreflight, "Transaction simulation failed: Blockhash not found"))
	transport.RegisterResponder("POST", testRpc1, responder)
	transport.RegisterResponder("POST", testRpc2, responder)

	_, err := client.SendTransaction(context.Background(), []byte{9, 9})
	var rpcErr *types.RpcError
	require.True(t, errors.As(err, &rpcErr))
	require.Equal(t, types.RpcCodeSendTransactionPreflight, rpcErr.Code)
	require.Equal(t, "Transaction simulation failed: Blockhash not found", rpcErr.Message)

	// An error object stops the failover.
	require.Len(t, requests, 1)
}

func TestGetSignatureStatus(t *testing.T) {
	client, transport := newTestClient(testRpc1)
	transport.RegisterResponder("POST", testRpc1, rpcResult(map[string]interface{}{
		"context": map[string]interface{}{"slot": 82},
		"value": []interface{}{
			map[string]interface{}{
				"slot":               72,
				"confirmations":      10,
				"err":                map[string]interface{}{"InstructionError": []interface{}{0, map[string]interface{}{"Custom": 1}}},
				"confirmationStatus": "confirmed",
			},
		},
	}))

	sig, err := types.SignatureFromBase58(testSignature)
	require.Nil(t, err)
	status, err := client.GetSignatureStatus(context.Background(), sig)
	require.Nil(t, err)
	require.Equal(t, uint64(72), status.Slot)
	require.Equal(t, types.CommitmentConfirmed, status.Commitment())
	require.JSONEq(t, `{"InstructionError":[0,{"Custom":1}]}`, status.ErrString())

	// Not seen by the node yet.
	transport.RegisterResponder("POST", testRpc1, rpcResult(map[string]interface{}{
		"context": map[string]interface{}{"slot": 82},
		"value":   []interface{}{nil},
	}))
	status, err = client.GetSignatureStatus(context.Background(), sig)
	require.Nil(t, err)
	require.Nil(t, status)
}

func TestFailoverOnTransportError(t *testing.T) {
	client, transport := newTestClient(testRpc1, testRpc2)
	transport.RegisterResponder("POST", testRpc1, httpmock.NewErrorResponder(errors.New("connection refused")))
	transport.RegisterResponder("POST", testRpc2, rpcResult(1234))

	// Both starting points of the rotation end at the healthy endpoint.
	for i := 0; i < 2; i++ {
		height, err := client.GetBlockHeight(context.Background())
		require.Nil(t, err)
		require.Equal(t, uint64(1234), height)
	}

	info := transport.GetCallCountInfo()
	require.Equal(t, 1, info["POST "+testRpc1])
	require.Equal(t, 2, info["POST "+testRpc2])
}

func TestAllEndpointsDown(t *testing.T) {
	client, transport := newTestClient(testRpc1, testRpc2)
	transport.RegisterResponder("POST", testRpc1, httpmock.NewErrorResponder(errors.New("connection refused")))
	transport.RegisterResponder("POST", testRpc2, httpmock.NewStringResponder(503, "unavailable"))

	_, err := client.GetBlockHeight(context.Background())
	require.NotNil(t, err)

	var rpcErr *types.RpcError
	require.False(t, errors.As(err, &rpcErr))
}
