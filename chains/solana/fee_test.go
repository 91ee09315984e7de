package solana

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/instruction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/keys"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/transaction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
	"github.com/stretchr/testify/require"
)

func transferMessage(t *testing.T, blockhash types.Hash) *transaction.Message {
	payer := keys.Generate().Address()
	ix := instruction.Transfer(payer, keys.Generate().Address(), 10)
	msg, err := transaction.NewMessage([]*instruction.Instruction{ix}, payer, &types.Blockhash{Hash: blockhash, LastValidBlockHeight: 300})
	require.Nil(t, err)

	return msg
}

func TestEstimateIsCached(t *testing.T) {
	calls := 0
	client := &MockClient{
		GetFeeForMessageFunc: func(ctx context.Context, message []byte) (*uint64, error) {
			calls++
			fee := uint64(5000)
			return &fee, nil
		},
	}
	estimator := NewFeeEstimator(client, 8)

	msg := transferMessage(t, types.Hash{1})
	for i := 0; i < 3; i++ {
		fee, err := estimator.Estimate(context.Background(), msg)
		require.Nil(t, err)
		require.Equal(t, uint64(5000), fee)
	}
	require.Equal(t, 1, calls)

	// Different bytes ask the node again.
	_, err := estimator.Estimate(context.Background(), transferMessage(t, types.Hash{2}))
	require.Nil(t, err)
	require.Equal(t, 2, calls)
}

func TestEstimateUnavailable(t *testing.T) {
	client := &MockClient{
		GetFeeForMessageFunc: func(ctx context.Context, message []byte) (*uint64, error) {
			return nil, nil
		},
	}
	estimator := NewFeeEstimator(client, 8)
	msg := transferMessage(t, types.Hash{1})

	_, err := estimator.Estimate(context.Background(), msg)
	require.True(t, errors.Is(err, types.ErrFeeUnavailable))

	client.GetFeeForMessageFunc = func(ctx context.Context, message []byte) (*uint64, error) {
		return nil, errors.New("connection refused")
	}
	_, err = estimator.Estimate(context.Background(), msg)
	require.True(t, errors.Is(err, types.ErrFeeUnavailable))
	require.Contains(t, err.Error(), "connection refused")
}

func TestEstimateKeepsNodeError(t *testing.T) {
	client := &MockClient{
		GetFeeForMessageFunc: func(ctx context.Context, message []byte) (*uint64, error) {
			return nil, &types.RpcError{Code: types.RpcCodeBlockNotAvailable, Message: "block not available"}
		},
	}
	estimator := NewFeeEstimator(client, 8)

	_, err := estimator.Estimate(context.Background(), transferMessage(t, types.Hash{1}))
	require.True(t, errors.Is(err, types.ErrFeeUnavailable))

	var rpcErr *types.RpcError
	require.True(t, errors.As(err, &rpcErr))
	require.Equal(t, types.RpcCodeBlockNotAvailable, rpcErr.Code)
	require.True(t, rpcErr.Transient())
}
