package core

import (
	"context"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/transaction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

type MockSubmitter struct {
	SubmitFunc          func(ctx context.Context, tx *transaction.Transaction) (*types.Confirmation, error)
	RequestAirdropFunc  func(ctx context.Context, addr types.Address, lamports uint64) (*types.Confirmation, error)
	BalanceFunc         func(ctx context.Context, addr types.Address) (uint64, error)
	LatestBlockhashFunc func(ctx context.Context) (*types.Blockhash, error)
}

func (m *MockSubmitter) Submit(ctx context.Context, tx *transaction.Transaction) (*types.Confirmation, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, tx)
	}

	return &types.Confirmation{Signature: tx.ID(), Status: types.StatusConfirmed}, nil
}

func (m *MockSubmitter) RequestAirdrop(ctx context.Context, addr types.Address, lamports uint64) (*types.Confirmation, error) {
	if m.RequestAirdropFunc != nil {
		return m.RequestAirdropFunc(ctx, addr, lamports)
	}

	return &types.Confirmation{Status: types.StatusConfirmed}, nil
}

func (m *MockSubmitter) Balance(ctx context.Context, addr types.Address) (uint64, error) {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, addr)
	}

	return 0, nil
}

func (m *MockSubmitter) LatestBlockhash(ctx context.Context) (*types.Blockhash, error) {
	if m.LatestBlockhashFunc != nil {
		return m.LatestBlockhashFunc(ctx)
	}

	return &types.Blockhash{Hash: types.Hash{1}, LastValidBlockHeight: 300}, nil
}

type MockFeeSource struct {
	EstimateFunc func(ctx context.Context, message *transaction.Message) (uint64, error)
}

func (m *MockFeeSource) Estimate(ctx context.Context, message *transaction.Message) (uint64, error) {
	if m.EstimateFunc != nil {
		return m.EstimateFunc(ctx, message)
	}

	return 5000, nil
}
