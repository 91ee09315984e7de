package solana

import (
	"context"

	solanatypes "github.com/solana-turbin3/Q4-25-Builder-tSMBoA/chains/solana/types"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

var _ Client = (*MockClient)(nil)

type MockClient struct {
	RequestAirdropFunc     func(ctx context.Context, addr types.Address, lamports uint64) (types.Signature, error)
	GetLatestBlockhashFunc func(ctx context.Context) (*types.Blockhash, error)
	GetBalanceFunc         func(ctx context.Context, addr types.Address) (uint64, error)
	GetFeeForMessageFunc   func(ctx context.Context, message []byte) (*uint64, error)
	SendTransactionFunc    func(ctx context.Context, tx []byte) (types.Signature, error)
	GetSignatureStatusFunc func(ctx context.Context, sig types.Signature) (*solanatypes.SignatureStatus, error)
	GetBlockHeightFunc     func(ctx context.Context) (uint64, error)
}

func (m *MockClient) RequestAirdrop(ctx context.Context, addr types.Address, lamports uint64) (types.Signature, error) {
	if m.RequestAirdropFunc != nil {
		return m.RequestAirdropFunc(ctx, addr, lamports)
	}

	return types.Signature{}, nil
}

func (m *MockClient) GetLatestBlockhash(ctx context.Context) (*types.Blockhash, error) {
	if m.GetLatestBlockhashFunc != nil {
		return m.GetLatestBlockhashFunc(ctx)
	}

	return &types.Blockhash{Hash: types.Hash{1}, LastValidBlockHeight: 300}, nil
}

func (m *MockClient) GetBalance(ctx context.Context, addr types.Address) (uint64, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, addr)
	}

	return 0, nil
}

func (m *MockClient) GetFeeForMessage(ctx context.Context, message []byte) (*uint64, error) {
	if m.GetFeeForMessageFunc != nil {
		return m.GetFeeForMessageFunc(ctx, message)
	}

	return nil, nil
}

func (m *MockClient) SendTransaction(ctx context.Context, tx []byte) (types.Signature, error) {
	if m.SendTransactionFunc != nil {
		return m.SendTransactionFunc(ctx, tx)
	}

	return types.Signature{}, nil
}

func (m *MockClient) GetSignatureStatus(ctx context.Context, sig types.Signature) (*solanatypes.SignatureStatus, error) {
	if m.GetSignatureStatusFunc != nil {
		return m.GetSignatureStatusFunc(ctx, sig)
	}

	return nil, nil
}

func (m *MockClient) GetBlockHeight(ctx context.Context) (uint64, error) {
	if m.GetBlockHeightFunc != nil {
		return m.GetBlockHeightFunc(ctx)
	}

	return 0, nil
}
