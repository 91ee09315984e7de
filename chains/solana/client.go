package solana

import (
	"context"

	solanatypes "github.com/solana-turbin3/Q4-25-Builder-tSMBoA/chains/solana/types"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// Client is the set of node RPC calls used to build and submit transactions. Send and confirm
// is split into SendTransaction and GetSignatureStatus so that SubmissionClient owns the
// retry and polling policy.
type Client interface {
	RequestAirdrop(ctx context.Context, addr types.Address, lamports uint64) (types.Signature, error)
	GetLatestBlockhash(ctx context.Context) (*types.Blockhash, error)
	GetBalance(ctx context.Context, addr types.Address) (uint64, error)

	// GetFeeForMessage returns nil if the node cannot price the message.
	GetFeeForMessage(ctx context.Context, message []byte) (*uint64, error)

	SendTransaction(ctx context.Context, tx []byte) (types.Signature, error)

	// GetSignatureStatus returns nil if the node has not seen the signature.
	GetSignatureStatus(ctx context.Context, sig types.Signature) (*solanatypes.SignatureStatus, error)
	GetBlockHeight(ctx context.Context) (uint64, error)
}
