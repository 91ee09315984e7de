package core

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sisu-network/lib/log"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/instruction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/keys"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/transaction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// Submitter is implemented by solana.SubmissionClient.
type Submitter interface {
	Submit(ctx context.Context, tx *transaction.Transaction) (*types.Confirmation, error)
	RequestAirdrop(ctx context.Context, addr types.Address, lamports uint64) (*types.Confirmation, error)
	Balance(ctx context.Context, addr types.Address) (uint64, error)
	LatestBlockhash(ctx context.Context) (*types.Blockhash, error)
}

// FeeSource is implemented by solana.FeeEstimator.
type FeeSource interface {
	Estimate(ctx context.Context, message *transaction.Message) (uint64, error)
}

// Wallet runs the common workflows for one keypair: funding, transfers and program calls.
type Wallet struct {
	keypair   *keys.Keypair
	submitter Submitter
	fees      FeeSource
}

func NewWallet(keypair *keys.Keypair, submitter Submitter, fees FeeSource) *Wallet {
	return &Wallet{
		keypair:   keypair,
		submitter: submitter,
		fees:      fees,
	}
}

func (w *Wallet) Address() types.Address {
	return w.keypair.Address()
}

func (w *Wallet) Balance(ctx context.Context) (uint64, error) {
	return w.submitter.Balance(ctx, w.Address())
}

func (w *Wallet) Airdrop(ctx context.Context, lamports uint64) (*types.Confirmation, error) {
	log.Infof("Requesting airdrop of %d lamports for %s", lamports, w.Address())
	return w.submitter.RequestAirdrop(ctx, w.Address(), lamports)
}

func (w *Wallet) Transfer(ctx context.Context, to types.Address, lamports uint64) (*types.Confirmation, error) {
	log.Infof("Transferring %d lamports from %s to %s", lamports, w.Address(), to)
	return w.Call(ctx, []*instruction.Instruction{instruction.Transfer(w.Address(), to, lamports)})
}

// Call signs instructions with the wallet as fee payer plus any extra signers and submits them.
func (w *Wallet) Call(ctx context.Context, instructions []*instruction.Instruction, extraSigners ...transaction.Signer) (*types.Confirmation, error) {
	blockhash, err := w.submitter.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := transaction.NewMessage(instructions, w.Address(), blockhash)
	if err != nil {
		return nil, err
	}

	signers := append([]transaction.Signer{w.keypair}, extraSigners...)
	tx, err := transaction.Sign(msg, signers...)
	if err != nil {
		return nil, err
	}

	return w.submitter.Submit(ctx, tx)
}

// TransferAll moves the whole balance minus the fee to another account, leaving the wallet empty.
func (w *Wallet) TransferAll(ctx context.Context, to types.Address) (*types.Confirmation, error) {
	balance, err := w.Balance(ctx)
	if err != nil {
		return nil, err
	}

	blockhash, err := w.submitter.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := PrepareTransferAll(ctx, w.fees, w.keypair, to, balance, blockhash)
	if err != nil {
		return nil, err
	}

	log.Infof("Transferring all %d lamports from %s to %s, fee = %d", plan.Amount, w.Address(), to, plan.Fee)
	return w.submitter.Submit(ctx, plan.Transaction)
}

// TransferAllPlan is a signed transfer sized so that balance - fee leaves the sender with zero.
type TransferAllPlan struct {
	Balance uint64
	Fee     uint64
	Amount  uint64

	// Mock is the message that was priced. It transfers the full balance and has the same shape
	// and length as the final message.
	Mock        *transaction.Message
	Transaction *transaction.Transaction
}

func PrepareTransferAll(
	ctx context.Context,
	fees FeeSource,
	from *keys.Keypair,
	to types.Address,
	balance uint64,
	blockhash *types.Blockhash,
) (*TransferAllPlan, error) {
	newMessage := func(lamports uint64) (*transaction.Message, error) {
		ix := instruction.Transfer(from.Address(), to, lamports)
		return transaction.NewMessage([]*instruction.Instruction{ix}, from.Address(), blockhash)
	}

	mock, err := newMessage(balance)
	if err != nil {
		return nil, err
	}

	fee, err := fees.Estimate(ctx, mock)
	if err != nil {
		return nil, err
	}
	if balance < fee {
		return nil, errors.Wrapf(types.ErrInsufficientBalance, "balance %d is lower than fee %d", balance, fee)
	}

	msg, err := newMessage(balance - fee)
	if err != nil {
		return nil, err
	}
	tx, err := transaction.Sign(msg, from)
	if err != nil {
		return nil, err
	}

	return &TransferAllPlan{
		Balance:     balance,
		Fee:         fee,
		Amount:      balance - fee,
		Mock:        mock,
		Transaction: tx,
	}, nil
}
