package core

import (
	"context"

	"github.com/sisu-network/lib/log"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/enroll"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/instruction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/keys"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// Enroll creates the enrollment account of the wallet with its github handle.
func (w *Wallet) Enroll(ctx context.Context, github string) (*types.Confirmation, error) {
	account, _, err := enroll.EnrollmentAddress(w.Address())
	if err != nil {
		return nil, err
	}

	ix, err := enroll.Initialize(github, w.Address(), account)
	if err != nil {
		return nil, err
	}

	log.Infof("Enrolling %s as %s, account = %s", w.Address(), github, account)
	return w.Call(ctx, []*instruction.Instruction{ix})
}

// SubmitEnrollment mints the completion asset into a fresh mint account. The mint keypair signs
// the transaction next to the wallet and is returned so the caller can keep it.
func (w *Wallet) SubmitEnrollment(ctx context.Context) (*types.Confirmation, *keys.Keypair, error) {
	mint := keys.Generate()
	ix, err := enroll.NewSubmit(w.Address(), mint.Address())
	if err != nil {
		return nil, nil, err
	}

	log.Infof("Submitting enrollment of %s, mint = %s", w.Address(), mint.Address())
	conf, err := w.Call(ctx, []*instruction.Instruction{ix}, mint)
	return conf, mint, err
}
