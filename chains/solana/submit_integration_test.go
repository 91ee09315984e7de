package solana

import (
	"context"
	"os"
	"testing"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/config"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/instruction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/keys"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/transaction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
	"github.com/stretchr/testify/require"
)

// Runs against a local validator, e.g. SOLANA_INTEGRATION_RPC=http://127.0.0.1:8899.
func TestSubmitLocalnet(t *testing.T) {
	url := os.Getenv("SOLANA_INTEGRATION_RPC")
	if url == "" {
		t.Skip("SOLANA_INTEGRATION_RPC is not set")
	}

	cfg := config.Default().Solana
	cfg.Rpcs = []string{url}
	submitter := NewSubmissionClient(cfg, NewClient(cfg))
	ctx := context.Background()

	var owner *keys.Keypair
	if mnemonic := os.Getenv("MNEMONIC"); mnemonic != "" {
		var err error
		owner, err = keys.FromMnemonic(mnemonic, "")
		require.Nil(t, err)
	} else {
		owner = keys.Generate()
		conf, err := submitter.RequestAirdrop(ctx, owner.Address(), 1_000_000_000)
		require.Nil(t, err)
		require.True(t, conf.IsConfirmed())
	}

	blockhash, err := submitter.LatestBlockhash(ctx)
	require.Nil(t, err)

	to := types.MustAddressFromBase58("CvocQ9ivbdz5rUnTh6zBgxaiR4asMNbXRrG2VPUYpoau")
	ix := instruction.Transfer(owner.Address(), to, 100_000_000)
	msg, err := transaction.NewMessage([]*instruction.Instruction{ix}, owner.Address(), blockhash)
	require.Nil(t, err)

	tx, err := transaction.Sign(msg, owner)
	require.Nil(t, err)

	conf, err := submitter.Submit(ctx, tx)
	require.Nil(t, err)
	require.True(t, conf.IsConfirmed())
}
