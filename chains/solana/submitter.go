package solana

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sisu-network/lib/log"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/config"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/transaction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// SubmissionClient sends signed transactions and follows them until they reach the configured
// commitment. Each submission moves Built -> Sent -> Confirmed, Rejected or TimedOut.
type SubmissionClient struct {
	cfg    config.Solana
	client Client
}

// NewSubmissionClient fills the unset retry and timeout budgets of cfg with their defaults.
func NewSubmissionClient(cfg config.Solana, client Client) *SubmissionClient {
	return &SubmissionClient{
		cfg:    cfg.WithDefaults(),
		client: client,
	}
}

func (s *SubmissionClient) Balance(ctx context.Context, addr types.Address) (uint64, error) {
	balance, err := s.client.GetBalance(ctx, addr)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get balance of %s", addr)
	}

	return balance, nil
}

func (s *SubmissionClient) LatestBlockhash(ctx context.Context) (*types.Blockhash, error) {
	blockhash, err := s.client.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest blockhash")
	}

	return blockhash, nil
}

// Submit sends tx and waits for its confirmation. The returned confirmation is never nil, its
// status tells how far the submission got.
func (s *SubmissionClient) Submit(ctx context.Context, tx *transaction.Transaction) (*types.Confirmation, error) {
	conf := &types.Confirmation{Signature: tx.ID(), Status: types.StatusBuilt}

	if err := tx.VerifySignatures(); err != nil {
		conf.Err = err
		return conf, err
	}
	if err := tx.CheckSize(); err != nil {
		conf.Err = err
		return conf, err
	}
	bz, err := tx.MarshalBinary()
	if err != nil {
		conf.Err = err
		return conf, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout())
	defer cancel()

	log.Verbosef("Sending transaction %s", conf.Signature)
	err = s.send(ctx, conf, func() (types.Signature, error) {
		return s.client.SendTransaction(ctx, bz)
	})
	if err != nil {
		return conf, err
	}

	return s.confirm(ctx, conf, tx.Message.LastValidBlockHeight)
}

// RequestAirdrop asks the cluster faucet for lamports and waits for the airdrop to confirm.
func (s *SubmissionClient) RequestAirdrop(ctx context.Context, addr types.Address, lamports uint64) (*types.Confirmation, error) {
	conf := &types.Confirmation{Status: types.StatusBuilt}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout())
	defer cancel()

	log.Verbosef("Requesting airdrop of %d lamports to %s", lamports, addr)
	err := s.send(ctx, conf, func() (types.Signature, error) {
		return s.client.RequestAirdrop(ctx, addr, lamports)
	})
	if err != nil {
		return conf, err
	}

	return s.confirm(ctx, conf, 0)
}

// send retries transport failures with exponential backoff. Anything the node evaluated and
// refused is a rejection and is returned right away.
func (s *SubmissionClient) send(ctx context.Context, conf *types.Confirmation, sendFunc func() (types.Signature, error)) error {
	backoff := s.cfg.InitialBackoff()
	var lastErr error

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		conf.Attempts = attempt

		sig, err := sendFunc()
		if err == nil {
			if conf.Signature.IsZero() {
				conf.Signature = sig
			} else if sig != conf.Signature {
				log.Warnf("Node returned signature %s for transaction %s", sig, conf.Signature)
			}
			conf.Status = types.StatusSent
			return nil
		}

		if rejected := asRejection(err); rejected != nil {
			return s.reject(conf, rejected)
		}

		lastErr = err
		log.Warnf("Attempt %d/%d to send %s failed, err = %v", attempt, s.cfg.MaxAttempts, conf.Signature, err)
		if attempt == s.cfg.MaxAttempts || !sleep(ctx, backoff) {
			break
		}

		backoff *= 2
		if backoff > s.cfg.MaxBackoff() {
			backoff = s.cfg.MaxBackoff()
		}
	}

	return s.timeout(conf, lastErr)
}

// confirm polls the signature status until the target commitment is reached, the node reports a
// failure, the blockhash expires or the context ends.
func (s *SubmissionClient) confirm(ctx context.Context, conf *types.Confirmation, lastValidBlockHeight uint64) (*types.Confirmation, error) {
	target := s.cfg.GetCommitment()
	failures := 0
	var lastErr error

	for {
		status, err := s.client.GetSignatureStatus(ctx, conf.Signature)
		switch {
		case err != nil:
			if rejected := asRejection(err); rejected != nil {
				return conf, s.reject(conf, rejected)
			}

			failures++
			lastErr = err
			log.Warnf("Failed to get status of %s, err = %v", conf.Signature, err)
			if failures >= s.cfg.MaxAttempts {
				return conf, s.timeout(conf, lastErr)
			}

		case status != nil && status.Err != nil:
			return conf, s.reject(conf, types.NewRejectedError(0, status.ErrString()))

		case status != nil && status.Commitment().Reaches(target):
			conf.Status = types.StatusConfirmed
			conf.Slot = status.Slot
			conf.Commitment = status.Commitment()
			log.Infof("Transaction %s reached %s at slot %d", conf.Signature, conf.Commitment, conf.Slot)
			return conf, nil

		case status == nil && lastValidBlockHeight > 0:
			height, err := s.client.GetBlockHeight(ctx)
			if err != nil {
				log.Verbosef("Failed to get block height, err = %v", err)
			} else if height > lastValidBlockHeight {
				reason := fmt.Sprintf("blockhash expired: block height %d exceeds last valid block height %d",
					height, lastValidBlockHeight)
				return conf, s.reject(conf, types.NewRejectedError(0, reason))
			}
		}

		if !sleep(ctx, s.cfg.PollInterval()) {
			if lastErr == nil {
				lastErr = ctx.Err()
			}
			return conf, s.timeout(conf, lastErr)
		}
	}
}

func (s *SubmissionClient) reject(conf *types.Confirmation, rejected *types.RejectedError) error {
	log.Verbosef("Transaction %s rejected: %s", conf.Signature, rejected.Reason)
	conf.Status = types.StatusRejected
	conf.Err = rejected
	return rejected
}

func (s *SubmissionClient) timeout(conf *types.Confirmation, lastErr error) error {
	err := types.ErrTimedOut
	if lastErr != nil {
		err = errors.Wrapf(types.ErrTimedOut, "after %d attempts, last error: %v", conf.Attempts, lastErr)
	}

	conf.Status = types.StatusTimedOut
	conf.Err = err
	return err
}

// asRejection returns the ledger rejection carried by err, or nil for transport failures and
// transient node errors.
func asRejection(err error) *types.RejectedError {
	var rejected *types.RejectedError
	if errors.As(err, &rejected) {
		return rejected
	}

	var rpcErr *types.RpcError
	if errors.As(err, &rpcErr) && !rpcErr.Transient() {
		return types.NewRejectedError(rpcErr.Code, rpcErr.Message)
	}

	return nil
}

// sleep waits for d and returns false if the context ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
