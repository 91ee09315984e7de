package solana

import (
	"context"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/pkg/errors"
	"github.com/sisu-network/lib/log"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/transaction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// FeeEstimator asks the node what it would charge for a message. Answers are cached by the exact
// message bytes, which include the blockhash.
type FeeEstimator struct {
	client Client
	cache  *lru.Cache
	lock   *sync.Mutex
}

func NewFeeEstimator(client Client, cacheSize int) *FeeEstimator {
	return &FeeEstimator{
		client: client,
		cache:  lru.New(cacheSize),
		lock:   &sync.Mutex{},
	}
}

func (f *FeeEstimator) Estimate(ctx context.Context, message *transaction.Message) (uint64, error) {
	bz, err := message.MarshalBinary()
	if err != nil {
		return 0, err
	}

	key := string(bz)
	f.lock.Lock()
	cached, ok := f.cache.Get(key)
	f.lock.Unlock()
	if ok {
		return cached.(uint64), nil
	}

	fee, err := f.client.GetFeeForMessage(ctx, bz)
	if err != nil {
		return 0, types.WithCause(types.ErrFeeUnavailable, err)
	}
	if fee == nil {
		return 0, errors.Wrapf(types.ErrFeeUnavailable, "no fee for message with blockhash %s", message.RecentBlockhash)
	}

	log.Verbosef("Fee for message with blockhash %s is %d lamports", message.RecentBlockhash, *fee)

	f.lock.Lock()
	f.cache.Add(key, *fee)
	f.lock.Unlock()

	return *fee, nil
}
