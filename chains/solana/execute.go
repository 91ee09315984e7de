package solana

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ybbus/jsonrpc/v3"
	"go.uber.org/atomic"
)

// clientPool rotates the starting endpoint of each request.
type clientPool struct {
	clients []jsonrpc.RPCClient
	cursor  *atomic.Uint64
}

func newClientPool(clients []jsonrpc.RPCClient) *clientPool {
	return &clientPool{
		clients: clients,
		cursor:  atomic.NewUint64(0),
	}
}

// executeWithClients tries to execute a function with the clients of the pool, starting with the
// next one in rotation. If any of the execution finishes (either with success or failure), the
// loop through clients list will stop. The passed in params f will inform executeWithClients when
// to stop execution in its return value.
func executeWithClients[T any](ctx context.Context, pool *clientPool, f func(client jsonrpc.RPCClient) (T, bool, error)) (T, error) {
	var result T
	if len(pool.clients) == 0 {
		return result, errors.New("no rpc clients")
	}

	start := pool.cursor.Inc() - 1
	var err error
	var stop bool
	for i := range pool.clients {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		client := pool.clients[(start+uint64(i))%uint64(len(pool.clients))]
		if result, stop, err = f(client); err == nil || stop {
			return result, err
		}
	}

	return result, err
}
