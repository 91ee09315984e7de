package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHttpClient(t *testing.T) {
	require.Equal(t, DefaultRequestTimeout, NewHttpClient(0).Timeout)
	require.Equal(t, DefaultRequestTimeout/2, NewHttpClient(DefaultRequestTimeout/2).Timeout)
}
