package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer client.Close()
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect("not a url")
	require.Error(t, err)
}
