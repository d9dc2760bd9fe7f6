package redis

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

type queueFixture struct {
	server *miniredis.Miniredis
	client *redislib.Client
	queue  *WithdrawalQueue
}

// newQueueFixture starts an in-process Redis and a queue stored under key.
// Everything is torn down when the test ends.
func newQueueFixture(t *testing.T, key string) *queueFixture {
	t.Helper()

	server := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &queueFixture{
		server: server,
		client: client,
		queue:  NewWithdrawalQueue(client, key),
	}
}
