package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so single-node and cluster deployments
// share one type.
type Client interface {
	redis.UniversalClient
}

var (
	// Nil is returned by reads of a missing key
	Nil = redis.Nil

	// TxFailedErr is returned by a WATCH transaction whose keys changed
	TxFailedErr = redis.TxFailedErr
)
