package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis command surface the cache repositories use
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil
