package redisfx

import (
	"github.com/redis/go-redis/v9"
)

// New creates a client. No connection is made until the first command.
func New(config Config) (*redis.Client, error) {
	opts, err := config.Build()
	if err != nil {
		return nil, err
	}

	return redis.NewClient(opts), nil
}
