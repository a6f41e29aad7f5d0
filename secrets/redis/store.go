// Package redis implements a SecretStore that reads secrets from the fields of
// a redis hash.
package redis

import (
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store is a SecretStore backed by a redis hash.
type Store struct {
	logger *zap.Logger
	Client *redis.Client
	hkey   string
}

// Config contains the connection parameters of a Store.
type Config struct {
	Addr     string
	Key      string // hash key, defaults to "shell-secrets"
	Password string
	DB       int
	Logger   *zap.Logger
}

// NewStore connects to the redis server at addr and pings it.
func NewStore(addr string, opts ...Option) (*Store, error) {
	conf := Config{Addr: addr}
	for _, opt := range opts {
		err := opt(&conf)
		if err != nil {
			return nil, err
		}
	}

	if conf.Logger == nil {
		conf.Logger = zap.NewNop()
	}

	if conf.Key == "" {
		conf.Key = "shell-secrets"
	}

	store := &Store{
		logger: conf.Logger,
		hkey:   conf.Key,
	}

	store.logger.Debug("Connecting to redis secrets",
		zap.String("addr", conf.Addr),
		zap.String("key", conf.Key),
	)

	store.Client = redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	_, err := store.Client.Ping().Result()
	if err != nil {
		_ = store.Client.Close()
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	store.logger.Info("Secret store initialized successfully")
	return store, nil
}

// Secret implements the shell.SecretStore interface.
func (s *Store) Secret(key string) (string, bool, error) {
	s.logger.Debug("Retrieving secret", zap.String("key", key))
	res, err := s.Client.HGet(s.hkey, key).Result()
	switch {
	case err == redis.Nil:
		return "", false, nil
	case err != nil:
		return "", false, errors.Wrap(err, "redis HGET")
	default:
		return res, true, nil
	}
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.Client.Close()
}
