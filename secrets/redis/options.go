package redis

import "go.uber.org/zap"

// Option configures a Store.
type Option func(*Config) error

// WithConfig replaces all connection parameters. The address passed to
// NewStore is kept if newConf.Addr is empty.
func WithConfig(newConf Config) Option {
	return func(oldConf *Config) error {
		if newConf.Addr != "" {
			oldConf.Addr = newConf.Addr
		}
		oldConf.Key = newConf.Key
		oldConf.Password = newConf.Password
		oldConf.DB = newConf.DB
		oldConf.Logger = newConf.Logger
		return nil
	}
}

// WithLogger sets the logger of the Store.
func WithLogger(logger *zap.Logger) Option {
	return func(conf *Config) error {
		conf.Logger = logger
		return nil
	}
}

// WithKey sets the key of the redis hash that holds the secrets.
func WithKey(key string) Option {
	return func(conf *Config) error {
		conf.Key = key
		return nil
	}
}

// WithPassword sets the password of the redis connection.
func WithPassword(password string) Option {
	return func(conf *Config) error {
		conf.Password = password
		return nil
	}
}
