package shell

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Settings holds the non-secret parameters of a service process. They are read
// from the environment and select where the secrets are loaded from.
type Settings struct {
	ListenAddr     string        `envconfig:"LISTEN_ADDR" default:":8000"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	HandlerTimeout time.Duration `envconfig:"HANDLER_TIMEOUT" default:"0s"`

	DotenvFiles []string `envconfig:"DOTENV_FILES"`       // loaded into the environment
	SecretsFile string   `envconfig:"SECRETS_FILE"`       // optional dotenv file with secrets
	RedisAddr   string   `envconfig:"SECRETS_REDIS_ADDR"` // optional redis server with secrets
	RedisKey    string   `envconfig:"SECRETS_REDIS_KEY" default:"shell-secrets"`
}

// LoadSettings reads the Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	err := envconfig.Process("", &s)
	if err != nil {
		return s, errors.Wrap(err, "invalid settings")
	}

	return s, nil
}

// Modules returns the Modules that apply the Settings to a Service. A nil
// store keeps the default SecretStore.
func (s Settings) Modules(store SecretStore) []Module {
	modules := []Module{WithHandlerTimeout(s.HandlerTimeout)}
	if store != nil {
		modules = append(modules, WithSecretStore(store))
	}

	return modules
}
