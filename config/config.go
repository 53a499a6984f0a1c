package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug           = "debug"
	ConfigHTTPAddr        = "http-addr"
	ConfigNatsURL         = "nats-url"
	ConfigBotChannel      = "bot-channel"
	ConfigCORSOrigins     = "cors-origins"
	ConfigServeNats       = "serve-nats"
	ConfigShutdownTimeout = "shutdown-timeout"
)

// EnvPrefix is prepended to every setting when it is read from the
// environment, e.g. BULLHEADS_NATS_URL.
const EnvPrefix = "BULLHEADS"

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config holding the default values, overridable
// from the environment.
func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigHTTPAddr, ":8000")
	v.SetDefault(ConfigNatsURL, "nats://localhost:4222")
	v.SetDefault(ConfigBotChannel, "bullheads.bot")
	v.SetDefault(ConfigCORSOrigins, []string{"*"})
	v.SetDefault(ConfigServeNats, false)
	v.SetDefault(ConfigShutdownTimeout, 20*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v}
}

// BindFlags registers a flag for every setting on fs. A flag only wins
// over the environment when it is set explicitly.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "log at debug level")
	fs.String(ConfigHTTPAddr, c.GetString(ConfigHTTPAddr), "address the HTTP server listens on")
	fs.String(ConfigNatsURL, c.GetString(ConfigNatsURL), "NATS server URL")
	fs.String(ConfigBotChannel, c.GetString(ConfigBotChannel), "NATS subject the bot answers on")
	fs.StringSlice(ConfigCORSOrigins, c.GetStringSlice(ConfigCORSOrigins),
		"origins allowed to call the HTTP API; * allows any")
	fs.Bool(ConfigServeNats, c.GetBool(ConfigServeNats), "also answer move requests over NATS")
	fs.Duration(ConfigShutdownTimeout, c.GetDuration(ConfigShutdownTimeout),
		"how long to wait for in-flight requests on shutdown")
	return c.BindPFlags(fs)
}

// Load parses args as command-line flags on top of the defaults and the
// environment.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("bullheads", pflag.ContinueOnError)
	if err := c.BindFlags(fs); err != nil {
		return err
	}
	return fs.Parse(args)
}

func (c *Config) Debug() bool {
	return c.GetBool(ConfigDebug)
}

func (c *Config) HTTPAddr() string {
	return c.GetString(ConfigHTTPAddr)
}

func (c *Config) NatsURL() string {
	return c.GetString(ConfigNatsURL)
}

func (c *Config) BotChannel() string {
	return c.GetString(ConfigBotChannel)
}

func (c *Config) CORSOrigins() []string {
	return c.GetStringSlice(ConfigCORSOrigins)
}

func (c *Config) ServeNats() bool {
	return c.GetBool(ConfigServeNats)
}

func (c *Config) ShutdownTimeout() time.Duration {
	return c.GetDuration(ConfigShutdownTimeout)
}
