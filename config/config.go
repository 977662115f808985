// Package config holds hoststat's runtime settings. A Config is built once
// at startup from flags, HOSTSTAT_* environment variables and an optional
// config file, then passed explicitly to whatever needs it.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPadding        = 24
	DefaultBarLength      = 30
	DefaultDateTimeFormat = "YYYY-MM-DD H:mm:ss"
	DefaultPublicIPURL    = "https://api.ipify.org?format=json"
	DefaultTimeout        = 10 * time.Second

	// EnvPrefix is prepended to setting names to form environment variables,
	// e.g. HOSTSTAT_NOPUBLICIP.
	EnvPrefix = "HOSTSTAT"
)

// Setting keys, shared by flags, environment variables and config files.
const (
	KeyStorage     = "storage"
	KeyPadding     = "padding"
	KeyBarLength   = "barlength"
	KeyDTFormat    = "dtformat"
	KeySeparate    = "separate"
	KeyNoPublicIP  = "nopublicip"
	KeyPublicIPURL = "publicip-url"
	KeyTimeout     = "timeout"
	KeyDebug       = "debug"
)

// RootPath is always reported first, ahead of any extra storage paths.
var RootPath = string(filepath.Separator)

type Config struct {
	StoragePaths   []string      `mapstructure:"storage"`
	Padding        int           `mapstructure:"padding"`
	BarLength      int           `mapstructure:"barlength"`
	DateTimeFormat string        `mapstructure:"dtformat"`
	Separate       bool          `mapstructure:"separate"`
	NoPublicIP     bool          `mapstructure:"nopublicip"`
	PublicIPURL    string        `mapstructure:"publicip-url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Debug          bool          `mapstructure:"debug"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() *Config {
	return &Config{
		StoragePaths:   []string{},
		Padding:        DefaultPadding,
		BarLength:      DefaultBarLength,
		DateTimeFormat: DefaultDateTimeFormat,
		PublicIPURL:    DefaultPublicIPURL,
		Timeout:        DefaultTimeout,
	}
}

// RegisterFlags defines the command-line flags for every setting on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.StringArray(KeyStorage, nil, "additional storage path to report (repeatable, one path per use)")
	fs.Int(KeyPadding, d.Padding, "width of the label column")
	fs.Int(KeyBarLength, d.BarLength, "number of cells in usage bars")
	fs.String(KeyDTFormat, d.DateTimeFormat, "date and time format (day.js tokens)")
	fs.Bool(KeySeparate, d.Separate, "print blank lines between sections")
	fs.Bool(KeyNoPublicIP, d.NoPublicIP, "skip the public IP lookup")
	fs.String(KeyPublicIPURL, d.PublicIPURL, "public IP lookup service")
	fs.Duration(KeyTimeout, d.Timeout, "deadline for collecting all metrics")
	fs.Bool(KeyDebug, d.Debug, "log diagnostics to stderr")
}

// Load resolves the configuration from v. Flags bound to v take precedence
// over HOSTSTAT_* environment variables, which take precedence over the
// config file (if configFile is not empty) and the defaults. A padding or
// bar length of 0 falls back to the default.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyFallbacks()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyStorage, d.StoragePaths)
	v.SetDefault(KeyPadding, d.Padding)
	v.SetDefault(KeyBarLength, d.BarLength)
	v.SetDefault(KeyDTFormat, d.DateTimeFormat)
	v.SetDefault(KeySeparate, d.Separate)
	v.SetDefault(KeyNoPublicIP, d.NoPublicIP)
	v.SetDefault(KeyPublicIPURL, d.PublicIPURL)
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeyDebug, d.Debug)
}

// applyFallbacks treats a zero padding or bar length as unset.
func (c *Config) applyFallbacks() {
	if c.Padding == 0 {
		c.Padding = DefaultPadding
	}
	if c.BarLength == 0 {
		c.BarLength = DefaultBarLength
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %d", c.Padding)
	}
	if c.BarLength <= 0 {
		return fmt.Errorf("barlength must be positive, got %d", c.BarLength)
	}
	if strings.TrimSpace(c.DateTimeFormat) == "" {
		return errors.New("dtformat must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	for _, p := range c.StoragePaths {
		if strings.TrimSpace(p) == "" {
			return errors.New("storage path must not be empty")
		}
	}
	if !c.NoPublicIP {
		u, err := url.Parse(c.PublicIPURL)
		if err != nil {
			return fmt.Errorf("invalid publicip-url: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("publicip-url must be an http(s) URL, got %q", c.PublicIPURL)
		}
	}
	return nil
}

// Paths returns the storage paths to report: the root path followed by the
// configured ones in order.
func (c *Config) Paths() []string {
	return append([]string{RootPath}, c.StoragePaths...)
}
