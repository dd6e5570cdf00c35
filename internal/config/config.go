package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/viper"
)

const (
	badgerDb    = "badger"
	fakeBackend = "fake"
)

type Config struct {
	Datadir  string `mapstructure:"DATADIR" envDefault:"payprocd" envInfo:"Data directory for payprocd state"`
	DbType   string `mapstructure:"DB_TYPE" envDefault:"badger" envInfo:"Database backend: badger"`
	GRPCPort uint32 `mapstructure:"GRPC_PORT" envDefault:"8089" envInfo:"gRPC server port"`
	HTTPPort uint32 `mapstructure:"HTTP_PORT" envDefault:"8090" envInfo:"HTTP server port"`
	WithTLS  bool   `mapstructure:"WITH_TLS" envDefault:"false" envInfo:"Enable TLS on server"`
	LogLevel uint32 `mapstructure:"LOG_LEVEL" envDefault:"4" envInfo:"Log verbosity (higher = more verbose)"`

	BackendType string `mapstructure:"BACKEND_TYPE" envDefault:"fake" envInfo:"Payment backend: fake"`
	Unit        string `mapstructure:"UNIT" envDefault:"sat" envInfo:"Payment unit served by the backend"`

	PayTimeout          uint32 `mapstructure:"PAY_TIMEOUT" envDefault:"60" envInfo:"Outgoing payment timeout in seconds"`
	SubscribeRetryDelay uint32 `mapstructure:"SUBSCRIBE_RETRY_DELAY" envDefault:"5" envInfo:"Delay before resubscribing to the backend in seconds"`

	ReconcileInterval    uint32 `mapstructure:"RECONCILE_INTERVAL" envDefault:"30" envInfo:"Interval between reconciliation sweeps in seconds"`
	ReconcileMaxAttempts uint32 `mapstructure:"RECONCILE_MAX_ATTEMPTS" envDefault:"0" envInfo:"Max reconciliation attempts per payment (0 = unbounded)"`

	FeePercent    float64 `mapstructure:"FEE_PERCENT" envDefault:"1" envInfo:"Fake backend fee percentage"`
	ReserveFeeMin uint64  `mapstructure:"RESERVE_FEE_MIN" envDefault:"1" envInfo:"Fake backend minimum fee in the payment unit"`

	Mpp        bool `mapstructure:"MPP" envDefault:"true" envInfo:"Advertise multi-part payment support"`
	Bolt12     bool `mapstructure:"BOLT12" envDefault:"true" envInfo:"Advertise bolt12 support"`
	Amountless bool `mapstructure:"AMOUNTLESS" envDefault:"true" envInfo:"Advertise amountless payment support"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("PAYPROC")
	v.AutomaticEnv()

	if err := setDefaultConfig(v); err != nil {
		return nil, fmt.Errorf("error setting default config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	if err := config.initDatadir(); err != nil {
		return nil, fmt.Errorf("error initializing data directory: %w", err)
	}

	return &config, nil
}

func (c *Config) initDatadir() error {
	supportedDbType := map[string]struct{}{
		badgerDb: {},
	}
	if _, ok := supportedDbType[c.DbType]; !ok {
		return fmt.Errorf("unsupported db type: %s", c.DbType)
	}

	supportedBackendType := map[string]struct{}{
		fakeBackend: {},
	}
	if _, ok := supportedBackendType[c.BackendType]; !ok {
		return fmt.Errorf("unsupported backend type: %s", c.BackendType)
	}

	if c.Datadir == "payprocd" {
		c.Datadir = appDatadir("payprocd", false)
	}
	return makeDirectoryIfNotExists(c.Datadir)
}

func (c Config) PayTimeoutDuration() time.Duration {
	return time.Duration(c.PayTimeout) * time.Second
}

func (c Config) SubscribeRetryDelayDuration() time.Duration {
	return time.Duration(c.SubscribeRetryDelay) * time.Second
}

func (c Config) ReconcileIntervalDuration() time.Duration {
	return time.Duration(c.ReconcileInterval) * time.Second
}

func setDefaultConfig(v *viper.Viper) error {
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := f.Tag.Get("mapstructure")
		def := f.Tag.Get("envDefault")
		if def != "" {
			v.SetDefault(key, def)
		}
		err := v.BindEnv(key)
		if err != nil {
			return fmt.Errorf("error binding env variable for key %s: %w", key, err)
		}
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

// appDatadir returns an operating system specific directory to be used for
// storing application data for an application.
func appDatadir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}

	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := string(unicode.ToUpper(rune(appName[0]))) + appName[1:]
	appNameLower := string(unicode.ToLower(rune(appName[0]))) + appName[1:]

	var homeDir string
	usr, err := user.Current()
	if err == nil {
		homeDir = usr.HomeDir
	}
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}

	goos := runtime.GOOS
	switch goos {
	case "windows":
		// Windows XP and before didn't have a LOCALAPPDATA, so fallback
		// to regular APPDATA when LOCALAPPDATA is not set.
		appData := os.Getenv("LOCALAPPDATA")
		if roaming || appData == "" {
			appData = os.Getenv("APPDATA")
		}

		if appData != "" {
			return filepath.Join(appData, appNameUpper)
		}

	case "darwin":
		if homeDir != "" {
			return filepath.Join(homeDir, "Library",
				"Application Support", appNameUpper)
		}

	case "plan9":
		if homeDir != "" {
			return filepath.Join(homeDir, appNameLower)
		}

	default:
		if homeDir != "" {
			return filepath.Join(homeDir, "."+appNameLower)
		}
	}

	return "."
}
