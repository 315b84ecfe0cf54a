package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/hanfei1991/collections/pkg/containers"
	derror "github.com/hanfei1991/collections/pkg/errors"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// ContainerConfig holds the construction options of one container kind.
type ContainerConfig struct {
	Capacity int `toml:"capacity" json:"capacity"`
}

// Config is the configuration of containerctl.
type Config struct {
	LogLevel  string `toml:"log-level" json:"log-level"`
	LogFile   string `toml:"log-file" json:"log-file"`
	LogFormat string `toml:"log-format" json:"log-format"`

	Queue ContainerConfig `toml:"queue" json:"queue"`
	Set   ContainerConfig `toml:"set" json:"set"`

	ConfigFile string `toml:"config-file" json:"config-file"`
}

// NewConfig creates a config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Queue:     ContainerConfig{Capacity: containers.DefaultCapacity},
		Set:       ContainerConfig{Capacity: containers.DefaultCapacity},
	}
}

// BindFlags registers the command line flags backed by c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", "", "path to config file")
	fs.StringVarP(&c.LogLevel, "log-level", "L", defaultLogLevel, "log level: debug, info, warn, error, fatal")
	fs.StringVar(&c.LogFile, "log-file", "", "log file path")
	fs.StringVar(&c.LogFormat, "log-format", defaultLogFormat, `the format of the log, "text" or "json"`)
	fs.IntVar(&c.Queue.Capacity, "queue-capacity", containers.DefaultCapacity, "initial capacity of queues")
	fs.IntVar(&c.Set.Capacity, "set-capacity", containers.DefaultCapacity, "initial capacity of sets")
}

func (c *Config) String() string {
	cfg, err := json.Marshal(c)
	if err != nil {
		log.Error("marshal config to json", zap.Reflect("config", c), zap.Error(err))
	}
	return string(cfg)
}

// Toml returns TOML format representation of config.
func (c *Config) Toml() (string, error) {
	var b bytes.Buffer

	err := toml.NewEncoder(&b).Encode(c)
	if err != nil {
		log.Error("fail to marshal config to toml", zap.Error(err))
		return "", errors.Trace(err)
	}

	return b.String(), nil
}

// Load reads the config file if one is given, then lets the flags that
// were set explicitly on the command line take precedence over it.
func (c *Config) Load(fs *pflag.FlagSet) error {
	if c.ConfigFile != "" {
		// the file overwrites the fields bound to flags, remember what
		// the user asked for first
		changed := make(map[string]string)
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				changed[f.Name] = f.Value.String()
			}
		})

		if err := c.configFromFile(c.ConfigFile); err != nil {
			return err
		}

		for name, value := range changed {
			if err := fs.Set(name, value); err != nil {
				return derror.Wrap(derror.ErrConfigInvalidFlag, err, name)
			}
		}
	}
	return c.Adjust()
}

// Adjust validates the config.
func (c *Config) Adjust() error {
	if c.Queue.Capacity <= 0 {
		return derror.ErrInvalidArgument.GenWithStackByArgs("queue capacity must be positive")
	}
	if c.Set.Capacity <= 0 {
		return derror.ErrInvalidArgument.GenWithStackByArgs("set capacity must be positive")
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	switch c.LogFormat {
	case "":
		c.LogFormat = defaultLogFormat
	case "text", "json":
	default:
		return derror.ErrInvalidArgument.GenWithStackByArgs("unknown log format " + c.LogFormat)
	}
	return nil
}

// configFromFile loads config from file.
func (c *Config) configFromFile(path string) error {
	metaData, err := toml.DecodeFile(path, c)
	if err != nil {
		return derror.Wrap(derror.ErrConfigDecodeFile, err)
	}
	undecoded := metaData.Undecoded()
	if len(undecoded) > 0 {
		var undecodedItems []string
		for _, item := range undecoded {
			undecodedItems = append(undecodedItems, item.String())
		}
		return derror.ErrConfigUnknownItem.GenWithStackByArgs(strings.Join(undecodedItems, ","))
	}
	return nil
}
