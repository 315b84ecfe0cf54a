package logutil

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/hanfei1991/collections/pkg/config"
)

// InitLogger builds the global logger from cfg and installs it.
func InitLogger(cfg *config.Config) error {
	logCfg := &log.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File: log.FileLogConfig{
			Filename: cfg.LogFile,
		},
	}
	lg, props, err := log.InitLogger(logCfg)
	if err != nil {
		return errors.Annotate(err, "init logger")
	}
	log.ReplaceGlobals(lg, props)
	log.Debug("logger initialized",
		zap.String("level", cfg.LogLevel),
		zap.String("format", cfg.LogFormat),
		zap.String("file", cfg.LogFile))
	return nil
}
