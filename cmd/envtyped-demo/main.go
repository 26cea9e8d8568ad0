// Package main provides a small demonstration binary for envtyped.
//
// It loads the examples/dbconfig schema from the process environment and
// prints the effective configuration as YAML. That makes it double as a
// config lint for deployments: every wrong or missing variable names itself
// and the process exits non-zero.
package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/yaml.v3"

	"envtyped"
	"envtyped/examples/dbconfig"
)

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339,
	}))

	cfg, err := envtyped.Load(dbconfig.Schema())
	if err != nil {
		var loadErr *envtyped.LoadError
		if errors.As(err, &loadErr) {
			for _, fieldErr := range loadErr.Fields {
				log.Error("bad variable", "err", fieldErr)
			}
		} else {
			log.Error("environ load failed", "err", err)
		}

		os.Exit(1)
	}

	cfg.DBPassword = "<redacted>"

	out, err := yaml.Marshal(cfg)
	if err != nil {
		log.Error("config dump failed", "err", err)
		os.Exit(1)
	}

	log.Info("configuration loaded",
		"instance_id", cfg.InstanceID,
		"log_level", cfg.LogLevel.String(),
	)

	_, _ = os.Stdout.Write(out)
}
