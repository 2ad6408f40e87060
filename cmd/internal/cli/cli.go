// Package cli holds the process glue shared by the conversion binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"f0oster/adconvert/config"
	"f0oster/adconvert/converter"
	"f0oster/adconvert/database"

	"github.com/hashicorp/go-hclog"
)

const envFile = "settings.env"

// Main runs variant with configuration from the environment and exits the process.
func Main(variant converter.Variant) {
	os.Exit(Run(context.Background(), variant, envFile, os.Stderr))
}

// Run returns the process exit status. A missing required variable fails before any file is touched.
func Run(ctx context.Context, variant converter.Variant, configName string, stderr io.Writer) int {
	cfg, err := config.LoadEnvConfig(configName)
	if err != nil {
		var missing *config.MissingVariableError
		if errors.As(err, &missing) {
			fmt.Fprintf(stderr, "Variable '%s' is required.\n", missing.Name)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	logger := config.NewLogger(variant.Name, cfg)

	var opts []converter.Option
	if cfg.ArchiveDSN != "" {
		db, err := openArchive(ctx, cfg.ArchiveDSN, logger)
		if err != nil {
			logger.Warn("archive disabled", "error", err)
		} else {
			defer db.Close()
			opts = append(opts, converter.WithArchiver(database.NewArchiver(db, logger)))
		}
	}

	conv := converter.New(variant, logger, opts...)
	if err := conv.Run(ctx, cfg.ADFile, cfg.LDAPFile); err != nil {
		logger.Error("conversion failed", "error", err)
		return 1
	}
	return 0
}

func openArchive(ctx context.Context, dsn string, logger hclog.Logger) (*database.Database, error) {
	db := database.NewDatabase(dsn, logger)
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
