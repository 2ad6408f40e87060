package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

const (
	EnvADFile     = "AD_FILE"
	EnvLDAPFile   = "LDAP_FILE"
	EnvLogLevel   = "ADCONVERT_LOG_LEVEL"
	EnvLogFormat  = "ADCONVERT_LOG_FORMAT"
	EnvArchiveDSN = "ADCONVERT_ARCHIVE_DSN"
)

var ErrMissingVariable = errors.New("required variable is not set")

// MissingVariableError names the environment variable that was absent.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("variable '%s' is required", e.Name)
}

func (e *MissingVariableError) Unwrap() error {
	return ErrMissingVariable
}

type ADConvertConfiguration struct {
	ADFile     string
	LDAPFile   string
	LogLevel   string `default:"info"`
	LogFormat  string `default:"text"`
	ArchiveDSN string
}

// LoadEnvConfig reads an optional env file and then the process environment.
// AD_FILE and LDAP_FILE are required; every other setting has a default.
func LoadEnvConfig(configName string) (ADConvertConfiguration, error) {
	var cfg ADConvertConfiguration

	if configName != "" {
		if err := godotenv.Load(configName); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("error loading %s: %w", configName, err)
		}
	}

	if err := defaults.Set(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	var err error
	if cfg.ADFile, err = RequireVariable(EnvADFile); err != nil {
		return cfg, err
	}
	if cfg.LDAPFile, err = RequireVariable(EnvLDAPFile); err != nil {
		return cfg, err
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	cfg.ArchiveDSN = os.Getenv(EnvArchiveDSN)

	return cfg, nil
}

// RequireVariable returns the value of name, or a *MissingVariableError when it is unset or empty.
func RequireVariable(name string) (string, error) {
	val := os.Getenv(name)
	if val == "" {
		return "", &MissingVariableError{Name: name}
	}
	return val, nil
}
