package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"f0oster/adconvert/cmd/internal/cli"
	"f0oster/adconvert/config"
	"f0oster/adconvert/converter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	require.NoError(t, os.Unsetenv(name))
}

func TestRun_MissingVariable(t *testing.T) {
	unsetEnv(t, config.EnvADFile)
	unsetEnv(t, config.EnvLDAPFile)

	var stderr bytes.Buffer
	code := cli.Run(context.Background(), converter.ADConvert(), "", &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Variable 'AD_FILE' is required.\n", stderr.String())
}

func TestRun_MissingOutputVariable(t *testing.T) {
	t.Setenv(config.EnvADFile, filepath.Join(t.TempDir(), "dump.ldf"))
	unsetEnv(t, config.EnvLDAPFile)

	var stderr bytes.Buffer
	code := cli.Run(context.Background(), converter.ADConvert(), "", &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Variable 'LDAP_FILE' is required.\n", stderr.String())
}

func TestRun_Converts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "dump.ldf")
	output := filepath.Join(dir, "users.ldif")
	require.NoError(t, os.WriteFile(input, []byte(
		"dn: cn=Bob,dc=example,dc=com\r\n"+
			"objectClass: person\r\n"+
			"sAMAccountName: bob\r\n"+
			"objectSid:: AQUAAAAAAAUVAAAA\r\n\r\n"), 0o600))

	t.Setenv(config.EnvADFile, input)
	t.Setenv(config.EnvLDAPFile, output)
	unsetEnv(t, config.EnvArchiveDSN)
	t.Setenv(config.EnvLogLevel, "error")

	var stderr bytes.Buffer
	code := cli.Run(context.Background(), converter.ADToLDIF(), "", &stderr)
	require.Equal(t, 0, code)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "dn: cn=Bob,dc=example,dc=com\nobjectClass: person\nntUserDomainId: bob\nuid: bob", string(got))
}

func TestRun_UnreadableInput(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvADFile, filepath.Join(dir, "missing.ldf"))
	t.Setenv(config.EnvLDAPFile, filepath.Join(dir, "out.ldif"))
	unsetEnv(t, config.EnvArchiveDSN)
	t.Setenv(config.EnvLogLevel, "off")

	code := cli.Run(context.Background(), converter.LDIFConvert(), "", &bytes.Buffer{})
	assert.Equal(t, 1, code)
	assert.NoFileExists(t, filepath.Join(dir, "out.ldif"))
}
