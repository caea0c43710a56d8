package verifyemail_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verifyemail/pkg/verifyemail"
)

func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"VERIFY_EMAIL_SIGNING_SECRET", "VERIFY_EMAIL_LIFETIME_SECONDS", "VERIFY_EMAIL_ALGORITHM"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("VERIFY_EMAIL_SIGNING_SECRET", "from-env")
	t.Setenv("VERIFY_EMAIL_LIFETIME_SECONDS", "900")

	cfg, err := verifyemail.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SigningSecret)
	assert.Equal(t, 900, cfg.LifetimeSeconds)
	assert.Equal(t, "hmac-sha256", cfg.Algorithm)
}

func TestLoadConfig_FromFile(t *testing.T) {
	unsetConfigEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VERIFY_EMAIL_SIGNING_SECRET=from-file\nVERIFY_EMAIL_ALGORITHM=blake2b\n"), 0o600))

	cfg, err := verifyemail.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.SigningSecret)
	assert.Equal(t, 3600, cfg.LifetimeSeconds)
	assert.Equal(t, "blake2b", cfg.Algorithm)
}

func TestLoadConfig_Errors(t *testing.T) {
	unsetConfigEnv(t)

	_, err := verifyemail.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, verifyemail.ErrParsingConfig)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VERIFY_EMAIL_LIFETIME_SECONDS=60\n"), 0o600))
	_, err = verifyemail.LoadConfig(path)
	require.ErrorIs(t, err, verifyemail.ErrParsingConfig, "secret is required")
}

func TestConfig_LogValueHidesSecret(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))
	log.Info("config", slog.Any("config", verifyemail.Config{SigningSecret: "super-secret", LifetimeSeconds: 60}))

	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), `"signing_secret_set":true`)
}
