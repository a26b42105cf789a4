package config_test

import (
	"os"
	"testing"

	"github.com/jrsteele09/go-auth-cli/internal/config"
	autherrors "github.com/jrsteele09/go-auth-cli/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("explicit wins over configured", func(t *testing.T) {
		env, err := config.Resolve("STAGE", "PROD")
		require.NoError(t, err)
		require.Equal(t, config.Stage, env)
	})

	t.Run("configured wins over default", func(t *testing.T) {
		env, err := config.Resolve("", "STAGE")
		require.NoError(t, err)
		require.Equal(t, config.Stage, env)
	})

	t.Run("no input defaults to production", func(t *testing.T) {
		env, err := config.Resolve("", "")
		require.NoError(t, err)
		require.Equal(t, config.Prod, env)
	})

	t.Run("case insensitive", func(t *testing.T) {
		env, err := config.Resolve("stage", "")
		require.NoError(t, err)
		require.Equal(t, config.Stage, env)
	})

	t.Run("unknown explicit value fails fast", func(t *testing.T) {
		_, err := config.Resolve("QA", "")
		require.Error(t, err)
		require.ErrorIs(t, err, autherrors.ErrConfiguration)
		require.Contains(t, err.Error(), "QA")
	})

	t.Run("unknown configured value fails fast", func(t *testing.T) {
		_, err := config.Resolve("", "QA")
		require.ErrorIs(t, err, autherrors.ErrConfiguration)
	})
}

func TestOrigin(t *testing.T) {
	t.Run("stage origin matches the auth URL", func(t *testing.T) {
		origin, err := config.Stage.Origin()
		require.NoError(t, err)
		require.Equal(t, "https://auth.stage.jsauth.dev", origin)
	})

	t.Run("prod origin matches the auth URL", func(t *testing.T) {
		origin, err := config.Prod.Origin()
		require.NoError(t, err)
		require.Equal(t, "https://auth.jsauth.dev", origin)
	})

	t.Run("unknown environment errors", func(t *testing.T) {
		_, err := config.Environment("QA").Origin()
		require.ErrorIs(t, err, autherrors.ErrConfiguration)
	})
}

func TestLoadCLIConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// Register restores via t.Setenv, then clear so the defaults apply.
		t.Setenv("AUTH_CLI_ENV", "")
		t.Setenv("AUTH_CLI_TIMEOUT", "")
		os.Unsetenv("AUTH_CLI_ENV")
		os.Unsetenv("AUTH_CLI_TIMEOUT")
		cfg, err := config.LoadCLIConfig()
		require.NoError(t, err)
		require.Equal(t, "", cfg.Environment)
		require.Equal(t, 120, cfg.TimeoutSeconds)
	})

	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("AUTH_CLI_ENV", "STAGE")
		t.Setenv("AUTH_CLI_TIMEOUT", "30")
		cfg, err := config.LoadCLIConfig()
		require.NoError(t, err)
		require.Equal(t, "STAGE", cfg.Environment)
		require.Equal(t, 30, cfg.TimeoutSeconds)
	})
}
