package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-auth-cli/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestLenientJSON(t *testing.T) {
	t.Run("valid object decodes", func(t *testing.T) {
		got := utils.LenientJSON(`{"enabled":true}`)
		require.Equal(t, map[string]any{"enabled": true}, got)
	})

	t.Run("valid number decodes", func(t *testing.T) {
		require.Equal(t, float64(42), utils.LenientJSON("42"))
	})

	t.Run("invalid input falls back to the original string", func(t *testing.T) {
		require.Equal(t, "not-json", utils.LenientJSON("not-json"))
	})
}

func TestOptionalPtr(t *testing.T) {
	require.Nil(t, utils.OptionalPtr(""))
	require.Equal(t, "x", *utils.OptionalPtr("x"))
	require.Nil(t, utils.OptionalPtr(0))
}
