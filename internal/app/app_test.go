package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	// Validate fx dependency graph. Providers are not executed, so no
	// environment is needed.
	require.NoError(t, fx.ValidateApp(CreateApp()))
}
