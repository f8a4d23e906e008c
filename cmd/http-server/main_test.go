package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestAppModule_Graph(t *testing.T) {
	for _, driver := range []string{"memory", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			t.Setenv("DATABASE_DRIVER", driver)
			require.NoError(t, fx.ValidateApp(appModule))
		})
	}
}
