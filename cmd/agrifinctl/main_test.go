package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])

	f := seedCmd.Flags().Lookup("reset")
	require.NotNil(t, f)
	assert.Equal(t, "false", f.DefValue)
}

func TestMigrateAndSeed_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "ctl.db"))
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"migrate"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "schema up to date")

	out.Reset()
	rootCmd.SetArgs([]string{"seed", "--reset"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Products: 8")
	assert.Contains(t, out.String(), "Users:    5")
}
