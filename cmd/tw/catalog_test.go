package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/template-wizard/internal/config"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/testutil"
)

func TestCatalogListsEmbeddedCatalog(t *testing.T) {
	isolate(t, nil)

	stdout, _, err := runTW(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, stdout, messages.CatalogProjectTypesHeader)
	assert.Contains(t, stdout, "Navigation Pane")
	assert.Contains(t, stdout, "Caliburn.Micro (SplitView, Blank)")
	assert.Contains(t, stdout, "MVVM Basic ("+messages.CatalogAllProjectTypes+")")
	assert.Contains(t, stdout, "page templates:")
	assert.Contains(t, stdout, "feature templates:")
	assert.NotContains(t, stdout, "fx.mvvmlight", "implicit templates are not offered")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestCatalogFlagOverridesConfig(t *testing.T) {
	dir := isolate(t, nil)
	path := testutil.WriteCatalog(t, dir)
	testutil.WriteFile(t, dir, "config.toml", "[catalog]\npath = \"/does/not/exist.toml\"\n")

	stdout, _, err := runTW(t, "catalog", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Console app")
	assert.Contains(t, stdout, "[1 license(s)]")
}

func TestCatalogReportsConfigErrors(t *testing.T) {
	dir := isolate(t, nil)
	testutil.WriteFile(t, dir, "config.toml", "[output]\nformat = \"xml\"\n")

	_, _, err := runTW(t, "catalog")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfigValidation)
}

func TestExplicitConfigFlag(t *testing.T) {
	isolate(t, nil)
	dir := t.TempDir()
	cfgPath := testutil.WriteFile(t, dir, "tw.toml", "[catalog]\npath = \""+testutil.WriteCatalog(t, dir)+"\"\n")

	stdout, _, err := runTW(t, "--config", cfgPath, "catalog")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Console app")
}
