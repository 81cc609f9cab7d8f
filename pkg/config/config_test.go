package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIncludesKnownMacrosAndPrefixes(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.KnownMacroNames, "PUBLIC_FUNCTION")
	assert.Contains(t, cfg.KnownMacroNames, "SELF")
	assert.Contains(t, cfg.AllowedScopePrefixes, "QPI")
	assert.Contains(t, cfg.AllowedScopePrefixes, "QX")
}

func TestDefaultReturnsIndependentSlices(t *testing.T) {
	a := Default()
	b := Default()

	a.KnownMacroNames = append(a.KnownMacroNames, "MUTATED")
	assert.NotContains(t, b.KnownMacroNames, "MUTATED")
}

func TestLoadWithoutConfigFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesProjectOverrides(t *testing.T) {
	dir := t.TempDir()
	contents := "known_macro_names:\n  - CUSTOM_MACRO\nallowed_scope_prefixes:\n  - MYCONTRACT\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".contractverify.yaml"), []byte(contents), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Contains(t, cfg.KnownMacroNames, "CUSTOM_MACRO")
	assert.Contains(t, cfg.KnownMacroNames, "PUBLIC_FUNCTION")
	assert.Contains(t, cfg.AllowedScopePrefixes, "MYCONTRACT")
	assert.Contains(t, cfg.AllowedScopePrefixes, "QPI")
}

func TestLoadWalksUpToFindConfig(t *testing.T) {
	root := t.TempDir()
	contents := "known_macro_names:\n  - ROOT_MACRO\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".contractverify.yaml"), []byte(contents), 0o644))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.Contains(t, cfg.KnownMacroNames, "ROOT_MACRO")
}

func TestIsAllowedScopePrefix(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.IsAllowedScopePrefix("QPI"))
	assert.False(t, cfg.IsAllowedScopePrefix("NOTALLOWED"))
}
