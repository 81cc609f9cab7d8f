// Package config loads the two static allow-lists the rule engine consults:
// the known macro names handed to the parser, and the scope prefixes a
// `Prefix::name` qualifier is allowed to use. Both default to the lists in
// the original contract-verify tool and may be extended (never replaced) by
// a project-level YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the effective set of static allow-lists for one run.
type Config struct {
	KnownMacroNames      []string `yaml:"known_macro_names"`
	AllowedScopePrefixes []string `yaml:"allowed_scope_prefixes"`
}

// projectOverrides is the on-disk shape of a `.contractverify.yaml` file. It
// only ever adds entries to the defaults.
type projectOverrides struct {
	KnownMacroNames      []string `yaml:"known_macro_names"`
	AllowedScopePrefixes []string `yaml:"allowed_scope_prefixes"`
}

// defaultKnownMacroNames is the platform macro allow-list supplied to the
// parser so these identifiers tokenize as macros, not unknown symbols.
var defaultKnownMacroNames = []string{
	"INITIALIZE",
	"INITIALIZE_WITH_LOCALS",
	"BEGIN_EPOCH",
	"BEGIN_EPOCH_WITH_LOCALS",
	"END_EPOCH",
	"END_EPOCH_WITH_LOCALS",
	"BEGIN_TICK",
	"BEGIN_TICK_WITH_LOCALS",
	"END_TICK",
	"END_TICK_WITH_LOCALS",
	"PRE_ACQUIRE_SHARES",
	"PRE_ACQUIRE_SHARES_WITH_LOCALS",
	"PRE_RELEASE_SHARES",
	"PRE_RELEASE_SHARES_WITH_LOCALS",
	"POST_ACQUIRE_SHARES",
	"POST_ACQUIRE_SHARES_WITH_LOCALS",
	"POST_RELEASE_SHARES",
	"POST_RELEASE_SHARES_WITH_LOCALS",
	"POST_INCOMING_TRANSFER",
	"POST_INCOMING_TRANSFER_WITH_LOCALS",
	"EXPAND",
	"LOG_DEBUG",
	"LOG_ERROR",
	"LOG_INFO",
	"LOG_WARNING",
	"PRIVATE_FUNCTION",
	"PRIVATE_FUNCTION_WITH_LOCALS",
	"PRIVATE_PROCEDURE",
	"PRIVATE_PROCEDURE_WITH_LOCALS",
	"PUBLIC_FUNCTION",
	"PUBLIC_FUNCTION_WITH_LOCALS",
	"PUBLIC_PROCEDURE",
	"PUBLIC_PROCEDURE_WITH_LOCALS",
	"REGISTER_USER_FUNCTIONS_AND_PROCEDURES",
	"REGISTER_USER_FUNCTION",
	"REGISTER_USER_PROCEDURE",
	"CALL",
	"CALL_OTHER_CONTRACT_FUNCTION",
	"INVOKE_OTHER_CONTRACT_PROCEDURE",
	"QUERY_ORACLE",
	"SELF",
	"SELF_INDEX",
}

// defaultAllowedScopePrefixes is the static whitelist of `Prefix::` names
// that resolve without being declared in the file under check.
var defaultAllowedScopePrefixes = []string{
	// QPI and names defined in qpi.h
	"QPI",
	"ProposalTypes",
	"TransferType",
	"AssetIssuanceSelect",
	"AssetOwnershipSelect",
	"AssetPossessionSelect",
	// other contract names
	"QUOTTERY",
	"QX",
	"TESTEXA",
	"TESTEXB",
}

// Default returns the built-in allow-lists with no project overrides.
func Default() *Config {
	return &Config{
		KnownMacroNames:      append([]string(nil), defaultKnownMacroNames...),
		AllowedScopePrefixes: append([]string(nil), defaultAllowedScopePrefixes...),
	}
}

// Load merges `.contractverify.yaml`, found by walking up from startDir, into
// the defaults. It returns the defaults unchanged if no file is found.
func Load(startDir string) (*Config, error) {
	cfg := Default()

	path, err := find(startDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var overrides projectOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.KnownMacroNames = append(cfg.KnownMacroNames, overrides.KnownMacroNames...)
	cfg.AllowedScopePrefixes = append(cfg.AllowedScopePrefixes, overrides.AllowedScopePrefixes...)

	return cfg, nil
}

// find searches startDir and its parents for a `.contractverify.yaml` file.
func find(startDir string) (string, error) {
	dir := startDir
	for {
		path := filepath.Join(dir, ".contractverify.yaml")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// IsAllowedScopePrefix reports whether prefix is in the static allow-list.
func (c *Config) IsAllowedScopePrefix(prefix string) bool {
	for _, p := range c.AllowedScopePrefixes {
		if p == prefix {
			return true
		}
	}
	return false
}
