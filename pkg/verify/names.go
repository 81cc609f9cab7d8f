package verify

import "strings"

// nameAllowed rejects reserved double-underscore names, trailing variadic
// markers, and unregistered scope-resolution prefixes.
func (c *Checker) nameAllowed(name string) bool {
	if !c.scopeResolutionAllowed(name) {
		return false
	}
	if strings.HasPrefix(name, "__") {
		return c.errorf("Names starting with double underscores are reserved.")
	}
	if strings.HasSuffix(name, "...") {
		return c.errorf("Variadic arguments are not allowed.")
	}
	return true
}

// typeAllowed rejects the denylisted primitive/runtime types. Matching is by
// substring, in the fixed order below, mirroring the original tool exactly —
// including its tendency to flag a user type merely containing one of these
// substrings (e.g. a type named `character_count`). The match is
// case-sensitive.
func (c *Checker) typeAllowed(typ string) bool {
	if !c.scopeResolutionAllowed(typ) {
		return false
	}
	if strings.HasSuffix(typ, "...") {
		return c.errorf("Variadic arguments or parameter packs are not allowed.")
	}
	for _, forbidden := range []string{"float", "double", "string", "char", "QpiContext"} {
		if strings.Contains(typ, forbidden) {
			return c.errorf("Type %s is not allowed.", forbidden)
		}
	}
	return true
}

func (c *Checker) inheritanceAllowed(baseName string) bool {
	if baseName == "QpiContext" {
		return c.errorf("Inheritance from type %s is not allowed.", baseName)
	}
	return true
}

// hasStateStructPrefix enforces that every global-scope name starts with the
// state struct's name. When no ContractBase-derived struct was found,
// stateStructName is empty and every global name is rejected — the file
// cannot be a contract's state file, so nothing at global scope is valid.
func (c *Checker) hasStateStructPrefix(name string) bool {
	if c.stateStructName == "" || !strings.HasPrefix(name, c.stateStructName) {
		return c.errorf("Names declared in global scope (constants, structs/classes, functions) have to start with state struct name (%s). Found invalid name: %s", c.stateStructName, name)
	}
	return true
}

// scopeResolutionAllowed checks a `Prefix::rest` qualified name. The prefix
// must be either in the static allow-list or have already been registered by
// an earlier struct, class, or enum declaration in this same file.
func (c *Checker) scopeResolutionAllowed(name string) bool {
	idx := strings.Index(name, "::")
	if idx < 0 {
		return true
	}
	prefix := name[:idx]
	if c.cfg.IsAllowedScopePrefix(prefix) {
		return true
	}
	for _, registered := range c.registry {
		if registered == prefix {
			return true
		}
	}
	return c.errorf("Scope resolution with prefix %s is not allowed.", prefix)
}
