// ==============================================================================================
// FILE: modules/registry.go
// ==============================================================================================
// PACKAGE: modules
// PURPOSE: Backs Convo's `Import` statement with a manifest of built-in-only modules. Import
//          failure for an unlisted name is a hard error per spec (no filesystem-path imports).
// ==============================================================================================

package modules

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryYAML []byte

type moduleEntry struct {
	Exports []string `yaml:"exports"`
}

type manifest struct {
	Modules map[string]moduleEntry `yaml:"modules"`
}

var loaded manifest

func init() {
	if err := yaml.Unmarshal(registryYAML, &loaded); err != nil {
		panic("modules: malformed registry.yaml: " + err.Error())
	}
}

// Lookup returns the builtin names exported by a module name, and whether
// that name is registered at all.
func Lookup(name string) ([]string, bool) {
	entry, ok := loaded.Modules[name]
	if !ok {
		return nil, false
	}
	return entry.Exports, true
}

// Names returns every registered module name. The order is not defined
// (it follows Go map iteration).
func Names() []string {
	names := make([]string, 0, len(loaded.Modules))
	for name := range loaded.Modules {
		names = append(names, name)
	}
	return names
}
