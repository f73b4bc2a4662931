/*
Package linkedlists is a collection of singly linked lists.

Package stack implements a mutable list with stack operations. Packages persistent/rc
and persistent/arc implement immutable persistent lists with structural sharing, the
latter being safe for use from multiple goroutines.

Each list family carries a version tag of its own, independent of the version of this
module. Modules reports the families compiled into a binary together with their tags.
Families may be excluded from the manifest with build tags

	linkedlists_nostack   linkedlists_norc   linkedlists_noarc

Excluding all of them results in an empty manifest.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linkedlists

import (
	"errors"
	"fmt"

	"github.com/npillmayer/linkedlists/version"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'linkedlists'.
func tracer() tracing.Trace {
	return tracing.Select("linkedlists")
}

// Errors reported by Require.
var (
	ErrUnknownModule = errors.New("module not compiled in")
	ErrIncompatible  = errors.New("incompatible module version")
)

// Module describes a list family compiled into the binary.
type Module struct {
	Name    string      `yaml:"name"`
	Version version.Tag `yaml:"version"`
}

func (m Module) String() string {
	return m.Name + "@" + m.Version.String()
}

// Modules returns the list families compiled in, in a fixed order.
func Modules() []Module {
	var modules []Module
	modules = append(modules, stackModule()...)
	modules = append(modules, rcModule()...)
	modules = append(modules, arcModule()...)
	return modules
}

// Lookup finds a module by name.
func Lookup(name string) (Module, bool) {
	for _, m := range Modules() {
		if m.Name == name {
			return m, true
		}
	}
	return Module{}, false
}

// Require checks that module name is compiled in with a version compatible to required.
func Require(name string, required version.Tag) error {
	m, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}
	if !m.Version.CompatibleWith(required) {
		tracer().Infof("module %s does not satisfy %s", m, required)
		return fmt.Errorf("%w: have %s, require %s", ErrIncompatible, m, required)
	}
	return nil
}

// Manifest renders the modules compiled in as YAML.
func Manifest() ([]byte, error) {
	doc := struct {
		Modules []Module `yaml:"modules"`
	}{Modules: Modules()}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return out, nil
}
