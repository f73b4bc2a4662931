/*
Package version implements module version tags.

Every list family of this module carries its own version tag, independent of the
version of the module as a whole. A tag consists of the usual three components
major.minor.patch. Tags with a major component of 0 are experimental: for them
any component may change without a new major release. For compatibility checks an
experimental tag is read shifted by one position, i.e. 0.3.1 behaves like 3.1.0.

	tag := version.MustParse("1.4.0")
	if tag.CompatibleWith(version.Tag{Major: 1, Minor: 2}) {
	    …
	}

Tags serialize to YAML as plain scalars ("1.4.0").

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package version

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkedlists.version'.
func tracer() tracing.Trace {
	return tracing.Select("linkedlists.version")
}
