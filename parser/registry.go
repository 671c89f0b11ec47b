package parser

import (
	"runtime/debug"
	"sync"
)

// resolverVersion tags the provenance of every extracted Metadata.
const resolverVersion = "specforge/1"

type registry struct {
	Version  string
	Revision string
}

var (
	registryOnce  sync.Once
	registryValue *registry
)

// versionRegistry returns the process-wide version registry. It is
// initialized once on first access and never mutated afterwards, so
// concurrent pipeline instances may read it freely.
func versionRegistry() *registry {
	registryOnce.Do(func() {
		registryValue = &registry{Version: resolverVersion}
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					registryValue.Revision = setting.Value
					break
				}
			}
		}
	})
	return registryValue
}

// ResolverVersion returns the version tag recorded in Metadata provenance.
func ResolverVersion() string {
	r := versionRegistry()
	if len(r.Revision) >= 12 {
		return r.Version + "+" + r.Revision[:12]
	}
	return r.Version
}
