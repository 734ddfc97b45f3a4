package settings

import (
	"maps"
	"slices"

	"github.com/musicinmybrain/uv/internal/types"
)

// Clone returns a deep copy of o. Mutating the copy never affects o.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	return &Options{
		Quiet:     clonePtr(o.Quiet),
		Verbose:   clonePtr(o.Verbose),
		NativeTLS: clonePtr(o.NativeTLS),
		Pip:       o.Pip.Clone(),
		Resolver:  o.Resolver.Clone(),
		Installer: o.Installer.Clone(),
	}
}

// Clone returns a deep copy of p.
func (p *PipOptions) Clone() *PipOptions {
	if p == nil {
		return nil
	}
	return &PipOptions{
		System:           clonePtr(p.System),
		Offline:          clonePtr(p.Offline),
		IndexURL:         clonePtr(p.IndexURL),
		ExtraIndexURL:    slices.Clone(p.ExtraIndexURL),
		NoIndex:          clonePtr(p.NoIndex),
		FindLinks:        slices.Clone(p.FindLinks),
		IndexStrategy:    clonePtr(p.IndexStrategy),
		KeyringProvider:  clonePtr(p.KeyringProvider),
		NoBuild:          clonePtr(p.NoBuild),
		NoBinary:         slices.Clone(p.NoBinary),
		OnlyBinary:       slices.Clone(p.OnlyBinary),
		NoBuildIsolation: clonePtr(p.NoBuildIsolation),
		Resolver:         p.Resolver.Clone(),
		Installer:        p.Installer.Clone(),
	}
}

// Clone returns a deep copy of r.
func (r *ResolverOptions) Clone() *ResolverOptions {
	if r == nil {
		return nil
	}
	c := &ResolverOptions{
		Resolution:      clonePtr(r.Resolution),
		Prerelease:      clonePtr(r.Prerelease),
		NoStripExtras:   clonePtr(r.NoStripExtras),
		NoAnnotate:      clonePtr(r.NoAnnotate),
		NoHeader:        clonePtr(r.NoHeader),
		GenerateHashes:  clonePtr(r.GenerateHashes),
		LegacySetupPy:   clonePtr(r.LegacySetupPy),
		ConfigSetting:   cloneConfigSettings(r.ConfigSetting),
		ExcludeNewer:    clonePtr(r.ExcludeNewer),
		NoEmitPackage:   slices.Clone(r.NoEmitPackage),
		EmitIndexURL:    clonePtr(r.EmitIndexURL),
		EmitFindLinks:   clonePtr(r.EmitFindLinks),
		AnnotationStyle: clonePtr(r.AnnotationStyle),
	}
	if r.PythonVersion != nil {
		v := *r.PythonVersion
		v.Patch = clonePtr(v.Patch)
		c.PythonVersion = &v
	}
	return c
}

// Clone returns a deep copy of i.
func (i *InstallerOptions) Clone() *InstallerOptions {
	if i == nil {
		return nil
	}
	return &InstallerOptions{
		LinkMode: clonePtr(i.LinkMode),
		Compile:  clonePtr(i.Compile),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneConfigSettings(c types.ConfigSettings) types.ConfigSettings {
	if c == nil {
		return nil
	}
	out := maps.Clone(c)
	for k, v := range out {
		if list, ok := v.([]string); ok {
			out[k] = slices.Clone(list)
		}
	}
	return out
}
