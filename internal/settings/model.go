package settings

import "github.com/musicinmybrain/uv/internal/types"

// Options is the root of the option tree, as found in uv.toml or under
// [tool.uv] in pyproject.toml.
type Options struct {
	Quiet     *bool             `toml:"quiet,omitempty" yaml:"quiet,omitempty" json:"quiet,omitempty"`
	Verbose   *bool             `toml:"verbose,omitempty" yaml:"verbose,omitempty" json:"verbose,omitempty"`
	NativeTLS *bool             `toml:"native-tls,omitempty" yaml:"native-tls,omitempty" json:"native-tls,omitempty"`
	Pip       *PipOptions       `toml:"pip,omitempty" yaml:"pip,omitempty" json:"pip,omitempty"`
	Resolver  *ResolverOptions  `toml:"resolver,omitempty" yaml:"resolver,omitempty" json:"resolver,omitempty"`
	Installer *InstallerOptions `toml:"installer,omitempty" yaml:"installer,omitempty" json:"installer,omitempty"`
}

// PipOptions are the settings of the pip-compatible interface. The nested
// resolver and installer groups are populated independently of the
// root-level ones.
type PipOptions struct {
	System           *bool                        `toml:"system,omitempty" yaml:"system,omitempty" json:"system,omitempty"`
	Offline          *bool                        `toml:"offline,omitempty" yaml:"offline,omitempty" json:"offline,omitempty"`
	IndexURL         *types.IndexURL              `toml:"index-url,omitempty" yaml:"index-url,omitempty" json:"index-url,omitempty"`
	ExtraIndexURL    []types.IndexURL             `toml:"extra-index-url,omitempty" yaml:"extra-index-url,omitempty" json:"extra-index-url,omitempty"`
	NoIndex          *bool                        `toml:"no-index,omitempty" yaml:"no-index,omitempty" json:"no-index,omitempty"`
	FindLinks        []types.FlatIndexLocation    `toml:"find-links,omitempty" yaml:"find-links,omitempty" json:"find-links,omitempty"`
	IndexStrategy    *types.IndexStrategy         `toml:"index-strategy,omitempty" yaml:"index-strategy,omitempty" json:"index-strategy,omitempty"`
	KeyringProvider  *types.KeyringProvider       `toml:"keyring-provider,omitempty" yaml:"keyring-provider,omitempty" json:"keyring-provider,omitempty"`
	NoBuild          *bool                        `toml:"no-build,omitempty" yaml:"no-build,omitempty" json:"no-build,omitempty"`
	NoBinary         []types.PackageNameSpecifier `toml:"no-binary,omitempty" yaml:"no-binary,omitempty" json:"no-binary,omitempty"`
	OnlyBinary       []types.PackageNameSpecifier `toml:"only-binary,omitempty" yaml:"only-binary,omitempty" json:"only-binary,omitempty"`
	NoBuildIsolation *bool                        `toml:"no-build-isolation,omitempty" yaml:"no-build-isolation,omitempty" json:"no-build-isolation,omitempty"`
	Resolver         *ResolverOptions             `toml:"resolver,omitempty" yaml:"resolver,omitempty" json:"resolver,omitempty"`
	Installer        *InstallerOptions            `toml:"installer,omitempty" yaml:"installer,omitempty" json:"installer,omitempty"`
}

// ResolverOptions control dependency resolution and the rendering of
// compiled requirements.
type ResolverOptions struct {
	Resolution      *types.ResolutionMode  `toml:"resolution,omitempty" yaml:"resolution,omitempty" json:"resolution,omitempty"`
	Prerelease      *types.PreReleaseMode  `toml:"prerelease,omitempty" yaml:"prerelease,omitempty" json:"prerelease,omitempty"`
	NoStripExtras   *bool                  `toml:"no-strip-extras,omitempty" yaml:"no-strip-extras,omitempty" json:"no-strip-extras,omitempty"`
	NoAnnotate      *bool                  `toml:"no-annotate,omitempty" yaml:"no-annotate,omitempty" json:"no-annotate,omitempty"`
	NoHeader        *bool                  `toml:"no-header,omitempty" yaml:"no-header,omitempty" json:"no-header,omitempty"`
	GenerateHashes  *bool                  `toml:"generate-hashes,omitempty" yaml:"generate-hashes,omitempty" json:"generate-hashes,omitempty"`
	LegacySetupPy   *bool                  `toml:"legacy-setup-py,omitempty" yaml:"legacy-setup-py,omitempty" json:"legacy-setup-py,omitempty"`
	ConfigSetting   types.ConfigSettings   `toml:"config-setting,omitempty" yaml:"config-setting,omitempty" json:"config-setting,omitempty"`
	PythonVersion   *types.PythonVersion   `toml:"python-version,omitempty" yaml:"python-version,omitempty" json:"python-version,omitempty"`
	ExcludeNewer    *types.Timestamp       `toml:"exclude-newer,omitempty" yaml:"exclude-newer,omitempty" json:"exclude-newer,omitempty"`
	NoEmitPackage   []types.PackageName    `toml:"no-emit-package,omitempty" yaml:"no-emit-package,omitempty" json:"no-emit-package,omitempty"`
	EmitIndexURL    *bool                  `toml:"emit-index-url,omitempty" yaml:"emit-index-url,omitempty" json:"emit-index-url,omitempty"`
	EmitFindLinks   *bool                  `toml:"emit-find-links,omitempty" yaml:"emit-find-links,omitempty" json:"emit-find-links,omitempty"`
	AnnotationStyle *types.AnnotationStyle `toml:"annotation-style,omitempty" yaml:"annotation-style,omitempty" json:"annotation-style,omitempty"`
}

// InstallerOptions control how distributions are installed.
type InstallerOptions struct {
	LinkMode *types.LinkMode `toml:"link-mode,omitempty" yaml:"link-mode,omitempty" json:"link-mode,omitempty"`
	Compile  *bool           `toml:"compile,omitempty" yaml:"compile,omitempty" json:"compile,omitempty"`
}

// IsEmpty reports whether no option, at any tier, was set.
func (o *Options) IsEmpty() bool {
	return o == nil || *o == Options{}
}
