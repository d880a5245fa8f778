package pbtool

import (
	"path/filepath"

	"git.fractalqb.de/fractalqb/pbtool/mkfs"
	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
)

type ArtifactKind int

const (
	UIArtifact ArtifactKind = iota
	ResourceArtifact
)

func (k ArtifactKind) String() string {
	switch k {
	case UIArtifact:
		return "ui"
	case ResourceArtifact:
		return "resource"
	}
	return "unknown"
}

const (
	UIOutputExt    = ".py"
	ResourceSuffix = "_rc.py"
)

// Artifact is a Python module generated from a UI or resource definition.
type Artifact struct {
	Kind   ArtifactKind
	Source mkfs.File
	Output mkfs.File
}

func UIArtifactOf(src string) Artifact {
	f := mkfs.File(src)
	return Artifact{Kind: UIArtifact, Source: f, Output: f.WithExt(UIOutputExt)}
}

func ResourceArtifactOf(src string) Artifact {
	f := mkfs.File(src)
	return Artifact{Kind: ResourceArtifact, Source: f, Output: f.WithSuffix(ResourceSuffix)}
}

// In returns a with source and output relative to dir.
func (a Artifact) In(dir string) Artifact {
	if dir == "" {
		return a
	}
	a.Source = mkfs.File(filepath.Join(dir, a.Source.Path()))
	a.Output = mkfs.File(filepath.Join(dir, a.Output.Path()))
	return a
}

func ResolveCompiledUI(p *pbcfg.Project) []Artifact {
	arts := make([]Artifact, 0, len(p.Files.CompiledUI))
	for _, src := range p.Files.CompiledUI {
		arts = append(arts, UIArtifactOf(src))
	}
	return arts
}

func ResolveCompiledResources(p *pbcfg.Project) []Artifact {
	arts := make([]Artifact, 0, len(p.Files.Resources))
	for _, src := range p.Files.Resources {
		arts = append(arts, ResourceArtifactOf(src))
	}
	return arts
}

// Manifest is the ordered list of files that are copied into the deployed
// plugin. Paths are relative to the project directory.
type Manifest []string

// ResolveInstallManifest returns the python files, the main dialog, the
// outputs of all compiled artifacts and the extras in the order they are
// declared. Duplicates are kept.
func ResolveInstallManifest(p *pbcfg.Project) Manifest {
	var m Manifest
	m = append(m, p.Files.PythonFiles...)
	m = append(m, p.Files.MainDialog...)
	for _, a := range ResolveCompiledUI(p) {
		m = append(m, a.Output.Path())
	}
	for _, a := range ResolveCompiledResources(p) {
		m = append(m, a.Output.Path())
	}
	m = append(m, p.Files.Extras...)
	return m
}

// Duplicates returns the entries that occur more than once in m, each in
// the order of its first repetition.
func (m Manifest) Duplicates() (dups []string) {
	seen := make(map[string]int, len(m))
	for _, f := range m {
		seen[f]++
		if seen[f] == 2 {
			dups = append(dups, f)
		}
	}
	return dups
}
