package pbtool

import (
	"git.fractalqb.de/fractalqb/pbtool/mkfs"
	"github.com/bits-and-blooms/bitset"
)

// IsStale reports whether out has to be generated from src. This is the case
// if one of both has no [mkfs.File.StateAt] or if src was modified after out.
// Only modification times are compared, not contents.
func IsStale(src, out mkfs.File) bool {
	sat, oat := src.StateAt(), out.StateAt()
	if sat.IsZero() || oat.IsZero() {
		return true
	}
	return sat.After(oat)
}

// Stale returns the set of indices of all stale artifacts in arts.
func Stale(arts []Artifact) *bitset.BitSet {
	set := bitset.New(uint(len(arts)))
	for i, a := range arts {
		if IsStale(a.Source, a.Output) {
			set.Set(uint(i))
		}
	}
	return set
}
