// pkg/manager/selector.go
package manager

import (
	"fmt"

	"github.com/hostpkg/hostpkg/pkg/sysprobe"
)

// Selector picks the package manager to use for a run
type Selector struct {
	probe sysprobe.Probe
}

// NewSelector creates a Selector. A nil probe falls back to PATH lookup.
func NewSelector(probe sysprobe.Probe) *Selector {
	if probe == nil {
		probe = sysprobe.Default()
	}
	return &Selector{probe: probe}
}

// Select resolves the requested kind against the host.
//
// A concrete kind is returned as-is once its binary probes present;
// KindAuto walks the family's priority order and returns the first manager
// whose binary probes present. Selection is deterministic for a fixed set
// of probe results.
func (s *Selector) Select(requested Kind, family OSFamily) (Descriptor, error) {
	if requested != KindAuto {
		desc, err := DescriptorOf(requested, family)
		if err != nil {
			return Descriptor{}, err
		}
		if !s.probe(desc.Bin) {
			return Descriptor{}, fmt.Errorf("%w: %s", ErrManagerNotInstalled, requested)
		}
		return desc, nil
	}

	descs, err := DescriptorsFor(family)
	if err != nil {
		return Descriptor{}, err
	}
	for _, desc := range descs {
		if s.probe(desc.Bin) {
			return desc, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w on %s", ErrNoManagerFound, family)
}

// Available returns the kinds registered for the family whose binaries
// probe present, in priority order
func (s *Selector) Available(family OSFamily) ([]Kind, error) {
	descs, err := DescriptorsFor(family)
	if err != nil {
		return nil, err
	}
	var kinds []Kind
	for _, desc := range descs {
		if s.probe(desc.Bin) {
			kinds = append(kinds, desc.Kind)
		}
	}
	return kinds, nil
}
