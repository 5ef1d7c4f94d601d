package manifest

// Validate performs semantic checks on an already-parsed manifest and
// returns a normalized copy.
//
// The only cycle check in scope is direct self-reference: a manifest whose
// own name appears under any dependency kind fails with
// CircularDependencyError. Resolving cycles across multiple manifests is a
// dependency-resolution concern and is not done here.
//
// Normalization drops dependency kinds with zero entries from the map (they
// are never present as empty slices); within-kind order and duplicates are
// preserved. The input manifest is not modified, and Validate holds no
// state between calls, so a caller may mutate a record and re-validate it.
// Validate is idempotent: validating a validated record yields an identical
// record.
func Validate(m *Manifest) (*Manifest, error) {
	// Canonical kinds are checked first so the reported kind is stable
	// when the name appears under more than one.
	checked := make(map[DependencyKind]bool, len(m.Dependencies))
	for _, kind := range Kinds() {
		checked[kind] = true
		if err := checkSelfDependency(m, kind); err != nil {
			return nil, err
		}
	}
	for kind := range m.Dependencies {
		if checked[kind] {
			continue
		}
		if err := checkSelfDependency(m, kind); err != nil {
			return nil, err
		}
	}

	out := m.clone()
	for kind, deps := range out.Dependencies {
		if len(deps) == 0 {
			delete(out.Dependencies, kind)
		}
	}
	if len(out.Dependencies) == 0 {
		out.Dependencies = nil
	}
	return out, nil
}

func checkSelfDependency(m *Manifest, kind DependencyKind) error {
	for _, dep := range m.Dependencies[kind] {
		if dep == m.Name {
			return &CircularDependencyError{Package: m.Name, Kind: kind}
		}
	}
	return nil
}
