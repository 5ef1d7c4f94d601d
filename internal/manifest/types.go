package manifest

// Format is the package.xml schema version declared by the root element's
// format attribute.
type Format string

// Supported schema versions
const (
	Format1 Format = "1"
	Format2 Format = "2"
	Format3 Format = "3"
)

// Supported reports whether f is one of the known schema versions.
func (f Format) Supported() bool {
	switch f {
	case Format1, Format2, Format3:
		return true
	}
	return false
}

// DependencyKind classifies when a declared dependency is needed
// (build, execution, test, documentation, or unscoped).
type DependencyKind string

// Recognized dependency-kind tags
const (
	KindDepend                DependencyKind = "depend"
	KindBuildDepend           DependencyKind = "build_depend"
	KindBuildExportDepend     DependencyKind = "build_export_depend"
	KindBuildtoolDepend       DependencyKind = "buildtool_depend"
	KindBuildtoolExportDepend DependencyKind = "buildtool_export_depend"
	KindExecDepend            DependencyKind = "exec_depend"
	KindTestDepend            DependencyKind = "test_depend"
	KindDocDepend             DependencyKind = "doc_depend"
)

// Kinds returns all recognized dependency kinds in canonical order.
func Kinds() []DependencyKind {
	return []DependencyKind{
		KindDepend,
		KindBuildDepend,
		KindBuildExportDepend,
		KindBuildtoolDepend,
		KindBuildtoolExportDepend,
		KindExecDepend,
		KindTestDepend,
		KindDocDepend,
	}
}

// KindFromTag maps an XML element name to a dependency kind.
// The second return is false for tags that are not dependency declarations;
// such tags are ignored by the parser for forward compatibility.
func KindFromTag(tag string) (DependencyKind, bool) {
	kind := DependencyKind(tag)
	for _, k := range Kinds() {
		if kind == k {
			return kind, true
		}
	}
	return "", false
}

// Person is a maintainer or author with a contact address.
type Person struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Manifest is the parsed package.xml record.
//
// Dependencies holds only kinds that have at least one entry; within each
// kind the document order is preserved and duplicate names are kept.
type Manifest struct {
	Format       Format                      `json:"format" yaml:"format"`
	Name         string                      `json:"name" yaml:"name"`
	Version      string                      `json:"version" yaml:"version"`
	Description  string                      `json:"description" yaml:"description"`
	Maintainers  []Person                    `json:"maintainers" yaml:"maintainers"`
	Authors      []Person                    `json:"authors,omitempty" yaml:"authors,omitempty"`
	Licenses     []string                    `json:"licenses" yaml:"licenses"`
	Dependencies map[DependencyKind][]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// DependsOn reports whether name appears under any dependency kind.
func (m *Manifest) DependsOn(name string) bool {
	for _, deps := range m.Dependencies {
		for _, dep := range deps {
			if dep == name {
				return true
			}
		}
	}
	return false
}

// clone returns a deep copy of the manifest.
func (m *Manifest) clone() *Manifest {
	out := *m
	out.Maintainers = append([]Person(nil), m.Maintainers...)
	if m.Authors != nil {
		out.Authors = append([]Person(nil), m.Authors...)
	}
	out.Licenses = append([]string(nil), m.Licenses...)
	if m.Dependencies != nil {
		out.Dependencies = make(map[DependencyKind][]string, len(m.Dependencies))
		for kind, deps := range m.Dependencies {
			out.Dependencies[kind] = append([]string(nil), deps...)
		}
	}
	return &out
}
