package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManifest() *Manifest {
	return &Manifest{
		Format:      Format2,
		Name:        "nav_core",
		Version:     "1.17.3",
		Description: "Common navigation interfaces",
		Maintainers: []Person{{Name: "M", Email: "m@ex.com"}},
		Licenses:    []string{"BSD"},
		Dependencies: map[DependencyKind][]string{
			KindDepend:      {"roscpp", "tf2"},
			KindBuildDepend: {"catkin"},
		},
	}
}

func TestValidate_Success(t *testing.T) {
	m := validManifest()

	out, err := Validate(m)

	require.NoError(t, err)
	assert.Equal(t, m.Name, out.Name)
	assert.Equal(t, []string{"roscpp", "tf2"}, out.Dependencies[KindDepend])
	assert.Equal(t, []string{"catkin"}, out.Dependencies[KindBuildDepend])
}

func TestValidate_SelfDependency(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			m := validManifest()
			m.Name = "circular"
			m.Dependencies = map[DependencyKind][]string{kind: {"other", "circular"}}

			out, err := Validate(m)

			assert.Nil(t, out)
			var circErr *CircularDependencyError
			require.ErrorAs(t, err, &circErr)
			assert.Equal(t, "circular", circErr.Package)
			assert.Equal(t, kind, circErr.Kind)
		})
	}
}

func TestValidate_SelfDependencyUnrecognizedKind(t *testing.T) {
	m := validManifest()
	m.Dependencies[DependencyKind("replace_depend")] = []string{m.Name}

	_, err := Validate(m)

	var circErr *CircularDependencyError
	require.ErrorAs(t, err, &circErr)
	assert.Equal(t, DependencyKind("replace_depend"), circErr.Kind)
}

func TestValidate_DropsEmptyKinds(t *testing.T) {
	m := validManifest()
	m.Dependencies[KindTestDepend] = nil
	m.Dependencies[KindDocDepend] = []string{}

	out, err := Validate(m)

	require.NoError(t, err)
	assert.NotContains(t, out.Dependencies, KindTestDepend)
	assert.NotContains(t, out.Dependencies, KindDocDepend)
	assert.Len(t, out.Dependencies, 2)
}

func TestValidate_AllKindsEmpty(t *testing.T) {
	m := validManifest()
	m.Dependencies = map[DependencyKind][]string{}

	out, err := Validate(m)

	require.NoError(t, err)
	assert.Nil(t, out.Dependencies)
}

func TestValidate_Idempotent(t *testing.T) {
	once, err := Validate(validManifest())
	require.NoError(t, err)

	twice, err := Validate(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	m := validManifest()
	m.Dependencies[KindTestDepend] = []string{}

	_, err := Validate(m)

	require.NoError(t, err)
	assert.Contains(t, m.Dependencies, KindTestDepend)
}

func TestValidate_PreservesOrderAndDuplicates(t *testing.T) {
	m := validManifest()
	m.Dependencies[KindDepend] = []string{"b", "a", "b", "c"}

	out, err := Validate(m)

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b", "c"}, out.Dependencies[KindDepend])
}

func TestValidate_RevalidateAfterEdit(t *testing.T) {
	m, err := Validate(validManifest())
	require.NoError(t, err)

	m.Dependencies[KindDepend] = append(m.Dependencies[KindDepend], m.Name)

	_, err = Validate(m)
	var circErr *CircularDependencyError
	assert.ErrorAs(t, err, &circErr)
}

func TestParseThenValidate_Circular(t *testing.T) {
	xml := `<package format="2">
  <name>circular</name>
  <version>1.0.0</version>
  <description>Circular dep</description>
  <maintainer email="e@ex.com">Name</maintainer>
  <license>MIT</license>
  <depend>circular</depend>
</package>`

	m, err := Parse([]byte(xml))
	require.NoError(t, err)

	out, err := Validate(m)

	assert.Nil(t, out)
	var circErr *CircularDependencyError
	require.ErrorAs(t, err, &circErr)
	assert.Equal(t, "circular", circErr.Package)
	assert.Equal(t, KindDepend, circErr.Kind)
}
