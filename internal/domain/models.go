package domain

import "github.com/quantmind-br/rospkg-go/internal/manifest"

// Result is the outcome of parsing and validating one manifest file.
type Result struct {
	Path     string
	Manifest *manifest.Manifest
	Err      error
}

// OK reports whether the manifest parsed and validated cleanly.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report aggregates the results of a workspace scan.
// Results are ordered by path.
type Report struct {
	Root    string
	Results []Result
}

// Total returns the number of manifests examined.
func (r *Report) Total() int {
	return len(r.Results)
}

// Valid returns the number of manifests that passed.
func (r *Report) Valid() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Invalid returns the number of manifests that failed.
func (r *Report) Invalid() int {
	return r.Total() - r.Valid()
}

// HasFailures reports whether any manifest failed.
func (r *Report) HasFailures() bool {
	return r.Invalid() > 0
}
