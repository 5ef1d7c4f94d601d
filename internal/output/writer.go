package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/rospkg-go/internal/domain"
	"github.com/quantmind-br/rospkg-go/internal/manifest"
)

// Format selects the rendering of records and reports.
type Format string

// Supported output formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (use text, json, or yaml)", s)
}

// Writer renders manifests and scan reports to a stream
type Writer struct {
	out io.Writer
}

// NewWriter creates a new writer
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteManifest renders a single manifest record.
func (w *Writer) WriteManifest(m *manifest.Manifest, format Format) error {
	switch format {
	case FormatJSON:
		return w.writeJSON(m)
	case FormatYAML:
		return w.writeYAML(m)
	default:
		return w.writeManifestText(m)
	}
}

// WriteReport renders a workspace scan report.
func (w *Writer) WriteReport(r *domain.Report, format Format) error {
	switch format {
	case FormatJSON:
		return w.writeJSON(newReportView(r))
	case FormatYAML:
		return w.writeYAML(newReportView(r))
	default:
		return w.writeReportText(r)
	}
}

func (w *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (w *Writer) writeYAML(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (w *Writer) writeManifestText(m *manifest.Manifest) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Name:        %s\n", m.Name)
	fmt.Fprintf(&b, "Version:     %s\n", m.Version)
	fmt.Fprintf(&b, "Format:      %s\n", m.Format)
	fmt.Fprintf(&b, "Description: %s\n", m.Description)
	for _, p := range m.Maintainers {
		fmt.Fprintf(&b, "Maintainer:  %s <%s>\n", p.Name, p.Email)
	}
	for _, p := range m.Authors {
		fmt.Fprintf(&b, "Author:      %s <%s>\n", p.Name, p.Email)
	}
	fmt.Fprintf(&b, "Licenses:    %s\n", strings.Join(m.Licenses, ", "))
	for _, kind := range manifest.Kinds() {
		if deps := m.Dependencies[kind]; len(deps) > 0 {
			fmt.Fprintf(&b, "%-12s %s\n", string(kind)+":", strings.Join(deps, ", "))
		}
	}

	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *Writer) writeReportText(r *domain.Report) error {
	var b strings.Builder

	for _, res := range r.Results {
		if res.OK() {
			fmt.Fprintf(&b, "ok    %s (%s %s)\n", res.Path, res.Manifest.Name, res.Manifest.Version)
		} else {
			fmt.Fprintf(&b, "FAIL  %s: %v\n", res.Path, res.Err)
		}
	}
	fmt.Fprintf(&b, "\n%d manifests: %d valid, %d invalid\n", r.Total(), r.Valid(), r.Invalid())

	_, err := io.WriteString(w.out, b.String())
	return err
}

// reportView is the serializable shape of a report for JSON and YAML output
type reportView struct {
	Root    string       `json:"root" yaml:"root"`
	Total   int          `json:"total" yaml:"total"`
	Valid   int          `json:"valid" yaml:"valid"`
	Invalid int          `json:"invalid" yaml:"invalid"`
	Results []resultView `json:"results" yaml:"results"`
}

type resultView struct {
	Path     string             `json:"path" yaml:"path"`
	Status   string             `json:"status" yaml:"status"`
	Error    string             `json:"error,omitempty" yaml:"error,omitempty"`
	Manifest *manifest.Manifest `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

func newReportView(r *domain.Report) reportView {
	view := reportView{
		Root:    r.Root,
		Total:   r.Total(),
		Valid:   r.Valid(),
		Invalid: r.Invalid(),
		Results: make([]resultView, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		rv := resultView{Path: res.Path, Status: "ok", Manifest: res.Manifest}
		if !res.OK() {
			rv.Status = "error"
			rv.Error = res.Err.Error()
		}
		view.Results = append(view.Results, rv)
	}
	return view
}
