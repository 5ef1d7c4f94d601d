package manifest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// rootTag is the expected root element of a package manifest.
const rootTag = "package"

// versionRegex matches dotted-numeric versions: one or more digit runs
// separated by dots. Deliberately narrower than semver (no leading "v",
// no pre-release or build suffixes).
var versionRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// emailRegex matches a basic local@domain shape with at least one dot in
// the domain. This is a shape check, not RFC 5322 validation.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ParseFile reads a package.xml from disk and parses it.
//
// I/O failures are reported before any parse is attempted: a missing file
// yields ErrNotFound and a permission failure ErrAccessDenied, both
// distinct from content errors.
func ParseFile(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return nil, err
	}

	return Parse(data)
}

// Parse converts raw package.xml text into a Manifest.
//
// Parsing is all-or-nothing: well-formedness is checked first (empty and
// whitespace-only input are malformed, not empty records), then the format
// attribute is dispatched, then required elements are extracted and their
// shapes checked. No semantic cross-field checks happen here; those belong
// to Validate.
func Parse(data []byte) (*Manifest, error) {
	root, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if root.name != rootTag {
		return nil, fmt.Errorf("%w: root element is <%s>, want <%s>", ErrMalformedDocument, root.name, rootTag)
	}

	format := Format(root.attrs["format"])
	if !format.Supported() {
		return nil, &UnsupportedFormatError{Found: root.attrs["format"]}
	}

	m := &Manifest{
		Format:       format,
		Dependencies: make(map[DependencyKind][]string),
	}

	name, ok := root.childText("name")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	m.Name = strings.TrimSpace(name)

	version, ok := root.childText("version")
	if !ok {
		return nil, &MissingFieldError{Field: "version"}
	}
	m.Version = strings.TrimSpace(version)
	if !versionRegex.MatchString(m.Version) {
		return nil, &InvalidVersionError{Value: m.Version}
	}

	// description may be empty but the element must be present
	description, ok := root.childText("description")
	if !ok {
		return nil, &MissingFieldError{Field: "description"}
	}
	m.Description = description

	for _, child := range root.children {
		switch child.name {
		case "maintainer":
			person, err := personFrom(child)
			if err != nil {
				return nil, err
			}
			m.Maintainers = append(m.Maintainers, person)
		case "author":
			person, err := personFrom(child)
			if err != nil {
				return nil, err
			}
			m.Authors = append(m.Authors, person)
		case "license":
			m.Licenses = append(m.Licenses, strings.TrimSpace(child.text))
		default:
			// Unrecognized tags are ignored for forward compatibility.
			if kind, ok := KindFromTag(child.name); ok {
				m.Dependencies[kind] = append(m.Dependencies[kind], strings.TrimSpace(child.text))
			}
		}
	}

	if len(m.Maintainers) == 0 {
		return nil, &MissingFieldError{Field: "maintainer"}
	}
	if len(m.Licenses) == 0 {
		return nil, &MissingFieldError{Field: "license"}
	}

	return m, nil
}

// personFrom builds a Person from a maintainer or author element.
// The email attribute is required and must pass the shape check; the
// element's text content is the display name.
func personFrom(el *element) (Person, error) {
	email := el.attrs["email"]
	if !emailRegex.MatchString(email) {
		return Person{}, &InvalidEmailError{Value: email}
	}
	return Person{
		Name:  strings.TrimSpace(el.text),
		Email: email,
	}, nil
}

// element is a minimal document-tree node. The generic tree keeps child
// elements in document order, which struct-tag decoding cannot do across
// differently named dependency tags.
type element struct {
	name     string
	attrs    map[string]string
	text     string
	children []*element
}

// childText returns the text content of the first child with the given
// name, and whether such a child exists.
func (e *element) childText(name string) (string, bool) {
	for _, child := range e.children {
		if child.name == name {
			return child.text, true
		}
	}
	return "", false
}

// decodeDocument tokenizes the input into an element tree. The decoder
// enforces well-formedness (unclosed or mismatched tags fail here) and
// handles non-UTF-8 encodings declared in the XML prolog.
func decodeDocument(data []byte) (*element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	var root *element
	var stack []*element
	var text bytes.Buffer

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{
				name:  t.Name.Local,
				attrs: make(map[string]string, len(t.Attr)),
			}
			for _, attr := range t.Attr {
				el.attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
			text.Reset()
		case xml.CharData:
			if len(stack) > 0 {
				text.Write(t)
			}
		case xml.EndElement:
			current := stack[len(stack)-1]
			if len(current.children) == 0 {
				current.text = text.String()
			}
			stack = stack[:len(stack)-1]
			text.Reset()
		}
	}

	if root == nil {
		return nil, errors.New("document contains no elements")
	}
	return root, nil
}
