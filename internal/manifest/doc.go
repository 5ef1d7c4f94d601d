// Package manifest parses and validates ROS package.xml manifests. A
// manifest declares a package's identity, ownership, licensing, and
// dependencies across schema format versions 1 through 3.
//
// # Manifest Format
//
// A manifest is an XML document with a single <package> root carrying a
// format attribute:
//
//	<package format="3">
//	  <name>nav_core</name>
//	  <version>1.17.3</version>
//	  <description>Common navigation interfaces.</description>
//	  <maintainer email="ros@example.com">ROS Maintainer</maintainer>
//	  <license>BSD</license>
//	  <author email="jane@example.com">Jane Doe</author>
//	  <depend>roscpp</depend>
//	  <build_depend>catkin</build_depend>
//	</package>
//
// # Usage
//
// Parse a manifest and run semantic validation:
//
//	m, err := manifest.ParseFile("package.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err = manifest.Validate(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse checks structure (well-formedness, format dispatch, required
// elements, version and email shapes); Validate checks semantics
// (self-dependency) and normalizes the record. Validate operates only on
// parser output and can be re-run after in-memory edits.
//
// # Error Handling
//
// I/O failures from ParseFile are sentinel errors (ErrNotFound,
// ErrAccessDenied) distinct from content errors. Content failures are
// typed: ErrMalformedDocument wraps XML syntax errors, and
// UnsupportedFormatError, MissingFieldError, InvalidVersionError,
// InvalidEmailError, and CircularDependencyError each carry the triggering
// field or value. No partial results are returned on failure.
//
// Both Parse and Validate are pure and safe for concurrent use on
// independent inputs.
package manifest
