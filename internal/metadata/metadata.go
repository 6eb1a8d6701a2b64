// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metadata decides the copyright holders and license expression for
// a project from command-line values and the project manifest.
package metadata

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/googleapis/apply-license/internal/manifest"
)

// DefaultLicense is used when a manifest-described project does not declare a
// license.
const DefaultLicense = "MIT OR Apache-2.0"

var (
	// ErrMissingAuthor is returned when no author is given on the command
	// line and the manifest, if any, lists none.
	ErrMissingAuthor = errors.New("at least one author is required")

	// ErrMissingLicense is returned when no license expression is given and
	// there is no default to fall back to.
	ErrMissingLicense = errors.New("a license expression is required")
)

// authorRegex matches git and npm style author entries such as
// "John Doe <jd@example.com>" or "John Doe (https://example.com)".
var authorRegex = regexp.MustCompile(`^(.+?)\s*(?:<[^>]*>)?\s*(?:\([^)]*\))?$`)

// Input holds the values metadata is resolved from.
type Input struct {
	// Authors are the values of the author flag, in order.
	Authors []string

	// License is the value of the license flag.
	License string

	// LicenseSet reports that the license flag was given. An explicit blank
	// value is then passed on and rejected by the expression parser.
	LicenseSet bool

	// Manifest is the project manifest, or nil when there is none.
	Manifest *manifest.Manifest

	// DefaultLicense applies when neither License nor the manifest provide
	// an expression. An empty value means there is no default.
	DefaultLicense string
}

// Metadata is the resolved copyright information for a project.
type Metadata struct {
	// Holders is the copyright holders line substituted into templates.
	Holders string

	// License is the license expression to apply.
	License string

	// LicenseFromManifest is true when License was read from the manifest.
	LicenseFromManifest bool
}

// Resolve determines the copyright holders and license expression. Explicit
// values win over the manifest. Author flag values are used as given;
// manifest entries are reduced to names with AuthorNames.
// The author is resolved first, so missing both reports ErrMissingAuthor.
func Resolve(in Input) (*Metadata, error) {
	var names []string
	for _, author := range in.Authors {
		if author = strings.TrimSpace(author); author != "" {
			names = append(names, author)
		}
	}
	if len(names) == 0 && in.Manifest != nil && len(in.Manifest.Authors) > 0 {
		// Only the first entry is the copyright holder, even when it is blank.
		names = AuthorNames(in.Manifest.Authors[:1])
	}
	if len(names) == 0 {
		return nil, ErrMissingAuthor
	}

	md := &Metadata{Holders: strings.Join(names, ", ")}
	switch {
	case in.LicenseSet || strings.TrimSpace(in.License) != "":
		md.License = in.License
	case in.Manifest != nil && strings.TrimSpace(in.Manifest.License) != "":
		md.License = in.Manifest.License
		md.LicenseFromManifest = true
	case in.DefaultLicense != "":
		md.License = in.DefaultLicense
	default:
		return nil, ErrMissingLicense
	}
	slog.Debug("resolved metadata", "holders", md.Holders, "license", md.License, "from_manifest", md.LicenseFromManifest)
	return md, nil
}

// AuthorNames reduces author entries to names, dropping any email address
// or URL. Blank entries are skipped.
func AuthorNames(authors []string) []string {
	var names []string
	for _, author := range authors {
		author = strings.TrimSpace(author)
		if author == "" {
			continue
		}
		names = append(names, authorName(author))
	}
	return names
}

func authorName(author string) string {
	if m := authorRegex.FindStringSubmatch(author); m != nil && strings.TrimSpace(m[1]) != "" {
		return m[1]
	}
	return author
}
