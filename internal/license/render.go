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

package license

import "fmt"

const (
	// FileName is the output file for a project with a single license.
	FileName = "LICENSE"

	// FilePrefix prefixes the output file for each license when a project
	// has several, as in LICENSE-MIT.
	FilePrefix = "LICENSE-"
)

// Rendered is the final text of a license and the file it belongs in.
type Rendered struct {
	ID       string
	FileName string
	Text     string
}

// Render substitutes the copyright year and holders into the template.
// holders is inserted verbatim.
func (l *License) Render(holders string, year int) (string, error) {
	return l.tmpl.Render(map[string]string{
		"year":              fmt.Sprintf("%04d", year),
		"copyright_holders": holders,
	})
}

// Render renders the licenses named by ids. A single license is named
// LICENSE; two or more are named LICENSE-<id>. Every id is looked up before
// anything is rendered, so an unknown id produces no output.
func (r *Registry) Render(ids []string, holders string, year int) ([]*Rendered, error) {
	licenses := make([]*License, 0, len(ids))
	for _, id := range ids {
		l, err := r.Lookup(id)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, l)
	}

	var out []*Rendered
	for _, l := range licenses {
		name := FileName
		if len(licenses) > 1 {
			name = FilePrefix + l.SPDX
		}
		text, err := l.Render(holders, year)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", l.SPDX, err)
		}
		out = append(out, &Rendered{ID: l.SPDX, FileName: name, Text: text})
	}
	return out, nil
}
