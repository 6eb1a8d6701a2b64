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

// Package license holds the bundled open-source license templates and the
// parsing of license expressions that select them.
package license

import (
	"embed"
	"fmt"
	"path"

	"github.com/cbroglie/mustache"
	"github.com/googleapis/apply-license/internal/yaml"
)

//go:embed licenses.yaml spdx.txt templates/*.txt
var licenseFS embed.FS

const (
	indexFile   = "licenses.yaml"
	templateDir = "templates"
)

// License is an open-source license with text bundled in the program.
type License struct {
	// SPDX is the SPDX license identifier, for example "Apache-2.0".
	SPDX string `yaml:"spdx"`

	// Name is the full name of the license.
	Name string `yaml:"name"`

	// Template is the file under templates/ holding the license text.
	Template string `yaml:"template"`

	tmpl *mustache.Template
}

// Registry maps SPDX identifiers to bundled license templates.
type Registry struct {
	licenses []*License
	byID     map[string]*License
	spdx     map[string]bool
}

// NewRegistry loads the bundled license index and parses every template.
func NewRegistry() (*Registry, error) {
	data, err := licenseFS.ReadFile(indexFile)
	if err != nil {
		return nil, err
	}
	licenses, err := yaml.Unmarshal[[]*License](data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", indexFile, err)
	}
	spdx, err := loadSPDX()
	if err != nil {
		return nil, err
	}
	r := &Registry{
		byID: make(map[string]*License, len(*licenses)),
		spdx: spdx,
	}
	for _, l := range *licenses {
		if _, ok := r.byID[l.SPDX]; ok {
			return nil, fmt.Errorf("duplicate license %q in %s", l.SPDX, indexFile)
		}
		text, err := licenseFS.ReadFile(path.Join(templateDir, l.Template))
		if err != nil {
			return nil, fmt.Errorf("failed to read template for %s: %w", l.SPDX, err)
		}
		l.tmpl, err = mustache.ParseString(string(text))
		if err != nil {
			return nil, fmt.Errorf("syntax error in template for %s: %w", l.SPDX, err)
		}
		r.licenses = append(r.licenses, l)
		r.byID[l.SPDX] = l
	}
	return r, nil
}

// Lookup returns the bundled license for the SPDX identifier id.
func (r *Registry) Lookup(id string) (*License, error) {
	if l, ok := r.byID[id]; ok {
		return l, nil
	}
	return nil, &UnknownLicenseError{ID: id, ValidSPDX: r.spdx[id]}
}

// Licenses returns the bundled licenses in index order.
func (r *Registry) Licenses() []*License {
	return r.licenses
}
