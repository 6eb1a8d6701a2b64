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

package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type pyproject struct {
	Project *pyprojectProject `toml:"project"`
	Tool    struct {
		Poetry *poetryTool `toml:"poetry"`
	} `toml:"tool"`
}

type pyprojectProject struct {
	Authors []pyprojectAuthor `toml:"authors"`
	// License is either an SPDX expression (PEP 639) or a table with a
	// text or file key (PEP 621).
	License any `toml:"license"`
}

type pyprojectAuthor struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

type poetryTool struct {
	Authors []string `toml:"authors"`
	License string   `toml:"license"`
}

func readPyproject(path string) (*Manifest, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p pyproject
	if err := toml.Unmarshal(contents, &p); err != nil {
		return nil, err
	}

	m := &Manifest{Path: path, Kind: KindPyproject}
	if p.Project != nil {
		for _, a := range p.Project.Authors {
			if entry := authorEntry(a.Name, a.Email); entry != "" {
				m.Authors = append(m.Authors, entry)
			}
		}
		switch v := p.Project.License.(type) {
		case nil:
		case string:
			m.License = v
		case map[string]any:
			// A license file reference carries no expression.
			if text, ok := v["text"].(string); ok {
				m.License = text
			}
		default:
			return nil, fmt.Errorf("project.license: %w %T", errUnexpectedTOMLType, v)
		}
	}
	if poetry := p.Tool.Poetry; poetry != nil {
		if len(m.Authors) == 0 {
			m.Authors = poetry.Authors
		}
		if m.License == "" {
			m.License = poetry.License
		}
	}
	return m, nil
}
