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
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type packageJSON struct {
	// Author is either "Name <email> (url)" or an object.
	Author any `json:"author"`
	// License is normally an SPDX expression; very old packages use
	// {"type": "MIT"}.
	License any `json:"license"`
}

func readNPM(path string) (*Manifest, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p packageJSON
	if err := json.Unmarshal(contents, &p); err != nil {
		return nil, err
	}

	m := &Manifest{Path: path, Kind: KindNPM}
	switch v := p.Author.(type) {
	case nil:
	case string:
		if v = strings.TrimSpace(v); v != "" {
			m.Authors = []string{v}
		}
	case map[string]any:
		name, _ := v["name"].(string)
		email, _ := v["email"].(string)
		if entry := authorEntry(name, email); entry != "" {
			m.Authors = []string{entry}
		}
	default:
		return nil, fmt.Errorf("author: unexpected value type %T", v)
	}

	switch v := p.License.(type) {
	case nil:
	case string:
		m.License = v
	case map[string]any:
		m.License, _ = v["type"].(string)
	default:
		return nil, fmt.Errorf("license: unexpected value type %T", v)
	}
	return m, nil
}
