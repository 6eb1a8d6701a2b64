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

import (
	"bufio"
	"bytes"
	"strings"
)

const spdxFile = "spdx.txt"

// loadSPDX reads the list of recognized SPDX license identifiers. Blank lines
// and lines starting with # are ignored.
func loadSPDX() (map[string]bool, error) {
	data, err := licenseFS.ReadFile(spdxFile)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids[line] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// IsSPDX reports whether id is a recognized SPDX license identifier,
// regardless of whether its text is bundled.
func (r *Registry) IsSPDX(id string) bool {
	return r.spdx[id]
}
