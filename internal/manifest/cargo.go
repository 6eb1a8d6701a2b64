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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var (
	errNoPackage          = errors.New("no [package] table")
	errWorkspaceNotFound  = errors.New("no workspace root found")
	errLicenseAlreadySet  = errors.New("license is already set")
	errUnexpectedTOMLType = errors.New("unexpected value type")
)

// cargo is the subset of Cargo.toml this package understands.
type cargo struct {
	Package   *cargoPackage   `toml:"package"`
	Workspace *cargoWorkspace `toml:"workspace"`
}

// cargoPackage fields are untyped because Cargo allows either a value or
// `{ workspace = true }` for inherited fields.
type cargoPackage struct {
	Name    string `toml:"name"`
	Authors any    `toml:"authors"`
	License any    `toml:"license"`
}

type cargoWorkspace struct {
	Package *cargoWorkspacePackage `toml:"package"`
}

type cargoWorkspacePackage struct {
	Authors []string `toml:"authors"`
	License string   `toml:"license"`
}

func parseCargo(path string) (*cargo, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c cargo
	if err := toml.Unmarshal(contents, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func readCargo(path string) (*Manifest, error) {
	c, err := parseCargo(path)
	if err != nil {
		return nil, err
	}
	if c.Package == nil {
		return nil, errNoPackage
	}

	// The workspace root is only read when a field is inherited from it.
	var ws *cargoWorkspacePackage
	workspace := func() (*cargoWorkspacePackage, error) {
		if ws != nil {
			return ws, nil
		}
		var err error
		ws, err = findCargoWorkspace(path, c)
		return ws, err
	}

	m := &Manifest{Path: path, Kind: KindCargo}
	switch v := c.Package.Authors.(type) {
	case nil:
	case []any:
		for _, a := range v {
			s, ok := a.(string)
			if !ok {
				return nil, fmt.Errorf("package.authors: %w %T", errUnexpectedTOMLType, a)
			}
			m.Authors = append(m.Authors, s)
		}
	case map[string]any:
		if !isWorkspaceInherited(v) {
			return nil, fmt.Errorf("package.authors: %w %v", errUnexpectedTOMLType, v)
		}
		w, err := workspace()
		if err != nil {
			return nil, fmt.Errorf("package.authors: %w", err)
		}
		m.Authors = slices.Clone(w.Authors)
	default:
		return nil, fmt.Errorf("package.authors: %w %T", errUnexpectedTOMLType, v)
	}

	switch v := c.Package.License.(type) {
	case nil:
	case string:
		m.License = v
	case map[string]any:
		if !isWorkspaceInherited(v) {
			return nil, fmt.Errorf("package.license: %w %v", errUnexpectedTOMLType, v)
		}
		w, err := workspace()
		if err != nil {
			return nil, fmt.Errorf("package.license: %w", err)
		}
		if w.License == "" {
			return nil, fmt.Errorf("package.license is inherited but workspace.package.license is not set")
		}
		m.License = w.License
	default:
		return nil, fmt.Errorf("package.license: %w %T", errUnexpectedTOMLType, v)
	}
	return m, nil
}

func isWorkspaceInherited(v map[string]any) bool {
	inherit, ok := v["workspace"].(bool)
	return ok && inherit
}

// findCargoWorkspace returns the [workspace.package] table that the package
// at path inherits from. The package's own manifest may be the workspace
// root; otherwise parent directories are searched.
func findCargoWorkspace(path string, c *cargo) (*cargoWorkspacePackage, error) {
	if c.Workspace != nil {
		return workspacePackage(path, c.Workspace)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, errWorkspaceNotFound
		}
		dir = parent
		candidate := filepath.Join(dir, cargoFile)
		root, err := parseCargo(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if root.Workspace != nil {
			return workspacePackage(candidate, root.Workspace)
		}
	}
}

func workspacePackage(path string, w *cargoWorkspace) (*cargoWorkspacePackage, error) {
	if w.Package == nil {
		return nil, fmt.Errorf("%s has no [workspace.package] table", path)
	}
	return w.Package, nil
}

// AddCargoLicense returns contents, a Cargo.toml, with `license = "<expr>"`
// added to its [package] table. It edits lines in place so comments and
// formatting survive. A whitespace-only license value is replaced. The new
// key goes after `version` when present, else
// directly under the table header.
func AddCargoLicense(contents []byte, expr string) ([]byte, error) {
	lines := strings.Split(string(contents), "\n")
	start := slices.IndexFunc(lines, func(line string) bool {
		return tableHeader(line) == "package"
	})
	if start == -1 {
		return nil, errNoPackage
	}
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "[") {
			end = i
			break
		}
	}
	section := lines[start+1 : end]
	if idx := slices.IndexFunc(section, func(line string) bool { return tomlKey(line) == "license" }); idx != -1 {
		if !blankLicense(section[idx]) {
			return nil, errLicenseAlreadySet
		}
		lines[start+1+idx] = fmt.Sprintf("license = %q", expr)
		return []byte(strings.Join(lines, "\n")), nil
	}

	insert := start + 1
	if idx := slices.IndexFunc(section, func(line string) bool { return tomlKey(line) == "version" }); idx != -1 {
		insert += idx + 1
	}
	lines = slices.Insert(lines, insert, fmt.Sprintf("license = %q", expr))
	return []byte(strings.Join(lines, "\n")), nil
}

// blankLicense reports whether line assigns a whitespace-only string to
// license.
func blankLicense(line string) bool {
	var v struct {
		License any `toml:"license"`
	}
	if err := toml.Unmarshal([]byte(line), &v); err != nil {
		return false
	}
	s, ok := v.License.(string)
	return ok && strings.TrimSpace(s) == ""
}

// tableHeader returns the name of the table a line opens, so that
// `[ package ] # crate` yields "package". It returns "" for other lines,
// including array-of-tables headers.
func tableHeader(line string) string {
	line, _, _ = strings.Cut(line, "#")
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "[[") || !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return ""
	}
	return strings.TrimSpace(line[1 : len(line)-1])
}

// tomlKey returns the top-level key assigned on a line, so that both
// `license = "MIT"` and `license.workspace = true` yield "license".
func tomlKey(line string) string {
	key, _, ok := strings.Cut(line, "=")
	if !ok {
		return ""
	}
	key, _, _ = strings.Cut(key, ".")
	return strings.Trim(strings.TrimSpace(key), `"`)
}
