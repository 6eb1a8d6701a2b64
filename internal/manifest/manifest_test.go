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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	for _, test := range []struct {
		name     string
		files    map[string]string
		wantKind Kind
		wantFile string
	}{
		{
			name: "cargo",
			files: map[string]string{
				"Cargo.toml": "[package]\nname = \"foo\"\n",
			},
			wantKind: KindCargo,
			wantFile: "Cargo.toml",
		},
		{
			name: "pyproject",
			files: map[string]string{
				"pyproject.toml": "[project]\nname = \"foo\"\n",
			},
			wantKind: KindPyproject,
			wantFile: "pyproject.toml",
		},
		{
			name: "npm",
			files: map[string]string{
				"package.json": `{"name": "foo"}`,
			},
			wantKind: KindNPM,
			wantFile: "package.json",
		},
		{
			name: "cargo preferred over package.json",
			files: map[string]string{
				"package.json": `{"name": "foo"}`,
				"Cargo.toml":   "[package]\nname = \"foo\"\n",
			},
			wantKind: KindCargo,
			wantFile: "Cargo.toml",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, contents := range test.files {
				writeFile(t, filepath.Join(dir, name), contents)
			}
			got, err := Find(dir)
			if err != nil {
				t.Fatal(err)
			}
			if got.Kind != test.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, test.wantKind)
			}
			if want := filepath.Join(dir, test.wantFile); got.Path != want {
				t.Errorf("Path = %q, want %q", got.Path, want)
			}
		})
	}
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() error = %v, want %v", err, ErrNotFound)
	}
}

func TestRead_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.py")
	writeFile(t, path, "")
	if _, err := Read(path); !errors.Is(err, errUnsupportedManifest) {
		t.Errorf("Read() error = %v, want %v", err, errUnsupportedManifest)
	}
}

func TestRead(t *testing.T) {
	for _, test := range []struct {
		name     string
		file     string
		contents string
		want     *Manifest
	}{
		{
			name: "cargo",
			file: "Cargo.toml",
			contents: `# Example Cargo file
[package]
name    = "foo"
version = "1.0.0"
authors = ["John Doe <jd@example.com>", "Jane Roe"]
license = "MIT OR Apache-2.0"
`,
			want: &Manifest{
				Kind:    KindCargo,
				Authors: []string{"John Doe <jd@example.com>", "Jane Roe"},
				License: "MIT OR Apache-2.0",
			},
		},
		{
			name: "cargo without authors or license",
			file: "Cargo.toml",
			contents: `[package]
name = "foo"
`,
			want: &Manifest{Kind: KindCargo},
		},
		{
			name: "cargo package that is also the workspace root",
			file: "Cargo.toml",
			contents: `[workspace]
members = ["."]

[workspace.package]
authors = ["Workspace Author"]
license = "Apache-2.0"

[package]
name = "foo"
authors.workspace = true
license = { workspace = true }
`,
			want: &Manifest{
				Kind:    KindCargo,
				Authors: []string{"Workspace Author"},
				License: "Apache-2.0",
			},
		},
		{
			name: "pyproject PEP 621",
			file: "pyproject.toml",
			contents: `[project]
name = "foo"
authors = [
  {name = "Jane Doe", email = "jane@example.com"},
  {email = "bot@example.com"},
]
license = {text = "MIT"}
`,
			want: &Manifest{
				Kind:    KindPyproject,
				Authors: []string{"Jane Doe <jane@example.com>", "bot@example.com"},
				License: "MIT",
			},
		},
		{
			name: "pyproject PEP 639",
			file: "pyproject.toml",
			contents: `[project]
name = "foo"
authors = [{name = "Jane Doe"}]
license = "MIT OR Apache-2.0"
`,
			want: &Manifest{
				Kind:    KindPyproject,
				Authors: []string{"Jane Doe"},
				License: "MIT OR Apache-2.0",
			},
		},
		{
			name: "pyproject license file",
			file: "pyproject.toml",
			contents: `[project]
name = "foo"
license = {file = "LICENSE"}
`,
			want: &Manifest{Kind: KindPyproject},
		},
		{
			name: "poetry",
			file: "pyproject.toml",
			contents: `[tool.poetry]
name = "foo"
authors = ["Jane Doe <jane@example.com>"]
license = "BSD-3-Clause"
`,
			want: &Manifest{
				Kind:    KindPyproject,
				Authors: []string{"Jane Doe <jane@example.com>"},
				License: "BSD-3-Clause",
			},
		},
		{
			name:     "npm string author",
			file:     "package.json",
			contents: `{"name": "foo", "author": "Barney Rubble <b@rubble.com> (http://barnyrubble.tumblr.com/)", "license": "ISC"}`,
			want: &Manifest{
				Kind:    KindNPM,
				Authors: []string{"Barney Rubble <b@rubble.com> (http://barnyrubble.tumblr.com/)"},
				License: "ISC",
			},
		},
		{
			name:     "npm object author",
			file:     "package.json",
			contents: `{"name": "foo", "author": {"name": "Barney Rubble", "email": "b@rubble.com"}, "license": {"type": "MIT"}}`,
			want: &Manifest{
				Kind:    KindNPM,
				Authors: []string{"Barney Rubble <b@rubble.com>"},
				License: "MIT",
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), test.file)
			writeFile(t, path, test.contents)
			got, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			test.want.Path = path
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_CargoWorkspaceMember(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), `[workspace]
members = ["crates/*"]

[workspace.package]
authors = ["The Foo Authors"]
license = "MIT OR Apache-2.0"
`)
	// An intermediate manifest without [workspace] must be skipped.
	writeFile(t, filepath.Join(root, "crates", "Cargo.toml"), "[package]\nname = \"unrelated\"\n")
	member := filepath.Join(root, "crates", "foo", "Cargo.toml")
	writeFile(t, member, `[package]
name = "foo"
authors.workspace = true
license.workspace = true
`)

	got, err := Read(member)
	if err != nil {
		t.Fatal(err)
	}
	want := &Manifest{
		Path:    member,
		Kind:    KindCargo,
		Authors: []string{"The Foo Authors"},
		License: "MIT OR Apache-2.0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Error(t *testing.T) {
	for _, test := range []struct {
		name     string
		file     string
		contents string
		wantErr  error
	}{
		{
			name:     "virtual workspace",
			file:     "Cargo.toml",
			contents: "[workspace]\nmembers = []\n",
			wantErr:  errNoPackage,
		},
		{
			name:     "inherited without workspace",
			file:     "Cargo.toml",
			contents: "[package]\nname = \"foo\"\nauthors.workspace = true\n",
			wantErr:  errWorkspaceNotFound,
		},
		{
			name:     "authors wrong type",
			file:     "Cargo.toml",
			contents: "[package]\nname = \"foo\"\nauthors = \"Jane Doe\"\n",
			wantErr:  errUnexpectedTOMLType,
		},
		{
			name:     "license wrong type",
			file:     "Cargo.toml",
			contents: "[package]\nname = \"foo\"\nlicense = 3\n",
			wantErr:  errUnexpectedTOMLType,
		},
		{
			name:     "invalid toml",
			file:     "pyproject.toml",
			contents: "[project\n",
		},
		{
			name:     "invalid json",
			file:     "package.json",
			contents: "{",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), test.file)
			writeFile(t, path, test.contents)
			_, err := Read(path)
			if err == nil {
				t.Fatal("Read() expected error")
			}
			if test.wantErr != nil && !errors.Is(err, test.wantErr) {
				t.Errorf("Read() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestAddCargoLicense(t *testing.T) {
	for _, test := range []struct {
		name     string
		contents string
		want     string
	}{
		{
			name: "after version",
			contents: `# Example Cargo file
[package]
name    = "foo"
version = "1.0.0"
edition = "2021"

[dependencies]
`,
			want: `# Example Cargo file
[package]
name    = "foo"
version = "1.0.0"
license = "MIT OR Apache-2.0"
edition = "2021"

[dependencies]
`,
		},
		{
			name: "no version",
			contents: `[package]
name = "foo" # the crate
`,
			want: `[package]
license = "MIT OR Apache-2.0"
name = "foo" # the crate
`,
		},
		{
			name: "version in another table is ignored",
			contents: `[workspace.package]
version = "2.0.0"

[package]
name = "foo"
`,
			want: `[workspace.package]
version = "2.0.0"

[package]
license = "MIT OR Apache-2.0"
name = "foo"
`,
		},
		{
			name: "blank license replaced",
			contents: `[package]
name = "foo"
license = " " # todo
`,
			want: `[package]
name = "foo"
license = "MIT OR Apache-2.0"
`,
		},
		{
			name: "commented header",
			contents: `[package] # crate
name = "foo"
`,
			want: `[package] # crate
license = "MIT OR Apache-2.0"
name = "foo"
`,
		},
		{
			name: "spaced header",
			contents: `[ package ]
name = "foo"
version = "0.1.0"
`,
			want: `[ package ]
name = "foo"
version = "0.1.0"
license = "MIT OR Apache-2.0"
`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := AddCargoLicense([]byte(test.contents), "MIT OR Apache-2.0")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			path := filepath.Join(t.TempDir(), "Cargo.toml")
			writeFile(t, path, string(got))
			m, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if m.License != "MIT OR Apache-2.0" {
				t.Errorf("License = %q, want %q", m.License, "MIT OR Apache-2.0")
			}
		})
	}
}

func TestAddCargoLicense_Error(t *testing.T) {
	for _, test := range []struct {
		name     string
		contents string
		wantErr  error
	}{
		{
			name:     "no package",
			contents: "[workspace]\n",
			wantErr:  errNoPackage,
		},
		{
			name:     "array of tables is not the package table",
			contents: "[[package]]\nname = \"foo\"\n",
			wantErr:  errNoPackage,
		},
		{
			name:     "license already set",
			contents: "[package]\nname = \"foo\"\nlicense = \"MIT\"\n",
			wantErr:  errLicenseAlreadySet,
		},
		{
			name:     "license inherited",
			contents: "[package]\nname = \"foo\"\nlicense.workspace = true\n",
			wantErr:  errLicenseAlreadySet,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := AddCargoLicense([]byte(test.contents), "MIT"); !errors.Is(err, test.wantErr) {
				t.Errorf("AddCargoLicense() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}
