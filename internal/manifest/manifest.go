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

// Package manifest reads author and license metadata from project manifest
// files.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Kind identifies a manifest format.
type Kind string

const (
	// KindCargo is a Rust Cargo.toml.
	KindCargo Kind = "cargo"
	// KindPyproject is a Python pyproject.toml.
	KindPyproject Kind = "pyproject"
	// KindNPM is a Node.js package.json.
	KindNPM Kind = "npm"
)

const (
	cargoFile     = "Cargo.toml"
	pyprojectFile = "pyproject.toml"
	npmFile       = "package.json"
)

var (
	// ErrNotFound is returned by Find when the directory contains no
	// recognized manifest.
	ErrNotFound = errors.New("no project manifest found")

	errUnsupportedManifest = errors.New("unsupported manifest")
)

// searchOrder lists the manifest files Find looks for, by priority.
var searchOrder = []string{cargoFile, pyprojectFile, npmFile}

// Manifest is the license-relevant subset of a project manifest.
type Manifest struct {
	// Path is the file the manifest was read from.
	Path string

	// Kind is the manifest format.
	Kind Kind

	// Authors lists author entries in manifest order, as written.
	Authors []string

	// License is the license expression, or empty when the manifest has none.
	License string
}

// Find reads the first manifest present in dir.
func Find(dir string) (*Manifest, error) {
	for _, name := range searchOrder {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		return Read(path)
	}
	return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// Read reads the manifest at path. The format is chosen by file name.
func Read(path string) (*Manifest, error) {
	var (
		m   *Manifest
		err error
	)
	switch filepath.Base(path) {
	case cargoFile:
		m, err = readCargo(path)
	case pyprojectFile:
		m, err = readPyproject(path)
	case npmFile:
		m, err = readNPM(path)
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedManifest, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return m, nil
}

// authorEntry formats a structured author the way Cargo.toml writes authors,
// so that names are extracted uniformly across manifest kinds.
func authorEntry(name, email string) string {
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s <%s>", name, email)
	case name != "":
		return name
	default:
		return email
	}
}
