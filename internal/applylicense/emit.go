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

package applylicense

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/googleapis/apply-license/internal/license"
)

// IOError reports a failure to write a license file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to write license file: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// writeLicenses writes each rendered license into dir, replacing existing
// files. It stops at the first failure; files already written are kept.
func writeLicenses(dir string, rendered []*license.Rendered) error {
	for _, r := range rendered {
		path := filepath.Join(dir, r.FileName)
		if err := os.WriteFile(path, []byte(r.Text), 0644); err != nil {
			return &IOError{Path: path, Err: err}
		}
		slog.Info("wrote license file", "path", path, "license", r.ID)
	}
	return nil
}
