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

// ParseError reports a malformed license expression.
type ParseError struct {
	Expr   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid license expression %q: %s", e.Expr, e.Reason)
}

// UnknownLicenseError reports a license identifier with no bundled text.
type UnknownLicenseError struct {
	ID string

	// ValidSPDX is true when ID is a recognized SPDX identifier that this
	// program does not carry a template for.
	ValidSPDX bool
}

func (e *UnknownLicenseError) Error() string {
	if e.ValidSPDX {
		return fmt.Sprintf("SPDX ID %q is valid, but unsupported by this program", e.ID)
	}
	return fmt.Sprintf("invalid SPDX license ID: %q", e.ID)
}
