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
	"regexp"
	"strings"
	"unicode"
)

const (
	opOr   = "OR"
	opAnd  = "AND"
	opWith = "WITH"

	// legacySeparator combines licenses in old Cargo manifests, as in
	// "MIT/Apache-2.0". It is not valid SPDX.
	legacySeparator = "/"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9.+-]+$`)

// ParseExpression splits a license expression of the form "A OR B OR C" into
// its identifiers, in order. Duplicates are preserved. Identifiers are not
// checked against the registry.
//
// Only disjunction is supported: AND, WITH and parentheses are rejected.
func ParseExpression(expr string) ([]string, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, &ParseError{Expr: expr, Reason: "expression is empty"}
	}
	if strings.Contains(expr, legacySeparator) {
		return parseLegacy(expr)
	}

	var (
		ids      []string
		expectID = true
	)
	for _, token := range strings.Fields(expr) {
		switch token {
		case opOr:
			if expectID {
				return nil, &ParseError{Expr: expr, Reason: "empty license identifier"}
			}
			expectID = true
			continue
		case opAnd, opWith:
			return nil, &ParseError{Expr: expr, Reason: "unsupported operator " + token}
		}
		if !expectID {
			return nil, &ParseError{Expr: expr, Reason: "expected OR before " + token}
		}
		if err := checkIdentifier(expr, token); err != nil {
			return nil, err
		}
		ids = append(ids, token)
		expectID = false
	}
	if expectID {
		return nil, &ParseError{Expr: expr, Reason: "empty license identifier"}
	}
	return ids, nil
}

func parseLegacy(expr string) ([]string, error) {
	var ids []string
	for _, part := range strings.Split(expr, legacySeparator) {
		id := strings.TrimSpace(part)
		if id == "" {
			return nil, &ParseError{Expr: expr, Reason: "empty license identifier"}
		}
		if strings.ContainsFunc(id, unicode.IsSpace) {
			return nil, &ParseError{Expr: expr, Reason: "cannot mix / with other operators"}
		}
		if err := checkIdentifier(expr, id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func checkIdentifier(expr, id string) error {
	if strings.ContainsAny(id, "()") {
		return &ParseError{Expr: expr, Reason: "parentheses are not supported"}
	}
	if !identifierRegex.MatchString(id) {
		return &ParseError{Expr: expr, Reason: "invalid license identifier " + id}
	}
	return nil
}
