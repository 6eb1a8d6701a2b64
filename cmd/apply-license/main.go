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

// Command apply-license writes open-source license files for a project.
//
// Usage:
//
//	apply-license [-a <author>]... [-l <license expression>]
//	apply-license list
//	apply-license version
//
// Authors and the license expression are read from Cargo.toml,
// pyproject.toml or package.json when the flags are omitted.
package main

import (
	"context"
	"log"
	"os"

	"github.com/googleapis/apply-license/internal/applylicense"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("apply-license: ")
	ctx := context.Background()
	if err := applylicense.Run(ctx, os.Args...); err != nil {
		log.Fatal(err)
	}
}
