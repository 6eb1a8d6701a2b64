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

// Command cargo-apply-license is a cargo subcommand that writes license files
// for a crate from the authors and license in its Cargo.toml.
//
// Usage:
//
//	cargo apply-license [--manifest-path <path>] [-a <author>]... [-l <license expression>]
package main

import (
	"context"
	"log"
	"os"

	"github.com/googleapis/apply-license/internal/applylicense"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cargo-apply-license: ")
	ctx := context.Background()
	if err := applylicense.RunCargo(ctx, os.Args...); err != nil {
		log.Fatal(err)
	}
}
