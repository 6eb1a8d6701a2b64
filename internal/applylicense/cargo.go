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
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/googleapis/apply-license/internal/manifest"
	"github.com/googleapis/apply-license/internal/metadata"
	"github.com/urfave/cli/v3"
)

const defaultCargoManifest = "Cargo.toml"

// RunCargo executes the cargo-apply-license CLI. Cargo invokes external
// subcommands as `cargo-apply-license apply-license [flags]`.
func RunCargo(ctx context.Context, args ...string) error {
	return newCargoCommand().Run(ctx, args)
}

func newCargoCommand() *cli.Command {
	return &cli.Command{
		Name:      "cargo",
		Usage:     "apply open-source licenses to your cargo project",
		UsageText: "cargo apply-license [flags]",
		Commands: []*cli.Command{
			{
				Name:      "apply-license",
				Usage:     "write license files for the crate in Cargo.toml",
				UsageText: "cargo apply-license [--manifest-path <path>] [-a <author>]... [-l <license expression>]",
				Description: `apply-license parses author and license information from Cargo.toml and
writes license files to the current directory.

The first entry of package.authors is the copyright holder. When
package.license is missing, "MIT OR Apache-2.0" is used and written back to
Cargo.toml.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "manifest-path",
						Value: defaultCargoManifest,
						Usage: "path to Cargo.toml",
					},
					authorFlag(),
					licenseFlag(),
					verboseFlag(),
				},
				Action: runCargoApplyLicense,
			},
		},

		// Author names may contain commas, as in "Doe, Jane".
		DisableSliceFlagSeparator: true,
	}
}

func runCargoApplyLicense(ctx context.Context, cmd *cli.Command) error {
	setupLogger(cmd.Bool("verbose"))
	manifestPath := cmd.String("manifest-path")
	m, err := manifest.Read(manifestPath)
	if err != nil {
		return err
	}
	if m.Kind != manifest.KindCargo {
		return fmt.Errorf("%s is not a Cargo manifest", manifestPath)
	}
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	md, rendered, err := render(metadata.Input{
		Authors:        cmd.StringSlice("author"),
		License:        cmd.String("license"),
		LicenseSet:     cmd.IsSet("license"),
		Manifest:       m,
		DefaultLicense: metadata.DefaultLicense,
	}, time.Now().Year())
	if err != nil {
		return err
	}

	// The manifest edit is prepared first so a manifest that cannot be
	// updated leaves no license files behind.
	var updated []byte
	if strings.TrimSpace(m.License) == "" {
		contents, err := os.ReadFile(manifestPath)
		if err != nil {
			return err
		}
		updated, err = manifest.AddCargoLicense(contents, md.License)
		if err != nil {
			return fmt.Errorf("failed to update %s: %w", manifestPath, err)
		}
	}
	if err := writeLicenses(dir, rendered); err != nil {
		return err
	}
	if updated == nil {
		return nil
	}
	if err := os.WriteFile(manifestPath, updated, 0644); err != nil {
		return fmt.Errorf("failed to update %s: %w", manifestPath, err)
	}
	slog.Info("added license to manifest", "path", manifestPath, "license", md.License)
	return nil
}
