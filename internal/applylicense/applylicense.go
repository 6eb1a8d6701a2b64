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

// Package applylicense implements the apply-license and cargo-apply-license
// commands, which write license files for a project.
package applylicense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/googleapis/apply-license/internal/license"
	"github.com/googleapis/apply-license/internal/manifest"
	"github.com/googleapis/apply-license/internal/metadata"
	"github.com/googleapis/apply-license/internal/yaml"
	"github.com/urfave/cli/v3"
)

// Run executes the apply-license CLI with the given command line arguments.
func Run(ctx context.Context, args ...string) error {
	return newApplyLicenseCommand().Run(ctx, args)
}

func newApplyLicenseCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply-license",
		Usage:     "apply open-source licenses to your project",
		UsageText: "apply-license [-a <author>]... [-l <license expression>]",
		Description: `apply-license writes license files to the current directory.

Authors and the license expression default to the values in the project
manifest (Cargo.toml, pyproject.toml or package.json) when one is present.
Without a manifest both --author and --license are required.

A single license is written to LICENSE. An expression naming several
licenses, such as "MIT OR Apache-2.0", writes one LICENSE-<id> file each.

Examples:
  apply-license -a "Jane Doe" -l MIT
  apply-license -a "Jane Doe" -a "John Roe" -l "MIT OR Apache-2.0"
  apply-license list`,
		Flags: []cli.Flag{
			authorFlag(),
			licenseFlag(),
			verboseFlag(),
		},
		Commands: []*cli.Command{
			listCommand(),
			versionCommand(),
		},
		Action: runApplyLicense,

		// Author names may contain commas, as in "Doe, Jane".
		DisableSliceFlagSeparator: true,
	}
}

func authorFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "author",
		Aliases: []string{"a"},
		Usage:   "copyright holder; can be specified multiple times",
	}
}

func licenseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "license",
		Aliases: []string{"l"},
		Usage:   "an SPDX license expression, such as \"MIT OR Apache-2.0\"",
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "enable verbose logging",
	}
}

func runApplyLicense(ctx context.Context, cmd *cli.Command) error {
	setupLogger(cmd.Bool("verbose"))
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	m, err := manifest.Find(dir)
	switch {
	case errors.Is(err, manifest.ErrNotFound):
		slog.Debug("no project manifest found", "dir", dir)
		m = nil
	case err != nil:
		return err
	default:
		slog.Debug("using project manifest", "path", m.Path)
	}

	in := metadata.Input{
		Authors:    cmd.StringSlice("author"),
		License:    cmd.String("license"),
		LicenseSet: cmd.IsSet("license"),
		Manifest:   m,
	}
	if m != nil {
		in.DefaultLicense = metadata.DefaultLicense
	}
	_, rendered, err := render(in, time.Now().Year())
	if err == nil {
		err = writeLicenses(dir, rendered)
	}
	if errors.Is(err, metadata.ErrMissingLicense) {
		return fmt.Errorf("%w: pass --license when there is no project manifest", err)
	}
	return err
}

// render resolves metadata and renders every license in the expression.
// Nothing is written, so callers can validate further before touching disk.
func render(in metadata.Input, year int) (*metadata.Metadata, []*license.Rendered, error) {
	md, err := metadata.Resolve(in)
	if err != nil {
		return nil, nil, err
	}
	ids, err := license.ParseExpression(md.License)
	if err != nil {
		return nil, nil, err
	}
	registry, err := license.NewRegistry()
	if err != nil {
		return nil, nil, err
	}
	rendered, err := registry.Render(ids, md.Holders, year)
	if err != nil {
		return nil, nil, err
	}
	return md, rendered, nil
}

type listEntry struct {
	SPDX string `yaml:"spdx"`
	Name string `yaml:"name"`
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list the licenses bundled with apply-license",
		UsageText: "apply-license list",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			registry, err := license.NewRegistry()
			if err != nil {
				return err
			}
			var entries []listEntry
			for _, l := range registry.Licenses() {
				entries = append(entries, listEntry{SPDX: l.SPDX, Name: l.Name})
			}
			data, err := yaml.Marshal(entries)
			if err != nil {
				return err
			}
			_, err = cmd.Root().Writer.Write(data)
			return err
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "print the version",
		UsageText: "apply-license version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, Version())
			return err
		},
	}
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}
