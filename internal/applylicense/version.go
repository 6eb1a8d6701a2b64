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
	"runtime/debug"
	"strings"
)

// versionNotAvailable is returned by Version when no module version is
// recorded, which occurs during local development builds.
const versionNotAvailable = "not available"

// Version returns the module version the binary was built from.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionNotAvailable
	}
	return version(info)
}

func version(info *debug.BuildInfo) string {
	if info.Main.Version == "" || info.Main.Version == "(devel)" ||
		strings.HasSuffix(info.Main.Version, "+dirty") {
		return versionNotAvailable
	}
	return info.Main.Version
}
