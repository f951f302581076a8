// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package version

import "runtime/debug"

var (
	cLIVersionHash = ""
	cLIVersion     = "v0.1.0+dev"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	modified := false

	for _, v := range info.Settings {
		if v.Key == "vcs.revision" {
			cLIVersionHash = v.Value
		}
		if v.Key == "vcs.modified" {
			modified = true
		}
	}
	if modified {
		cLIVersionHash += "-modified"
	}
}

// Get returns the version of the feecheck binary.
func Get() string {
	return cLIVersion
}

func GetCommitHash() string {
	return cLIVersionHash
}
