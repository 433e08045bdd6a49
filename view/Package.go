// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package view

const MainTreeOverlay = "gentoo"

type Package struct {
	Id                  int64  `json:"id"`
	Category            string `json:"category"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Homepage            string `json:"homepage"`
	NVersions           int    `json:"nVersions"`
	NPackaged           int    `json:"nPackaged"`
	NOverlay            int    `json:"nOverlay"`
	LastVersionGentoo   string `json:"lastVersionGentoo"`
	LastVersionOverlay  string `json:"lastVersionOverlay"`
	LastVersionUpstream string `json:"lastVersionUpstream"`
}

// Atom returns the "category/name" form used by portage.
func (p Package) Atom() string {
	return p.Category + "/" + p.Name
}

// Outdated reports whether upstream has versions that are neither in the
// main tree nor in any overlay.
func (p Package) Outdated() bool {
	return p.NVersions > p.NPackaged+p.NOverlay
}

type PackageDetails struct {
	Package
	Herds            []Herd       `json:"herds"`
	Maintainers      []Maintainer `json:"maintainers"`
	PackagedVersions []Version    `json:"packaged"`
	OverlayVersions  []Version    `json:"overlay"`
	UpstreamVersions []Version    `json:"upstream"`
	Log              []VersionLog `json:"-"`
	IsFavorite       bool         `json:"-"`
	RefreshRequested bool         `json:"-"`
}

type Version struct {
	Slot       string `json:"slot"`
	Revision   string `json:"revision"`
	Version    string `json:"version"`
	Packaged   bool   `json:"packaged"`
	Overlay    string `json:"overlay"`
	Urls       string `json:"urls,omitempty"`
	VType      string `json:"vtype,omitempty"`
	Handler    string `json:"handler,omitempty"`
	Confidence int    `json:"confidence,omitempty"`
}

// Full returns the version with its ebuild revision, e.g. "1.2.3-r1".
func (v Version) Full() string {
	return FullVersion(v.Version, v.Revision)
}

func FullVersion(version string, revision string) string {
	if revision == "" || revision == "r0" {
		return version
	}
	return version + "-" + revision
}

func IsMainTree(overlay string) bool {
	return overlay == "" || overlay == MainTreeOverlay
}

// SplitVersions groups versions the way the package page shows them.
func SplitVersions(versions []Version) (packaged []Version, overlay []Version, upstream []Version) {
	packaged, overlay, upstream = make([]Version, 0), make([]Version, 0), make([]Version, 0)
	for _, v := range versions {
		switch {
		case !v.Packaged:
			upstream = append(upstream, v)
		case IsMainTree(v.Overlay):
			packaged = append(packaged, v)
		default:
			overlay = append(overlay, v)
		}
	}
	return packaged, overlay, upstream
}
