package view

import "time"

type VersionLogAction int

const (
	VersionAdded   VersionLogAction = 1
	VersionRemoved VersionLogAction = 2
)

func (a VersionLogAction) String() string {
	switch a {
	case VersionAdded:
		return "added"
	case VersionRemoved:
		return "removed"
	}
	return "unknown"
}

type VersionLog struct {
	Id          int64            `json:"id"`
	PackageId   int64            `json:"packageId"`
	Category    string           `json:"category"`
	PackageName string           `json:"package"`
	Datetime    time.Time        `json:"datetime"`
	Slot        string           `json:"slot"`
	Revision    string           `json:"revision"`
	Version     string           `json:"version"`
	Packaged    bool             `json:"packaged"`
	Overlay     string           `json:"overlay"`
	Action      VersionLogAction `json:"action"`
	VType       string           `json:"vtype"`
}

func (l VersionLog) Atom() string {
	return l.Category + "/" + l.PackageName
}

func (l VersionLog) FullVersion() string {
	return FullVersion(l.Version, l.Revision)
}

// Origin is one of "gentoo", "overlay" or "upstream".
func (l VersionLog) Origin() string {
	if !l.Packaged {
		return "upstream"
	}
	if IsMainTree(l.Overlay) {
		return "gentoo"
	}
	return "overlay"
}

type VersionLogFilter struct {
	Global        bool
	PackageIds    []int64
	Categories    []string
	HerdIds       []int64
	MaintainerIds []int64
	Gentoo        bool
	Overlays      bool
	Upstream      bool
	Limit         int
}

// IsEmpty reports whether a non-global filter selects nothing.
func (f VersionLogFilter) IsEmpty() bool {
	return !f.Global && len(f.PackageIds) == 0 && len(f.Categories) == 0 && len(f.HerdIds) == 0 && len(f.MaintainerIds) == 0
}

func (f VersionLogFilter) Accepts(l VersionLog) bool {
	switch l.Origin() {
	case "gentoo":
		return f.Gentoo
	case "overlay":
		return f.Overlays
	default:
		return f.Upstream
	}
}
