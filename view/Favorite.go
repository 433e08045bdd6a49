package view

type FavoriteKind string

const (
	FavoritePackage    FavoriteKind = "package"
	FavoriteCategory   FavoriteKind = "category"
	FavoriteHerd       FavoriteKind = "herd"
	FavoriteMaintainer FavoriteKind = "maintainer"
)

func (k FavoriteKind) IsValid() bool {
	switch k {
	case FavoritePackage, FavoriteCategory, FavoriteHerd, FavoriteMaintainer:
		return true
	}
	return false
}

// Favorites is the set of entities a user watches.
type Favorites struct {
	PackageIds    []int64
	Categories    []string
	HerdIds       []int64
	MaintainerIds []int64
}

type FavoriteToggleResult struct {
	Success bool `json:"success"`
}

type AccountSummary struct {
	User           User
	NPackages      int
	NCategories    int
	NHerds         int
	NMaintainers   int
	RecentVersions []VersionLog
}

// FavoriteRef identifies the entity a favourite points to. Only the fields of Kind are set.
type FavoriteRef struct {
	Kind         FavoriteKind
	Category     string
	Package      string
	Herd         string
	MaintainerId int64
}
