package view

type Counters struct {
	NPackages         int `json:"nPackages"`
	NPackagesGentoo   int `json:"nPackagesGentoo"`
	NPackagesOverlay  int `json:"nPackagesOverlay"`
	NPackagesOutdated int `json:"nPackagesOutdated"`
	NVersionsGentoo   int `json:"nVersionsGentoo"`
	NVersionsOverlay  int `json:"nVersionsOverlay"`
	NVersionsUpstream int `json:"nVersionsUpstream"`
}

// Add accumulates the counters of a single package.
func (c *Counters) Add(p Package) {
	c.NPackages++
	c.NVersionsGentoo += p.NPackaged
	c.NVersionsOverlay += p.NOverlay
	c.NVersionsUpstream += p.NVersions - p.NPackaged - p.NOverlay
	if p.NPackaged > 0 {
		c.NPackagesGentoo++
	}
	if p.NOverlay > 0 {
		c.NPackagesOverlay++
	}
	if p.Outdated() {
		c.NPackagesOutdated++
	}
}

type Category struct {
	Name string `json:"category"`
	Counters
}

type Herd struct {
	Id    int64  `json:"id"`
	Herd  string `json:"herd"`
	Email string `json:"email"`
	Counters
}

type Maintainer struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Counters
}

type Overlay struct {
	Name      string `json:"overlay"`
	NPackages int    `json:"nPackages"`
}

// PackageList is a titled listing of packages shared by category, herd,
// maintainer, overlay and favourites pages.
type PackageList struct {
	Title      string
	Kind       FavoriteKind
	Key        string
	Packages   []Package
	IsFavorite bool
	FeedUrl    string
	Extra      interface{}
}
