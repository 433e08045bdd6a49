package view

// Page is the data every html template receives.
type Page struct {
	Title   string
	User    *User
	Content interface{}
}

func (p Page) IsAuthenticated() bool {
	return p.User != nil
}

type ErrorPage struct {
	Status  int
	Message string
}

type LoginPage struct {
	Next     string
	Username string
	Error    string
}

type RegisterPage struct {
	Username string
	Email    string
	Error    string
	Allowed  bool
}

// WatchButton is shown to logged in users only.
type WatchButton struct {
	IsFavorite    bool
	FavoriteUrl   string
	UnfavoriteUrl string
}

type IndexPage struct {
	Stats  *IndexStats
	Recent []VersionLog
}

type ListingPage struct {
	PackageList
	Watch *WatchButton
}

type PackagePage struct {
	Details    *PackageDetails
	Watch      *WatchButton
	FeedUrl    string
	RefreshUrl string
}

type StatisticsPage struct {
	Snapshots []StatsSnapshot
	Page      int
	PrevUrl   string
	NextUrl   string
}

type WorldScanPage struct {
	Result  *WorldScanResult
	Entries string
}
