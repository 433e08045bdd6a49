package view

type FeedFormat string

const (
	FeedFormatAtom FeedFormat = "atom"
	FeedFormatRss  FeedFormat = "rss"
)

func (f FeedFormat) ContentType() string {
	if f == FeedFormatRss {
		return "application/rss+xml; charset=utf-8"
	}
	return "application/atom+xml; charset=utf-8"
}

type FeedMeta struct {
	Title       string
	Link        string
	Description string
}

// Feed is a rendered feed document ready to be written to the client.
type Feed struct {
	Body        []byte
	ContentType string
	ETag        string
}
