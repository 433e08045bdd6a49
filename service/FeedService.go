package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	"github.com/gorilla/feeds"
)

type FeedService interface {
	GetVersionLogs(filter view.VersionLogFilter) ([]view.VersionLog, error)
	BuildFeed(meta view.FeedMeta, logs []view.VersionLog, format view.FeedFormat, packageLink func(l view.VersionLog) string) (*view.Feed, error)
}

func NewFeedService(versionLogRepository repository.VersionLogRepository, maxItems int) FeedService {
	return &feedServiceImpl{
		versionLogRepository: versionLogRepository,
		maxItems:             maxItems,
	}
}

type feedServiceImpl struct {
	versionLogRepository repository.VersionLogRepository
	maxItems             int
}

func (f feedServiceImpl) GetVersionLogs(filter view.VersionLogFilter) ([]view.VersionLog, error) {
	if filter.Limit <= 0 || filter.Limit > f.maxItems {
		filter.Limit = f.maxItems
	}
	ents, err := f.versionLogRepository.GetVersionLogs(filter)
	if err != nil {
		return nil, err
	}
	result := make([]view.VersionLog, 0, len(ents))
	for i := range ents {
		l := entity.MakeVersionLogView(&ents[i])
		if filter.Accepts(l) {
			result = append(result, l)
		}
	}
	return result, nil
}

func (f feedServiceImpl) BuildFeed(meta view.FeedMeta, logs []view.VersionLog, format view.FeedFormat, packageLink func(l view.VersionLog) string) (*view.Feed, error) {
	feed := &feeds.Feed{
		Title:       meta.Title,
		Link:        &feeds.Link{Href: meta.Link},
		Description: meta.Description,
		Id:          meta.Link,
		Items:       make([]*feeds.Item, 0, len(logs)),
	}
	// the newest entry dates the feed so that identical content renders identically
	feed.Updated = time.Unix(0, 0).UTC()
	for _, l := range logs {
		if l.Datetime.After(feed.Updated) {
			feed.Updated = l.Datetime
		}
		feed.Items = append(feed.Items, makeFeedItem(l, packageLink(l)))
	}

	var body string
	var err error
	switch format {
	case view.FeedFormatAtom, "":
		format = view.FeedFormatAtom
		body, err = feed.ToAtom()
	case view.FeedFormatRss:
		body, err = feed.ToRss()
	default:
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.UnsupportedFeedFormat,
			Message: exception.UnsupportedFeedFormatMsg,
			Params:  map[string]interface{}{"format": format},
		}
	}
	if err != nil {
		return nil, err
	}
	return &view.Feed{
		Body:        []byte(body),
		ContentType: format.ContentType(),
		ETag:        utils.GetETag([]byte(body)),
	}, nil
}

func makeFeedItem(l view.VersionLog, link string) *feeds.Item {
	where := l.Origin()
	if where == "overlay" {
		where = "overlay " + l.Overlay
	}
	title := fmt.Sprintf("%s-%s", l.Atom(), l.FullVersion())
	if l.Slot != "" && l.Slot != "0" {
		title += ":" + l.Slot
	}
	var description strings.Builder
	fmt.Fprintf(&description, "Version %s of %s has been %s", l.FullVersion(), l.Atom(), l.Action)
	if l.Action == view.VersionRemoved {
		fmt.Fprintf(&description, " from %s", where)
	} else {
		fmt.Fprintf(&description, " to %s", where)
	}
	return &feeds.Item{
		Title:       fmt.Sprintf("%s %s (%s)", title, l.Action, where),
		Link:        &feeds.Link{Href: link},
		Description: description.String(),
		Id:          fmt.Sprintf("%s#version-log-%d", link, l.Id),
		Created:     l.Datetime,
		Updated:     l.Datetime,
	}
}
