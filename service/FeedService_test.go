package service

import (
	"net/http"
	"strings"
	"testing"

	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/testutil"
	"github.com/euscan/euscanwww/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFeedMeta = view.FeedMeta{Title: "euscan", Link: "http://euscan.example.org/", Description: "Last updated packages"}

func testPackageLink(l view.VersionLog) string {
	return "http://euscan.example.org/package/" + l.Atom() + "/"
}

func allOrigins() view.VersionLogFilter {
	return view.VersionLogFilter{Global: true, Gentoo: true, Overlays: true, Upstream: true}
}

func logIds(logs []view.VersionLog) []int64 {
	ids := make([]int64, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, l.Id)
	}
	return ids
}

func TestGetVersionLogsClampsLimit(t *testing.T) {
	service := NewFeedService(testutil.NewFixtureStore(), 3)

	logs, err := service.GetVersionLogs(allOrigins())
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4, 3}, logIds(logs))

	filter := allOrigins()
	filter.Limit = 100
	logs, err = service.GetVersionLogs(filter)
	require.NoError(t, err)
	assert.Len(t, logs, 3)

	filter.Limit = 2
	logs, err = service.GetVersionLogs(filter)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4}, logIds(logs))
}

func TestGetVersionLogsFilters(t *testing.T) {
	service := NewFeedService(testutil.NewFixtureStore(), 50)

	filter := view.VersionLogFilter{Global: true, Upstream: true}
	logs, err := service.GetVersionLogs(filter)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, logIds(logs))

	filter = view.VersionLogFilter{Global: true, Overlays: true}
	logs, err = service.GetVersionLogs(filter)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, logIds(logs))

	filter = view.VersionLogFilter{Global: true}
	logs, err = service.GetVersionLogs(filter)
	require.NoError(t, err)
	assert.Empty(t, logs)

	filter = view.VersionLogFilter{Categories: []string{"dev-lang"}, Gentoo: true}
	logs, err = service.GetVersionLogs(filter)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4}, logIds(logs))

	logs, err = service.GetVersionLogs(view.VersionLogFilter{Gentoo: true, Overlays: true, Upstream: true})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestBuildFeedFormats(t *testing.T) {
	service := NewFeedService(testutil.NewFixtureStore(), 50)
	logs, err := service.GetVersionLogs(allOrigins())
	require.NoError(t, err)

	atom, err := service.BuildFeed(testFeedMeta, logs, "", testPackageLink)
	require.NoError(t, err)
	assert.Equal(t, view.FeedFormatAtom.ContentType(), atom.ContentType)
	body := string(atom.Body)
	assert.Contains(t, body, "<feed")
	assert.Contains(t, body, "app-editors/vim-7.3.515 added (upstream)")
	assert.Contains(t, body, "app-editors/emacs-24.1:24 added (overlay sunrise)")
	assert.Contains(t, body, "Version 3.1.4 of dev-lang/python has been removed from gentoo")
	assert.Equal(t, len(logs), strings.Count(body, "<entry>"))

	rss, err := service.BuildFeed(testFeedMeta, logs, view.FeedFormatRss, testPackageLink)
	require.NoError(t, err)
	assert.Equal(t, view.FeedFormatRss.ContentType(), rss.ContentType)
	assert.Contains(t, string(rss.Body), "<rss")
	assert.Equal(t, len(logs), strings.Count(string(rss.Body), "<item>"))
	assert.NotEqual(t, atom.ETag, rss.ETag)

	_, err = service.BuildFeed(testFeedMeta, logs, "json", testPackageLink)
	requireCustomError(t, err, http.StatusBadRequest, exception.UnsupportedFeedFormat)
}

func TestBuildFeedETagIsStable(t *testing.T) {
	service := NewFeedService(testutil.NewFixtureStore(), 50)
	logs, err := service.GetVersionLogs(allOrigins())
	require.NoError(t, err)

	first, err := service.BuildFeed(testFeedMeta, logs, view.FeedFormatAtom, testPackageLink)
	require.NoError(t, err)
	second, err := service.BuildFeed(testFeedMeta, logs, view.FeedFormatAtom, testPackageLink)
	require.NoError(t, err)
	assert.Equal(t, first.ETag, second.ETag)
	assert.Equal(t, first.Body, second.Body)

	third, err := service.BuildFeed(testFeedMeta, logs[1:], view.FeedFormatAtom, testPackageLink)
	require.NoError(t, err)
	assert.NotEqual(t, first.ETag, third.ETag)

	empty, err := service.BuildFeed(testFeedMeta, nil, view.FeedFormatAtom, testPackageLink)
	require.NoError(t, err)
	assert.NotEmpty(t, empty.ETag)
}
