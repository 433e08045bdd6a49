package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func getStringParam(r *http.Request, p string) string {
	params := mux.Vars(r)
	return params[p]
}

func getInt64Param(r *http.Request, p string) (int64, *exception.CustomError) {
	value := getStringParam(r, p)
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": p, "type": "int"},
			Debug:   err.Error(),
		}
	}
	return result, nil
}

func getBoolQueryParam(r *http.Request, p string, defaultValue bool) (bool, *exception.CustomError) {
	value := r.URL.Query().Get(p)
	if value == "" {
		return defaultValue, nil
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return false, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": p, "value": value},
		}
	}
	return result, nil
}

func getPageQueryParam(r *http.Request) (int, *exception.CustomError) {
	value := r.URL.Query().Get("page")
	if value == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 0 {
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": "page", "value": value},
		}
	}
	return page, nil
}

// getVersionLogFilter reads the gentoo, overlays and upstream switches. All origins are on by default.
func getVersionLogFilter(r *http.Request) (view.VersionLogFilter, *exception.CustomError) {
	var filter view.VersionLogFilter
	var customErr *exception.CustomError
	if filter.Gentoo, customErr = getBoolQueryParam(r, "gentoo", true); customErr != nil {
		return filter, customErr
	}
	if filter.Overlays, customErr = getBoolQueryParam(r, "overlays", true); customErr != nil {
		return filter, customErr
	}
	if filter.Upstream, customErr = getBoolQueryParam(r, "upstream", true); customErr != nil {
		return filter, customErr
	}
	return filter, nil
}

func renderPage(renderer templates.Renderer, w http.ResponseWriter, r *http.Request, name string, title string, content interface{}) {
	renderer.Render(w, http.StatusOK, name, view.Page{
		Title:   title,
		User:    context.Create(r).GetUser(),
		Content: content,
	})
}

// renderError answers AJAX callers with the json error body and everyone else with the error page.
func renderError(renderer templates.Renderer, w http.ResponseWriter, r *http.Request, msg string, err error) {
	customError := utils.ToCustomError(msg, err)
	if customError.Status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", msg, err.Error())
	}
	if utils.IsAjax(r) {
		utils.RespondWithCustomError(w, customError)
		return
	}
	log.Debugf("Request failed. Code = %d. Message = %s. Params: %v. Debug: %s", customError.Status, customError.Message, customError.Params, customError.Debug)
	renderer.Render(w, customError.Status, "error", view.Page{
		Title: http.StatusText(customError.Status),
		User:  context.Create(r).GetUser(),
		Content: view.ErrorPage{
			Status:  customError.Status,
			Message: customError.FormattedMessage(),
		},
	})
}

func makeWatchButton(urls templates.URLFunc, ctx context.SecurityContext, kind view.FavoriteKind, isFavorite bool, pairs ...string) *view.WatchButton {
	if !ctx.IsAuthenticated() {
		return nil
	}
	return &view.WatchButton{
		IsFavorite:    isFavorite,
		FavoriteUrl:   urls("favourite_"+string(kind), pairs...),
		UnfavoriteUrl: urls("unfavourite_"+string(kind), pairs...),
	}
}

// respondWithFeed honours If-None-Match against the ETag of the rendered feed.
func respondWithFeed(w http.ResponseWriter, r *http.Request, feed *view.Feed) {
	w.Header().Set("ETag", feed.ETag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), feed.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", feed.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(feed.Body); err != nil {
		log.Errorf("failed to write http response: %v", err)
	}
}

func etagMatches(ifNoneMatch string, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// respondWithActionResult answers AJAX callers with {"success": true} and redirects browsers to target.
func respondWithActionResult(w http.ResponseWriter, r *http.Request, target string) {
	if utils.IsAjax(r) {
		utils.RespondWithJson(w, http.StatusOK, view.FavoriteToggleResult{Success: true})
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func absoluteUrl(externalUrl string, path string) string {
	return strings.TrimSuffix(externalUrl, "/") + path
}
