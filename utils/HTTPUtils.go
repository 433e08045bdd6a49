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

package utils

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/euscan/euscanwww/exception"
	log "github.com/sirupsen/logrus"
)

func SetCookie(w http.ResponseWriter, name string, value string, maxAge time.Duration, productionMode bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   productionMode,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

func DeleteCookie(w http.ResponseWriter, name string, productionMode bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   productionMode,
		Path:     "/",
	})
}

// IsAjax reports whether the caller expects a JSON answer instead of a page.
func IsAjax(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// LocalRedirectTarget returns next when it is a path on this site, fallback otherwise.
func LocalRedirectTarget(next string, fallback string) string {
	if next == "" {
		return fallback
	}
	// browsers read a backslash as a slash, so /\host is protocol-relative
	if strings.Contains(next, `\`) || strings.IndexFunc(next, unicode.IsControl) >= 0 {
		log.Debugf("Ignoring redirect target with unsafe characters %q", next)
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil {
		log.Debugf("Ignoring invalid redirect target %q: %v", next, err)
		return fallback
	}
	if u.Scheme != "" || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(next, "//") {
		log.Debugf("Ignoring non-local redirect target %q", next)
		return fallback
	}
	return next
}

func RespondWithError(w http.ResponseWriter, msg string, err error) {
	log.Errorf("%s: %s", msg, err.Error())
	RespondWithCustomError(w, ToCustomError(msg, err))
}

// ToCustomError keeps a CustomError as is and wraps anything else into a 500.
func ToCustomError(msg string, err error) *exception.CustomError {
	if customError, ok := err.(*exception.CustomError); ok {
		return customError
	}
	return &exception.CustomError{
		Status:  http.StatusInternalServerError,
		Message: msg,
		Debug:   err.Error(),
	}
}

func RespondWithCustomError(w http.ResponseWriter, err *exception.CustomError) {
	log.Debugf("Request failed. Code = %d. Message = %s. Params: %v. Debug: %s", err.Status, err.Message, err.Params, err.Debug)
	RespondWithJson(w, err.Status, err)
}

func RespondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Errorf("failed to write http response: %v", err)
	}
}
