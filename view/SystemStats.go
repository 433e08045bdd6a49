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

import "time"

type StatsScope string

const (
	StatsScopeWorld      StatsScope = "world"
	StatsScopeCategory   StatsScope = "category"
	StatsScopeHerd       StatsScope = "herd"
	StatsScopeMaintainer StatsScope = "maintainer"
)

type StatsSnapshot struct {
	Datetime time.Time  `json:"datetime"`
	Scope    StatsScope `json:"scope"`
	ScopeKey string     `json:"scopeKey,omitempty"`
	Counters
}

type IndexStats struct {
	NPackages    int            `json:"nPackages"`
	NCategories  int            `json:"nCategories"`
	NHerds       int            `json:"nHerds"`
	NMaintainers int            `json:"nMaintainers"`
	NOverlays    int            `json:"nOverlays"`
	LastSnapshot *StatsSnapshot `json:"lastSnapshot,omitempty"`
}
