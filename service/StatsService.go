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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/buraksezer/olric"
	"github.com/euscan/euscanwww/cache"
	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/metrics"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	indexStatsDMap = "IndexStats"
	indexStatsKey  = "index"
	historyLimit   = 1000
)

type StatsService interface {
	GetIndexStats(ctx context.Context) (*view.IndexStats, error)
	InvalidateIndexStats()
	GetHistory(ctx context.Context, scope view.StatsScope, scopeKey string, page int, limit int) ([]view.StatsSnapshot, error)
	CollectSnapshots(ctx context.Context) ([]view.StatsSnapshot, error)
	UpdateCounters(ctx context.Context) error
}

// NewStatsService caches index statistics in olric when provider is not nil.
func NewStatsService(statsRepository repository.StatsRepository,
	packageRepository repository.PackageRepository,
	herdRepository repository.HerdRepository,
	maintainerRepository repository.MaintainerRepository,
	provider cache.OlricProvider,
	cacheTTLSec int) StatsService {
	s := &statsServiceImpl{
		statsRepository:      statsRepository,
		packageRepository:    packageRepository,
		herdRepository:       herdRepository,
		maintainerRepository: maintainerRepository,
		cacheTTL:             time.Duration(cacheTTLSec) * time.Second,
	}
	if provider != nil && cacheTTLSec > 0 {
		utils.SafeAsync(func() {
			dmap, err := provider.Get().NewDMap(indexStatsDMap)
			if err != nil {
				log.Errorf("Failed to create dmap %s, index statistics will not be cached: %s", indexStatsDMap, err.Error())
				return
			}
			s.mutex.Lock()
			s.statsCache = dmap
			s.mutex.Unlock()
			log.Debug("Index statistics cache is ready")
		})
	}
	return s
}

type statsServiceImpl struct {
	statsRepository      repository.StatsRepository
	packageRepository    repository.PackageRepository
	herdRepository       repository.HerdRepository
	maintainerRepository repository.MaintainerRepository
	statsCache           *olric.DMap
	cacheTTL             time.Duration
	mutex                sync.RWMutex
}

func (s *statsServiceImpl) getCache() *olric.DMap {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.statsCache
}

func (s *statsServiceImpl) GetIndexStats(ctx context.Context) (*view.IndexStats, error) {
	if dmap := s.getCache(); dmap != nil {
		val, err := dmap.Get(indexStatsKey)
		if err == nil {
			if data, ok := val.([]byte); ok {
				var cached view.IndexStats
				if err = json.Unmarshal(data, &cached); err == nil {
					return &cached, nil
				}
			}
		} else if !errors.Is(err, olric.ErrKeyNotFound) {
			log.Warnf("Failed to read cached index statistics: %v", err)
		}
	}

	stats, err := s.loadIndexStats(ctx)
	if err != nil {
		return nil, err
	}
	if dmap := s.getCache(); dmap != nil {
		data, _ := json.Marshal(stats)
		if err := dmap.PutEx(indexStatsKey, data, s.cacheTTL); err != nil {
			log.Warnf("Failed to cache index statistics: %v", err)
		}
	}
	return stats, nil
}

func (s *statsServiceImpl) loadIndexStats(ctx context.Context) (*view.IndexStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	stats := &view.IndexStats{}

	g.Go(func() error {
		var err error
		stats.NPackages, err = s.statsRepository.CountPackages(ctx)
		if err != nil {
			log.Errorf("Failed to get packages count: %v", err)
		}
		return err
	})

	g.Go(func() error {
		var err error
		stats.NCategories, err = s.statsRepository.CountCategories(ctx)
		if err != nil {
			log.Errorf("Failed to get categories count: %v", err)
		}
		return err
	})

	g.Go(func() error {
		var err error
		stats.NHerds, err = s.statsRepository.CountHerds(ctx)
		if err != nil {
			log.Errorf("Failed to get herds count: %v", err)
		}
		return err
	})

	g.Go(func() error {
		var err error
		stats.NMaintainers, err = s.statsRepository.CountMaintainers(ctx)
		if err != nil {
			log.Errorf("Failed to get maintainers count: %v", err)
		}
		return err
	})

	g.Go(func() error {
		var err error
		stats.NOverlays, err = s.statsRepository.CountOverlays(ctx)
		if err != nil {
			log.Errorf("Failed to get overlays count: %v", err)
		}
		return err
	})

	g.Go(func() error {
		ent, err := s.statsRepository.GetLatestSnapshot(ctx, string(view.StatsScopeWorld), "")
		if err != nil {
			log.Errorf("Failed to get latest statistics snapshot: %v", err)
			return err
		}
		if ent != nil {
			snapshot := entity.MakeStatsSnapshotView(ent)
			stats.LastSnapshot = &snapshot
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *statsServiceImpl) InvalidateIndexStats() {
	if dmap := s.getCache(); dmap != nil {
		if err := dmap.Delete(indexStatsKey); err != nil {
			log.Warnf("Failed to invalidate cached index statistics: %v", err)
		}
	}
}

func (s *statsServiceImpl) GetHistory(ctx context.Context, scope view.StatsScope, scopeKey string, page int, limit int) ([]view.StatsSnapshot, error) {
	ents, err := s.statsRepository.GetSnapshots(ctx, string(scope), scopeKey, historyLimit)
	if err != nil {
		return nil, err
	}
	start, end := utils.PaginateList(len(ents), limit, page)
	result := make([]view.StatsSnapshot, 0, end-start)
	for i := start; i < end; i++ {
		result = append(result, entity.MakeStatsSnapshotView(&ents[i]))
	}
	return result, nil
}

// CollectSnapshots computes the current counters for the world and for every category, herd and maintainer.
func (s *statsServiceImpl) CollectSnapshots(ctx context.Context) ([]view.StatsSnapshot, error) {
	now := time.Now().UTC()
	g, _ := errgroup.WithContext(ctx)

	var world view.Counters
	var categories []entity.CategoryCountersEntity
	var herds []entity.HerdCountersEntity
	var maintainers []entity.MaintainerCountersEntity

	g.Go(func() error {
		packages, err := s.packageRepository.GetAllPackages()
		if err != nil {
			return err
		}
		for _, pkg := range entity.MakePackageViews(packages) {
			world.Add(pkg)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.packageRepository.GetCategories()
		return err
	})
	g.Go(func() error {
		var err error
		herds, err = s.herdRepository.GetHerds()
		return err
	})
	g.Go(func() error {
		var err error
		maintainers, err = s.maintainerRepository.GetMaintainers()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]view.StatsSnapshot, 0, 1+len(categories)+len(herds)+len(maintainers))
	result = append(result, view.StatsSnapshot{Datetime: now, Scope: view.StatsScopeWorld, Counters: world})
	for _, c := range categories {
		result = append(result, view.StatsSnapshot{Datetime: now, Scope: view.StatsScopeCategory, ScopeKey: c.Category, Counters: entity.MakeCountersView(c.CountersEntity)})
	}
	for _, h := range herds {
		result = append(result, view.StatsSnapshot{Datetime: now, Scope: view.StatsScopeHerd, ScopeKey: h.Herd, Counters: entity.MakeCountersView(h.CountersEntity)})
	}
	for _, m := range maintainers {
		result = append(result, view.StatsSnapshot{Datetime: now, Scope: view.StatsScopeMaintainer, ScopeKey: strconv.FormatInt(m.Id, 10), Counters: entity.MakeCountersView(m.CountersEntity)})
	}
	return result, nil
}

func (s *statsServiceImpl) UpdateCounters(ctx context.Context) error {
	snapshots, err := s.CollectSnapshots(ctx)
	if err != nil {
		return err
	}
	ents := make([]entity.StatsLogEntity, 0, len(snapshots))
	for _, snapshot := range snapshots {
		ents = append(ents, *entity.MakeStatsLogEntity(snapshot))
	}
	if err = s.statsRepository.SaveSnapshots(ctx, ents); err != nil {
		return err
	}
	s.InvalidateIndexStats()
	for _, snapshot := range snapshots {
		if snapshot.Scope == view.StatsScopeWorld {
			metrics.TrackedPackages.WithLabelValues().Set(float64(snapshot.NPackages))
			metrics.OutdatedPackages.WithLabelValues().Set(float64(snapshot.NPackagesOutdated))
		}
	}
	log.Infof("Stored %d statistics snapshots", len(ents))
	return nil
}
