package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/euscan/euscanwww/entity"
	"github.com/shaj13/go-guardian/v2/auth/claims"
)

func (s *Store) SaveUser(user *entity.UserEntity) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return false, nil
		}
	}
	saved := *user
	s.users[user.Id] = &saved
	return true, nil
}

func (s *Store) GetUserById(userId string) (*entity.UserEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if u, ok := s.users[userId]; ok {
		result := *u
		return &result, nil
	}
	return nil, nil
}

func (s *Store) GetUserByName(name string) (*entity.UserEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, u := range s.users {
		if u.Username == name {
			result := *u
			return &result, nil
		}
	}
	return nil, nil
}

func (s *Store) AddPackageToFavorites(userId string, packageId int64) error {
	return s.setInt64(s.favoritePackages, userId, packageId, true)
}

func (s *Store) RemovePackageFromFavorites(userId string, packageId int64) error {
	return s.setInt64(s.favoritePackages, userId, packageId, false)
}

func (s *Store) IsFavoritePackage(userId string, packageId int64) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.favoritePackages[userId][packageId], nil
}

func (s *Store) GetFavoritePackageIds(userId string) ([]int64, error) {
	return s.int64Keys(s.favoritePackages, userId), nil
}

func (s *Store) AddCategoryToFavorites(userId string, category string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.favoriteCategories[userId] == nil {
		s.favoriteCategories[userId] = make(map[string]bool)
	}
	s.favoriteCategories[userId][category] = true
	return nil
}

func (s *Store) RemoveCategoryFromFavorites(userId string, category string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.favoriteCategories[userId], category)
	return nil
}

func (s *Store) IsFavoriteCategory(userId string, category string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.favoriteCategories[userId][category], nil
}

func (s *Store) GetFavoriteCategories(userId string) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := make([]string, 0, len(s.favoriteCategories[userId]))
	for category := range s.favoriteCategories[userId] {
		result = append(result, category)
	}
	sort.Strings(result)
	return result, nil
}

func (s *Store) AddHerdToFavorites(userId string, herdId int64) error {
	return s.setInt64(s.favoriteHerds, userId, herdId, true)
}

func (s *Store) RemoveHerdFromFavorites(userId string, herdId int64) error {
	return s.setInt64(s.favoriteHerds, userId, herdId, false)
}

func (s *Store) IsFavoriteHerd(userId string, herdId int64) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.favoriteHerds[userId][herdId], nil
}

func (s *Store) GetFavoriteHerdIds(userId string) ([]int64, error) {
	return s.int64Keys(s.favoriteHerds, userId), nil
}

func (s *Store) AddMaintainerToFavorites(userId string, maintainerId int64) error {
	return s.setInt64(s.favoriteMaintainers, userId, maintainerId, true)
}

func (s *Store) RemoveMaintainerFromFavorites(userId string, maintainerId int64) error {
	return s.setInt64(s.favoriteMaintainers, userId, maintainerId, false)
}

func (s *Store) IsFavoriteMaintainer(userId string, maintainerId int64) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.favoriteMaintainers[userId][maintainerId], nil
}

func (s *Store) GetFavoriteMaintainerIds(userId string) ([]int64, error) {
	return s.int64Keys(s.favoriteMaintainers, userId), nil
}

func (s *Store) setInt64(favorites map[string]map[int64]bool, userId string, id int64, favorite bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !favorite {
		delete(favorites[userId], id)
		return nil
	}
	if favorites[userId] == nil {
		favorites[userId] = make(map[int64]bool)
	}
	favorites[userId][id] = true
	return nil
}

func (s *Store) int64Keys(favorites map[string]map[int64]bool, userId string) []int64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := make([]int64, 0, len(favorites[userId]))
	for id := range favorites[userId] {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

func (s *Store) AddRefreshRequest(packageId int64, userId string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.refreshQueryRequests[packageId][userId] {
		return false, nil
	}
	if s.refreshQueryRequests[packageId] == nil {
		s.refreshQueryRequests[packageId] = make(map[string]bool)
	}
	s.refreshQueryRequests[packageId][userId] = true
	query, ok := s.refreshQueries[packageId]
	if !ok {
		query = &entity.RefreshQueryEntity{PackageId: packageId}
		s.refreshQueries[packageId] = query
	}
	query.Priority++
	query.RequestedAt = time.Now()
	return true, nil
}

func (s *Store) IsRefreshRequested(packageId int64, userId string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.refreshQueryRequests[packageId][userId], nil
}

func (s *Store) GetRefreshQuery(packageId int64) (*entity.RefreshQueryEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if query, ok := s.refreshQueries[packageId]; ok {
		result := *query
		return &result, nil
	}
	return nil, nil
}

func (s *Store) CountPackages(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Packages), nil
}

func (s *Store) CountCategories(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.categories(nil)), nil
}

func (s *Store) CountHerds(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Herds), nil
}

func (s *Store) CountMaintainers(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Maintainers), nil
}

func (s *Store) CountOverlays(ctx context.Context) (int, error) {
	overlays, err := s.GetOverlays()
	return len(overlays), err
}

func (s *Store) SaveSnapshots(ctx context.Context, snapshots []entity.StatsLogEntity) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, snapshot := range snapshots {
		snapshot.Id = int64(len(s.StatsLogs) + 1)
		s.StatsLogs = append(s.StatsLogs, snapshot)
	}
	return nil
}

func (s *Store) GetLatestSnapshot(ctx context.Context, scope string, scopeKey string) (*entity.StatsLogEntity, error) {
	snapshots, err := s.GetSnapshots(ctx, scope, scopeKey, 1)
	if err != nil || len(snapshots) == 0 {
		return nil, err
	}
	return &snapshots[0], nil
}

func (s *Store) GetSnapshots(ctx context.Context, scope string, scopeKey string, limit int) ([]entity.StatsLogEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := make([]entity.StatsLogEntity, 0)
	for _, snapshot := range s.StatsLogs {
		if snapshot.Scope == scope && snapshot.ScopeKey == scopeKey {
			result = append(result, snapshot)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Datetime.Equal(result[j].Datetime) {
			return result[i].Datetime.After(result[j].Datetime)
		}
		return result[i].Id > result[j].Id
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// TokenRevocations keeps revocation timestamps in memory, backdated by the token leeway like the olric-backed service.
type TokenRevocations struct {
	mutex   sync.Mutex
	revoked map[string]int64
}

func NewTokenRevocations() *TokenRevocations {
	return &TokenRevocations{revoked: make(map[string]int64)}
}

func (t *TokenRevocations) RevokeUserTokens(userId string) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.revoked[userId] = time.Now().Add(-claims.DefaultLeeway).Unix()
	return nil
}

func (t *TokenRevocations) IsTokenRevoked(userId string, tokenCreationTimestamp int64) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	revokedAt, ok := t.revoked[userId]
	return ok && tokenCreationTimestamp <= revokedAt
}
