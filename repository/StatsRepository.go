package repository

import (
	"context"

	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10"
)

type StatsRepository interface {
	CountPackages(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
	CountHerds(ctx context.Context) (int, error)
	CountMaintainers(ctx context.Context) (int, error)
	CountOverlays(ctx context.Context) (int, error)
	SaveSnapshots(ctx context.Context, snapshots []entity.StatsLogEntity) error
	GetLatestSnapshot(ctx context.Context, scope string, scopeKey string) (*entity.StatsLogEntity, error)
	GetSnapshots(ctx context.Context, scope string, scopeKey string, limit int) ([]entity.StatsLogEntity, error)
}

func NewStatsRepositoryPG(cp db.ConnectionProvider) StatsRepository {
	return &statsRepositoryImpl{cp: cp}
}

type statsRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (s *statsRepositoryImpl) count(ctx context.Context, query string, params ...interface{}) (int, error) {
	var count int
	_, err := s.cp.GetConnection().QueryOneContext(ctx, pg.Scan(&count), query, params...)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *statsRepositoryImpl) CountPackages(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM package`)
}

func (s *statsRepositoryImpl) CountCategories(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(DISTINCT category) FROM package`)
}

func (s *statsRepositoryImpl) CountHerds(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM herd`)
}

func (s *statsRepositoryImpl) CountMaintainers(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM maintainer`)
}

func (s *statsRepositoryImpl) CountOverlays(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(DISTINCT overlay) FROM version WHERE overlay NOT IN (?)`, pg.In(mainTreeOverlays))
}

func (s *statsRepositoryImpl) SaveSnapshots(ctx context.Context, snapshots []entity.StatsLogEntity) error {
	if len(snapshots) == 0 {
		return nil
	}
	_, err := s.cp.GetConnection().ModelContext(ctx, &snapshots).Insert()
	return err
}

func (s *statsRepositoryImpl) GetLatestSnapshot(ctx context.Context, scope string, scopeKey string) (*entity.StatsLogEntity, error) {
	result := new(entity.StatsLogEntity)
	err := s.cp.GetConnection().ModelContext(ctx, result).
		Where("scope = ?", scope).
		Where("scope_key = ?", scopeKey).
		Order("datetime DESC", "id DESC").
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (s *statsRepositoryImpl) GetSnapshots(ctx context.Context, scope string, scopeKey string, limit int) ([]entity.StatsLogEntity, error) {
	result := make([]entity.StatsLogEntity, 0)
	err := s.cp.GetConnection().ModelContext(ctx, &result).
		Where("scope = ?", scope).
		Where("scope_key = ?", scopeKey).
		Order("datetime DESC", "id DESC").
		Limit(limit).
		Select()
	return result, err
}
