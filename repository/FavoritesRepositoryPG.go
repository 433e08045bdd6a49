package repository

import (
	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10"
)

func NewFavoritesRepositoryPG(cp db.ConnectionProvider) FavoritesRepository {
	return &favoritesRepositoryImpl{cp: cp}
}

type favoritesRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (f favoritesRepositoryImpl) AddPackageToFavorites(userId string, packageId int64) error {
	ent := &entity.FavoritePackageEntity{UserId: userId, PackageId: packageId}
	_, err := f.cp.GetConnection().Model(ent).
		OnConflict("(user_id, package_id) DO NOTHING").
		Insert()
	return err
}

func (f favoritesRepositoryImpl) RemovePackageFromFavorites(userId string, packageId int64) error {
	_, err := f.cp.GetConnection().Model(&entity.FavoritePackageEntity{}).
		Where("user_id = ?", userId).
		Where("package_id = ?", packageId).
		Delete()
	return err
}

func (f favoritesRepositoryImpl) IsFavoritePackage(userId string, packageId int64) (bool, error) {
	return f.cp.GetConnection().Model(&entity.FavoritePackageEntity{}).
		Where("user_id = ?", userId).
		Where("package_id = ?", packageId).
		Exists()
}

func (f favoritesRepositoryImpl) GetFavoritePackageIds(userId string) ([]int64, error) {
	result := make([]int64, 0)
	err := f.cp.GetConnection().Model(&entity.FavoritePackageEntity{}).
		Column("package_id").
		Where("user_id = ?", userId).
		Select(&result)
	if err != nil && err != pg.ErrNoRows {
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryImpl) AddCategoryToFavorites(userId string, category string) error {
	ent := &entity.FavoriteCategoryEntity{UserId: userId, Category: category}
	_, err := f.cp.GetConnection().Model(ent).
		OnConflict("(user_id, category) DO NOTHING").
		Insert()
	return err
}

func (f favoritesRepositoryImpl) RemoveCategoryFromFavorites(userId string, category string) error {
	_, err := f.cp.GetConnection().Model(&entity.FavoriteCategoryEntity{}).
		Where("user_id = ?", userId).
		Where("category = ?", category).
		Delete()
	return err
}

func (f favoritesRepositoryImpl) IsFavoriteCategory(userId string, category string) (bool, error) {
	return f.cp.GetConnection().Model(&entity.FavoriteCategoryEntity{}).
		Where("user_id = ?", userId).
		Where("category = ?", category).
		Exists()
}

func (f favoritesRepositoryImpl) GetFavoriteCategories(userId string) ([]string, error) {
	result := make([]string, 0)
	err := f.cp.GetConnection().Model(&entity.FavoriteCategoryEntity{}).
		Column("category").
		Where("user_id = ?", userId).
		Order("category ASC").
		Select(&result)
	if err != nil && err != pg.ErrNoRows {
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryImpl) AddHerdToFavorites(userId string, herdId int64) error {
	ent := &entity.FavoriteHerdEntity{UserId: userId, HerdId: herdId}
	_, err := f.cp.GetConnection().Model(ent).
		OnConflict("(user_id, herd_id) DO NOTHING").
		Insert()
	return err
}

func (f favoritesRepositoryImpl) RemoveHerdFromFavorites(userId string, herdId int64) error {
	_, err := f.cp.GetConnection().Model(&entity.FavoriteHerdEntity{}).
		Where("user_id = ?", userId).
		Where("herd_id = ?", herdId).
		Delete()
	return err
}

func (f favoritesRepositoryImpl) IsFavoriteHerd(userId string, herdId int64) (bool, error) {
	return f.cp.GetConnection().Model(&entity.FavoriteHerdEntity{}).
		Where("user_id = ?", userId).
		Where("herd_id = ?", herdId).
		Exists()
}

func (f favoritesRepositoryImpl) GetFavoriteHerdIds(userId string) ([]int64, error) {
	result := make([]int64, 0)
	err := f.cp.GetConnection().Model(&entity.FavoriteHerdEntity{}).
		Column("herd_id").
		Where("user_id = ?", userId).
		Select(&result)
	if err != nil && err != pg.ErrNoRows {
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryImpl) AddMaintainerToFavorites(userId string, maintainerId int64) error {
	ent := &entity.FavoriteMaintainerEntity{UserId: userId, MaintainerId: maintainerId}
	_, err := f.cp.GetConnection().Model(ent).
		OnConflict("(user_id, maintainer_id) DO NOTHING").
		Insert()
	return err
}

func (f favoritesRepositoryImpl) RemoveMaintainerFromFavorites(userId string, maintainerId int64) error {
	_, err := f.cp.GetConnection().Model(&entity.FavoriteMaintainerEntity{}).
		Where("user_id = ?", userId).
		Where("maintainer_id = ?", maintainerId).
		Delete()
	return err
}

func (f favoritesRepositoryImpl) IsFavoriteMaintainer(userId string, maintainerId int64) (bool, error) {
	return f.cp.GetConnection().Model(&entity.FavoriteMaintainerEntity{}).
		Where("user_id = ?", userId).
		Where("maintainer_id = ?", maintainerId).
		Exists()
}

func (f favoritesRepositoryImpl) GetFavoriteMaintainerIds(userId string) ([]int64, error) {
	result := make([]int64, 0)
	err := f.cp.GetConnection().Model(&entity.FavoriteMaintainerEntity{}).
		Column("maintainer_id").
		Where("user_id = ?", userId).
		Select(&result)
	if err != nil && err != pg.ErrNoRows {
		return nil, err
	}
	return result, nil
}
