package repository

type FavoritesRepository interface {
	AddPackageToFavorites(userId string, packageId int64) error
	RemovePackageFromFavorites(userId string, packageId int64) error
	IsFavoritePackage(userId string, packageId int64) (bool, error)
	GetFavoritePackageIds(userId string) ([]int64, error)

	AddCategoryToFavorites(userId string, category string) error
	RemoveCategoryFromFavorites(userId string, category string) error
	IsFavoriteCategory(userId string, category string) (bool, error)
	GetFavoriteCategories(userId string) ([]string, error)

	AddHerdToFavorites(userId string, herdId int64) error
	RemoveHerdFromFavorites(userId string, herdId int64) error
	IsFavoriteHerd(userId string, herdId int64) (bool, error)
	GetFavoriteHerdIds(userId string) ([]int64, error)

	AddMaintainerToFavorites(userId string, maintainerId int64) error
	RemoveMaintainerFromFavorites(userId string, maintainerId int64) error
	IsFavoriteMaintainer(userId string, maintainerId int64) (bool, error)
	GetFavoriteMaintainerIds(userId string) ([]int64, error)
}
