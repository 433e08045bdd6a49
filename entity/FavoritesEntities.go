package entity

type FavoritePackageEntity struct {
	tableName struct{} `pg:"favorite_packages"`

	UserId    string `pg:"user_id, pk, type:varchar"`
	PackageId int64  `pg:"package_id, pk"`
}

type FavoriteCategoryEntity struct {
	tableName struct{} `pg:"favorite_categories"`

	UserId   string `pg:"user_id, pk, type:varchar"`
	Category string `pg:"category, pk, type:varchar"`
}

type FavoriteHerdEntity struct {
	tableName struct{} `pg:"favorite_herds"`

	UserId string `pg:"user_id, pk, type:varchar"`
	HerdId int64  `pg:"herd_id, pk"`
}

type FavoriteMaintainerEntity struct {
	tableName struct{} `pg:"favorite_maintainers"`

	UserId       string `pg:"user_id, pk, type:varchar"`
	MaintainerId int64  `pg:"maintainer_id, pk"`
}
