package entity

import "time"

type RefreshQueryEntity struct {
	tableName struct{} `pg:"refresh_query, alias:refresh_query"`

	PackageId   int64     `pg:"package_id, pk"`
	Priority    int       `pg:"priority, use_zero"`
	RequestedAt time.Time `pg:"requested_at, type:timestamp without time zone"`
}

type RefreshQueryUserEntity struct {
	tableName struct{} `pg:"refresh_query_users"`

	PackageId int64  `pg:"package_id, pk"`
	UserId    string `pg:"user_id, pk, type:varchar"`
}
