package entity

import (
	"time"

	"github.com/euscan/euscanwww/view"
)

type StatsLogEntity struct {
	tableName struct{} `pg:"stats_log, alias:stats_log"`

	Id       int64     `pg:"id, pk"`
	Datetime time.Time `pg:"datetime, type:timestamp without time zone"`
	Scope    string    `pg:"scope, type:varchar"`
	ScopeKey string    `pg:"scope_key, type:varchar, use_zero"`
	CountersEntity
}

func MakeStatsLogEntity(snapshot view.StatsSnapshot) *StatsLogEntity {
	return &StatsLogEntity{
		Datetime:       snapshot.Datetime,
		Scope:          string(snapshot.Scope),
		ScopeKey:       snapshot.ScopeKey,
		CountersEntity: MakeCountersEntity(snapshot.Counters),
	}
}

func MakeStatsSnapshotView(ent *StatsLogEntity) view.StatsSnapshot {
	return view.StatsSnapshot{
		Datetime: ent.Datetime,
		Scope:    view.StatsScope(ent.Scope),
		ScopeKey: ent.ScopeKey,
		Counters: MakeCountersView(ent.CountersEntity),
	}
}
