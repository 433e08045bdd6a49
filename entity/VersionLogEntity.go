package entity

import (
	"time"

	"github.com/euscan/euscanwww/view"
)

type VersionLogEntity struct {
	tableName struct{} `pg:"version_log, alias:version_log"`

	Id        int64     `pg:"id, pk"`
	PackageId int64     `pg:"package_id"`
	Datetime  time.Time `pg:"datetime, type:timestamp without time zone"`
	Slot      string    `pg:"slot, type:varchar"`
	Revision  string    `pg:"revision, type:varchar"`
	Version   string    `pg:"version, type:varchar"`
	Packaged  bool      `pg:"packaged, use_zero"`
	Overlay   string    `pg:"overlay, type:varchar, notnull, default:''"`
	Action    int       `pg:"action, use_zero"`
	VType     string    `pg:"vtype, type:varchar"`
}

type VersionLogRichEntity struct {
	Id          int64     `pg:"id"`
	PackageId   int64     `pg:"package_id"`
	Category    string    `pg:"category"`
	PackageName string    `pg:"package_name"`
	Datetime    time.Time `pg:"datetime"`
	Slot        string    `pg:"slot"`
	Revision    string    `pg:"revision"`
	Version     string    `pg:"version"`
	Packaged    bool      `pg:"packaged"`
	Overlay     string    `pg:"overlay"`
	Action      int       `pg:"action"`
	VType       string    `pg:"vtype"`
}

func MakeVersionLogView(ent *VersionLogRichEntity) view.VersionLog {
	return view.VersionLog{
		Id:          ent.Id,
		PackageId:   ent.PackageId,
		Category:    ent.Category,
		PackageName: ent.PackageName,
		Datetime:    ent.Datetime,
		Slot:        ent.Slot,
		Revision:    ent.Revision,
		Version:     ent.Version,
		Packaged:    ent.Packaged,
		Overlay:     ent.Overlay,
		Action:      view.VersionLogAction(ent.Action),
		VType:       ent.VType,
	}
}
