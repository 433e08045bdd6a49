package entity

import (
	"github.com/euscan/euscanwww/view"
)

type CountersEntity struct {
	NPackages         int `pg:"n_packages, use_zero"`
	NPackagesGentoo   int `pg:"n_packages_gentoo, use_zero"`
	NPackagesOverlay  int `pg:"n_packages_overlay, use_zero"`
	NPackagesOutdated int `pg:"n_packages_outdated, use_zero"`
	NVersionsGentoo   int `pg:"n_versions_gentoo, use_zero"`
	NVersionsOverlay  int `pg:"n_versions_overlay, use_zero"`
	NVersionsUpstream int `pg:"n_versions_upstream, use_zero"`
}

type CategoryCountersEntity struct {
	Category string `pg:"category"`
	CountersEntity
}

type HerdCountersEntity struct {
	Id    int64  `pg:"id"`
	Herd  string `pg:"herd"`
	Email string `pg:"email"`
	CountersEntity
}

type MaintainerCountersEntity struct {
	Id    int64  `pg:"id"`
	Name  string `pg:"name"`
	Email string `pg:"email"`
	CountersEntity
}

func MakeCountersView(ent CountersEntity) view.Counters {
	return view.Counters{
		NPackages:         ent.NPackages,
		NPackagesGentoo:   ent.NPackagesGentoo,
		NPackagesOverlay:  ent.NPackagesOverlay,
		NPackagesOutdated: ent.NPackagesOutdated,
		NVersionsGentoo:   ent.NVersionsGentoo,
		NVersionsOverlay:  ent.NVersionsOverlay,
		NVersionsUpstream: ent.NVersionsUpstream,
	}
}

func MakeCountersEntity(counters view.Counters) CountersEntity {
	return CountersEntity{
		NPackages:         counters.NPackages,
		NPackagesGentoo:   counters.NPackagesGentoo,
		NPackagesOverlay:  counters.NPackagesOverlay,
		NPackagesOutdated: counters.NPackagesOutdated,
		NVersionsGentoo:   counters.NVersionsGentoo,
		NVersionsOverlay:  counters.NVersionsOverlay,
		NVersionsUpstream: counters.NVersionsUpstream,
	}
}

func MakeCategoryView(ent *CategoryCountersEntity) view.Category {
	return view.Category{Name: ent.Category, Counters: MakeCountersView(ent.CountersEntity)}
}

func MakeHerdCountersView(ent *HerdCountersEntity) view.Herd {
	return view.Herd{Id: ent.Id, Herd: ent.Herd, Email: ent.Email, Counters: MakeCountersView(ent.CountersEntity)}
}

func MakeMaintainerCountersView(ent *MaintainerCountersEntity) view.Maintainer {
	return view.Maintainer{Id: ent.Id, Name: ent.Name, Email: ent.Email, Counters: MakeCountersView(ent.CountersEntity)}
}
