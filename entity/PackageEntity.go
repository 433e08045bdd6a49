package entity

import (
	"github.com/euscan/euscanwww/view"
)

type PackageEntity struct {
	tableName struct{} `pg:"package, alias:package"`

	Id                  int64  `pg:"id, pk"`
	Category            string `pg:"category, type:varchar, unique:category_name"`
	Name                string `pg:"name, type:varchar, unique:category_name"`
	Description         string `pg:"description, type:varchar"`
	Homepage            string `pg:"homepage, type:varchar"`
	NVersions           int    `pg:"n_versions, use_zero"`
	NPackaged           int    `pg:"n_packaged, use_zero"`
	NOverlay            int    `pg:"n_overlay, use_zero"`
	LastVersionGentoo   string `pg:"last_version_gentoo, type:varchar"`
	LastVersionOverlay  string `pg:"last_version_overlay, type:varchar"`
	LastVersionUpstream string `pg:"last_version_upstream, type:varchar"`
}

type HerdEntity struct {
	tableName struct{} `pg:"herd, alias:herd"`

	Id    int64  `pg:"id, pk"`
	Herd  string `pg:"herd, type:varchar, unique"`
	Email string `pg:"email, type:varchar"`
}

type MaintainerEntity struct {
	tableName struct{} `pg:"maintainer, alias:maintainer"`

	Id    int64  `pg:"id, pk"`
	Name  string `pg:"name, type:varchar"`
	Email string `pg:"email, type:varchar, unique"`
}

type PackageHerdEntity struct {
	tableName struct{} `pg:"package_herds"`

	PackageId int64 `pg:"package_id, pk"`
	HerdId    int64 `pg:"herd_id, pk"`
}

type PackageMaintainerEntity struct {
	tableName struct{} `pg:"package_maintainers"`

	PackageId    int64 `pg:"package_id, pk"`
	MaintainerId int64 `pg:"maintainer_id, pk"`
}

type VersionEntity struct {
	tableName struct{} `pg:"version, alias:version"`

	Id         int64  `pg:"id, pk"`
	PackageId  int64  `pg:"package_id"`
	Slot       string `pg:"slot, type:varchar"`
	Revision   string `pg:"revision, type:varchar"`
	Version    string `pg:"version, type:varchar"`
	Packaged   bool   `pg:"packaged, use_zero"`
	Overlay    string `pg:"overlay, type:varchar, notnull, default:''"`
	Urls       string `pg:"urls, type:text"`
	VType      string `pg:"vtype, type:varchar"`
	Handler    string `pg:"handler, type:varchar"`
	Confidence int    `pg:"confidence, use_zero"`
}

// OverlayEntity is a projection over version.overlay.
type OverlayEntity struct {
	Overlay   string `pg:"overlay"`
	NPackages int    `pg:"n_packages"`
}

func MakePackageView(ent *PackageEntity) view.Package {
	return view.Package{
		Id:                  ent.Id,
		Category:            ent.Category,
		Name:                ent.Name,
		Description:         ent.Description,
		Homepage:            ent.Homepage,
		NVersions:           ent.NVersions,
		NPackaged:           ent.NPackaged,
		NOverlay:            ent.NOverlay,
		LastVersionGentoo:   ent.LastVersionGentoo,
		LastVersionOverlay:  ent.LastVersionOverlay,
		LastVersionUpstream: ent.LastVersionUpstream,
	}
}

func MakePackageViews(ents []PackageEntity) []view.Package {
	result := make([]view.Package, 0, len(ents))
	for i := range ents {
		result = append(result, MakePackageView(&ents[i]))
	}
	return result
}

func MakeVersionView(ent *VersionEntity) view.Version {
	return view.Version{
		Slot:       ent.Slot,
		Revision:   ent.Revision,
		Version:    ent.Version,
		Packaged:   ent.Packaged,
		Overlay:    ent.Overlay,
		Urls:       ent.Urls,
		VType:      ent.VType,
		Handler:    ent.Handler,
		Confidence: ent.Confidence,
	}
}

func MakeHerdView(ent *HerdEntity) view.Herd {
	return view.Herd{Id: ent.Id, Herd: ent.Herd, Email: ent.Email}
}

func MakeMaintainerView(ent *MaintainerEntity) view.Maintainer {
	return view.Maintainer{Id: ent.Id, Name: ent.Name, Email: ent.Email}
}
