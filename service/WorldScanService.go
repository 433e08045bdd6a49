package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
)

type WorldScanService interface {
	ParseWorld(data string) ([]string, error)
	Scan(entries []string) (*view.WorldScanResult, error)
}

func NewWorldScanService(packageRepository repository.PackageRepository, maxEntries int) WorldScanService {
	return &worldScanServiceImpl{
		packageRepository: packageRepository,
		maxEntries:        maxEntries,
	}
}

type worldScanServiceImpl struct {
	packageRepository repository.PackageRepository
	maxEntries        int
}

// ParseWorld extracts package keys from a world file or a pasted package list.
func (w worldScanServiceImpl) ParseWorld(data string) ([]string, error) {
	entries := utils.ParseWorldEntries(data)
	if len(entries) == 0 {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.WorldScanEmpty,
			Message: exception.WorldScanEmptyMsg,
		}
	}
	if w.maxEntries > 0 && len(entries) > w.maxEntries {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.WorldScanTooManyEntries,
			Message: exception.WorldScanTooManyEntriesMsg,
			Params:  map[string]interface{}{"maxEntries": w.maxEntries},
		}
	}
	if err := utils.ValidateObject(view.WorldScanReq{Entries: entries}); err != nil {
		return nil, err
	}
	return entries, nil
}

// Scan matches "category/name" entries exactly and bare names against every category.
// Entries matching nothing are reported in Unknown, in input order.
func (w worldScanServiceImpl) Scan(entries []string) (*view.WorldScanResult, error) {
	defer utils.PerfLog(time.Now(), 500, fmt.Sprintf("World scan of %d entries", len(entries)))

	atoms := make([]string, 0, len(entries))
	names := make([]string, 0)
	for _, e := range entries {
		if category, _ := utils.SplitPackageKey(e); category != "" {
			atoms = append(atoms, e)
		} else {
			names = append(names, e)
		}
	}
	ents, err := w.packageRepository.FindPackages(atoms, names)
	if err != nil {
		return nil, err
	}

	matched := make(map[string]bool, len(ents)*2)
	seen := make(map[int64]bool, len(ents))
	result := &view.WorldScanResult{
		Packages: make([]view.Package, 0, len(ents)),
		Unknown:  make([]string, 0),
	}
	for i := range ents {
		pkg := entity.MakePackageView(&ents[i])
		matched[pkg.Atom()] = true
		matched[pkg.Name] = true
		if !seen[pkg.Id] {
			seen[pkg.Id] = true
			result.Packages = append(result.Packages, pkg)
		}
	}
	for _, e := range entries {
		if !matched[e] {
			result.Unknown = append(result.Unknown, e)
		}
	}
	return result, nil
}
