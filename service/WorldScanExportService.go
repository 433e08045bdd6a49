package service

import (
	"fmt"
	"time"

	"github.com/euscan/euscanwww/view"
	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"
)

const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var worldScanColumns = []interface{}{
	"Package", "Description", "Gentoo", "Overlay", "Upstream", "Versions", "Outdated",
}

type WorldScanExportService interface {
	ExportToXlsx(result *view.WorldScanResult) ([]byte, string, error)
}

func NewWorldScanExportService() WorldScanExportService {
	return &worldScanExportServiceImpl{}
}

type worldScanExportServiceImpl struct {
}

// ExportToXlsx renders the scan result as a workbook and returns it with a download file name.
func (e worldScanExportServiceImpl) ExportToXlsx(result *view.WorldScanResult) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}
	if err = f.SetSheetRow(sheet, "A1", &worldScanColumns); err != nil {
		return nil, "", err
	}
	if err = f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return nil, "", err
	}
	if err = f.SetColWidth(sheet, "A", "B", 40); err != nil {
		return nil, "", err
	}

	row := 2
	for _, pkg := range result.Packages {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", err
		}
		values := []interface{}{
			pkg.Atom(), pkg.Description, pkg.LastVersionGentoo, pkg.LastVersionOverlay,
			pkg.LastVersionUpstream, pkg.NVersions, pkg.Outdated(),
		}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, "", err
		}
		row++
	}
	for _, unknown := range result.Unknown {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", err
		}
		values := []interface{}{unknown, "not tracked"}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, "", err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("%s.xlsx", slug.Make("euscan world scan "+time.Now().Format("2006-01-02")))
	return buf.Bytes(), fileName, nil
}
