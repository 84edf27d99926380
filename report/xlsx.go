package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"sortbench/bench"
)

// 엑셀 시트 이름 최대 길이
const maxSheetName = 31

// Sheet 워크북의 시트 하나
type Sheet struct {
	Name    string
	Header  []string
	Records [][]interface{}
}

// WriteTableWorkbook 평균 표를 카테고리 이름의 시트 하나로 저장
func WriteTableWorkbook(path string, t bench.Table, cols Columns) error {
	return WriteWorkbook(path, []Sheet{{
		Name:    t.Category,
		Header:  cols.TableHeader(t),
		Records: cols.TableRecords(t),
	}})
}

// WriteSeriesWorkbook 알고리즘마다 시트 하나씩 한계점 표를 저장
func WriteSeriesWorkbook(path string, series []bench.Series, cols Columns) error {
	sheets := make([]Sheet, 0, len(series))
	for _, s := range series {
		sheets = append(sheets, Sheet{
			Name:    s.Display,
			Header:  cols.SeriesHeader(),
			Records: cols.SeriesRecords(s),
		})
	}
	return WriteWorkbook(path, sheets)
}

// WriteWorkbook 시트들을 순서대로 .xlsx 파일에 쓴다
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return errors.Newf("%s: no sheets", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool, len(sheets))
	for i, sheet := range sheets {
		name := uniqueSheetName(sheetName(sheet.Name, i), used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return errors.Wrapf(err, "sheet %s", name)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return errors.Wrapf(err, "sheet %s", name)
		}

		header := make([]interface{}, len(sheet.Header))
		for j, h := range sheet.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return errors.Wrapf(err, "sheet %s", name)
		}
		for j, record := range sheet.Records {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			row := record
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return errors.Wrapf(err, "sheet %s", name)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

func sheetName(name string, i int) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = fmt.Sprintf("Sheet%d", i+1)
	}
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}

// uniqueSheetName 엑셀 시트 이름은 대소문자를 구분하지 않으므로 겹치면 " (2)" 처럼 번호를 붙인다
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := []rune(name)
		if len(base)+len([]rune(suffix)) > maxSheetName {
			base = base[:maxSheetName-len([]rune(suffix))]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

// ReadTable .csv 또는 .xlsx(첫 시트) 표를 헤더 포함 문자열로 읽는다
func ReadTable(path string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xlsm" {
		return readCSV(path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Newf("%s: no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return rows, nil
}
