package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrMissingColumn 인덱스 헤더에 필요한 컬럼이 없음
var ErrMissingColumn = errors.New("missing index column")

// 인덱스 컬럼 이름
const (
	ColumnPath     = "Path"
	ColumnSize     = "Size"
	ColumnCategory = "Category"
)

// Entry 인덱스의 한 행
type Entry struct {
	Path string
	// Size 파일 이름에서 얻은 크기. 알 수 없으면 0
	Size     int
	Category string
}

// ReadIndex .csv 또는 .xlsx 인덱스를 읽는다. Path 가 비어 있는 행은 경고 후 건너뛴다.
func ReadIndex(path string, lg *zap.Logger) ([]Entry, error) {
	if lg == nil {
		lg = zap.NewNop()
	}

	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.Wrapf(ErrMissingColumn, "%s: empty index", path)
	}

	header := make(map[string]int)
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	cols := make([]int, 3)
	for i, name := range []string{ColumnPath, ColumnSize, ColumnCategory} {
		idx, ok := header[name]
		if !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s: %s", path, name)
		}
		cols[i] = idx
	}

	var entries []Entry
	for line, record := range records[1:] {
		field := func(i int) string {
			if cols[i] < len(record) {
				return strings.TrimSpace(record[cols[i]])
			}
			return ""
		}

		entry := Entry{Path: field(0), Category: field(2)}
		if entry.Path == "" {
			lg.Warn("인덱스 행을 건너뜀", zap.String("index", path), zap.Int("row", line+2),
				zap.Error(errors.Wrap(ErrMalformed, "empty path")))
			continue
		}
		if size, err := strconv.Atoi(field(1)); err == nil && size > 0 {
			entry.Size = size
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteIndex 확장자(.csv/.xlsx)에 맞춰 인덱스를 쓴다
func WriteIndex(path string, entries []Entry) error {
	records := [][]string{{ColumnPath, ColumnSize, ColumnCategory}}
	for _, e := range entries {
		size := "Unknown"
		if e.Size > 0 {
			size = strconv.Itoa(e.Size)
		}
		records = append(records, []string{e.Path, size, e.Category})
	}

	if isWorkbook(path) {
		return writeWorkbookRecords(path, records)
	}
	return writeCSVRecords(path, records)
}

func isWorkbook(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".xlsx" || ext == ".xlsm"
}

func readRecords(path string) ([][]string, error) {
	if isWorkbook(path) {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		return rows, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return records, nil
}

func writeCSVRecords(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return file.Close()
}

func writeWorkbookRecords(path string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
	}
	return f.SaveAs(path)
}
