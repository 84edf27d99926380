package report

import (
	"encoding/csv"
	"os"

	"github.com/cockroachdb/errors"

	"sortbench/bench"
)

// WriteTableCSV 평균 표를 CSV 로
func WriteTableCSV(path string, t bench.Table, cols Columns) error {
	return writeCSV(path, cols.TableHeader(t), cols.TableRecords(t))
}

// WriteSeriesCSV 한계점 표를 CSV 로
func WriteSeriesCSV(path string, s bench.Series, cols Columns) error {
	return writeCSV(path, cols.SeriesHeader(), cols.SeriesRecords(s))
}

func writeCSV(path string, header []string, records [][]interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	for _, record := range records {
		row := make([]string, len(record))
		for i, v := range record {
			row[i] = formatValue(v)
		}
		if err := w.Write(row); err != nil {
			file.Close()
			return errors.Wrapf(err, "write %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return file.Close()
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return records, nil
}
