package dataset

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ErrMalformed 숫자로 해석할 수 없는 값 또는 행
var ErrMalformed = errors.New("malformed value")

// Decode 공백 또는 쉼표로 구분된 숫자들을 읽는다
func Decode(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(scanFields)

	var data []float64
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) {
			return nil, errors.Wrapf(ErrMalformed, "%q (index %d)", tok, len(data))
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	return data, nil
}

// ReadFile 파일 전체를 수열로 읽는다
func ReadFile(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := Decode(bufio.NewReaderSize(file, 64*1024))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// Encode 한 줄에 하나씩 값을 쓴다
func Encode(w io.Writer, data []float64) error {
	writer := bufio.NewWriterSize(w, 64*1024)
	buf := make([]byte, 0, 32)
	for _, v := range data {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// WriteFile data 를 path 에 쓴다
func WriteFile(path string, data []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, data); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return file.Close()
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanFields bufio.ScanWords 와 같되 쉼표도 구분자로 취급
func scanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
	}
	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
