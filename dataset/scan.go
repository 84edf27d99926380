package dataset

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Scan root 의 하위 디렉터리마다 카테고리로 보고, 그 안의 파일들을 인덱스 항목으로 만든다.
// 크기는 <name>-input-<size>.txt 형식의 파일 이름에서 얻고, 형식이 다르면 0 이다.
func Scan(root string) ([]Entry, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", root)
	}

	var entries []Entry
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		category := dir.Name()
		files, err := os.ReadDir(filepath.Join(root, category))
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", category)
		}
		for _, file := range files {
			if !file.Type().IsRegular() {
				continue
			}
			entries = append(entries, Entry{
				Path:     filepath.Join(root, category, file.Name()),
				Size:     sizeFromName(file.Name()),
				Category: category,
			})
		}
	}
	return entries, nil
}

func sizeFromName(name string) int {
	_, after, ok := strings.Cut(name, "-input-")
	if !ok {
		return 0
	}
	size, err := strconv.Atoi(strings.TrimSuffix(after, filepath.Ext(after)))
	if err != nil || size < 0 {
		return 0
	}
	return size
}
