package report

import (
	"bufio"
	"encoding/json"
	"os"
)

// WriteJSON v 를 들여쓰기한 JSON 으로 저장
func WriteJSON(path string, v interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	// 버퍼링된 쓰기
	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
