// Command sortbench 정렬 알고리즘 벤치마크 도구
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
