// +build gofuzz

package fuzz

import (
	"github.com/daaku/xmlfuzz/internal/xmldoc"
)

func Fuzz(b []byte) int {
	if xmldoc.Parse(b) != nil {
		return 0
	}
	return 1
}
