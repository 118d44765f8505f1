// +build gofuzz

package fuzz

import (
	"bytes"

	"github.com/daaku/xmlfuzz/internal/xmllex"
)

func Fuzz(b []byte) int {
	_, _ = xmllex.Extract(bytes.NewReader(b))
	return 0
}
