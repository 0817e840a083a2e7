package parse

import "bytes"

var (
	dataPrefix = []byte("data = ")
	dataSuffix = []byte("];")
)

// dataBlock returns the JSON array a PNU result page assigns to `data`,
// closing bracket included. The array ends at the first "];".
func dataBlock(page []byte) ([]byte, bool) {
	_, rest, ok := bytes.Cut(page, dataPrefix)
	if !ok {
		return nil, false
	}
	end := bytes.Index(rest, dataSuffix)
	if end < 0 {
		return nil, false
	}
	return rest[:end+1], true
}
