package rle

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sim/dynarray"
)

// ReadLines collects the non-comment lines of an RLE source.
func ReadLines(r io.Reader) (*dynarray.Array[string], error) {
	lines := dynarray.New[string]()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ReadLines] failed to scan input")
	}
	return lines, nil
}

// ReadFile opens filename and returns its non-comment lines.
func ReadFile(filename string) (*dynarray.Array[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to read file: %+v", filename)
	}
	return lines, nil
}
