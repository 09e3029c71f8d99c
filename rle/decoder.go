// Package rle decodes Game of Life patterns in the run-length encoded text
// format: a header line "x = <w>, y = <h>[, rule = ...]" followed by a body
// over the alphabet {digits, 'o', 'b', '$', '!'}.
package rle

import (
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedHeader is returned when the header's x or y token is not a
// non-negative integer assignment.
var ErrMalformedHeader = errors.New("malformed RLE header")

// MaxPatternCells bounds the width*height a header may declare.
const MaxPatternCells = 1 << 24

// Outcome tags the result of a decode attempt.
type Outcome int

const (
	// Decoded means a header was found and the body was decoded.
	Decoded Outcome = iota
	// NoHeader means no line starting with 'x' exists; nothing should be loaded.
	NoHeader
	// Malformed means the header could not be parsed; the load must fail.
	Malformed
)

func (o Outcome) String() string {
	switch o {
	case Decoded:
		return "decoded"
	case NoHeader:
		return "no-header"
	default:
		return "malformed"
	}
}

// Decoder turns RLE lines into a Pattern.
type Decoder struct {
	logger *log.Logger
}

// NewDecoder returns a Decoder that traces anomalies to logger. A nil logger
// discards output.
func NewDecoder(logger *log.Logger) *Decoder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Decoder{logger: logger}
}

// Decode is shorthand for NewDecoder(nil).Decode(lines).
func Decode(lines []string) (Outcome, *Pattern, error) {
	return NewDecoder(nil).Decode(lines)
}

// Decode parses lines (comment lines may still be present and are skipped)
// into a pattern. Only a malformed header produces an error; a missing header
// yields NoHeader with a nil pattern, and stray characters or out-of-range
// runs are dropped.
func (d *Decoder) Decode(lines []string) (Outcome, *Pattern, error) {
	headerIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "x") {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		d.logger.Println("RLE header not found")
		return NoHeader, nil, nil
	}

	width, height, err := ParseHeader(lines[headerIdx])
	if err != nil {
		return Malformed, nil, errors.Wrapf(err, "[Decode] line %d", headerIdx+1)
	}
	d.logger.Printf("parsed dimensions: width=%d height=%d", width, height)

	var body strings.Builder
	for i, line := range lines {
		if i == headerIdx || strings.HasPrefix(line, "#") {
			continue
		}
		body.WriteString(strings.TrimSpace(line))
	}

	pattern := NewPattern(width, height)
	d.decodeBody(body.String(), pattern)
	return Decoded, pattern, nil
}

func (d *Decoder) decodeBody(body string, pattern *Pattern) {
	var (
		count    int
		row, col int
	)
	for _, ch := range body {
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			continue
		}
		if count == 0 {
			count = 1
		}
		switch ch {
		case 'o':
			for range count {
				if !pattern.set(row, col) {
					d.logger.Printf("skipping live cell outside pattern: row=%d col=%d", row, col)
				}
				col++
			}
		case 'b':
			col += count
		case '$':
			row += count
			col = 0
		case '!':
			d.logger.Printf("terminator at row=%d", row)
			return
		default:
			d.logger.Printf("ignoring unexpected character %q", ch)
		}
		count = 0
	}
}

// ParseHeader extracts the width (x) and height (y) from an RLE header line.
// Tokens other than x and y, such as the rule, are ignored. A missing token
// leaves that dimension at 0. Each value must fit in 32 bits and the declared
// area must not exceed MaxPatternCells.
func ParseHeader(line string) (width, height int, err error) {
	for _, token := range strings.Split(line, ",") {
		token = strings.TrimSpace(token)
		switch {
		case strings.HasPrefix(token, "x"):
			if width, err = headerValue(token); err != nil {
				return 0, 0, err
			}
		case strings.HasPrefix(token, "y"):
			if height, err = headerValue(token); err != nil {
				return 0, 0, err
			}
		}
	}
	if area := int64(width) * int64(height); area > MaxPatternCells {
		return 0, 0, errors.Wrapf(ErrMalformedHeader, "pattern area %d exceeds %d cells", area, MaxPatternCells)
	}
	return width, height, nil
}

// headerValue reads the value between the first and second '=' of a token,
// so "x = 2 = 9" yields 2.
func headerValue(token string) (int, error) {
	parts := strings.Split(token, "=")
	if len(parts) < 2 {
		return 0, errors.Wrapf(ErrMalformedHeader, "missing '=' in token: %q", token)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedHeader, "token %q: %v", token, err)
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrMalformedHeader, "negative dimension in token: %q", token)
	}
	return int(n), nil
}
