package imagedata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultInputFile = "automata-image-data.txt"

	// MaxCanvasSize bounds the canvas side so size*size RGBA cells always fit in memory and in an int.
	MaxCanvasSize uint = 1 << 14

	headerTokens = 2
	recordTokens = 5
)

// Parse reads the canvas size and pixel list from fileName. The file is closed before returning.
func Parse(fileName string) (uint, []Pixel, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return 0, nil, &ParseError{Err: ErrFileNotFound, File: fileName, Reason: err.Error()}
	}
	defer file.Close()

	return ParseReader(file, fileName)
}

// ParseReader parses the image data format from r. The first line holds a label followed by the canvas size,
// every following line holds "row column c0 c1 c2". Tokens past the fifth are ignored.
func ParseReader(r io.Reader, name string) (uint, []Pixel, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, nil, &ParseError{Err: ErrMalformedHeader, File: name, Line: 1, Reason: err.Error()}
		}
		return 0, nil, &ParseError{Err: ErrMalformedHeader, File: name, Line: 1, Reason: "file is empty"}
	}
	size, err := parseHeader(scanner.Text())
	if err != nil {
		return 0, nil, &ParseError{Err: ErrMalformedHeader, File: name, Line: 1, Reason: err.Error()}
	}

	pixels := make([]Pixel, 0)
	line := 1
	for scanner.Scan() {
		line++
		pixel, err := parseRecord(scanner.Text())
		if err != nil {
			return 0, nil, &ParseError{Err: ErrMalformedRecord, File: name, Line: line, Reason: err.Error()}
		}
		pixel.Line = line
		pixels = append(pixels, pixel)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, &ParseError{Err: ErrMalformedRecord, File: name, Line: line + 1, Reason: err.Error()}
	}

	return size, pixels, nil
}

func parseHeader(text string) (uint, error) {
	fields := strings.Fields(text)
	if len(fields) < headerTokens {
		return 0, fmt.Errorf("expected at least %d tokens, found %d", headerTokens, len(fields))
	}
	size, err := strconv.ParseUint(fields[1], 10, 0)
	if err != nil {
		return 0, fmt.Errorf("size %q is not a non-negative integer", fields[1])
	}
	if size > uint64(MaxCanvasSize) {
		return 0, fmt.Errorf("size %d exceeds the maximum of %d", size, MaxCanvasSize)
	}
	return uint(size), nil
}

func parseRecord(text string) (Pixel, error) {
	fields := strings.Fields(text)
	if len(fields) < recordTokens {
		return Pixel{}, fmt.Errorf("expected at least %d tokens, found %d", recordTokens, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Pixel{}, fmt.Errorf("row %q is not an integer", fields[0])
	}
	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return Pixel{}, fmt.Errorf("column %q is not an integer", fields[1])
	}

	var channels [3]uint8
	for i := range channels {
		value, err := strconv.ParseUint(fields[2+i], 10, 8)
		if err != nil {
			return Pixel{}, fmt.Errorf("channel %d value %q is not an integer in [0, 255]", i, fields[2+i])
		}
		channels[i] = uint8(value)
	}

	return Pixel{
		Color:  Color{C0: channels[0], C1: channels[1], C2: channels[2]},
		Column: column,
		Row:    row,
	}, nil
}
