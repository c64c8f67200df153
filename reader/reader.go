// Package reader loads graphs from CSV edge and node files and writes them back.
//
// Edge rows are "src,dst,weight"; node rows are "id,longitude,latitude".
// Columns past the third are ignored, so labelled datasets load unchanged.
// The first row is a header unless the first byte of the file is '0', which
// lets headerless files whose first edge starts at vertex 0 load in full.
// The test runs on the raw byte, so a leading space marks a header too.
package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtsp/core"
)

var (
	// ErrMalformedRow indicates a row with too few columns or an unparsable number.
	ErrMalformedRow = errors.New("reader: malformed row")

	// ErrUnknownVertex indicates a node row for a vertex no edge created.
	ErrUnknownVertex = errors.New("reader: node references unknown vertex")
)

const minColumns = 3

// ReadEdges reads edge rows from r and connects each pair in g.
// Errors carry the 1-based line number.
func ReadEdges(r io.Reader, g *core.Graph) error {
	return readRows(r, func(line int, row []string) error {
		src, err := strconv.Atoi(row[0])
		if err != nil {
			return malformed(line, "source id", err)
		}
		dst, err := strconv.Atoi(row[1])
		if err != nil {
			return malformed(line, "destination id", err)
		}
		w, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return malformed(line, "weight", err)
		}
		if err = g.Connect(src, dst, w); err != nil {
			return malformed(line, "edge", err)
		}

		return nil
	})
}

// ReadNodes reads coordinate rows from r and attaches them to existing vertices of g.
func ReadNodes(r io.Reader, g *core.Graph) error {
	return readRows(r, func(line int, row []string) error {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return malformed(line, "id", err)
		}
		lon, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return malformed(line, "longitude", err)
		}
		lat, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return malformed(line, "latitude", err)
		}
		if err = g.SetCoords(id, lon, lat); err != nil {
			return fmt.Errorf("line %d: vertex %d: %w", line, id, ErrUnknownVertex)
		}

		return nil
	})
}

// LoadFiles builds a graph from an edge file and, when nodesPath is not
// empty, attaches the coordinates from the node file.
func LoadFiles(edgesPath, nodesPath string) (*core.Graph, error) {
	g := core.NewGraph()
	if err := readFile(edgesPath, g, ReadEdges); err != nil {
		return nil, err
	}
	if nodesPath != "" {
		if err := readFile(nodesPath, g, ReadNodes); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func readFile(path string, g *core.Graph, fn func(io.Reader, *core.Graph) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err = fn(f, g); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// readRows applies the header rule and hands every data row, trimmed and
// with at least three columns, to fn.
func readRows(r io.Reader, fn func(line int, row []string) error) error {
	br := bufio.NewReader(r)
	head, err := br.Peek(1)
	header := err != nil || head[0] != '0'

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if header {
				continue
			}
		}
		if len(row) < minColumns {
			return fmt.Errorf("line %d: %d columns, want %d: %w", line, len(row), minColumns, ErrMalformedRow)
		}
		for i := range row[:minColumns] {
			row[i] = strings.TrimSpace(row[i])
		}
		if err = fn(line, row); err != nil {
			return err
		}
	}
}

func malformed(line int, field string, err error) error {
	return fmt.Errorf("line %d: %s: %v: %w", line, field, err, ErrMalformedRow)
}
