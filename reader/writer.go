package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvtsp/core"
)

// Header rows written by WriteEdges and WriteNodes.
var (
	EdgesHeader = []string{"origem", "destino", "distancia"}
	NodesHeader = []string{"id", "longitude", "latitude"}
)

// WriteEdges writes every undirected edge of g once (From < To), with a header.
func WriteEdges(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(EdgesHeader); err != nil {
		return fmt.Errorf("write edges header: %w", err)
	}
	for _, v := range g.Vertices() {
		for _, e := range v.Edges() {
			if e.From > e.To {
				continue
			}
			rec := []string{
				strconv.Itoa(e.From),
				strconv.Itoa(e.To),
				strconv.FormatFloat(e.Weight, 'f', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("write edge %d-%d: %w", e.From, e.To, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteNodes writes the coordinates of every vertex that has one, with a header.
func WriteNodes(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(NodesHeader); err != nil {
		return fmt.Errorf("write nodes header: %w", err)
	}
	for _, v := range g.Vertices() {
		c, ok := v.Coords()
		if !ok {
			continue
		}
		rec := []string{
			strconv.Itoa(v.ID()),
			strconv.FormatFloat(c.Longitude, 'f', -1, 64),
			strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write node %d: %w", v.ID(), err)
		}
	}
	cw.Flush()

	return cw.Error()
}
