package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtsp/config"
	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/tsp"
)

const prompt = "Press one of the options: "

var errEmptyCatalogue = errors.New("catalogue has no datasets")

var mainMenu = []string{
	"Print graph contents",
	"Cost with the Backtracking Algorithm",
	"Cost with the Triangular Approximation Heuristic",
	"Cost with Other Heuristics",
	"Choose a different graph",
	"Exit",
}

// menuSession is one interactive run over the input stream.
type menuSession struct {
	a  *app
	sc *bufio.Scanner
}

// runMenu asks for a dataset, then loops over the main menu until Exit or
// end of input.
func (a *app) runMenu() error {
	s := &menuSession{a: a, sc: bufio.NewScanner(a.in)}

	g, ds, err := s.chooseGraph()
	if err != nil {
		return endOfInput(err)
	}
	for {
		a.pr.Menu("MAIN MENU", mainMenu)
		choice, ok := s.ask(len(mainMenu))
		if !ok {
			return nil
		}

		err = nil
		switch choice {
		case 1:
			a.pr.Content(g)
		case 2:
			err = a.solve(g, ds, tsp.BranchAndBound, "")
		case 3:
			err = a.solve(g, ds, tsp.Triangular, "")
		case 4:
			err = a.solve(g, ds, tsp.Heuristic, "")
		case 5:
			if g, ds, err = s.chooseGraph(); err != nil {
				return endOfInput(err)
			}
		case 6:
			return nil
		}
		if err != nil {
			a.pr.Failure("", err)
		}
		fmt.Fprintln(a.out)
	}
}

// chooseGraph walks the group and dataset menus until a dataset loads.
// It returns io.EOF at end of input.
func (s *menuSession) chooseGraph() (*core.Graph, config.Dataset, error) {
	groups := s.a.cfg.Groups()
	if len(groups) == 0 {
		return nil, config.Dataset{}, errEmptyCatalogue
	}
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = "Read " + g + " graph"
	}

	for {
		s.a.pr.Menu("", labels)
		gi, ok := s.ask(len(groups))
		if !ok {
			return nil, config.Dataset{}, io.EOF
		}

		sets := s.a.cfg.InGroup(groups[gi-1])
		if len(sets) == 0 {
			return nil, config.Dataset{}, fmt.Errorf("group %q: %w", groups[gi-1], errEmptyCatalogue)
		}
		items := make([]string, len(sets))
		for i, d := range sets {
			items[i] = d.Label()
		}
		s.a.pr.Menu("", items)
		di, ok := s.ask(len(sets))
		if !ok {
			return nil, config.Dataset{}, io.EOF
		}

		ds := s.a.cfg.Resolve(sets[di-1])
		g, err := s.a.load(ds)
		if err != nil {
			s.a.pr.Failure("", err)
			continue
		}

		return g, ds, nil
	}
}

// endOfInput maps io.EOF to a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// ask prompts until a number in 1..n is entered. ok is false at end of input.
func (s *menuSession) ask(n int) (int, bool) {
	for {
		fmt.Fprint(s.a.out, prompt)
		if !s.sc.Scan() {
			fmt.Fprintln(s.a.out)
			return 0, false
		}
		fmt.Fprintln(s.a.out)

		v, err := strconv.Atoi(strings.TrimSpace(s.sc.Text()))
		if err == nil && v >= 1 && v <= n {
			return v, true
		}
		fmt.Fprintln(s.a.out, "Invalid option.")
	}
}
