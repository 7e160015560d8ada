package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [name...]",
	Short: "Print the piece catalog",
	Long: `Prints pieces with their color, their offsets from the rotation anchor
and a drawing in which the anchor cell is marked with @. With no names, all
seven pieces are printed in catalog order.

Examples:
  tetris shapes
  tetris shapes T S Z`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds, err := selectKinds(args)
		if err != nil {
			return err
		}
		printShapes(cmd.OutOrStdout(), kinds)
		return nil
	},
}

// selectKinds resolves piece names, or returns every kind for no names.
func selectKinds(names []string) ([]tetris.Kind, error) {
	if len(names) == 0 {
		return tetris.Kinds(), nil
	}
	kinds := make([]tetris.Kind, 0, len(names))
	for _, name := range names {
		k, err := tetris.ParseKind(strings.ToUpper(name))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func printShapes(w io.Writer, kinds []tetris.Kind) {
	catalog := tetris.ShapesByName()
	for _, k := range kinds {
		s := catalog[k.String()]

		offsets := make([]string, len(s.Offsets))
		for i, o := range s.Offsets {
			offsets[i] = fmt.Sprintf("(%d,%d)", o.DX, o.DY)
		}
		fmt.Fprintf(w, "%s  %-8s %s\n", s.Kind, s.Color, strings.Join(offsets, " "))
		for _, line := range drawShape(s.Offsets) {
			fmt.Fprintf(w, "     %s\n", line)
		}
		fmt.Fprintln(w)
	}
}

// drawShape draws offsets on the smallest grid that holds them and the
// anchor. Filled cells are '#', the anchor is '@' and gaps are '.'.
func drawShape(offsets []tetris.Offset) []string {
	minX, maxX, minY, maxY := 0, 0, 0, 0
	for _, o := range offsets {
		minX, maxX = min(minX, o.DX), max(maxX, o.DX)
		minY, maxY = min(minY, o.DY), max(maxY, o.DY)
	}

	grid := make([][]byte, maxY-minY+1)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", maxX-minX+1))
	}
	for _, o := range offsets {
		grid[o.DY-minY][o.DX-minX] = '#'
	}
	grid[-minY][-minX] = '@'

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}
