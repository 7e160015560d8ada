package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestDrawShape(t *testing.T) {
	tests := []struct {
		kind tetris.Kind
		want []string
	}{
		{tetris.KindI, []string{"#@##"}},
		{tetris.KindT, []string{".#.", "#@#"}},
		{tetris.KindO, []string{"##", "@#"}},
		{tetris.KindJ, []string{"#..", "#@#"}},
		{tetris.KindL, []string{"..#", "#@#"}},
		{tetris.KindS, []string{".##", "#@."}},
		{tetris.KindZ, []string{"##.", ".@#"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := drawShape(tt.kind.Offsets())
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("drawShape(%s) =\n%s\nwant\n%s", tt.kind, strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestPrintShapes(t *testing.T) {
	var buf bytes.Buffer
	printShapes(&buf, tetris.Kinds())

	out := buf.String()
	for _, want := range []string{"I  red", "T  lime", "Z  orange", "(-1,0) (0,0) (1,0) (2,0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSelectKinds(t *testing.T) {
	kinds, err := selectKinds(nil)
	if err != nil || len(kinds) != 7 {
		t.Fatalf("selectKinds(nil) = %v, %v; want all 7 kinds", kinds, err)
	}

	kinds, err = selectKinds([]string{"t", "Z"})
	if err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 2 || kinds[0] != tetris.KindT || kinds[1] != tetris.KindZ {
		t.Errorf("selectKinds(t, Z) = %v", kinds)
	}

	if _, err := selectKinds([]string{"X"}); err == nil {
		t.Error("expected error for unknown piece")
	}
}

func TestPrintShapesSubset(t *testing.T) {
	var buf bytes.Buffer
	printShapes(&buf, []tetris.Kind{tetris.KindO})

	out := buf.String()
	if !strings.HasPrefix(out, "O  blue") {
		t.Errorf("output = %q, want O entry first", out)
	}
	if strings.Contains(out, "I  red") {
		t.Error("unselected piece printed")
	}
}
