package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Apply(core.Action) {}
func (g *stubGame) Step() core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("List() should include stub-a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() should be false for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
