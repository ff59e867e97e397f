package registry

import (
	"testing"

	"github.com/amirjavarsineh/WARMUP/internal/core"
)

// stubGame is the minimal Game used to exercise the registry itself.
type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string    { return s.id }
func (s *stubGame) Title() string { return s.title }

func (s *stubGame) Reset(core.RuntimeConfig) {}

func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }

func (s *stubGame) Render(*core.Screen) {}

func (s *stubGame) State() core.GameState { return core.GameState{} }

func register(id, title string) {
	Register(id, func() Game {
		return &stubGame{id: id, title: title}
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register("zz-create", "Create Me")

	game, err := Create("zz-create")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if game.ID() != "zz-create" || game.Title() != "Create Me" {
		t.Errorf("created game = %q/%q", game.ID(), game.Title())
	}

	// Each Create returns a fresh instance
	other, err := Create("zz-create")
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if game == other {
		t.Error("Create should build a new instance every call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("never-registered"); err == nil {
		t.Fatal("Create with an unknown ID should error")
	}
}

func TestExists(t *testing.T) {
	register("zz-exists", "Exists")

	if !Exists("zz-exists") {
		t.Error("Exists should report a registered game")
	}
	if Exists("never-registered") {
		t.Error("Exists should reject an unknown ID")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	register("zz-list-b", "Second")
	register("zz-list-a", "First")

	var got []GameInfo
	for _, info := range List() {
		if info.ID == "zz-list-a" || info.ID == "zz-list-b" {
			got = append(got, info)
		}
	}

	if len(got) != 2 {
		t.Fatalf("List returned %d matching entries, want 2", len(got))
	}
	if got[0].ID != "zz-list-a" || got[0].Title != "First" {
		t.Errorf("first entry = %+v, want zz-list-a/First", got[0])
	}
	if got[1].ID != "zz-list-b" || got[1].Title != "Second" {
		t.Errorf("second entry = %+v, want zz-list-b/Second", got[1])
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	register("zz-dup", "Once")

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	register("zz-dup", "Twice")
}
