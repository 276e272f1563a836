package t2048

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/parlor/internal/config"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/storage"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(mode Mode, seed int64) *Game {
	g := NewWithConfig(mode, config.DefaultT2048Config())
	g.Reset(testRuntime(seed))
	return g
}

// setBoard replaces the board and restarts the history from it.
func setBoard(g *Game, b Board, score int) {
	g.board = b
	g.score = score
	g.status = g.engine.Classify(b)
	g.history.Clear()
	g.history.Push(Snapshot{Board: b, Score: score})
}

func sum(b Board) int {
	total := 0
	for r := range BoardSize {
		for c := range BoardSize {
			total += b[r][c]
		}
	}
	return total
}

func count(b Board) int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// lockedBoard has no empty cell and no equal orthogonal neighbours.
func lockedBoard() Board {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			if (r+c)%2 == 0 {
				b[r][c] = 2
			} else {
				b[r][c] = 4
			}
		}
	}
	return b
}

func randomBoard(rng *rand.Rand) Board {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			if rng.Intn(3) == 0 {
				continue
			}
			b[r][c] = 1 << (1 + rng.Intn(5))
		}
	}
	return b
}

func TestResolveLine(t *testing.T) {
	tests := []struct {
		name   string
		input  [4]int
		want   [4]int
		merges []int
	}{
		{"simple merge", [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}, []int{4}},
		{"merge with trailing tile", [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, []int{4}},
		{"double merge", [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, []int{4, 4}},
		{"merged tile does not merge again", [4]int{2, 2, 4, 0}, [4]int{4, 4, 0, 0}, []int{4}},
		{"no cascade", [4]int{4, 4, 8, 0}, [4]int{8, 8, 0, 0}, []int{8}},
		{"no merge possible", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, nil},
		{"slide with gap", [4]int{0, 0, 2, 2}, [4]int{4, 0, 0, 0}, []int{4}},
		{"merge across gaps", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, []int{4}},
		{"leftmost pair first", [4]int{8, 0, 8, 8}, [4]int{16, 8, 0, 0}, []int{16}},
		{"empty line", [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}, nil},
		{"single tile", [4]int{0, 4, 0, 0}, [4]int{4, 0, 0, 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, merges := resolveLine(tt.input)
			if got != tt.want {
				t.Errorf("resolveLine(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if len(merges) != len(tt.merges) {
				t.Fatalf("resolveLine(%v) merges = %v, want %v", tt.input, merges, tt.merges)
			}
			for i := range merges {
				if merges[i] != tt.merges[i] {
					t.Errorf("resolveLine(%v) merges = %v, want %v", tt.input, merges, tt.merges)
				}
			}
		})
	}
}

func TestResolveMoveDirections(t *testing.T) {
	e := NewEngine(DefaultTarget, 0.1, rand.New(rand.NewSource(1)))

	row := Board{{2, 2, 2, 2}}
	col := Transpose(row)

	tests := []struct {
		name  string
		board Board
		dir   Direction
		want  Board
	}{
		{"left", row, DirLeft, Board{{4, 4, 0, 0}}},
		{"right", row, DirRight, Board{{0, 0, 4, 4}}},
		{"up", col, DirUp, Transpose(Board{{4, 4, 0, 0}})},
		{"down", col, DirDown, Transpose(Board{{0, 0, 4, 4}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.ResolveMove(tt.board, 10, tt.dir)
			if res.Board != tt.want {
				t.Errorf("board = %v, want %v", res.Board, tt.want)
			}
			if !res.Moved {
				t.Error("Moved = false, want true")
			}
			if res.Gained != 8 || res.Score != 18 {
				t.Errorf("Gained=%d Score=%d, want 8 and 18", res.Gained, res.Score)
			}
			if res.Status != StatusInProgress {
				t.Errorf("Status = %v, want in_progress", res.Status)
			}
		})
	}
}

func TestResolveMoveNoChange(t *testing.T) {
	e := NewEngine(DefaultTarget, 0.1, rand.New(rand.NewSource(1)))
	board := Board{{2, 4, 8, 16}}

	res := e.ResolveMove(board, 50, DirLeft)
	if res.Moved {
		t.Error("Moved = true for a blocked row")
	}
	if res.Board != board || res.Score != 50 || res.Gained != 0 || len(res.Merges) != 0 {
		t.Errorf("no-op move changed state: %+v", res)
	}
}

func TestResolveMoveProperties(t *testing.T) {
	e := NewEngine(DefaultTarget, 0.1, rand.New(rand.NewSource(1)))
	rng := rand.New(rand.NewSource(7))

	for i := range 200 {
		board := randomBoard(rng)
		for _, dir := range Directions {
			res := e.ResolveMove(board, 0, dir)

			if sum(res.Board) != sum(board) {
				t.Fatalf("case %d %v: tile sum %d -> %d", i, dir, sum(board), sum(res.Board))
			}
			if count(res.Board) != count(board)-len(res.Merges) {
				t.Fatalf("case %d %v: %d tiles, %d merges, %d left", i, dir, count(board), len(res.Merges), count(res.Board))
			}

			gained := 0
			for _, m := range res.Merges {
				gained += m
			}
			if res.Score != gained || res.Gained != gained {
				t.Fatalf("case %d %v: score %d, merges sum %d", i, dir, res.Score, gained)
			}
			if !res.Moved && res.Board != board {
				t.Fatalf("case %d %v: board changed without Moved", i, dir)
			}
		}

		up := e.ResolveMove(board, 0, DirUp)
		left := e.ResolveMove(Transpose(board), 0, DirLeft)
		if Transpose(up.Board) != left.Board {
			t.Fatalf("case %d: up and transposed left disagree", i)
		}
	}
}

func TestClassify(t *testing.T) {
	classic := NewEngine(DefaultTarget, 0.1, rand.New(rand.NewSource(1)))
	endless := NewEngine(0, 0.1, rand.New(rand.NewSource(1)))

	won := Board{{2048, 2, 0, 0}}
	if got := classic.Classify(won); got != StatusWon {
		t.Errorf("Classify(2048 tile) = %v, want won", got)
	}
	if got := endless.Classify(won); got != StatusInProgress {
		t.Errorf("endless Classify(2048 tile) = %v, want in_progress", got)
	}

	locked := lockedBoard()
	if got := classic.Classify(locked); got != StatusLost {
		t.Errorf("Classify(locked) = %v, want lost", got)
	}
	for _, dir := range Directions {
		if res := classic.ResolveMove(locked, 0, dir); res.Moved {
			t.Errorf("locked board moved %v", dir)
		}
	}

	full := locked
	full[0][1] = 2
	if got := classic.Classify(full); got != StatusInProgress {
		t.Errorf("Classify(full with merge) = %v, want in_progress", got)
	}
}

func TestSpawnTile(t *testing.T) {
	e := NewEngine(DefaultTarget, 0.1, rand.New(rand.NewSource(3)))

	board := lockedBoard()
	board[2][1] = 0

	next, pos, err := e.SpawnTile(board, 0)
	if err != nil {
		t.Fatalf("SpawnTile() error: %v", err)
	}
	if pos != (Pos{Row: 2, Col: 1}) {
		t.Errorf("spawned at %v, want the only empty cell", pos)
	}
	if v := next[2][1]; v != 2 && v != 4 {
		t.Errorf("spawned value %d, want 2 or 4", v)
	}

	if _, _, err := e.SpawnTile(next, 0); !errors.Is(err, ErrBoardFull) {
		t.Errorf("SpawnTile(full) error = %v, want ErrBoardFull", err)
	}
}

func TestSpawnTileValues(t *testing.T) {
	tests := []struct {
		name   string
		p4     float64
		forced int
		want   int
	}{
		{"never four", 0, 0, 2},
		{"always four", 1, 0, 4},
		{"forced", 1, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultTarget, tt.p4, rand.New(rand.NewSource(5)))
			for range 20 {
				b, pos, err := e.SpawnTile(Board{}, tt.forced)
				if err != nil {
					t.Fatal(err)
				}
				if b[pos.Row][pos.Col] != tt.want {
					t.Fatalf("spawned %d, want %d", b[pos.Row][pos.Col], tt.want)
				}
			}
		})
	}
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(3)
	for i := range 5 {
		h.Push(Snapshot{Score: i})
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	for _, want := range []int{3, 2} {
		s, ok := h.Undo()
		if !ok || s.Score != want {
			t.Fatalf("Undo() = %d, %v, want %d", s.Score, ok, want)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo() with one snapshot left should fail")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d after failed undo, want 1", h.Len())
	}
}

func TestResetStartsWithTwoTiles(t *testing.T) {
	g := newTestGame(ModeClassic, 42)

	if n := count(g.Board()); n != 2 {
		t.Errorf("new board has %d tiles, want 2", n)
	}
	if sum(g.Board()) != 4 {
		t.Errorf("new board sum = %d, want two 2-tiles", sum(g.Board()))
	}
	if g.Score() != 0 || g.Status() != StatusInProgress {
		t.Errorf("score=%d status=%v after reset", g.Score(), g.Status())
	}
	if g.CanUndo() {
		t.Error("fresh game should have nothing to undo")
	}
}

func TestDeterministicGame(t *testing.T) {
	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUndo, core.ActionDown}

	play := func() Summary {
		g := newTestGame(ModeClassic, 12345)
		for _, a := range moves {
			in := core.NewInputFrame()
			in.Set(a)
			g.Step(in)
		}
		return g.Summary()
	}

	if a, b := play(), play(); a != b {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestMoveEvents(t *testing.T) {
	g := newTestGame(ModeClassic, 1)
	setBoard(g, Board{{2, 2, 4, 4}}, 0)

	events := g.Move(DirLeft)
	want := []core.Event{
		{Kind: core.EventMerge, Value: 4},
		{Kind: core.EventMerge, Value: 8},
		{Kind: core.EventScore, Value: 12},
		{Kind: core.EventMaxTile, Value: 8},
	}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, events[i], want[i])
		}
	}
	if count(g.Board()) != 3 {
		t.Errorf("board has %d tiles after move, want 2 merged plus 1 spawned", count(g.Board()))
	}
	if !g.CanUndo() {
		t.Error("a move should be undoable")
	}
}

func TestBlockedMoveIsIgnored(t *testing.T) {
	g := newTestGame(ModeClassic, 1)
	setBoard(g, Board{{2, 4, 8, 16}}, 0)

	if events := g.Move(DirLeft); events != nil {
		t.Errorf("blocked move produced events %v", events)
	}
	if count(g.Board()) != 4 {
		t.Error("blocked move must not spawn")
	}
	if g.CanUndo() {
		t.Error("blocked move must not be recorded")
	}
}

func TestWinLatchedOnce(t *testing.T) {
	g := newTestGame(ModeClassic, 1)
	start := Board{{1024, 1024}}
	setBoard(g, start, 0)

	wins := func(events []core.Event) int {
		n := 0
		for _, ev := range events {
			if ev.Kind == core.EventWin {
				n++
			}
		}
		return n
	}

	if n := wins(g.Move(DirLeft)); n != 1 {
		t.Fatalf("first 2048 reported %d wins, want 1", n)
	}
	if g.Status() != StatusWon || !g.State().GameOver {
		t.Fatalf("status = %v, want won", g.Status())
	}
	if events := g.Move(DirRight); events != nil {
		t.Error("moves after a win should be ignored")
	}

	if !g.Undo() {
		t.Fatal("Undo() after win failed")
	}
	if g.Board() != start || g.Status() != StatusInProgress {
		t.Fatalf("undo restored %v (%v)", g.Board(), g.Status())
	}

	if n := wins(g.Move(DirLeft)); n != 0 {
		t.Errorf("second 2048 in the same game reported %d wins, want 0", n)
	}
	if g.Status() != StatusWon {
		t.Errorf("status = %v, want won", g.Status())
	}
}

func TestEndlessNeverWins(t *testing.T) {
	g := newTestGame(ModeEndless, 1)
	setBoard(g, Board{{1024, 1024}}, 0)

	for _, ev := range g.Move(DirLeft) {
		if ev.Kind == core.EventWin {
			t.Fatal("endless mode reported a win")
		}
	}
	if g.Status() != StatusInProgress {
		t.Errorf("status = %v, want in_progress", g.Status())
	}
	if g.ID() != "2048_endless" {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestLossAndUndo(t *testing.T) {
	g := newTestGame(ModeClassic, 1)
	start := Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{4, 8, 16, 32},
		{64, 128, 256, 512},
	}
	setBoard(g, start, 100)

	events := g.Move(DirLeft)
	if g.Status() != StatusLost {
		t.Fatalf("status = %v, want lost", g.Status())
	}
	last := events[len(events)-1]
	if last != (core.Event{Kind: core.EventLoss, Value: 104}) {
		t.Errorf("last event = %v, want loss at 104", last)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionUndo)
	res := g.Step(in)
	if res.State.GameOver || g.Board() != start || g.Score() != 100 {
		t.Errorf("undo from loss: board=%v score=%d gameOver=%v", g.Board(), g.Score(), res.State.GameOver)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(ModeClassic, 1)
	setBoard(g, Board{{2, 2}}, 0)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if res := g.Step(in); !res.State.Paused {
		t.Fatal("pause not applied")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.Board() != (Board{{2, 2}}) {
		t.Error("move applied while paused")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewWithConfig(ModeClassic, config.DefaultT2048Config())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("game should hold while the window is too small")
	}
	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("game should resume after a resize")
	}
}

func TestSaveRestore(t *testing.T) {
	store := storage.NewMemory()

	g := newTestGame(ModeClassic, 9)
	setBoard(g, Board{{2, 2, 4, 4}}, 40)
	g.Move(DirLeft)
	if err := g.Save(store); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	restored := newTestGame(ModeClassic, 10)
	if !restored.Restore(store) {
		t.Fatal("Restore() = false")
	}
	if restored.Board() != g.Board() || restored.Score() != g.Score() {
		t.Errorf("restored %v/%d, want %v/%d", restored.Board(), restored.Score(), g.Board(), g.Score())
	}
	if !restored.Undo() || restored.Board() != (Board{{2, 2, 4, 4}}) {
		t.Errorf("restored history did not undo to the saved start, got %v", restored.Board())
	}

	other := newTestGame(ModeEndless, 9)
	if other.Restore(store) {
		t.Error("endless mode should not read classic keys")
	}
}

func TestRestoreRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		board string
		score string
	}{
		{"not json", "{", "0"},
		{"wrong shape", "[[2,2],[0,0]]", "0"},
		{"not a power of two", "[[3,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]", "0"},
		{"negative score", "[[2,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			store.Set("2048_board", tt.board)
			store.Set("2048_score", tt.score)

			g := newTestGame(ModeClassic, 4)
			before := g.Board()
			if g.Restore(store) {
				t.Fatal("Restore() accepted malformed data")
			}
			if g.Board() != before {
				t.Error("failed restore changed the board")
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(ModeClassic, 1)
	setBoard(g, Board{{2048, 2}}, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "2048", "YOU WIN!"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestAchievementCatalog(t *testing.T) {
	defs := Achievements()
	if len(defs) != 7 {
		t.Fatalf("catalog has %d entries, want 7", len(defs))
	}
	seen := make(map[string]bool)
	for _, d := range defs {
		if seen[d.ID] {
			t.Errorf("duplicate id %q", d.ID)
		}
		seen[d.ID] = true
	}
	for _, id := range []string{"tile_128", "tile_2048", "score_5000", "first_win", "sound_enthusiast"} {
		if !seen[id] {
			t.Errorf("missing %q", id)
		}
	}
}
