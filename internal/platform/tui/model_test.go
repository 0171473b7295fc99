package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-stg/internal/audio/mocks"
	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/games/stg"
	"github.com/vovakirdan/tui-stg/internal/storage"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	return cfg
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestModel builds a model around a fresh shooter and runs Init.
func newTestModel(t *testing.T, store *storage.Store, opts Options) (Model, *stg.Game) {
	t.Helper()
	g := stg.New()
	m := NewModel(g, store, testConfig(), opts)
	m.Init()
	return m, g
}

// tick sends n ticks spaced exactly one step apart.
func tick(m Model, start time.Time, n int) (Model, time.Time) {
	step := stepDuration(m.config.TickRate)
	now := start
	for range n {
		next, _ := m.Update(TickMsg(now))
		m = next.(Model)
		now = now.Add(step)
	}
	return m, now
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"w", core.ActionUp},
		{"z", core.ActionFire},
		{" ", core.ActionFire},
		{"c", core.ActionToggleDebug},
		{"[", core.ActionDropRateDown},
		{"]", core.ActionDropRateUp},
		{"b", core.ActionForceBoss},
		{"m", core.ActionUseInvincible},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
		{"ctrl+s", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.Action(keyMsg(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys(3)
	h.Press(core.ActionLeft)

	for i := range 3 {
		f := core.NewInputFrame()
		h.Apply(&f)
		if !f.Has(core.ActionLeft) {
			t.Fatalf("frame %d: Left released early", i)
		}
	}

	f := core.NewInputFrame()
	h.Apply(&f)
	if f.Has(core.ActionLeft) {
		t.Error("Left still held after the hold window")
	}

	// A repeat inside the window extends the hold
	h.Press(core.ActionFire)
	h.Apply(&f)
	h.Press(core.ActionFire)
	for range 3 {
		f = core.NewInputFrame()
		h.Apply(&f)
	}
	if !f.Has(core.ActionFire) {
		t.Error("repeat did not refresh the hold")
	}

	h.Release()
	f = core.NewInputFrame()
	h.Apply(&f)
	if f.Has(core.ActionFire) {
		t.Error("Release() kept a hold")
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(30)
	t0 := time.Unix(100, 0)

	if n := c.Advance(t0); n != 1 {
		t.Errorf("first Advance() = %d, expected 1", n)
	}
	if n := c.Advance(t0.Add(c.step / 2)); n != 0 {
		t.Errorf("Advance() after half a step = %d, expected 0", n)
	}
	if n := c.Advance(t0.Add(c.step)); n != 1 {
		t.Errorf("Advance() completing the step = %d, expected 1", n)
	}
	if n := c.Advance(t0.Add(c.step * 4)); n != 3 {
		t.Errorf("Advance() after 3 steps = %d, expected 3", n)
	}

	// A long stall runs the catch-up cap and drops the rest
	if n := c.Advance(t0.Add(c.step * 40)); n != maxCatchUp {
		t.Errorf("Advance() after stall = %d, expected %d", n, maxCatchUp)
	}
	if n := c.Advance(t0.Add(c.step * 40)); n != 0 {
		t.Errorf("Advance() with no time passed = %d, expected 0", n)
	}
	if n := c.Advance(t0); n != 0 {
		t.Errorf("Advance() going backwards = %d, expected 0", n)
	}
}

func TestModelHeldMovement(t *testing.T) {
	isolate(t)
	m, g := newTestModel(t, nil, Options{HoldFrames: 4})
	x := g.Session().Player().X

	next, _ := m.Update(keyMsg("left"))
	m = next.(Model)
	m, _ = tick(m, time.Unix(100, 0), 6)

	moved := x - g.Session().Player().X
	if want := 4 * stg.PlayerSpeed; moved != want {
		t.Errorf("moved %v, expected %v over the hold window", moved, want)
	}
}

func TestModelOneShotActions(t *testing.T) {
	isolate(t)
	m, g := newTestModel(t, nil, Options{})

	next, _ := m.Update(keyMsg("]"))
	m = next.(Model)
	m, _ = tick(m, time.Unix(100, 0), 3)

	if got := g.Session().DropRate(); got < 0.549 || got > 0.551 {
		t.Errorf("DropRate = %v, expected a single +0.05 step", got)
	}
}

// scriptedGame ends its run after a fixed number of steps and restarts on retry.
type scriptedGame struct {
	endAt  int
	frames int
	over   bool
	score  int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.frames, g.over, g.score = 0, false, 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if g.over {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{})
		}
		return core.StepResult{State: g.State()}
	}
	g.frames++
	g.score += 10
	if g.frames == g.endAt {
		g.over = true
		return core.StepResult{State: g.State(), Finished: true}
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(*core.Screen) {}

func (g *scriptedGame) State() core.GameState {
	phase := "playing"
	if g.over {
		phase = "gameover"
	}
	return core.GameState{Score: g.score, GameOver: g.over, Phase: phase}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{endAt: 5}
	m := NewModel(g, store, testConfig(), Options{})
	m.Init()

	now := time.Unix(100, 0)
	m, now = tick(m, now, 8)

	runs, err := store.Runs("scripted", 10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	if runs[0].Score != 50 || runs[0].Frames != 5 || runs[0].Outcome != storage.OutcomeGameOver {
		t.Errorf("run = %+v, expected 50 points over 5 frames", runs[0])
	}
	if m.Best() != 50 {
		t.Errorf("Best() = %d, expected 50", m.Best())
	}

	// Retry starts a second run that is recorded separately
	next, _ := m.Update(keyMsg("r"))
	m = next.(Model)
	m, _ = tick(m, now, 7)

	runs, err = store.Runs("scripted", 10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, expected 2 after retry", len(runs))
	}
	if runs[0].Frames != 5 {
		t.Errorf("second run frames = %d, expected 5", runs[0].Frames)
	}
}

func TestModelQuitRecordsScoringRun(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(&scriptedGame{endAt: 100}, store, testConfig(), Options{})
	m.Init()
	m, _ = tick(m, time.Unix(100, 0), 3)

	next, _ := m.Update(keyMsg("q"))
	m = next.(Model)

	runs, _ := store.Runs("scripted", 10)
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeQuit {
		t.Fatalf("runs = %+v, expected one quit run", runs)
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelRecordRunOnce(t *testing.T) {
	isolate(t)
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store, Options{})
	m.gameState = core.GameState{Score: 700, GameOver: true, Phase: "clear"}
	m.runFrames = 90

	m.recordRun(outcomeOf(m.gameState))
	m.recordRun(outcomeOf(m.gameState))

	runs, err := store.Runs(stg.GameID, 10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeClear || runs[0].Score != 700 || runs[0].Frames != 90 {
		t.Errorf("run = %+v, expected clear with 700 points over 90 frames", runs[0])
	}
	if runs[0].Seed != 99 {
		t.Errorf("Seed = %d, expected 99", runs[0].Seed)
	}
	if m.Best() != 700 {
		t.Errorf("Best() = %d, expected 700", m.Best())
	}
}

func TestModelBestFromStore(t *testing.T) {
	isolate(t)
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{GameID: stg.GameID, Score: 1234, Outcome: storage.OutcomeGameOver}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m, _ := newTestModel(t, store, Options{})
	if m.Best() != 1234 {
		t.Errorf("Best() = %d, expected 1234", m.Best())
	}
	if !strings.Contains(m.View(), "BEST 1234") {
		t.Error("View() missing best score")
	}
}

func TestModelAudio(t *testing.T) {
	isolate(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	player := mocks.NewMockPlayer(ctrl)
	gomock.InOrder(
		player.EXPECT().PlayLoop("assets/stage1.mp3").Return(nil),
		player.EXPECT().Stop(),
	)

	m, _ := newTestModel(t, nil, Options{Audio: player, Track: "assets/stage1.mp3"})

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if !next.(Model).quitting {
		t.Error("model not quitting after q")
	}
}

func TestModelAudioFailureIsNotFatal(t *testing.T) {
	isolate(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().PlayLoop(gomock.Any()).Return(errors.New("no device"))

	g := stg.New()
	m := NewModel(g, nil, testConfig(), Options{Audio: player, Track: "x.mp3"})
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should still start ticking without audio")
	}
}

func TestModelSilentWithoutTrack(t *testing.T) {
	isolate(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No PlayLoop expected when no track was resolved
	player := mocks.NewMockPlayer(ctrl)
	newTestModel(t, nil, Options{Audio: player})
}

func TestModelScreenshot(t *testing.T) {
	isolate(t)
	m, _ := newTestModel(t, nil, Options{})

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() error: %v", err)
	}
	if !strings.Contains(path, "stg_") || !strings.HasSuffix(path, ".txt") {
		t.Errorf("screenshot path = %q", path)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	isolate(t)
	m, g := newTestModel(t, nil, Options{})
	g.Session().AddScore(100)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 50-statusRows {
		t.Errorf("screen = %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 50-statusRows)
	}
	if g.Session().Score() != 100 {
		t.Error("resize reset the run")
	}
}

func TestRenderRuns(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty := RenderRuns("Runs", nil, storage.Stats{})
	if !strings.Contains(empty, "No runs finished.") {
		t.Errorf("empty table = %q", empty)
	}

	if _, err := store.SaveRun(storage.Run{GameID: stg.GameID, Score: 4200, Outcome: storage.OutcomeClear, Frames: 30 * 75}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, _ := store.Runs(stg.GameID, 10)
	stats, _ := store.GameStats(stg.GameID)

	out := RenderRuns("Runs", runs, stats)
	for _, want := range []string{"4200", "clear", "1:15", "best 4200"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderRuns() missing %q", want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawTextColor(0, 0, "HI", core.ColorOrange)
	scr.DrawText(0, 1, "there")

	out := RenderScreen(scr)
	if !strings.Contains(out, "HI") || !strings.Contains(out, "there") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() rows = %d, expected 2", strings.Count(out, "\n")+1)
	}
}
