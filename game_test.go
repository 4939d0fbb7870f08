package main

import (
	"io"
	"log"
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// stubRenderer records every frame and summary it is asked to draw.
type stubRenderer struct {
	frames []levelFrame
	finals []SessionSummary
}

func (s *stubRenderer) DrawWelcome(Config)           {}
func (s *stubRenderer) DrawLevel(f levelFrame)       { s.frames = append(s.frames, f) }
func (s *stubRenderer) DrawBossDefeated(Boss, int)   {}
func (s *stubRenderer) DrawTimeUp(int)               {}
func (s *stubRenderer) DrawFinal(sum SessionSummary) { s.finals = append(s.finals, sum) }

func testConfig() Config {
	return Config{
		TotalLevels:      3,
		StartingLives:    3,
		WordsPerBoss:     2,
		PointsPerBoss:    100,
		TimePerLevel:     2 * time.Second,
		TickInterval:     time.Millisecond,
		InterstitialHold: 5 * time.Millisecond,
	}
}

// withFixedWords pins the per-level word sequence for the duration of a
// test by swapping the package-level selector hook.
func withFixedWords(t *testing.T, words []string) {
	t.Helper()
	orig := levelWords
	levelWords = func(level, quota int) []string { return words }
	t.Cleanup(func() { levelWords = orig })
}

func scriptEvents(script ...inputEvent) chan inputEvent {
	ch := make(chan inputEvent, 64)
	for _, ev := range script {
		ch <- ev
	}
	return ch
}

func typed(word string) []inputEvent {
	evs := make([]inputEvent, 0, len(word)+1)
	for _, r := range word {
		evs = append(evs, inputEvent{kind: inputRune, r: r})
	}
	return append(evs, inputEvent{kind: inputSubmit})
}

func submit() inputEvent { return inputEvent{kind: inputSubmit} }
func quit() inputEvent   { return inputEvent{kind: inputQuit} }

func newTestGame(cfg Config, events chan inputEvent) (*Game, *stubRenderer) {
	stub := &stubRenderer{}
	g := newGame(cfg, stub, events)
	g.state = GameState{CurrentLevel: 1, Lives: cfg.StartingLives}
	return g, stub
}

// TestPlayLevelBossDefeated checks a clean run: every prompt typed
// correctly within time yields BossDefeated and exactly one score
// bump.
func TestPlayLevelBossDefeated(t *testing.T) {
	withFixedWords(t, []string{TestWordCat, TestWordDog})
	cfg := testConfig()
	var script []inputEvent
	script = append(script, typed(TestWordCat)...)
	script = append(script, typed(TestWordDog)...)
	g, _ := newTestGame(cfg, scriptEvents(script...))

	outcome := g.playLevel()

	if outcome != BossDefeated {
		t.Fatalf("playLevel() = %v, want BossDefeated", outcome)
	}
	if g.state.Score != cfg.PointsPerBoss {
		t.Errorf("Score = %d, want %d", g.state.Score, cfg.PointsPerBoss)
	}
	if g.state.WordsTyped != 2 {
		t.Errorf("WordsTyped = %d, want 2", g.state.WordsTyped)
	}
	if g.state.Lives != cfg.StartingLives {
		t.Errorf("Lives = %d, want %d unchanged", g.state.Lives, cfg.StartingLives)
	}
}

// TestPlayLevelMismatchNoPenalty checks a wrong submission clears the
// buffer only: no life lost, no score change.
func TestPlayLevelMismatchNoPenalty(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	cfg := testConfig()
	var script []inputEvent
	script = append(script, typed(TestWordDog)...) // wrong word
	script = append(script, typed(TestWordCat)...)
	g, _ := newTestGame(cfg, scriptEvents(script...))

	outcome := g.playLevel()

	if outcome != BossDefeated {
		t.Fatalf("playLevel() = %v, want BossDefeated", outcome)
	}
	if g.state.Lives != cfg.StartingLives {
		t.Errorf("Lives = %d, want %d after mismatch", g.state.Lives, cfg.StartingLives)
	}
	if g.summary.Misses != 1 {
		t.Errorf("Misses = %d, want 1", g.summary.Misses)
	}
}

// TestPlayLevelEmptySubmit checks an empty submission counts as an
// ordinary mismatch and mutates nothing else.
func TestPlayLevelEmptySubmit(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	cfg := testConfig()
	script := []inputEvent{submit()} // empty guess
	script = append(script, typed(TestWordCat)...)
	g, _ := newTestGame(cfg, scriptEvents(script...))

	outcome := g.playLevel()

	if outcome != BossDefeated {
		t.Fatalf("playLevel() = %v, want BossDefeated", outcome)
	}
	if g.summary.Misses != 1 {
		t.Errorf("Misses = %d, want 1 for empty submission", g.summary.Misses)
	}
	if g.state.Lives != cfg.StartingLives || g.state.Score != cfg.PointsPerBoss {
		t.Errorf("state after empty submit: lives=%d score=%d, want lives=%d score=%d",
			g.state.Lives, g.state.Score, cfg.StartingLives, cfg.PointsPerBoss)
	}
}

// TestPlayLevelCaseInsensitiveMatch checks the fixed matching policy.
func TestPlayLevelCaseInsensitiveMatch(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	g, _ := newTestGame(testConfig(), scriptEvents(typed("CaT")...))

	if outcome := g.playLevel(); outcome != BossDefeated {
		t.Errorf("playLevel() with mixed-case input = %v, want BossDefeated", outcome)
	}
}

// TestPlayLevelBackspaceEditsInput checks backspace repairs a typo.
func TestPlayLevelBackspaceEditsInput(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	script := []inputEvent{
		{kind: inputRune, r: 'c'},
		{kind: inputRune, r: 'a'},
		{kind: inputRune, r: 'x'},
		{kind: inputBackspace},
		{kind: inputRune, r: 't'},
		submit(),
	}
	g, _ := newTestGame(testConfig(), scriptEvents(script...))

	if outcome := g.playLevel(); outcome != BossDefeated {
		t.Errorf("playLevel() after backspace repair = %v, want BossDefeated", outcome)
	}
	if g.summary.Misses != 0 {
		t.Errorf("Misses = %d, want 0", g.summary.Misses)
	}
}

// TestPlayLevelTimeExpired checks expiry is detected with no input at
// all and costs exactly one life.
func TestPlayLevelTimeExpired(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	cfg := testConfig()
	cfg.TimePerLevel = 30 * time.Millisecond
	g, _ := newTestGame(cfg, scriptEvents()) // open, empty channel

	outcome := g.playLevel()

	if outcome != TimeExpired {
		t.Fatalf("playLevel() = %v, want TimeExpired", outcome)
	}
	if g.state.Lives != cfg.StartingLives-1 {
		t.Errorf("Lives = %d, want %d", g.state.Lives, cfg.StartingLives-1)
	}
	if g.state.Score != 0 {
		t.Errorf("Score = %d, want 0 after expiry", g.state.Score)
	}
}

// TestPlayLevelOutOfLives checks the override: losing the last life
// yields OutOfLives and lives stop at zero, never negative.
func TestPlayLevelOutOfLives(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	cfg := testConfig()
	cfg.TimePerLevel = 30 * time.Millisecond
	g, _ := newTestGame(cfg, scriptEvents())
	g.state.Lives = 1

	outcome := g.playLevel()

	if outcome != OutOfLives {
		t.Fatalf("playLevel() = %v, want OutOfLives", outcome)
	}
	if g.state.Lives != 0 {
		t.Errorf("Lives = %d, want exactly 0", g.state.Lives)
	}
}

// TestPlayLevelFramesRespectBounds checks every rendered frame holds
// 0 <= WordsTyped <= quota and a non-negative countdown.
func TestPlayLevelFramesRespectBounds(t *testing.T) {
	withFixedWords(t, []string{TestWordCat, TestWordDog})
	var script []inputEvent
	script = append(script, typed(TestWordCat)...)
	script = append(script, typed(TestWordDog)...)
	g, stub := newTestGame(testConfig(), scriptEvents(script...))
	g.playLevel()

	if len(stub.frames) == 0 {
		t.Fatal("no frames rendered")
	}
	for i, f := range stub.frames {
		if f.WordsTyped < 0 || f.WordsTyped > f.WordsQuota {
			t.Errorf("frame %d: WordsTyped = %d outside [0, %d]", i, f.WordsTyped, f.WordsQuota)
		}
		if f.Remaining < 0 {
			t.Errorf("frame %d: Remaining = %v, want >= 0", i, f.Remaining)
		}
		if f.Lives < 0 {
			t.Errorf("frame %d: Lives = %v, want >= 0", i, f.Lives)
		}
	}
}

// TestRunThreeExpiries checks a full losing session: three straight
// timeouts on level 1 end the game with no score.
func TestRunThreeExpiries(t *testing.T) {
	withFixedWords(t, []string{TestWordCat, TestWordDog})
	cfg := testConfig()
	cfg.TimePerLevel = 30 * time.Millisecond
	events := scriptEvents(submit()) // start the game, then type nothing
	stub := &stubRenderer{}
	g := newGame(cfg, stub, events)

	summary := g.Run()

	if summary.Victory {
		t.Error("Victory = true, want false")
	}
	if summary.Score != 0 {
		t.Errorf("Score = %d, want 0", summary.Score)
	}
	if summary.LevelReached != 1 {
		t.Errorf("LevelReached = %d, want 1", summary.LevelReached)
	}
	if g.state.Lives != 0 {
		t.Errorf("Lives = %d, want 0", g.state.Lives)
	}
	if len(stub.finals) != 1 {
		t.Errorf("DrawFinal called %d times, want 1", len(stub.finals))
	}
}

// TestRunSingleLevelVictory checks the minimal winning session: one
// level, one word, typed in time.
func TestRunSingleLevelVictory(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	cfg := testConfig()
	cfg.TotalLevels = 1
	cfg.WordsPerBoss = 1
	script := []inputEvent{submit()}
	script = append(script, typed(TestWordCat)...)
	g, _ := newTestGame(cfg, scriptEvents(script...))

	summary := g.Run()

	if !summary.Victory {
		t.Fatal("Victory = false, want true")
	}
	if summary.Score != cfg.PointsPerBoss {
		t.Errorf("Score = %d, want %d", summary.Score, cfg.PointsPerBoss)
	}
	if summary.BossesDefeated != 1 {
		t.Errorf("BossesDefeated = %d, want 1", summary.BossesDefeated)
	}
	if summary.LevelReached != 1 {
		t.Errorf("LevelReached = %d, want 1", summary.LevelReached)
	}
}

// TestRunLevelProgression checks LevelCleared advances to the next
// level and the level counter never passes the configured total.
func TestRunLevelProgression(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	cfg := testConfig()
	cfg.TotalLevels = 2
	script := []inputEvent{submit()}
	script = append(script, typed(TestWordCat)...) // level 1
	script = append(script, submit())              // advance interstitial
	script = append(script, typed(TestWordCat)...) // level 2
	stub := &stubRenderer{}
	g := newGame(cfg, stub, scriptEvents(script...))

	summary := g.Run()

	if !summary.Victory {
		t.Fatal("Victory = false, want true")
	}
	if summary.Score != 2*cfg.PointsPerBoss {
		t.Errorf("Score = %d, want %d", summary.Score, 2*cfg.PointsPerBoss)
	}
	if summary.LevelReached != cfg.TotalLevels {
		t.Errorf("LevelReached = %d, want %d", summary.LevelReached, cfg.TotalLevels)
	}
	for i, f := range stub.frames {
		if f.Level < 1 || f.Level > cfg.TotalLevels {
			t.Errorf("frame %d: Level = %d outside [1, %d]", i, f.Level, cfg.TotalLevels)
		}
	}
}

// TestRunQuitOnWelcome checks quitting before the first level ends the
// session cleanly with nothing scored.
func TestRunQuitOnWelcome(t *testing.T) {
	cfg := testConfig()
	g, _ := newTestGame(cfg, scriptEvents(quit()))

	summary := g.Run()

	if summary.Victory || summary.Score != 0 {
		t.Errorf("summary after welcome quit: victory=%v score=%d, want false/0",
			summary.Victory, summary.Score)
	}
}

// TestRunQuitMidLevel checks aborting a level costs no lives.
func TestRunQuitMidLevel(t *testing.T) {
	withFixedWords(t, []string{TestWordCat})
	cfg := testConfig()
	g, _ := newTestGame(cfg, scriptEvents(submit(), quit()))

	summary := g.Run()

	if summary.Victory {
		t.Error("Victory = true, want false")
	}
	if g.state.Lives != cfg.StartingLives {
		t.Errorf("Lives = %d, want %d untouched by abort", g.state.Lives, cfg.StartingLives)
	}
}

// TestAccuracy checks the summary accuracy derivation.
func TestAccuracy(t *testing.T) {
	tests := []struct {
		typed, misses int
		want          float64
	}{
		{0, 0, 0},
		{4, 0, 1},
		{3, 1, 0.75},
		{0, 5, 0},
	}
	for _, tt := range tests {
		s := SessionSummary{WordsTyped: tt.typed, Misses: tt.misses}
		if got := s.Accuracy(); got != tt.want {
			t.Errorf("Accuracy() with %d/%d = %v, want %v", tt.typed, tt.misses, got, tt.want)
		}
	}
}
