package main

import "time"

// Boss is one entry in the static roster: a named ASCII-art enemy.
// Art holds one string per row.
type Boss struct {
	Name string
	Art  []string
}

// GameState holds the counters for one game session. It is owned by the
// Game and mutated only by the level loop and the controller.
type GameState struct {
	CurrentLevel int // 1-based, never exceeds the configured level count
	Score        int
	Lives        int // never negative
	WordsTyped   int // words defeated in the current level, reset each level
}

// LevelOutcome is the terminal result of a single level.
type LevelOutcome int

const (
	BossDefeated LevelOutcome = iota
	TimeExpired
	OutOfLives
	Aborted
)

// String returns a human-readable outcome name for logs.
func (o LevelOutcome) String() string {
	switch o {
	case BossDefeated:
		return "boss defeated"
	case TimeExpired:
		return "time expired"
	case OutOfLives:
		return "out of lives"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// gamePhase tracks the controller state machine.
type gamePhase int

const (
	phaseNotStarted gamePhase = iota
	phaseInLevel
	phaseLevelCleared
	phaseGameOverLives
	phaseVictory
	phaseAborted
)

// Config carries the session constants, fixed once at startup.
type Config struct {
	TotalLevels      int
	StartingLives    int
	WordsPerBoss     int
	PointsPerBoss    int
	TimePerLevel     time.Duration
	TickInterval     time.Duration
	InterstitialHold time.Duration // how long defeat/clear screens stay up
}

// SessionSummary accumulates per-run statistics, reported at exit.
type SessionSummary struct {
	SessionID      string
	Score          int
	LevelReached   int
	BossesDefeated int
	WordsTyped     int
	Misses         int
	Duration       time.Duration
	Victory        bool
}

// Accuracy returns the fraction of submissions that matched, in [0, 1].
func (s SessionSummary) Accuracy() float64 {
	total := s.WordsTyped + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.WordsTyped) / float64(total)
}

// inputKind classifies a decoded keyboard event.
type inputKind int

const (
	inputRune inputKind = iota
	inputSubmit
	inputBackspace
	inputQuit
)

// inputEvent is one decoded keystroke delivered to the game loop.
type inputEvent struct {
	kind inputKind
	r    rune
}
