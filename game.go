package main

import (
	"time"
	"unicode"
)

// Game runs one session: the controller state machine sequencing levels
// against the boss roster, and the level loop inside each level. All
// state mutation happens on the single goroutine executing Run; the
// input pump only writes decoded keystrokes into the events channel.
type Game struct {
	cfg     Config
	state   GameState
	r       renderer
	events  <-chan inputEvent
	summary SessionSummary
	started time.Time
}

func newGame(cfg Config, r renderer, events <-chan inputEvent) *Game {
	return &Game{
		cfg:    cfg,
		r:      r,
		events: events,
		summary: SessionSummary{
			SessionID: newSessionID(),
		},
	}
}

// Run plays a full session and returns its summary. The phase variable
// walks the controller state machine; every transition is decided here
// and bounds are checked before moving, never after.
func (g *Game) Run() SessionSummary {
	g.started = time.Now()
	logInfo("[session=%s] Session started: %d levels, %d lives, %v per level",
		g.summary.SessionID, g.cfg.TotalLevels, g.cfg.StartingLives, g.cfg.TimePerLevel)

	phase := phaseNotStarted
	g.r.DrawWelcome(g.cfg)
	if g.waitAdvance(0) {
		g.state = GameState{
			CurrentLevel: 1,
			Lives:        g.cfg.StartingLives,
		}
		phase = phaseInLevel
	} else {
		phase = phaseAborted
	}

	for phase == phaseInLevel {
		outcome := g.playLevel()
		logInfo("[session=%s] Level %d finished: %s (score=%d lives=%d)",
			g.summary.SessionID, g.state.CurrentLevel, outcome, g.state.Score, g.state.Lives)

		switch outcome {
		case BossDefeated:
			phase = phaseLevelCleared
			g.r.DrawBossDefeated(bossForLevel(g.state.CurrentLevel), g.state.Score)
			if !g.waitAdvance(g.cfg.InterstitialHold) {
				phase = phaseAborted
				break
			}
			if g.state.CurrentLevel < g.cfg.TotalLevels {
				g.state.CurrentLevel++
				phase = phaseInLevel
			} else {
				phase = phaseVictory
			}
		case TimeExpired:
			// Same level replays with a fresh timer.
			g.r.DrawTimeUp(g.state.Lives)
			if !g.waitAdvance(g.cfg.InterstitialHold) {
				phase = phaseAborted
			}
		case OutOfLives:
			phase = phaseGameOverLives
		case Aborted:
			phase = phaseAborted
		}
	}

	g.summary.Score = g.state.Score
	g.summary.LevelReached = g.state.CurrentLevel
	g.summary.Victory = phase == phaseVictory
	g.summary.Duration = time.Since(g.started)
	logInfo("[session=%s] Session over: victory=%v score=%d level=%d words=%d misses=%d",
		g.summary.SessionID, g.summary.Victory, g.summary.Score,
		g.summary.LevelReached, g.summary.WordsTyped, g.summary.Misses)

	g.r.DrawFinal(g.summary)
	g.waitAdvance(g.cfg.InterstitialHold)
	return g.summary
}

// playLevel runs exactly one level to completion. Each iteration checks
// the word quota, then the deadline, then waits for either a keystroke
// or the next tick, and finally redraws; expiry is therefore noticed
// within one tick interval even when the player types nothing.
func (g *Game) playLevel() LevelOutcome {
	boss := bossForLevel(g.state.CurrentLevel)
	words := levelWords(g.state.CurrentLevel, g.cfg.WordsPerBoss)
	g.state.WordsTyped = 0
	timer := newLevelTimer(g.cfg.TimePerLevel)
	tick := time.NewTicker(g.cfg.TickInterval)
	defer tick.Stop()

	var input []rune
	for {
		if g.state.WordsTyped >= len(words) {
			g.state.Score += g.cfg.PointsPerBoss
			g.summary.BossesDefeated++
			return BossDefeated
		}
		if timer.expired() {
			g.state.Lives--
			if g.state.Lives <= 0 {
				g.state.Lives = 0
				return OutOfLives
			}
			return TimeExpired
		}

		prompt := words[g.state.WordsTyped]
		select {
		case ev, ok := <-g.events:
			if !ok {
				return Aborted
			}
			switch ev.kind {
			case inputQuit:
				return Aborted
			case inputBackspace:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case inputRune:
				if unicode.IsPrint(ev.r) {
					input = append(input, ev.r)
				}
			case inputSubmit:
				// An empty or wrong submission just clears the buffer;
				// the level timer is the only penalty.
				if normalizeInput(string(input)) == prompt {
					g.state.WordsTyped++
					g.summary.WordsTyped++
				} else {
					g.summary.Misses++
				}
				input = input[:0]
			}
		case <-tick.C:
		}

		g.r.DrawLevel(levelFrame{
			Level:       g.state.CurrentLevel,
			TotalLevels: g.cfg.TotalLevels,
			Score:       g.state.Score,
			Lives:       g.state.Lives,
			WordsTyped:  g.state.WordsTyped,
			WordsQuota:  len(words),
			Remaining:   timer.remaining(),
			Boss:        boss,
			Prompt:      prompt,
			Input:       string(input),
		})
	}
}

// waitAdvance pauses between screens. It returns once the player
// presses Enter or, when hold is positive, once the hold elapses.
// The return value is false if the player quit instead.
func (g *Game) waitAdvance(hold time.Duration) bool {
	var timeout <-chan time.Time
	if hold > 0 {
		t := time.NewTimer(hold)
		defer t.Stop()
		timeout = t.C
	}
	for {
		select {
		case ev, ok := <-g.events:
			if !ok {
				return false
			}
			switch ev.kind {
			case inputQuit:
				return false
			case inputSubmit:
				return true
			}
		case <-timeout:
			return true
		}
	}
}
