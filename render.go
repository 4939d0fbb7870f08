package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// levelFrame is the read-only snapshot the level loop hands to the
// renderer once per tick. All values come straight from GameState and
// the level timer.
type levelFrame struct {
	Level       int
	TotalLevels int
	Score       int
	Lives       int
	WordsTyped  int
	WordsQuota  int
	Remaining   time.Duration
	Boss        Boss
	Prompt      string
	Input       string
}

// renderer is the presentation collaborator the game loop draws
// through. The tcell implementation is the real one; tests substitute a
// recording stub.
type renderer interface {
	DrawWelcome(cfg Config)
	DrawLevel(f levelFrame)
	DrawBossDefeated(boss Boss, score int)
	DrawTimeUp(lives int)
	DrawFinal(s SessionSummary)
}

// screenRenderer draws the game onto a tcell screen.
type screenRenderer struct {
	screen tcell.Screen
}

func newScreenRenderer(screen tcell.Screen) *screenRenderer {
	return &screenRenderer{screen: screen}
}

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePrompt  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLives   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
)

// text writes a string starting at (x, y), one cell per rune.
func (r *screenRenderer) text(x, y int, style tcell.Style, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *screenRenderer) ruler(y int) {
	r.text(0, y, styleHUD, strings.Repeat("=", 50))
}

func (r *screenRenderer) DrawWelcome(cfg Config) {
	r.screen.Clear()
	r.ruler(1)
	r.text(6, 2, styleTitle, "WELCOME TO TYPING BOSS RUSH!")
	r.ruler(3)
	r.text(0, 5, styleDefault, "Defeat the bosses by typing the words shown.")
	r.text(0, 6, styleDefault, fmt.Sprintf("You have %d %s and %v per level.",
		cfg.StartingLives, map[bool]string{true: "life", false: "lives"}[cfg.StartingLives == 1], cfg.TimePerLevel))
	r.text(0, 8, stylePrompt, "Press Enter to start...")
	r.screen.Show()
}

func (r *screenRenderer) DrawLevel(f levelFrame) {
	r.screen.Clear()
	r.ruler(0)
	r.text(1, 1, styleHUD, fmt.Sprintf("Level: %d/%d | Score: %d | Lives: ", f.Level, f.TotalLevels, f.Score))
	r.text(40, 1, styleLives, strings.Repeat("♥", f.Lives))
	r.text(1, 2, styleHUD, fmt.Sprintf("Time Left: %s | Words: %d/%d | To Defeat Boss: %d",
		formatCountdown(f.Remaining), f.WordsTyped, f.WordsQuota, f.WordsQuota-f.WordsTyped))
	r.ruler(3)

	y := 5
	r.text(1, y, styleBoss, fmt.Sprintf("--- BOSS: %s ---", f.Boss.Name))
	y += 2
	for _, line := range f.Boss.Art {
		r.text(4, y, styleBoss, line)
		y++
	}
	y += 2
	r.text(1, y, stylePrompt, fmt.Sprintf("Type this word: -> %s <-", f.Prompt))
	y += 2
	r.text(1, y, styleDefault, fmt.Sprintf("> %s", f.Input))
	r.screen.ShowCursor(3+len([]rune(f.Input)), y)
	r.screen.Show()
}

func (r *screenRenderer) DrawBossDefeated(boss Boss, score int) {
	r.screen.Clear()
	y := 2
	for _, line := range boss.Art {
		r.text(4, y, styleBoss, line)
		y++
	}
	y += 2
	r.text(1, y, styleTitle, fmt.Sprintf("*** %s DEFEATED! ***", strings.ToUpper(boss.Name)))
	r.text(1, y+1, styleHUD, fmt.Sprintf("Score: %d", score))
	r.screen.HideCursor()
	r.screen.Show()
}

func (r *screenRenderer) DrawTimeUp(lives int) {
	r.screen.Clear()
	r.text(1, 2, styleTitle, "*** TIME'S UP! ***")
	r.text(1, 4, styleDefault, fmt.Sprintf("You lost a life. %d %s left.",
		lives, map[bool]string{true: "life", false: "lives"}[lives == 1]))
	r.screen.HideCursor()
	r.screen.Show()
}

func (r *screenRenderer) DrawFinal(s SessionSummary) {
	r.screen.Clear()
	r.ruler(1)
	r.text(15, 2, styleTitle, "GAME OVER")
	r.ruler(3)
	y := 5
	if s.Victory {
		r.text(0, y, stylePrompt, "CONGRATULATIONS! You defeated all the bosses!")
	} else {
		r.text(0, y, styleDefault, "You ran out of lives or quit the game.")
	}
	y += 2
	r.text(0, y, styleHUD, fmt.Sprintf("Final Score: %d", s.Score))
	r.text(0, y+1, styleHUD, fmt.Sprintf("Level Reached: %d", s.LevelReached))
	r.text(0, y+2, styleHUD, fmt.Sprintf("Bosses Defeated: %d", s.BossesDefeated))
	r.text(0, y+3, styleHUD, fmt.Sprintf("Words Typed: %d (%.0f%% accuracy)", s.WordsTyped, s.Accuracy()*100))
	r.text(0, y+5, styleDefault, "Thanks for playing!")
	r.screen.HideCursor()
	r.screen.Show()
}

// pumpInput decodes tcell key events into inputEvents until the screen
// is finalized, at which point PollEvent returns nil and the channel is
// closed. Runs on its own goroutine; the game loop is the sole reader.
func pumpInput(screen tcell.Screen, out chan<- inputEvent) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyEnter:
				out <- inputEvent{kind: inputSubmit}
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				out <- inputEvent{kind: inputBackspace}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				out <- inputEvent{kind: inputQuit}
			case tcell.KeyRune:
				out <- inputEvent{kind: inputRune, r: e.Rune()}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
