package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// newSessionID tags one run of the game. The ID appears in every log
// line and in the final summary so separate runs can be told apart in a
// shared log file.
func newSessionID() string {
	return uuid.NewString()
}

// writeSummary prints the end-of-session report after the terminal has
// been handed back.
func writeSummary(w io.Writer, s SessionSummary) {
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "              GAME OVER")
	fmt.Fprintln(w, "========================================")
	if s.Victory {
		fmt.Fprintln(w, "\nCONGRATULATIONS! You defeated all the bosses!")
	} else {
		fmt.Fprintln(w, "\nYou ran out of lives or quit the game.")
	}
	fmt.Fprintf(w, "\nFinal Score: %d\n", s.Score)
	fmt.Fprintf(w, "Level Reached: %d\n", s.LevelReached)
	fmt.Fprintf(w, "Bosses Defeated: %d\n", s.BossesDefeated)
	fmt.Fprintf(w, "Words Typed: %d (%d miss%s, %.0f%% accuracy)\n",
		s.WordsTyped, s.Misses, map[bool]string{true: "", false: "es"}[s.Misses == 1], s.Accuracy()*100)
	fmt.Fprintf(w, "Session: %s (%v)\n", s.SessionID, s.Duration.Round(summaryDurationUnit))
	fmt.Fprintln(w, "\nThanks for playing!")
}
