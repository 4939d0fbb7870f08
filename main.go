package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()

	if err := validateRoster(bossRoster); err != nil {
		logFatal("Invalid boss roster: %v", err)
	}
	if err := validateWordBank(wordBank); err != nil {
		logFatal("Invalid word bank: %v", err)
	}
	if cfg.TotalLevels > len(bossRoster) {
		logWarn("TotalLevels %d exceeds roster size %d, capping", cfg.TotalLevels, len(bossRoster))
		cfg.TotalLevels = len(bossRoster)
	}

	// Past this point the terminal belongs to tcell; stop logging to it.
	configureLogging()

	screen, err := tcell.NewScreen()
	if err != nil {
		logFatal("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		logFatal("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.HideCursor()

	events := make(chan inputEvent, 32)
	go pumpInput(screen, events)

	game := newGame(cfg, newScreenRenderer(screen), events)
	summary := game.Run()

	screen.Fini()
	writeSummary(os.Stdout, summary)
}

// loadConfig builds the session constants from defaults and environment
// overrides. Out-of-range overrides fall back to the default with a
// warning rather than failing startup.
func loadConfig() Config {
	cfg := Config{
		TotalLevels:      getEnvInt(EnvTotalLevels, DefaultTotalLevels),
		StartingLives:    getEnvInt(EnvStartingLives, DefaultStartingLives),
		WordsPerBoss:     getEnvInt(EnvWordsPerBoss, DefaultWordsPerBoss),
		PointsPerBoss:    getEnvInt(EnvPointsPerBoss, DefaultPointsPerBoss),
		TimePerLevel:     getEnvDuration(EnvTimePerLevel, DefaultTimePerLevel),
		TickInterval:     getEnvDuration(EnvTickInterval, DefaultTickInterval),
		InterstitialHold: getEnvDuration(EnvInterstitialHold, DefaultInterstitialHold),
	}
	if cfg.TotalLevels < 1 {
		logWarn("TotalLevels %d out of range, using default %d", cfg.TotalLevels, DefaultTotalLevels)
		cfg.TotalLevels = DefaultTotalLevels
	}
	if cfg.StartingLives < 1 {
		logWarn("StartingLives %d out of range, using default %d", cfg.StartingLives, DefaultStartingLives)
		cfg.StartingLives = DefaultStartingLives
	}
	if cfg.WordsPerBoss < 1 {
		logWarn("WordsPerBoss %d out of range, using default %d", cfg.WordsPerBoss, DefaultWordsPerBoss)
		cfg.WordsPerBoss = DefaultWordsPerBoss
	}
	if cfg.TimePerLevel <= 0 {
		logWarn("TimePerLevel %v out of range, using default %v", cfg.TimePerLevel, DefaultTimePerLevel)
		cfg.TimePerLevel = DefaultTimePerLevel
	}
	if cfg.TickInterval <= 0 {
		logWarn("TickInterval %v out of range, using default %v", cfg.TickInterval, DefaultTickInterval)
		cfg.TickInterval = DefaultTickInterval
	}
	return cfg
}
