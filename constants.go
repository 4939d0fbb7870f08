package main

import "time"

// Game configuration defaults, overridable through the environment
const (
	DefaultTotalLevels      = 25
	DefaultStartingLives    = 3
	DefaultTimePerLevel     = 60 * time.Second
	DefaultWordsPerBoss     = 10
	DefaultPointsPerBoss    = 100
	DefaultTickInterval     = 50 * time.Millisecond
	DefaultInterstitialHold = 2 * time.Second
)

// summaryDurationUnit rounds the session duration in the final report.
const summaryDurationUnit = time.Second

// Difficulty tier constants
const (
	TierEasy   = "easy"
	TierMedium = "medium"
	TierHard   = "hard"
	TierExpert = "expert"
)

// Environment variable constants
const (
	EnvTotalLevels      = "TYPEBOSS_TOTAL_LEVELS"
	EnvStartingLives    = "TYPEBOSS_STARTING_LIVES"
	EnvTimePerLevel     = "TYPEBOSS_TIME_PER_LEVEL"
	EnvWordsPerBoss     = "TYPEBOSS_WORDS_PER_BOSS"
	EnvPointsPerBoss    = "TYPEBOSS_POINTS_PER_BOSS"
	EnvTickInterval     = "TYPEBOSS_TICK"
	EnvInterstitialHold = "TYPEBOSS_HOLD"
	EnvLogFile          = "TYPEBOSS_LOG"
)
