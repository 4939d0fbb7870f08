package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/samber/lo"
)

// wordBank maps each difficulty tier to its candidate words. All words
// are lowercase; submissions are normalized before comparison.
var wordBank = map[string][]string{
	TierEasy: {
		"act", "air", "art", "ask", "awe", "bad", "bag", "ban", "bat", "bed", "bee", "big", "bit", "box", "boy",
		"bug", "bus", "but", "buy", "can", "cap", "car", "cat", "cow", "cry", "cub", "cup", "cut", "dad", "day",
		"den", "did", "dig", "dim", "dog", "dot", "dry", "due", "eat", "egg", "elf", "elk", "end", "era", "fan",
		"far", "fat", "few", "fig", "fin", "fit", "fix", "fly", "fog", "for", "fox", "fun", "fur", "gap", "gas",
		"gem", "get", "gig", "god", "got", "gum", "gun", "gut", "guy", "had", "has", "hat", "hen", "her", "hey",
		"hid", "him", "hip", "his", "hit", "hog", "hop", "hot", "how", "hug", "hum", "hut", "ice", "icy", "ill",
		"ink", "inn", "ion", "its", "ivy", "jam", "jar", "jaw", "jet", "job", "jog", "joy", "jug", "jun", "key",
	},
	TierMedium: {
		"able", "acid", "also", "area", "army", "away", "baby", "back", "ball", "band", "bank", "base", "bean",
		"bear", "beat", "bell", "belt", "bend", "best", "bird", "bite", "blow", "blue", "boat", "body", "boil",
		"bold", "bone", "book", "boom", "born", "boss", "both", "bowl", "burn", "bury", "busy", "cake", "call",
		"calm", "came", "camp", "card", "care", "case", "cash", "cast", "cell", "chat", "chip", "city", "club",
		"coal", "coat", "code", "cold", "come", "cook", "cool", "copy", "core", "cost", "crew", "crop", "dark",
		"data", "date", "dawn", "dead", "deal", "dean", "dear", "debt", "deck", "deep", "deer", "desk", "dirt",
		"dish", "dive", "dock", "does", "done", "door", "dose", "down", "draw", "dream", "dress", "drink", "drive",
		"drop", "drug", "drum", "duck", "dull", "dust", "duty", "each", "earn", "east", "easy", "edge", "else",
	},
	TierHard: {
		"ability", "absence", "academy", "account", "accused", "achieve", "acquire", "address", "advance", "advice",
		"against", "airline", "airport", "alcohol", "already", "amazing", "another", "anxiety", "anybody", "anything",
		"anywhere", "appoint", "approve", "arrival", "article", "assault", "athlete", "attempt", "attitude", "average",
		"balance", "balloon", "bargain", "barrier", "battery", "battle", "bearing", "beating", "because", "bedroom",
		"believe", "beneath", "benefit", "besides", "between", "bicycle", "billion", "binding", "breathe", "briefly",
		"brother", "brought", "building", "burning", "business", "cabinet", "calling", "capable", "capital", "captain",
		"capture", "careful", "carrier", "caution", "ceiling", "central", "century", "certain", "chamber", "champion",
		"channel", "chapter", "charity", "chasing", "cheaper", "checking", "chicken", "citizen", "classic", "climate",
		"closing", "clothing", "collect", "college", "combine", "comment", "company", "compare", "compete", "complain",
	},
	TierExpert: {
		"abbreviation", "abolishment", "accelerator", "accessible", "accommodation", "accomplishment", "accountability",
		"accreditation", "accumulation", "achievement", "acquaintance", "acquisition", "acrimonious", "adaptability",
		"administrative", "admiration", "admonishment", "advantageous", "advertisement", "affectionately", "affirmation",
		"afterthought", "agglomeration", "aggravating", "agricultural", "altercation", "ambidextrous", "amortization",
		"amplification", "anachronism", "antagonistic", "anthropology", "anticipation", "antidisestablishmentarianism",
		"apologetic", "apothecary", "appreciation", "apprehensive", "appropriation", "archaeologist", "architectural",
		"articulation", "artificial", "asphyxiation", "assassination", "assertiveness", "astonishingly", "astronomical",
		"atrocious", "authoritarian", "autobiography", "availability", "belligerent", "benevolence", "biodegradable",
		"biotechnology", "bureaucracy", "catastrophic", "characteristically", "chronological", "circumference",
		"circumlocution", "circumnavigate", "circumstantial", "classification", "claustrophobia", "collaboration",
		"commemoration", "commercialism", "communication", "comparatively", "compassionate", "compatibility",
		"compensatory", "competitiveness", "comprehensive", "compulsively", "computerization", "conglomerate",
		"congratulatory", "conscientious", "consciousness", "consequential", "conservatory", "consideration",
		"conspicuous", "conspirator", "constitutional", "contemporary", "contradiction", "controversial", "conventional",
	},
}

// tierForLevel maps a level number to its difficulty tier.
func tierForLevel(level int) string {
	switch {
	case level <= 5:
		return TierEasy
	case level <= 12:
		return TierMedium
	case level <= 20:
		return TierHard
	default:
		return TierExpert
	}
}

// levelWords selects the prompt sequence for a level. Declared as a
// variable so tests can substitute a fixed sequence.
var levelWords = func(level, quota int) []string {
	return pickLevelWords(wordBank[tierForLevel(level)], quota)
}

// pickLevelWords samples quota words from the tier. No two consecutive
// picks are identical when the tier has at least two words; a one-word
// tier legitimately repeats.
func pickLevelWords(words []string, quota int) []string {
	if len(words) == 0 || quota <= 0 {
		return nil
	}
	picked := make([]string, 0, quota)
	last := ""
	for len(picked) < quota {
		candidates := words
		if last != "" && len(words) > 1 {
			candidates = lo.Filter(words, func(w string, _ int) bool {
				return w != last
			})
		}
		w := randomWord(candidates)
		picked = append(picked, w)
		last = w
	}
	return picked
}

// randomWord picks a uniformly random word, falling back to the first
// entry if the random source fails.
func randomWord(words []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		logWarn("Error generating random number: %v, using fallback", err)
		return words[0]
	}
	return words[n.Int64()]
}

// validateWordBank rejects malformed static word data at startup: a
// missing tier, an empty tier, or a word containing whitespace or
// uppercase letters.
func validateWordBank(bank map[string][]string) error {
	for _, tier := range []string{TierEasy, TierMedium, TierHard, TierExpert} {
		words, ok := bank[tier]
		if !ok || len(words) == 0 {
			return fmt.Errorf("word tier %q has no words", tier)
		}
		for i, w := range words {
			if w == "" || w != normalizeInput(w) || strings.ContainsAny(w, " \t") {
				return fmt.Errorf("word tier %q entry %d is malformed: %q", tier, i, w)
			}
		}
		if dupes := lo.FindDuplicates(words); len(dupes) > 0 {
			return fmt.Errorf("word tier %q has duplicate words: %v", tier, dupes)
		}
	}
	return nil
}
