package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// bossRoster is the ordered boss table; level N fights bossRoster[N-1].
var bossRoster = []Boss{
	{
		Name: "Slime Blob",
		Art: []string{
			"   .--.",
			"  / oo \\",
			" | |  | |",
			"  \\ -- /",
			"   `--'",
		},
	},
	{
		Name: "Googly Eye",
		Art: []string{
			"  .-----.",
			" / O   O \\",
			"|    <    |",
			" \\   -   /",
			"  `-----'",
		},
	},
	{
		Name: "Boss Bot",
		Art: []string{
			" .------.",
			" |[][][]|",
			" |[][][]|",
			" '------'",
			"  |_|--|_|",
		},
	},
	{
		Name: "Spike",
		Art: []string{
			"    /\\",
			"   /  \\",
			"  /----\\",
			" /      \\",
			"/________\\",
		},
	},
	{
		Name: "Ghostly",
		Art: []string{
			"  .-.",
			" (o o)",
			" | O \\",
			"  \\   \\",
			"   `~~~'",
		},
	},
	{
		Name: "Angry Cloud",
		Art: []string{
			"  .--.",
			" ( `-' )",
			"( (   ) )",
			" `--'--'",
		},
	},
	{
		Name: "Skull",
		Art: []string{
			"  .------.",
			" /  _  _  \\",
			"|  (o)(o)  |",
			"|    /\\    |",
			"|   `--'   |",
			" \\--------/",
		},
	},
	{
		Name: "Spider",
		Art: []string{
			"  /\\  /\\",
			" /  \\/  \\",
			"|  o  o  |",
			" \\  --  /",
			"  `----'",
		},
	},
	{
		Name: "Snake",
		Art: []string{
			"    .--.",
			"   /o o \\",
			"   \\  --<",
			"    `---'",
			"   /  /",
			"  /  /",
			" /  /",
			" `.'",
		},
	},
	{
		Name: "Bat",
		Art: []string{
			"\\    /\\    /",
			" \\  /  \\  /",
			"  \\/o_o\\/",
			"   `---'",
		},
	},
	{
		Name: "Tentacle Terror",
		Art: []string{
			"    _",
			"   / \\",
			"  / _ \\",
			" / / \\ \\",
			"| | O | |",
			" \\ \\_/ /",
			"  `---'",
		},
	},
	{
		Name: "Rock Golem",
		Art: []string{
			"  .-----.",
			" / O   O \\",
			"|  `---'  |",
			"| | | | | |",
			" `-------'",
		},
	},
	{
		Name: "Evil Tree",
		Art: []string{
			"   /\\",
			"  /  \\",
			" / o o\\",
			"|  /\\  |",
			"| |  | |",
			" `----'",
		},
	},
	{
		Name: "UFO",
		Art: []string{
			"   .---.",
			"  /_____\\",
			" ( o o o )",
			"  `-----'",
		},
	},
	{
		Name: "Dragon Head",
		Art: []string{
			"   /\\_/\\",
			"  / o o \\",
			" (   _   )",
			"  `-----'",
		},
	},
	{
		Name: "Cyber Eye",
		Art: []string{
			"  .------.",
			" /  .--.  \\",
			"|  | o  |  |",
			" \\  `--'  /",
			"  `------'",
		},
	},
	{
		Name: "Grumpy Cat",
		Art: []string{
			" /\\_/\\",
			"( o.o )",
			" > ^ <",
		},
	},
	{
		Name: "Mech Jaw",
		Art: []string{
			" .------.",
			" |/\\/\\/\\|",
			" | o  o |",
			" |______|",
		},
	},
	{
		Name: "Cursed Mask",
		Art: []string{
			"  .------.",
			" /  o  o  \\",
			"|     ^    |",
			"|  `----'  |",
			" \\--------/",
		},
	},
	{
		Name: "Volcano",
		Art: []string{
			"    /\\",
			"   /  \\",
			"  /____\\",
			" /`----'\\",
			"/________\\",
		},
	},
	{
		Name: "Deep Sea Horror",
		Art: []string{
			"    .---.",
			"   / o o \\",
			"  |   J   |",
			"   \\ --- /",
			"  /   |   \\",
			" /    |    \\",
		},
	},
	{
		Name: "Crystal Fiend",
		Art: []string{
			"   /\\",
			"  /  \\",
			" <    >",
			"  \\  /",
			"   \\/",
		},
	},
	{
		Name: "Void Monster",
		Art: []string{
			"   .....",
			"  .o.o.o.",
			" .o.o.o.o.",
			"  .o.o.o.",
			"   .....",
		},
	},
	{
		Name: "Armored Knight",
		Art: []string{
			"  .------.",
			" |  _  _  |",
			" | |o||o| |",
			" |   __   |",
			" `--------'",
		},
	},
	{
		Name: "The Word Master",
		Art: []string{
			"   .-------.",
			"  /  A B C  \\",
			" |  D E F    |",
			"  \\  G H I  /",
			"   `-------'",
		},
	},
}

// bossForLevel returns the roster entry for a 1-based level number.
// TotalLevels is capped to the roster size at startup, so the index is
// always in range for a validated configuration.
func bossForLevel(level int) Boss {
	if level < 1 {
		level = 1
	}
	return bossRoster[(level-1)%len(bossRoster)]
}

// validateRoster rejects malformed static boss data at startup: an
// empty roster, a blank name, or art with no visible glyphs.
func validateRoster(roster []Boss) error {
	if len(roster) == 0 {
		return fmt.Errorf("boss roster is empty")
	}
	for i, b := range roster {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("boss %d has a blank name", i)
		}
		blankArt := len(b.Art) == 0 || lo.EveryBy(b.Art, func(line string) bool {
			return strings.TrimSpace(line) == ""
		})
		if blankArt {
			return fmt.Errorf("boss %q has blank art", b.Name)
		}
	}
	return nil
}
