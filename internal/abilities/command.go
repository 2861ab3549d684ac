package abilities

import (
	"regexp"
	"slices"
	"strings"

	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/reference"
	"github.com/carnevale-tools/card-parser/internal/textnorm"
)

var commandBlockRe = regexp.MustCompile(`(?s)(.*?)(PULSE|AURA) Command Ability\n(.*?)(?:\n\d+\.\d+\.\d+|$)`)

// ExtractCommands pulls every PULSE/AURA command block out of cleaned
// abilities text. The text before each marker is a mix of common-ability
// names and the command's own name: each line is segmented, fragments that
// resolve against the reference are collected as commons, and the first
// fragment that does not resolve becomes the command name. Commands are named
// things, never a reused common ability, so when every fragment resolves the
// raw last non-empty line is taken as a best-effort name.
func ExtractCommands(cleaned string, ref *reference.Reference) (commands []entity.CommandAbility, commons []string) {
	for _, m := range commandBlockRe.FindAllStringSubmatch(cleaned, -1) {
		preText := strings.TrimSpace(m[1])
		commandType := m[2]
		description := textnorm.Description(m[3])

		var lines []string
		for _, line := range strings.Split(preText, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}

		var found []string
		commandName := ""
		for _, line := range lines {
			for _, fragment := range Segment(line, ref) {
				fragment = strings.TrimSpace(fragment)
				if fragment == "" {
					continue
				}
				if normalized := ref.Match(fragment); normalized != "" {
					if !slices.Contains(found, normalized) {
						found = append(found, normalized)
					}
				} else if commandName == "" {
					commandName = fragment
				}
			}
		}
		commons = append(commons, found...)

		if commandName == "" && len(lines) > 0 {
			commandName = lines[len(lines)-1]
		}
		if commandName != "" {
			commands = append(commands, entity.CommandAbility{
				Name:        commandName,
				Type:        commandType,
				Description: description,
			})
		}
	}
	return commands, commons
}
