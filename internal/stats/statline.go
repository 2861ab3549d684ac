package stats

import (
	"regexp"
	"strconv"

	"github.com/carnevale-tools/card-parser/internal/entity"
)

var (
	statLineRe = regexp.MustCompile(`MOVEMENT\s+DEXTERITY\s+ATTACK\s+PROTECTION\s+MIND\s*\n\s*(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)`)
	numberRe   = regexp.MustCompile(`\d+`)
)

// DecodeStatBlock parses the five-stat line under the MOVEMENT DEXTERITY
// ATTACK PROTECTION MIND header. When the headed form is absent it falls back
// to the last five numbers found anywhere in the text. With fewer than five
// numbers the block stays empty — absence is a parse failure, not zero.
func DecodeStatBlock(text string) entity.StatBlock {
	if m := statLineRe.FindStringSubmatch(text); m != nil {
		return buildStatBlock(m[1:])
	}

	numbers := numberRe.FindAllString(text, -1)
	if len(numbers) >= 5 {
		return buildStatBlock(numbers[len(numbers)-5:])
	}
	return entity.StatBlock{}
}

func buildStatBlock(fields []string) entity.StatBlock {
	vals := make([]*int, 5)
	for i, f := range fields[:5] {
		n, _ := strconv.Atoi(f)
		v := n
		vals[i] = &v
	}
	return entity.StatBlock{
		Movement:   vals[0],
		Dexterity:  vals[1],
		Attack:     vals[2],
		Protection: vals[3],
		Mind:       vals[4],
	}
}
