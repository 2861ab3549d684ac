package constants

// RankWords are keyword fragments that mark a card's rank rather than a
// plain keyword.
var RankWords = []string{"Leader", "Hero", "Henchman"}

// DisciplineRepairs undoes mid-word hyphenation the extractor introduces
// inside Discipline keyword lists.
var DisciplineRepairs = map[string]string{
	"Fateweav - ing":        "Fateweaving",
	"Runes of Sover - eignty": "Runes of Sovereignty",
	"Blood Ri - tes":        "Blood Rites",
	"Wild Ma - gic":         "Wild Magic",
}
