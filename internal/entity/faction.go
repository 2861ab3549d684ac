package entity

// Page is one extracted page of a faction document, as handed over by the
// text-extraction collaborator.
type Page struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

// FactionAbility is the faction-level ability parsed from page 1.
type FactionAbility struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FactionRecord is the whole parsed dataset for one faction document.
type FactionRecord struct {
	Faction        string         `json:"faction"`
	FactionAbility FactionAbility `json:"faction_ability"`
	Cards          []CardRecord   `json:"cards"`
}
