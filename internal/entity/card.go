package entity

// StatBlock holds the five combat stats printed under the
// MOVEMENT DEXTERITY ATTACK PROTECTION MIND header. Fields are pointers so a
// failed parse is distinguishable from a genuine zero: the block either
// decodes as a whole or stays empty.
type StatBlock struct {
	Movement   *int `json:"movement,omitempty"`
	Dexterity  *int `json:"dexterity,omitempty"`
	Attack     *int `json:"attack,omitempty"`
	Protection *int `json:"protection,omitempty"`
	Mind       *int `json:"mind,omitempty"`
}

// IsEmpty reports whether no stat decoded at all.
func (s StatBlock) IsEmpty() bool {
	return s.Movement == nil && s.Dexterity == nil && s.Attack == nil &&
		s.Protection == nil && s.Mind == nil
}

// WeaponEntry is one row of the weapon table. Numeric-looking fields keep
// their source spelling; a placeholder dash is normalized to "0" (or `0"` for
// range) at parse time, so an empty string here never appears.
type WeaponEntry struct {
	Name        string `json:"name"`
	Range       string `json:"range"`
	Evasion     string `json:"evasion"`
	Damage      string `json:"damage"`
	Penetration string `json:"penetration"`
	Abilities   string `json:"abilities"`
}

// UniqueAbility is an ability-like fragment that did not resolve against the
// reference dictionary and carries its own freeform description.
type UniqueAbility struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CommandAbility is explicitly marked by a PULSE/AURA Command Ability tag in
// the source text.
type CommandAbility struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "PULSE" | "AURA"
	Description string `json:"description"`
}

// AbilitySet groups the three ability classes of one card.
type AbilitySet struct {
	Common  []string         `json:"common"`
	Unique  []UniqueAbility  `json:"unique"`
	Command []CommandAbility `json:"command"`
}

// CardRecord is the fully assembled card for one source page. It is built
// once by the assembler and never mutated afterwards.
type CardRecord struct {
	Name      string        `json:"name"`
	Page      int           `json:"page"`
	Keywords  []string      `json:"keywords"`
	Rank      *string       `json:"rank"`
	Version   string        `json:"version"`
	Actions   int           `json:"actions"`
	Life      int           `json:"life"`
	Will      int           `json:"will"`
	Command   *int          `json:"command"`
	Ducats    int           `json:"ducats"`
	BaseSize  int           `json:"base_size"`
	StatBlock StatBlock     `json:"stat_block"`
	Weapons   []WeaponEntry `json:"weapons"`
	Abilities AbilitySet    `json:"abilities"`
}

// PageError is the explicit per-page failure value: the only hard failure is
// a page with no detectable name line.
type PageError struct {
	Page    int    `json:"page"`
	Message string `json:"error"`
}

func (e PageError) Error() string { return e.Message }
