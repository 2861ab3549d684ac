package constants

// Literal header phrases that survive PDF text extraction intact. Everything
// between them is free-form and handled by the heuristic parsers.
const (
	KeywordsHeader           = "Keywords"
	CharacterAbilitiesHeader = "Character Abilities"
	WeaponTableHeader        = "Weapon Range Evasion Damage Penetration Abilities"
	StatBlockHeader          = "MOVEMENT DEXTERITY ATTACK PROTECTION MIND"
	CommandHeader            = "Actions Life Will Command"
	WillHeader               = "Will"
	PulseCommandMarker       = "PULSE Command Ability"
	AuraCommandMarker        = "AURA Command Ability"
)

// DefaultVersion is assumed when no version token is found near the stat digits.
const DefaultVersion = "2.2.0"

// NameMaxLen caps the trailing banner line accepted as a character name.
const NameMaxLen = 50

// ParametricMarker flags a reference ability that takes a parenthesized
// payload, e.g. "Expert Grappler (X)".
const ParametricMarker = "(X)"
