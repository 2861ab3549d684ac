package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema constrains a faction JSON document structurally: the checks
// in this package assume these shapes and types are already in place.
func documentSchema() map[string]any {
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "integer"}
	nullableStr := map[string]any{"type": []string{"string", "null"}}
	nullableNum := map[string]any{"type": []string{"integer", "null"}}

	namedAbility := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        str,
			"description": str,
		},
		"required": []string{"name", "description"},
	}
	commandAbility := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        str,
			"type":        map[string]any{"enum": []string{"PULSE", "AURA"}},
			"description": str,
		},
		"required": []string{"name", "type", "description"},
	}
	weapon := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        str,
			"range":       str,
			"evasion":     str,
			"damage":      str,
			"penetration": str,
			"abilities":   str,
		},
		"required": []string{"name", "range", "evasion", "damage", "penetration", "abilities"},
	}
	card := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":      str,
			"page":      map[string]any{"type": "integer", "minimum": 2},
			"keywords":  map[string]any{"type": "array", "items": str},
			"rank":      nullableStr,
			"version":   str,
			"actions":   num,
			"life":      num,
			"will":      num,
			"command":   nullableNum,
			"ducats":    num,
			"base_size": num,
			"stat_block": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"movement":   num,
					"dexterity":  num,
					"attack":     num,
					"protection": num,
					"mind":       num,
				},
			},
			"weapons": map[string]any{"type": "array", "items": weapon},
			"abilities": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"common":  map[string]any{"type": "array", "items": str},
					"unique":  map[string]any{"type": "array", "items": namedAbility},
					"command": map[string]any{"type": "array", "items": commandAbility},
				},
				"required": []string{"common", "unique", "command"},
			},
		},
		"required": []string{"name", "page", "keywords", "rank", "version", "weapons", "abilities"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"faction":         str,
			"faction_ability": namedAbility,
			"cards":           map[string]any{"type": "array", "items": card},
		},
		"required": []string{"faction", "faction_ability", "cards"},
	}
}

// ValidateDocument checks raw faction JSON against the document schema.
// Callers run this before decoding files they did not just assemble.
func ValidateDocument(raw []byte) error {
	schemaBytes, err := json.Marshal(documentSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("faction.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("faction.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
