package reference

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/carnevale-tools/card-parser/internal/common"
)

// dictionaryDocument is the on-disk shape of the reference dictionary.
type dictionaryDocument struct {
	CommonAbilities []string `json:"common_abilities"`
	WeaponAbilities []string `json:"weapon_abilities"`
}

// dictionarySchema constrains the reference dictionary file: two arrays of
// non-empty strings, nothing else.
func dictionarySchema() map[string]any {
	names := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"common_abilities": names,
			"weapon_abilities": names,
		},
		"required":             []string{"common_abilities"},
		"additionalProperties": false,
	}
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// Load reads the reference dictionary from path. A missing file is the
// documented degraded mode: it logs a warning and returns the empty Reference
// rather than failing the run. A present-but-malformed file is an error.
func Load(path string, logger *slog.Logger) (*Reference, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("reference.missing", "path", path)
			return Empty(), nil
		}
		return nil, fmt.Errorf("read reference: %w", err)
	}

	if err := validateAgainstSchema(dictionarySchema(), raw); err != nil {
		return nil, common.NewAppError("REFERENCE_INVALID", fmt.Sprintf("reference %s", path), err)
	}

	var doc dictionaryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode reference %s: %w", path, err)
	}

	ref := New(doc.CommonAbilities, doc.WeaponAbilities)
	logger.Info("reference.loaded",
		"path", path,
		"common", len(ref.Common),
		"weapon", len(ref.Weapon),
	)
	return ref, nil
}
