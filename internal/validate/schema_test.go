package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDocument_AcceptsAssembledRecord(t *testing.T) {
	raw, err := json.Marshal(validRecord())
	require.NoError(t, err)

	require.NoError(t, ValidateDocument(raw))
}

func TestValidateDocument_RejectsWrongShapes(t *testing.T) {
	cases := map[string]string{
		"cards not a list":   `{"faction":"x","faction_ability":{"name":"a","description":"b"},"cards":{}}`,
		"missing faction":    `{"faction_ability":{"name":"a","description":"b"},"cards":[]}`,
		"bad command type":   `{"faction":"x","faction_ability":{"name":"a","description":"b"},"cards":[{"name":"c","page":2,"keywords":[],"rank":null,"version":"2.2.0","weapons":[],"abilities":{"common":[],"unique":[],"command":[{"name":"n","type":"BLAST","description":"d"}]}}]}`,
		"page below minimum": `{"faction":"x","faction_ability":{"name":"a","description":"b"},"cards":[{"name":"c","page":1,"keywords":[],"rank":null,"version":"2.2.0","weapons":[],"abilities":{"common":[],"unique":[],"command":[]}}]}`,
		"not json":           `{`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, ValidateDocument([]byte(raw)))
		})
	}
}
