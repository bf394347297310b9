package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, v json.Marshaler) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestParseOutput_FencedInlineRecord(t *testing.T) {
	record := ParseOutput("```{\"name\": \"Jane Doe\", \"phone\": \"\", \"skills\": []}```")

	assert.Equal(t, `{"name":"Jane Doe"}`, marshal(t, record))
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "plain object",
			raw:      `{"name": "Jane Doe", "email": "jane@example.com"}`,
			expected: `{"name":"Jane Doe","email":"jane@example.com"}`,
		},
		{
			name:     "json fence with language tag",
			raw:      "```json\n{\"name\": \"Jane Doe\"}\n```",
			expected: `{"name":"Jane Doe"}`,
		},
		{
			name:     "triple quote fence",
			raw:      "\"\"\"{\"name\": \"Jane Doe\"}\"\"\"",
			expected: `{"name":"Jane Doe"}`,
		},
		{
			name:     "surrounding whitespace",
			raw:      "\n\n   {\"name\": \"  Jane Doe  \"}   \n",
			expected: `{"name":"Jane Doe"}`,
		},
		{
			name:     "key order preserved",
			raw:      `{"zeta": "z", "alpha": "a", "mid": "m"}`,
			expected: `{"zeta":"z","alpha":"a","mid":"m"}`,
		},
		{
			name:     "nested containers emptied bottom up",
			raw:      `{"name": "Jane", "experience": [{"company": "", "description": " "}], "education": [{"degree": null, "year": ""}, {}], "projects": [[], {}, ""]}`,
			expected: `{"name":"Jane"}`,
		},
		{
			name:     "numbers and booleans pass through",
			raw:      `{"education": [{"year": 2019, "percentage_or_cgpa": 8.70}], "open_to_work": false}`,
			expected: `{"education":[{"year":2019,"percentage_or_cgpa":8.70}],"open_to_work":false}`,
		},
		{
			name:     "duplicate keys keep last value",
			raw:      `{"name": "First", "email": "a@b.c", "name": "Second"}`,
			expected: `{"name":"Second","email":"a@b.c"}`,
		},
		{
			name:     "invalid json",
			raw:      `{"name": "Jane",`,
			expected: `{}`,
		},
		{
			name:     "prose answer",
			raw:      "Here is the parsed resume: name Jane Doe",
			expected: `{}`,
		},
		{
			name:     "top level array",
			raw:      `[{"name": "Jane"}]`,
			expected: `{}`,
		},
		{
			name:     "top level string",
			raw:      `"Jane Doe"`,
			expected: `{}`,
		},
		{
			name:     "empty",
			raw:      "",
			expected: `{}`,
		},
		{
			name:     "everything empty",
			raw:      `{"name": "", "skills": [], "summary": null, "education": {}}`,
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, marshal(t, ParseOutput(tt.raw)))
		})
	}
}

func TestParseOutput_Idempotent(t *testing.T) {
	inputs := []string{
		`{"name": " Jane ", "technical_skills": ["Go", " ", ""], "experience": [{"company": "Acme", "end_date": ""}]}`,
		"```json\n{\"summary\": \"  Builds things.  \", \"projects\": [{}]}\n```",
		`{"a": {"b": {"c": {"d": ""}}}, "e": [[["x"]]]}`,
		`not json`,
	}

	for _, input := range inputs {
		first := ParseOutput(input)
		second := ParseOutput(marshal(t, first))

		assert.Equal(t, marshal(t, first), marshal(t, second), "input %q", input)
	}
}

func TestParseOutput_EscapedStrings(t *testing.T) {
	record := ParseOutput(`{"summary": "Line one\nLine \"two\" é"}`)

	v, ok := record.Get("summary")
	require.True(t, ok)
	assert.Equal(t, String("Line one\nLine \"two\" é"), v)
}

func TestRecord_Map(t *testing.T) {
	record := ParseOutput(`{"name": "Jane", "technical_skills": ["Go", "SQL"], "education": [{"year": 2019}]}`)

	m := record.Map()
	assert.Equal(t, "Jane", m["name"])
	assert.Equal(t, []any{"Go", "SQL"}, m["technical_skills"])
	assert.Equal(t, []any{map[string]any{"year": json.Number("2019")}}, m["education"])
}

func TestRecord_Empty(t *testing.T) {
	var record Record

	assert.True(t, record.IsEmpty())
	assert.Equal(t, `{}`, marshal(t, record))
	assert.Empty(t, record.Map())
}
