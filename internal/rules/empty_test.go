package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/commitlint/internal/message"
)

func TestEmptyRules(t *testing.T) {
	t.Parallel()

	full := &message.Message{
		Subject:     strPtr("feat(scope): broadcast $destroy event"),
		Type:        strPtr("feat"),
		Scope:       strPtr("scope"),
		Description: strPtr("broadcast $destroy event"),
		Body:        strPtr("Hello world"),
		Footers:     map[string]string{"Link": "Hello"},
	}
	blank := &message.Message{
		Type:        strPtr(""),
		Scope:       strPtr(""),
		Description: strPtr(""),
	}
	missing := &message.Message{}

	tests := []struct {
		rule        Rule
		name        string
		wantMessage string
		passFull    bool
		passBlank   bool
		passMissing bool
	}{
		{
			name:        "body-empty",
			rule:        &BodyEmpty{},
			wantMessage: "body is empty",
			passFull:    true,
		},
		{
			name:        "description-empty",
			rule:        &DescriptionEmpty{},
			wantMessage: "description is empty or missing space in the beginning",
			passFull:    true,
		},
		{
			name:        "footers-empty",
			rule:        &FootersEmpty{},
			wantMessage: "footers are empty",
			passFull:    true,
		},
		{
			name:        "scope-empty",
			rule:        &ScopeEmpty{},
			wantMessage: "scope is empty",
			passFull:    true,
			passBlank:   true,
		},
		{
			name:        "subject-empty",
			rule:        &SubjectEmpty{},
			wantMessage: "subject is empty",
			passFull:    true,
		},
		{
			name:        "type-empty",
			rule:        &TypeEmpty{},
			wantMessage: "type is empty",
			passFull:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.name, tt.rule.Name())

			cases := []struct {
				msg   *message.Message
				label string
				pass  bool
			}{
				{msg: full, label: "full", pass: tt.passFull},
				{msg: blank, label: "blank", pass: tt.passBlank},
				{msg: missing, label: "missing", pass: tt.passMissing},
			}

			for _, c := range cases {
				v := tt.rule.Validate(c.msg)
				if c.pass {
					assert.Nil(t, v, c.label)
					continue
				}
				require.NotNil(t, v, c.label)
				assert.Equal(t, LevelError, v.Level, c.label)
				assert.Equal(t, tt.wantMessage, v.Message, c.label)
			}
		})
	}
}

func TestEmptyRules_ConfiguredLevel(t *testing.T) {
	t.Parallel()

	rule := &BodyEmpty{Level: levelPtr(LevelWarning)}
	v := rule.Validate(&message.Message{})

	require.NotNil(t, v)
	assert.Equal(t, LevelWarning, v.Level)
}

func TestSubjectEmpty_ParsedMessageAlwaysHasSubject(t *testing.T) {
	t.Parallel()

	rule := &SubjectEmpty{}
	assert.Nil(t, rule.Validate(message.Parse("")))
	assert.Nil(t, rule.Validate(message.Parse("anything")))
}

func TestScopeEmpty_ParsedMessages(t *testing.T) {
	t.Parallel()

	rule := &ScopeEmpty{}
	assert.Nil(t, rule.Validate(message.Parse("feat(cli): add flag")))
	assert.Nil(t, rule.Validate(message.Parse("feat(): add flag")))
	assert.NotNil(t, rule.Validate(message.Parse("feat: add flag")))
}
