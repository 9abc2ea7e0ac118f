package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPrompter replays answers in order and records the prompts it saw.
type MockPrompter struct {
	err     error
	answers []string
	prompts []string
}

func (m *MockPrompter) Prompt(p string) (string, error) {
	m.prompts = append(m.prompts, p)
	if m.err != nil {
		return "", m.err
	}
	if len(m.answers) == 0 {
		return "", io.EOF
	}
	answer := m.answers[0]
	m.answers = m.answers[1:]
	return answer, nil
}

func (*MockPrompter) Close() error {
	return nil
}

func TestTextInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		answer       string
		defaultValue string
		want         string
	}{
		{name: "answer", answer: "web", want: "web"},
		{name: "answer trimmed", answer: "  web ", want: "web"},
		{name: "empty uses default", answer: "", defaultValue: "api", want: "api"},
		{name: "answer overrides default", answer: "cli", defaultValue: "api", want: "cli"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &MockPrompter{answers: []string{tt.answer}}
			got, err := TextInput(mock, "Scope", tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, mock.prompts, 1)
			assert.Contains(t, mock.prompts[0], "Scope")
		})
	}
}

func TestListInput(t *testing.T) {
	t.Parallel()

	mock := &MockPrompter{answers: []string{"feat, fix,, feat ,docs"}}
	got, err := ListInput(mock, "Allowed types", []string{"feat"})
	require.NoError(t, err)
	assert.Equal(t, []string{"feat", "fix", "docs"}, got)
	assert.Contains(t, mock.prompts[0], "[feat]")

	mock = &MockPrompter{answers: []string{"  "}}
	got, err = ListInput(mock, "Allowed types", []string{"feat", "fix"})
	require.NoError(t, err)
	assert.Equal(t, []string{"feat", "fix"}, got)
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		answers      []string
		defaultValue bool
		want         bool
	}{
		{name: "yes", answers: []string{"y"}, want: true},
		{name: "YES", answers: []string{"YES"}, want: true},
		{name: "no", answers: []string{"n"}, defaultValue: true, want: false},
		{name: "empty default true", answers: []string{""}, defaultValue: true, want: true},
		{name: "empty default false", answers: []string{""}, want: false},
		{name: "reasks on junk", answers: []string{"maybe", "yes"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &MockPrompter{answers: tt.answers}
			got, err := Confirm(mock, "Overwrite", tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, mock.prompts, len(tt.answers))
		})
	}
}

func TestPrompt_Cancelled(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{liner.ErrPromptAborted, io.EOF} {
		_, err := TextInput(&MockPrompter{err: cause}, "Scope", "")
		require.ErrorIs(t, err, ErrCancelled)

		_, err = ListInput(&MockPrompter{err: cause}, "Types", nil)
		require.ErrorIs(t, err, ErrCancelled)

		_, err = Confirm(&MockPrompter{err: cause}, "Sure", false)
		require.ErrorIs(t, err, ErrCancelled)
	}
}

func TestPrompt_OtherError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := TextInput(&MockPrompter{err: boom}, "Scope", "")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, SplitList("a, b,,a"))
	assert.Empty(t, SplitList(" , "))
}
