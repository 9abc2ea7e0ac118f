package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInput asks for a single value. An empty answer selects defaultValue.
func TextInput(prompter Prompter, prompt, defaultValue string) (string, error) {
	label := prompt
	if defaultValue != "" {
		label = fmt.Sprintf("%s [%s]", prompt, defaultValue)
	}

	result, err := ask(prompter, label)
	if err != nil {
		return "", err
	}
	if result = strings.TrimSpace(result); result == "" {
		return defaultValue, nil
	}
	return result, nil
}

// ListInput asks for a comma separated list. Entries are trimmed, blanks and
// duplicates dropped. An empty answer selects defaults.
func ListInput(prompter Prompter, prompt string, defaults []string) ([]string, error) {
	label := prompt
	if len(defaults) > 0 {
		label = fmt.Sprintf("%s [%s]", prompt, strings.Join(defaults, ", "))
	}

	result, err := ask(prompter, label)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result) == "" {
		return defaults, nil
	}
	return SplitList(result), nil
}

// Confirm asks a yes/no question. An empty answer selects defaultValue.
func Confirm(prompter Prompter, prompt string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	for {
		result, err := ask(prompter, fmt.Sprintf("%s [%s]", prompt, hint))
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(result)) {
		case "":
			return defaultValue, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		color.Yellow("Please answer y or n")
	}
}

// SplitList parses "a, b,,a" into ["a", "b"].
func SplitList(value string) []string {
	seen := make(map[string]bool)
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
	}
	return items
}

func ask(prompter Prompter, label string) (string, error) {
	coloredPrompt := color.CyanString(label + ": ")
	result, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}
