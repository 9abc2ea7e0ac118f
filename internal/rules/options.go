package rules

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/wizzomafizzo/commitlint/internal/message"
)

const (
	ScopeName = "scope"
	TypeName  = "type"
)

// allowed is the options check shared by Scope and Type. Absent and empty
// values are distinct: only an absent value may be optional.
func allowed(value *string, options []string, optional bool) bool {
	switch {
	case value == nil:
		return len(options) == 0 || optional
	case *value == "":
		return len(options) == 0
	default:
		return slices.Contains(options, *value)
	}
}

func optionsMessage(fieldName string, value *string, options []string) string {
	if len(options) == 0 {
		return fieldName + "s are not allowed"
	}

	v := ""
	if value != nil {
		v = *value
	}
	return fmt.Sprintf("%s %s is not allowed. Only %s are allowed", fieldName, v, quoteList(options))
}

// quoteList renders options as ["a", "b"].
func quoteList(options []string) string {
	quoted := make([]string, len(options))
	for i, option := range options {
		quoted[i] = strconv.Quote(option)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Scope restricts the scope to Options. With Optional set, a message without
// a scope passes.
type Scope struct {
	Level    *Level   `json:"level,omitempty" yaml:"level,omitempty"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
	Optional bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
}

func (*Scope) Name() string        { return ScopeName }
func (*Scope) DefaultLevel() Level { return LevelError }

func (r *Scope) Message(msg *message.Message) string {
	return optionsMessage("scope", msg.Scope, r.Options)
}

func (r *Scope) Validate(msg *message.Message) *Violation {
	if allowed(msg.Scope, r.Options, r.Optional) {
		return nil
	}
	return violation(r, r.Level, r.Message(msg))
}

// Type restricts the type to Options.
type Type struct {
	Level   *Level   `json:"level,omitempty" yaml:"level,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

func (*Type) Name() string        { return TypeName }
func (*Type) DefaultLevel() Level { return LevelError }

func (r *Type) Message(msg *message.Message) string {
	return optionsMessage("type", msg.Type, r.Options)
}

func (r *Type) Validate(msg *message.Message) *Violation {
	if allowed(msg.Type, r.Options, false) {
		return nil
	}
	return violation(r, r.Level, r.Message(msg))
}
