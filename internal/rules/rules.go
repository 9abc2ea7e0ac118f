// Package rules implements the lint rules evaluated against parsed commit messages.
package rules

import (
	"fmt"

	"github.com/wizzomafizzo/commitlint/internal/message"
	"gopkg.in/yaml.v3"
)

// Level is the severity attached to a violation.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelIgnore  Level = "ignore"
)

// ParseLevel converts a configuration string to a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelError, LevelWarning, LevelIgnore:
		return Level(s), nil
	default:
		return "", fmt.Errorf("invalid level %q: must be one of: error, warning, ignore", s)
	}
}

// UnmarshalText rejects unknown level names.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// UnmarshalYAML rejects unknown level names.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("level must be a string: %w", err)
	}
	return l.UnmarshalText([]byte(s))
}

// Violation is a single failed rule check.
type Violation struct {
	Level   Level  `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Level, v.Message)
}

// Rule is a single named check over a parsed message.
type Rule interface {
	// Name is the configuration key of the rule.
	Name() string
	// DefaultLevel is used when the rule has no level configured.
	DefaultLevel() Level
	// Message formats the violation text for msg.
	Message(msg *message.Message) string
	// Validate returns nil when msg satisfies the rule.
	Validate(msg *message.Message) *Violation
}

// Rules is the set of configured rules. A nil field means the rule is off.
type Rules struct {
	BodyEmpty            *BodyEmpty            `json:"body-empty,omitempty" yaml:"body-empty,omitempty"`
	BodyMaxLength        *BodyMaxLength        `json:"body-max-length,omitempty" yaml:"body-max-length,omitempty"`
	DescriptionEmpty     *DescriptionEmpty     `json:"description-empty,omitempty" yaml:"description-empty,omitempty"`
	DescriptionFormat    *DescriptionFormat    `json:"description-format,omitempty" yaml:"description-format,omitempty"`
	DescriptionMaxLength *DescriptionMaxLength `json:"description-max-length,omitempty" yaml:"description-max-length,omitempty"`
	FootersEmpty         *FootersEmpty         `json:"footers-empty,omitempty" yaml:"footers-empty,omitempty"`
	Scope                *Scope                `json:"scope,omitempty" yaml:"scope,omitempty"`
	ScopeEmpty           *ScopeEmpty           `json:"scope-empty,omitempty" yaml:"scope-empty,omitempty"`
	ScopeFormat          *ScopeFormat          `json:"scope-format,omitempty" yaml:"scope-format,omitempty"`
	ScopeMaxLength       *ScopeMaxLength       `json:"scope-max-length,omitempty" yaml:"scope-max-length,omitempty"`
	SubjectEmpty         *SubjectEmpty         `json:"subject-empty,omitempty" yaml:"subject-empty,omitempty"`
	Type                 *Type                 `json:"type,omitempty" yaml:"type,omitempty"`
	TypeEmpty            *TypeEmpty            `json:"type-empty,omitempty" yaml:"type-empty,omitempty"`
	TypeFormat           *TypeFormat           `json:"type-format,omitempty" yaml:"type-format,omitempty"`
	TypeMaxLength        *TypeMaxLength        `json:"type-max-length,omitempty" yaml:"type-max-length,omitempty"`
}

// Default returns the rule set used when no configuration file exists.
func Default() Rules {
	return Rules{
		DescriptionEmpty: &DescriptionEmpty{},
		SubjectEmpty:     &SubjectEmpty{},
		TypeEmpty:        &TypeEmpty{},
	}
}

// Names lists every rule name in evaluation order.
func Names() []string {
	return []string{
		BodyEmptyName,
		BodyMaxLengthName,
		DescriptionEmptyName,
		DescriptionFormatName,
		DescriptionMaxLengthName,
		FootersEmptyName,
		ScopeName,
		ScopeEmptyName,
		ScopeFormatName,
		ScopeMaxLengthName,
		SubjectEmptyName,
		TypeName,
		TypeEmptyName,
		TypeFormatName,
		TypeMaxLengthName,
	}
}

// Active returns the configured rules in evaluation order.
func (r *Rules) Active() []Rule {
	active := make([]Rule, 0, len(Names()))
	add := func(enabled bool, rule Rule) {
		if enabled {
			active = append(active, rule)
		}
	}

	add(r.BodyEmpty != nil, r.BodyEmpty)
	add(r.BodyMaxLength != nil, r.BodyMaxLength)
	add(r.DescriptionEmpty != nil, r.DescriptionEmpty)
	add(r.DescriptionFormat != nil, r.DescriptionFormat)
	add(r.DescriptionMaxLength != nil, r.DescriptionMaxLength)
	add(r.FootersEmpty != nil, r.FootersEmpty)
	add(r.Scope != nil, r.Scope)
	add(r.ScopeEmpty != nil, r.ScopeEmpty)
	add(r.ScopeFormat != nil, r.ScopeFormat)
	add(r.ScopeMaxLength != nil, r.ScopeMaxLength)
	add(r.SubjectEmpty != nil, r.SubjectEmpty)
	add(r.Type != nil, r.Type)
	add(r.TypeEmpty != nil, r.TypeEmpty)
	add(r.TypeFormat != nil, r.TypeFormat)
	add(r.TypeMaxLength != nil, r.TypeMaxLength)

	return active
}

// Validate runs every configured rule against msg and collects the violations
// in evaluation order. All rules run even after a failure.
func (r *Rules) Validate(msg *message.Message) []Violation {
	var violations []Violation
	for _, rule := range r.Active() {
		if v := rule.Validate(msg); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

func levelOr(level *Level, fallback Level) Level {
	if level == nil {
		return fallback
	}
	return *level
}

func violation(rule Rule, level *Level, text string) *Violation {
	return &Violation{
		Level:   levelOr(level, rule.DefaultLevel()),
		Message: text,
	}
}
