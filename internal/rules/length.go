package rules

import (
	"fmt"

	"github.com/wizzomafizzo/commitlint/internal/message"
)

const (
	BodyMaxLengthName        = "body-max-length"
	DescriptionMaxLengthName = "description-max-length"
	ScopeMaxLengthName       = "scope-max-length"
	TypeMaxLengthName        = "type-max-length"

	// DefaultMaxLength applies when a max-length rule omits "length".
	DefaultMaxLength = 72
)

// maxLength is the shared check behind the *-max-length rules. A missing
// field fails, and so does a field whose byte length reaches the limit.
func maxLength(rule Rule, level *Level, field *string, limit int, msg *message.Message) *Violation {
	if field == nil || len(*field) >= limit {
		return violation(rule, level, rule.Message(msg))
	}
	return nil
}

func lengthOr(length *int) int {
	if length == nil {
		return DefaultMaxLength
	}
	return *length
}

// BodyMaxLength fails when the body is missing or too long.
type BodyMaxLength struct {
	Level  *Level `json:"level,omitempty" yaml:"level,omitempty"`
	Length *int   `json:"length,omitempty" yaml:"length,omitempty" validate:"omitempty,gte=0"`
}

func (*BodyMaxLength) Name() string        { return BodyMaxLengthName }
func (*BodyMaxLength) DefaultLevel() Level { return LevelError }

func (r *BodyMaxLength) Message(*message.Message) string {
	return fmt.Sprintf("body is longer than %d characters", lengthOr(r.Length))
}

func (r *BodyMaxLength) Validate(msg *message.Message) *Violation {
	return maxLength(r, r.Level, msg.Body, lengthOr(r.Length), msg)
}

// DescriptionMaxLength fails when the description is missing or too long.
type DescriptionMaxLength struct {
	Level  *Level `json:"level,omitempty" yaml:"level,omitempty"`
	Length *int   `json:"length,omitempty" yaml:"length,omitempty" validate:"omitempty,gte=0"`
}

func (*DescriptionMaxLength) Name() string        { return DescriptionMaxLengthName }
func (*DescriptionMaxLength) DefaultLevel() Level { return LevelError }

func (r *DescriptionMaxLength) Message(*message.Message) string {
	return fmt.Sprintf("description is longer than %d characters", lengthOr(r.Length))
}

func (r *DescriptionMaxLength) Validate(msg *message.Message) *Violation {
	return maxLength(r, r.Level, msg.Description, lengthOr(r.Length), msg)
}

// ScopeMaxLength fails when the scope is missing or too long.
type ScopeMaxLength struct {
	Level  *Level `json:"level,omitempty" yaml:"level,omitempty"`
	Length *int   `json:"length,omitempty" yaml:"length,omitempty" validate:"omitempty,gte=0"`
}

func (*ScopeMaxLength) Name() string        { return ScopeMaxLengthName }
func (*ScopeMaxLength) DefaultLevel() Level { return LevelError }

func (r *ScopeMaxLength) Message(*message.Message) string {
	return fmt.Sprintf("scope is longer than %d characters", lengthOr(r.Length))
}

func (r *ScopeMaxLength) Validate(msg *message.Message) *Violation {
	return maxLength(r, r.Level, msg.Scope, lengthOr(r.Length), msg)
}

// TypeMaxLength fails when the type is missing or too long.
type TypeMaxLength struct {
	Level  *Level `json:"level,omitempty" yaml:"level,omitempty"`
	Length *int   `json:"length,omitempty" yaml:"length,omitempty" validate:"omitempty,gte=0"`
}

func (*TypeMaxLength) Name() string        { return TypeMaxLengthName }
func (*TypeMaxLength) DefaultLevel() Level { return LevelError }

func (r *TypeMaxLength) Message(*message.Message) string {
	return fmt.Sprintf("type is longer than %d characters", lengthOr(r.Length))
}

func (r *TypeMaxLength) Validate(msg *message.Message) *Violation {
	return maxLength(r, r.Level, msg.Type, lengthOr(r.Length), msg)
}
