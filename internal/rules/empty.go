package rules

import "github.com/wizzomafizzo/commitlint/internal/message"

const (
	BodyEmptyName        = "body-empty"
	DescriptionEmptyName = "description-empty"
	FootersEmptyName     = "footers-empty"
	ScopeEmptyName       = "scope-empty"
	SubjectEmptyName     = "subject-empty"
	TypeEmptyName        = "type-empty"
)

// BodyEmpty fails when the message has no body.
type BodyEmpty struct {
	Level *Level `json:"level,omitempty" yaml:"level,omitempty"`
}

func (*BodyEmpty) Name() string                    { return BodyEmptyName }
func (*BodyEmpty) DefaultLevel() Level             { return LevelError }
func (*BodyEmpty) Message(*message.Message) string { return "body is empty" }

func (r *BodyEmpty) Validate(msg *message.Message) *Violation {
	if msg.Body == nil {
		return violation(r, r.Level, r.Message(msg))
	}
	return nil
}

// DescriptionEmpty fails when the description is missing or blank.
type DescriptionEmpty struct {
	Level *Level `json:"level,omitempty" yaml:"level,omitempty"`
}

func (*DescriptionEmpty) Name() string        { return DescriptionEmptyName }
func (*DescriptionEmpty) DefaultLevel() Level { return LevelError }

func (*DescriptionEmpty) Message(*message.Message) string {
	return "description is empty or missing space in the beginning"
}

func (r *DescriptionEmpty) Validate(msg *message.Message) *Violation {
	if msg.Description == nil || *msg.Description == "" {
		return violation(r, r.Level, r.Message(msg))
	}
	return nil
}

// FootersEmpty fails when the message has no footers.
type FootersEmpty struct {
	Level *Level `json:"level,omitempty" yaml:"level,omitempty"`
}

func (*FootersEmpty) Name() string                    { return FootersEmptyName }
func (*FootersEmpty) DefaultLevel() Level             { return LevelError }
func (*FootersEmpty) Message(*message.Message) string { return "footers are empty" }

func (r *FootersEmpty) Validate(msg *message.Message) *Violation {
	if msg.Footers == nil {
		return violation(r, r.Level, r.Message(msg))
	}
	return nil
}

// ScopeEmpty fails when no scope was written. An empty "()" scope passes.
type ScopeEmpty struct {
	Level *Level `json:"level,omitempty" yaml:"level,omitempty"`
}

func (*ScopeEmpty) Name() string                    { return ScopeEmptyName }
func (*ScopeEmpty) DefaultLevel() Level             { return LevelError }
func (*ScopeEmpty) Message(*message.Message) string { return "scope is empty" }

func (r *ScopeEmpty) Validate(msg *message.Message) *Violation {
	if msg.Scope == nil {
		return violation(r, r.Level, r.Message(msg))
	}
	return nil
}

// SubjectEmpty fails when the message carries no subject.
type SubjectEmpty struct {
	Level *Level `json:"level,omitempty" yaml:"level,omitempty"`
}

func (*SubjectEmpty) Name() string                    { return SubjectEmptyName }
func (*SubjectEmpty) DefaultLevel() Level             { return LevelError }
func (*SubjectEmpty) Message(*message.Message) string { return "subject is empty" }

func (r *SubjectEmpty) Validate(msg *message.Message) *Violation {
	if msg.Subject == nil {
		return violation(r, r.Level, r.Message(msg))
	}
	return nil
}

// TypeEmpty fails when the type is missing or blank.
type TypeEmpty struct {
	Level *Level `json:"level,omitempty" yaml:"level,omitempty"`
}

func (*TypeEmpty) Name() string                    { return TypeEmptyName }
func (*TypeEmpty) DefaultLevel() Level             { return LevelError }
func (*TypeEmpty) Message(*message.Message) string { return "type is empty" }

func (r *TypeEmpty) Validate(msg *message.Message) *Violation {
	if msg.Type == nil || *msg.Type == "" {
		return violation(r, r.Level, r.Message(msg))
	}
	return nil
}
