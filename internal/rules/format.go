package rules

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/wizzomafizzo/commitlint/internal/message"
)

const (
	DescriptionFormatName = "description-format"
	ScopeFormatName       = "scope-format"
	TypeFormatName        = "type-format"
)

// compiledPattern compiles a rule's format once and remembers the outcome,
// including a compile error.
type compiledPattern struct {
	re   *regexp.Regexp
	err  error
	once sync.Once
}

func (p *compiledPattern) get(expr string) (*regexp.Regexp, error) {
	p.once.Do(func() {
		p.re, p.err = regexp.Compile(expr)
	})
	return p.re, p.err
}

// matchFormat is the shared check behind the *-format rules. A pattern that
// does not compile is reported as a violation carrying the regexp error.
func matchFormat(
	rule Rule, level *Level, format *string, cache *compiledPattern, field *string, fieldName string,
	msg *message.Message,
) *Violation {
	if format == nil {
		return nil
	}

	re, err := cache.get(*format)
	if err != nil {
		return violation(rule, level, err.Error())
	}

	if field == nil {
		return violation(rule, level, "found no "+fieldName)
	}

	if !re.MatchString(*field) {
		return violation(rule, level, rule.Message(msg))
	}

	return nil
}

func formatMessage(fieldName string, format *string) string {
	pattern := ""
	if format != nil {
		pattern = *format
	}
	return fmt.Sprintf("%s format does not match format: %s", fieldName, pattern)
}

// DescriptionFormat fails when the description does not match Format.
type DescriptionFormat struct {
	Level  *Level  `json:"level,omitempty" yaml:"level,omitempty"`
	Format *string `json:"format,omitempty" yaml:"format,omitempty"`
	cache  compiledPattern
}

func (*DescriptionFormat) Name() string        { return DescriptionFormatName }
func (*DescriptionFormat) DefaultLevel() Level { return LevelError }

func (r *DescriptionFormat) Message(*message.Message) string {
	return formatMessage("description", r.Format)
}

func (r *DescriptionFormat) Validate(msg *message.Message) *Violation {
	return matchFormat(r, r.Level, r.Format, &r.cache, msg.Description, "description", msg)
}

// ScopeFormat fails when the scope does not match Format.
type ScopeFormat struct {
	Level  *Level  `json:"level,omitempty" yaml:"level,omitempty"`
	Format *string `json:"format,omitempty" yaml:"format,omitempty"`
	cache  compiledPattern
}

func (*ScopeFormat) Name() string        { return ScopeFormatName }
func (*ScopeFormat) DefaultLevel() Level { return LevelError }

func (r *ScopeFormat) Message(*message.Message) string {
	return formatMessage("scope", r.Format)
}

func (r *ScopeFormat) Validate(msg *message.Message) *Violation {
	return matchFormat(r, r.Level, r.Format, &r.cache, msg.Scope, "scope", msg)
}

// TypeFormat fails when the type does not match Format.
type TypeFormat struct {
	Level  *Level  `json:"level,omitempty" yaml:"level,omitempty"`
	Format *string `json:"format,omitempty" yaml:"format,omitempty"`
	cache  compiledPattern
}

func (*TypeFormat) Name() string        { return TypeFormatName }
func (*TypeFormat) DefaultLevel() Level { return LevelError }

func (r *TypeFormat) Message(*message.Message) string {
	return formatMessage("type", r.Format)
}

func (r *TypeFormat) Validate(msg *message.Message) *Violation {
	return matchFormat(r, r.Level, r.Format, &r.cache, msg.Type, "type", msg)
}
