// Package message parses conventional commit messages into their structural parts.
package message

import (
	"regexp"
	"strings"
)

// subjectPattern matches "<type>(<scope>)!: <description>". The "!" breaking
// change marker is accepted but not captured. The type accepts Unicode word
// characters, not just ASCII.
var subjectPattern = regexp.MustCompile(`^([\p{L}\p{M}\p{Nd}\p{Pc}]+)(?:\(([^)]*)\))?(?:!)?:\s?(.*)$`)

// Message is a parsed commit message. It is never modified after Parse.
//
//	<type>[optional scope]: <description>   <- Subject
//
//	[optional body]                         <- Body
//
//	[optional footer(s)]                    <- Footers
type Message struct {
	Subject     *string
	Type        *string
	Scope       *string
	Description *string
	Body        *string
	Footers     map[string]string
	Raw         string
}

// Parse splits raw into subject, body and footers and then breaks the subject
// into type, scope and description.
func Parse(raw string) *Message {
	subject, body, footers := ParseCommitMessage(raw)
	typ, scope, description := ParseSubject(subject)

	return &Message{
		Raw:         raw,
		Subject:     &subject,
		Type:        typ,
		Scope:       scope,
		Description: description,
		Body:        body,
		Footers:     footers,
	}
}

// ParseSubject breaks a subject line into type, scope and description.
// When the subject is not in conventional form, type and scope are nil and the
// whole subject becomes the description.
func ParseSubject(subject string) (typ, scope, description *string) {
	match := subjectPattern.FindStringSubmatchIndex(subject)
	if match == nil {
		return nil, nil, &subject
	}

	t := subject[match[2]:match[3]]
	typ = &t

	// Group 2 is unset (-1) when no parenthesized scope was written at all.
	if match[4] >= 0 {
		s := subject[match[4]:match[5]]
		scope = &s
	}

	d := subject[match[6]:match[7]]
	description = &d

	return typ, scope, description
}

type scanState int

const (
	beforeBody scanState = iota
	inBody
	inFooter
)

// ParseCommitMessage returns the trimmed subject line, the body and the
// footers of raw. Body and footers are nil when the message has none.
func ParseCommitMessage(raw string) (subject string, body *string, footers map[string]string) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return "", nil, nil
	}

	subject = strings.TrimSpace(lines[0])

	var bodyText strings.Builder
	state := beforeBody

	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if state == inBody {
				state = inFooter
			}
			continue
		}

		switch state {
		case beforeBody:
			state = inBody
			_, _ = bodyText.WriteString(trimmed)
		case inBody:
			_ = bodyText.WriteByte('\n')
			_, _ = bodyText.WriteString(trimmed)
		case inFooter:
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}
			if footers == nil {
				footers = make(map[string]string)
			}
			footers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}

	if state != beforeBody {
		b := bodyText.String()
		body = &b
	}

	return subject, body, footers
}

// splitLines splits on "\n", dropping a trailing "\r" from each line and the
// empty element produced by a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
