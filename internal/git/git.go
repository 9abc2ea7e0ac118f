// Package git reads commit messages from a repository history.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/wizzomafizzo/commitlint/internal/logging"
)

// ErrNoMessages is returned when a revision range contains no commits.
var ErrNoMessages = errors.New("no commit messages found in range")

// Commit headers as printed by "commit %H". SHA-256 repositories use 64 hex digits.
var commitDelimiter = regexp.MustCompile(`(?m)^commit [0-9a-f]{40}(?:[0-9a-f]{24})?$`)

// ReadOptions selects the commits to read. Empty From or To means HEAD.
type ReadOptions struct {
	From string
	To   string
	// Path limits history to commits touching this path.
	Path string
}

// RevisionRange builds the git revision range for the options.
func (o ReadOptions) RevisionRange() string {
	switch {
	case o.From != "" && o.To != "":
		return o.From + ".." + o.To
	case o.From != "":
		return o.From + "..HEAD"
	case o.To != "":
		return "HEAD.." + o.To
	default:
		return "HEAD"
	}
}

// Args returns the git arguments used by Read.
func (o ReadOptions) Args() []string {
	path := o.Path
	if path == "" {
		path = "."
	}
	return []string{
		"log",
		"--pretty=format:commit %H%n%B",
		"--no-merges",
		"--no-decorate",
		"--reverse",
		o.RevisionRange(),
		"--",
		path,
	}
}

// Read runs git log in dir and returns the messages oldest first.
func Read(ctx context.Context, dir string, opts ReadOptions) ([]string, error) {
	log := logging.Get(ctx)

	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}

	args := opts.Args()
	log.Debug().Str("dir", dir).Strs("args", args).Msg("reading commit messages")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git log %s failed: %w: %s",
			opts.RevisionRange(), err, strings.TrimSpace(stderr.String()))
	}

	messages := ExtractCommitMessages(stdout.String())
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMessages, opts.RevisionRange())
	}

	log.Debug().Int("count", len(messages)).Msg("read commit messages")
	return messages, nil
}

// ExtractCommitMessages splits git log output on commit header lines.
// Line endings are normalized first so CRLF headers still delimit. Each message
// is trimmed and blank chunks are dropped.
func ExtractCommitMessages(output string) []string {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	chunks := commitDelimiter.Split(output, -1)
	messages := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		messages = append(messages, chunk)
	}
	return messages
}
