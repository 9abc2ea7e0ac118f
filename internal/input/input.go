// Package input acquires the commit messages to lint.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"github.com/wizzomafizzo/commitlint/internal/git"
	"github.com/wizzomafizzo/commitlint/internal/logging"
	"golang.org/x/term"
)

// Source identifies where messages were read from.
type Source string

const (
	SourceEdit          Source = "edit"
	SourceStdin         Source = "stdin"
	SourceGit           Source = "git"
	SourceCommitEditMsg Source = "commit-editmsg"
)

// editDisabled turns --edit off, matching commitlint's "--edit false".
const editDisabled = "false"

// Options mirror the message selection flags.
type Options struct {
	Edit string
	From string
	To   string
	// Dir is the directory git runs in and COMMIT_EDITMSG is resolved from.
	Dir string
}

type gitReader func(ctx context.Context, dir string, opts git.ReadOptions) ([]string, error)

// Reader resolves Options to raw commit messages.
type Reader struct {
	fs      afero.Fs
	stdin   io.Reader
	readGit gitReader
}

// NewReader creates a Reader. stdin may be nil when no input stream exists.
func NewReader(fs afero.Fs, stdin io.Reader) *Reader {
	return &Reader{fs: fs, stdin: stdin, readGit: git.Read}
}

// Read returns the messages selected by opts, checking in order: the --edit
// file, piped stdin, a git range when --from or --to is set, and finally
// .git/COMMIT_EDITMSG under opts.Dir.
func (r *Reader) Read(ctx context.Context, opts Options) ([]string, Source, error) {
	log := logging.Get(ctx)

	if opts.Edit != "" && opts.Edit != editDisabled {
		msg, err := r.readFile(opts.Edit)
		if err != nil {
			return nil, SourceEdit, err
		}
		log.Debug().Str("path", opts.Edit).Msg("read commit message from edit file")
		return []string{msg}, SourceEdit, nil
	}

	if r.hasStdin() {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, SourceStdin, fmt.Errorf("failed to read commit message from stdin: %w", err)
		}
		log.Debug().Int("bytes", len(data)).Msg("read commit message from stdin")
		return []string{string(data)}, SourceStdin, nil
	}

	if opts.From != "" || opts.To != "" {
		messages, err := r.readGit(ctx, opts.Dir, git.ReadOptions{From: opts.From, To: opts.To, Path: "."})
		if err != nil {
			return nil, SourceGit, fmt.Errorf("failed to read commit messages from git: %w", err)
		}
		return messages, SourceGit, nil
	}

	path := filepath.Join(opts.Dir, filepath.FromSlash(constants.CommitEditMsgPath))
	msg, err := r.readFile(path)
	if err != nil {
		return nil, SourceCommitEditMsg, err
	}
	log.Debug().Str("path", path).Msg("read commit message from COMMIT_EDITMSG")
	return []string{msg}, SourceCommitEditMsg, nil
}

func (r *Reader) readFile(path string) (string, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to read commit message from %s: file does not exist", path)
		}
		return "", fmt.Errorf("failed to read commit message from %s: %w", path, err)
	}
	return string(data), nil
}

// hasStdin reports whether stdin is piped. Terminals and missing streams do
// not count; non-file readers always do.
func (r *Reader) hasStdin() bool {
	if r.stdin == nil {
		return false
	}
	if f, ok := r.stdin.(interface{ Fd() uintptr }); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}
