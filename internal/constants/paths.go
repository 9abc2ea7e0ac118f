// Package constants contains file and directory names shared across commitlint.
package constants

const (
	// AppName is the directory name used under the XDG data home.
	AppName = "commitlint"

	// LogFilename is the rotated log file written under the data directory.
	LogFilename = "commitlint.log"

	// DatabaseFilename is the SQLite database holding lint history.
	DatabaseFilename = "commitlint.db"

	// DefaultConfigFilename is the file written by "commitlint init".
	DefaultConfigFilename = ".commitlintrc.yaml"

	// CommitEditMsgPath is read when no other message source is given.
	CommitEditMsgPath = ".git/COMMIT_EDITMSG"
)

// ConfigFilenames are searched in order in the working directory when no
// config path is given. The first existing file wins.
var ConfigFilenames = []string{
	".commitlintrc",
	".commitlintrc.json",
	".commitlintrc.yaml",
	".commitlintrc.yml",
}
