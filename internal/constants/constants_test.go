package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "commitlint", AppName)
	assert.Equal(t, "commitlint.log", LogFilename)
	assert.Equal(t, "commitlint.db", DatabaseFilename)
}

func TestConfigFilenames_SearchOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		".commitlintrc",
		".commitlintrc.json",
		".commitlintrc.yaml",
		".commitlintrc.yml",
	}, ConfigFilenames)
	assert.Contains(t, ConfigFilenames, DefaultConfigFilename)
}
