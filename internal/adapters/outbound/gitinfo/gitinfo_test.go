package gitinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/gitinfo"
)

func TestIsGitRepo_FalseForPlainDirectory(t *testing.T) {
	assert.False(t, gitinfo.New().IsGitRepo(t.TempDir()))
}

func TestCommitHash_ErrorForPlainDirectory(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}
