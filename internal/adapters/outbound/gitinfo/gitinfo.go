package gitinfo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.WorktreeStatus using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(dir string) bool {
	_, err := open(dir)
	return err == nil
}

// DirtyFiles returns the absolute paths of files with staged or unstaged
// modifications in the worktree containing dir. Untracked files are not
// included.
func (g *GitInfoAdapter) DirtyFiles(dir string) (map[string]bool, error) {
	dirty := make(map[string]bool)

	repo, err := open(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return dirty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return dirty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}

	root, err := filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}

	for rel, st := range status {
		if st.Worktree == git.Untracked {
			continue
		}
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		dirty[filepath.Join(root, filepath.FromSlash(rel))] = true
	}

	return dirty, nil
}

func open(dir string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
}
