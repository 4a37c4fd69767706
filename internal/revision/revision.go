// Package revision reads the source revision of the project being built.
package revision

import (
	"errors"
	"log/slog"

	ggit "github.com/go-git/go-git/v5"

	"github.com/lyleresnick/folio/internal/logfields"
)

// ShortLength is the number of hash characters Head returns.
const ShortLength = 12

// Head returns the abbreviated HEAD commit of the git repository containing
// dir, or "" when dir is not inside a repository or has no commits yet.
func Head(dir string) (string, error) {
	repo, err := ggit.PlainOpenWithOptions(dir, &ggit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, ggit.ErrRepositoryNotExists) {
			slog.Debug("Not a git repository, skipping revision", logfields.Path(dir))
			return "", nil
		}
		return "", err
	}
	ref, err := repo.Head()
	if err != nil {
		slog.Debug("Repository has no HEAD, skipping revision", logfields.Path(dir), logfields.Error(err))
		return "", nil
	}
	hash := ref.Hash().String()
	if len(hash) > ShortLength {
		hash = hash[:ShortLength]
	}
	return hash, nil
}
