// Package urlutil splits forge remote URLs and slugs into their owner and
// repository parts.
//
// Accepted forms:
//   - slug: owner/repo
//   - HTTPS: https://github.com/owner/repo(.git)
//   - SSH colon: git@github.com:owner/repo(.git)
//   - SSH protocol: ssh://git@github.com/owner/repo(.git)
//
// GitLab nested groups are kept in the owner part: group/subgroup/project
// yields owner "group/subgroup" and repository "project".
package urlutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRepository is returned when no owner/repo pair can be extracted.
var ErrInvalidRepository = errors.New("invalid repository reference")

// SplitRepository returns the owner and repository name referenced by ref.
func SplitRepository(ref string) (string, string, error) {
	path := repositoryPath(ref)

	idx := strings.LastIndex(path, "/")
	if idx <= 0 || idx == len(path)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepository, ref)
	}

	owner, repo := path[:idx], path[idx+1:]
	if strings.Contains(owner, "//") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepository, ref)
	}
	return owner, repo, nil
}

// Host returns the host part of a remote URL, or "" for a bare slug.
func Host(ref string) string {
	ref = strings.TrimSpace(ref)

	switch {
	case strings.HasPrefix(ref, "ssh://"):
		rest := strings.TrimPrefix(ref, "ssh://")
		rest = rest[strings.Index(rest, "@")+1:]
		return stripPort(strings.SplitN(rest, "/", 2)[0])
	case strings.HasPrefix(ref, "git@"):
		rest := strings.TrimPrefix(ref, "git@")
		return strings.SplitN(rest, ":", 2)[0]
	case strings.Contains(ref, "://"):
		rest := ref[strings.Index(ref, "://")+3:]
		host := strings.SplitN(rest, "/", 2)[0]
		if at := strings.LastIndex(host, "@"); at >= 0 {
			host = host[at+1:]
		}
		return stripPort(host)
	default:
		return ""
	}
}

// repositoryPath strips scheme, credentials, host and .git suffix, leaving
// the slash separated path.
func repositoryPath(ref string) string {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimSuffix(ref, "/")
	ref = strings.TrimSuffix(ref, ".git")

	switch {
	case strings.HasPrefix(ref, "ssh://"), strings.Contains(ref, "://"):
		rest := ref[strings.Index(ref, "://")+3:]
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) < 2 {
			return ""
		}
		return parts[1]
	case strings.HasPrefix(ref, "git@"):
		parts := strings.SplitN(ref, ":", 2)
		if len(parts) < 2 {
			return ""
		}
		return parts[1]
	default:
		return ref
	}
}

func stripPort(host string) string {
	if idx := strings.LastIndex(host, ":"); idx >= 0 {
		return host[:idx]
	}
	return host
}
