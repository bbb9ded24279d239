// Package ui holds the interactive prompts used on local runs.
package ui

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sgaunet/api-surface-check/internal/urlutil"
)

// RepositoryPrompter asks the user which repository to probe.
type RepositoryPrompter struct {
	askOne func(survey.Prompt, any, ...survey.AskOpt) error
}

// NewRepositoryPrompter creates a prompter reading from the terminal.
func NewRepositoryPrompter() *RepositoryPrompter {
	return &RepositoryPrompter{askOne: survey.AskOne}
}

// AskRepository prompts for an owner/repo slug, suggesting def.
func (p *RepositoryPrompter) AskRepository(def string) (string, string, error) {
	var slug string
	prompt := &survey.Input{
		Message: "Repository (owner/repo):",
		Default: def,
		Help:    "GitLab nested groups are accepted: group/subgroup/project",
	}

	if err := p.askOne(prompt, &slug, survey.WithValidator(ValidateRepository)); err != nil {
		return "", "", fmt.Errorf("failed to get repository: %w", err)
	}

	owner, repo, err := urlutil.SplitRepository(strings.TrimSpace(slug))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse repository: %w", err)
	}
	return owner, repo, nil
}

// ValidateRepository is a survey validator accepting owner/repo slugs.
func ValidateRepository(ans any) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("%w: expected text, got %T", urlutil.ErrInvalidRepository, ans)
	}
	s = strings.TrimSpace(s)
	if strings.Contains(s, "://") || strings.HasPrefix(s, "git@") {
		return fmt.Errorf("%w: enter owner/repo, not a URL", urlutil.ErrInvalidRepository)
	}
	if _, _, err := urlutil.SplitRepository(s); err != nil {
		return err //nolint:wrapcheck // Shown verbatim by survey.
	}
	return nil
}
