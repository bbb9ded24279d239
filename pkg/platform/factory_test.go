package platform_test

import (
	"path/filepath"
	"testing"

	"github.com/sgaunet/api-surface-check/internal/logger"
	"github.com/sgaunet/api-surface-check/pkg/config"
	"github.com/sgaunet/api-surface-check/pkg/git"
	ghclient "github.com/sgaunet/api-surface-check/pkg/github"
	glclient "github.com/sgaunet/api-surface-check/pkg/gitlab"
	"github.com/sgaunet/api-surface-check/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("github", func(t *testing.T) {
		t.Setenv(ghclient.TokenEnv, "ghs_0123456789abcdefghij")

		provider, err := platform.NewProvider(git.PlatformGitHub, config.Default(), logger.NoLogger())
		require.NoError(t, err)
		assert.Equal(t, "GitHub", provider.PlatformName())
	})

	t.Run("github without token", func(t *testing.T) {
		t.Setenv(ghclient.TokenEnv, "")
		// Keep the gh CLI fallback from finding credentials on the host.
		t.Setenv("GH_TOKEN", "")
		t.Setenv("GH_CONFIG_DIR", t.TempDir())
		t.Setenv("GH_PATH", filepath.Join(t.TempDir(), "gh"))

		_, err := platform.NewProvider(git.PlatformGitHub, config.Default(), logger.NoLogger())
		require.ErrorIs(t, err, ghclient.ErrTokenRequired)
	})

	t.Run("gitlab", func(t *testing.T) {
		t.Setenv(glclient.TokenEnv, "glpat-abcdefghijklmnop")

		provider, err := platform.NewProvider(git.PlatformGitLab, config.Default(), logger.NoLogger())
		require.NoError(t, err)
		assert.Equal(t, "GitLab", provider.PlatformName())
	})

	t.Run("gitlab without token", func(t *testing.T) {
		t.Setenv(glclient.TokenEnv, "")

		_, err := platform.NewProvider(git.PlatformGitLab, config.Default(), logger.NoLogger())
		require.ErrorIs(t, err, glclient.ErrTokenRequired)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := platform.NewProvider(git.Platform("bitbucket"), config.Default(), logger.NoLogger())
		require.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
	})
}
