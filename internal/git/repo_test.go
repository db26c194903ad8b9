package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abrady0/gitty/internal/git"
	"github.com/abrady0/gitty/testhelpers"
)

func TestRepoStatus(t *testing.T) {
	t.Run("reports staged, unstaged and untracked files", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		// Modify the tracked file without staging
		require.NoError(t, scene.Repo.CreateChange("modified", "init", true))
		// Stage a new file
		require.NoError(t, scene.Repo.CreateChange("staged", "staged", false))
		// Leave another file untracked
		require.NoError(t, scene.Repo.CreateChange("untracked", "untracked", true))

		status, err := repo.Status(context.Background())
		require.NoError(t, err)

		require.Len(t, status.Staged, 1)
		require.Equal(t, "staged_test.txt", status.Staged[0].File)
		require.Len(t, status.Unstaged, 1)
		require.Equal(t, "init_test.txt", status.Unstaged[0].File)
		require.Len(t, status.Untracked, 1)
		require.Equal(t, "untracked_test.txt", status.Untracked[0].File)
	})

	t.Run("clean tree has empty buckets", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		clean, err := repo.IsClean(context.Background())
		require.NoError(t, err)
		require.True(t, clean)
	})
}

func TestRepoCommit(t *testing.T) {
	t.Run("parses branch, hash and changed count from commit output", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CreateChange("change", "next", false))

		result, err := repo.Commit(context.Background(), "add next file")
		require.NoError(t, err)
		require.False(t, result.Rejected())

		require.Equal(t, "main", result.Branch)
		require.NotEmpty(t, result.Commit)
		require.Equal(t, "1", result.Changed)
	})

	t.Run("nothing to commit is a rejection value, not an error", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		result, err := repo.Commit(context.Background(), "empty commit attempt")
		require.NoError(t, err)
		require.True(t, result.Rejected())
	})
}

func TestRepoBranches(t *testing.T) {
	t.Run("lists current and other branches", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, repo.CreateBranch(ctx, "feature-a"))
		require.NoError(t, repo.CreateBranch(ctx, "feature-b"))

		branches, err := repo.Branches(ctx)
		require.NoError(t, err)

		require.Equal(t, "main", branches.Current)
		require.Contains(t, branches.Others, "feature-a")
		require.Contains(t, branches.Others, "feature-b")
		require.NotContains(t, branches.Others, "main")

		current, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", current)
	})

	t.Run("checkout switches the current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, repo.CreateBranch(ctx, "feature"))
		require.NoError(t, repo.Checkout(ctx, "feature"))

		branches, err := repo.Branches(ctx)
		require.NoError(t, err)
		require.Equal(t, "feature", branches.Current)
		require.Contains(t, branches.Others, "main")
	})

	t.Run("lists branches created outside the library", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.CreateBranch("release"))
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
		require.NoError(t, scene.Repo.CheckoutBranch("main"))

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		branches, err := repo.Branches(context.Background())
		require.NoError(t, err)
		require.Equal(t, "main", branches.Current)
		require.Contains(t, branches.Others, "release")
		require.Contains(t, branches.Others, "feature")
	})
}

func TestRepoTags(t *testing.T) {
	t.Run("lists created tags without empty entries", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, repo.CreateTag(ctx, "v0.1.0"))
		require.NoError(t, repo.CreateTag(ctx, "v0.2.0"))

		tags, err := repo.Tags(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"v0.1.0", "v0.2.0"}, tags)
	})

	t.Run("lists tags created outside the library", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateTag("v1.0.0")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		tags, err := repo.Tags(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"v1.0.0"}, tags)
	})
}

func TestRepoRemotes(t *testing.T) {
	t.Run("maps remote names to URLs", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		barePath, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		remotes, err := repo.Remotes(context.Background())
		require.NoError(t, err)
		require.Equal(t, barePath, remotes["origin"])
	})
}

func TestRepoLog(t *testing.T) {
	t.Run("returns structured entries newest first", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.CreateChangeAndCommit("second change", "two"))

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		entries, err := repo.Log(context.Background(), 0)
		require.NoError(t, err)

		require.Len(t, entries, 2)
		require.Equal(t, "second change", entries[0]["message"])
		require.Equal(t, "initial", entries[1]["message"])
		require.Equal(t, "Test User", entries[0]["author"])
		require.Len(t, entries[0]["commit"], 40)
	})

	t.Run("decodes commit messages containing literal quotes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit(`say "hi" to everyone`, "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		entries, err := repo.Log(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, `say "hi" to everyone`, entries[0]["message"])
	})
}

func TestRepoSync(t *testing.T) {
	t.Run("push to a bare remote succeeds", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		result, err := repo.Push(context.Background(), "origin", "main")
		require.NoError(t, err)
		require.False(t, result.Failed())
	})

	t.Run("push to a missing remote reports error lines", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		result, rerr := repo.Push(context.Background(), "bogus", "main")
		require.Error(t, rerr)
		require.NotNil(t, result)
		require.True(t, result.Failed())
	})

	t.Run("pull after push is up to date", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		ctx := context.Background()
		_, err = repo.Push(ctx, "origin", "main")
		require.NoError(t, err)

		result, err := repo.Pull(ctx, "origin", "main")
		require.NoError(t, err)
		require.False(t, result.Failed())
	})
}

func TestRepoHeadSHA(t *testing.T) {
	t.Run("matches the ref git reports for HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		sha, err := repo.HeadSHA()
		require.NoError(t, err)
		require.Len(t, sha, 40)

		ref, err := scene.Repo.GetRef("HEAD")
		require.NoError(t, err)
		require.Equal(t, ref, sha)
	})
}

func TestRepoFetch(t *testing.T) {
	t.Run("restores the remote tracking ref", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		ctx := context.Background()
		_, err = repo.Push(ctx, "origin", "main")
		require.NoError(t, err)

		// Drop the tracking ref so the fetch has something to bring back
		require.NoError(t, scene.Repo.RunGitCommand("update-ref", "-d", "refs/remotes/origin/main"))

		require.NoError(t, repo.Fetch(ctx, "origin"))

		sha, err := repo.HeadSHA()
		require.NoError(t, err)
		tracking, err := scene.Repo.GetRef("refs/remotes/origin/main")
		require.NoError(t, err)
		require.Equal(t, sha, tracking)
	})
}

func TestOpen(t *testing.T) {
	t.Run("fails outside a repository", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.Open(dir)
		require.Error(t, err)
		require.False(t, git.IsRepo(dir))
	})

	t.Run("resolves the repository root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, scene.Dir, repo.Root())
		require.True(t, git.IsRepo(scene.Dir))
	})
}
