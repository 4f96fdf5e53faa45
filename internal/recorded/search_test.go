package recorded

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/recarchiver/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

// twoRoots returns r1 (existing) and r2 (not created).
func twoRoots(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()
	r1 := filepath.Join(base, "r1")
	r2 := filepath.Join(base, "r2")
	require.NoError(t, os.Mkdir(r1, 0o755))
	return r1, r2
}

func search(t *testing.T, s *Searcher, title string) []string {
	t.Helper()
	paths, err := Collect(s.Search(context.Background(), title))
	require.NoError(t, err)
	return paths
}

func TestSearch_SingleMatchScenario(t *testing.T) {
	r1, r2 := twoRoots(t)
	touch(t, filepath.Join(r1, "ShowA_ep1.ts"))
	touch(t, filepath.Join(r1, "Other_ep1.ts"))

	s := NewSearcher([]string{r1, r2}, false, logging.Discard())

	assert.Equal(t, []string{filepath.Join(r1, "ShowA_ep1.ts")}, search(t, s, "ShowA"))
}

func TestSearch_FullWidthScenario(t *testing.T) {
	r1, r2 := twoRoots(t)
	touch(t, filepath.Join(r1, "Show案_ep1.ts"))
	touch(t, filepath.Join(r1, "ＳｈｏｗＢ_ep1.ts"))

	s := NewSearcher([]string{r1, r2}, false, logging.Discard())

	assert.Equal(t, []string{filepath.Join(r1, "Show案_ep1.ts")}, search(t, s, "案"))
	assert.Equal(t, []string{filepath.Join(r1, "ＳｈｏｗＢ_ep1.ts")}, search(t, s, "showb"))
}

func TestSearch_NoMatchesIsEmptyNotError(t *testing.T) {
	r1, r2 := twoRoots(t)
	touch(t, filepath.Join(r1, "ShowA_ep1.ts"))

	s := NewSearcher([]string{r1, r2}, false, logging.Discard())

	assert.Empty(t, search(t, s, "Nothing"))
}

func TestSearch_OnlyMatchingPaths(t *testing.T) {
	r1, _ := twoRoots(t)
	names := []string{"ShowA_1.ts", "showa_2.ts", "ＳＨＯＷＡ_3.ts", "ShowB_1.ts", "Sho_wA.ts"}
	for _, n := range names {
		touch(t, filepath.Join(r1, n))
	}

	s := NewSearcher([]string{r1}, false, logging.Discard())

	for _, p := range search(t, s, "ShowA") {
		lower := strings.ToLower(p)
		ok := strings.Contains(lower, "showa") || strings.Contains(lower, strings.ToLower(FullWidth("ShowA")))
		assert.True(t, ok, p)
	}
	assert.Len(t, search(t, s, "ShowA"), 3)
}

func TestSearch_IsNotRecursive(t *testing.T) {
	r1, _ := twoRoots(t)
	touch(t, filepath.Join(r1, "nested", "ShowA_ep2.ts"))
	touch(t, filepath.Join(r1, "ShowA_dir", "ep3.ts"))

	s := NewSearcher([]string{r1}, false, logging.Discard())

	assert.Equal(t, []string{filepath.Join(r1, "ShowA_dir")}, search(t, s, "ShowA"))
}

func TestSearch_MatchesAgainstFullPath(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "ShowA_season")
	touch(t, filepath.Join(root, "ep1.ts"))

	s := NewSearcher([]string{root}, false, logging.Discard())

	assert.Equal(t, []string{filepath.Join(root, "ep1.ts")}, search(t, s, "ShowA"))
}

func TestSearch_RootOrderAndIdempotence(t *testing.T) {
	base := t.TempDir()
	r1 := filepath.Join(base, "r1")
	r2 := filepath.Join(base, "r2")
	for i := 0; i < 3; i++ {
		touch(t, filepath.Join(r2, fmt.Sprintf("ShowA_%d.ts", i)))
		touch(t, filepath.Join(r1, fmt.Sprintf("ShowA_%d.ts", i)))
	}

	s := NewSearcher([]string{r2, r1}, false, logging.Discard())

	first := search(t, s, "ShowA")
	require.Len(t, first, 6)
	for _, p := range first[:3] {
		assert.Equal(t, r2, filepath.Dir(p), "roots are visited in declaration order")
	}
	for _, p := range first[3:] {
		assert.Equal(t, r1, filepath.Dir(p))
	}

	assert.ElementsMatch(t, first, search(t, s, "ShowA"))
}

func TestSearch_ReadsLargeDirectoriesInBatches(t *testing.T) {
	r1, _ := twoRoots(t)
	for i := 0; i < readBatch+10; i++ {
		touch(t, filepath.Join(r1, fmt.Sprintf("ShowA_%04d.ts", i)))
	}

	s := NewSearcher([]string{r1}, false, logging.Discard())

	assert.Len(t, search(t, s, "ShowA"), readBatch+10)
}

func TestSearch_StopsWhenConsumerBreaks(t *testing.T) {
	r1, _ := twoRoots(t)
	for i := 0; i < 5; i++ {
		touch(t, filepath.Join(r1, fmt.Sprintf("ShowA_%d.ts", i)))
	}

	s := NewSearcher([]string{r1, r1}, false, logging.Discard())

	n := 0
	for _, err := range s.Search(context.Background(), "ShowA") {
		require.NoError(t, err)
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestSearch_Errors(t *testing.T) {
	r1, _ := twoRoots(t)
	touch(t, filepath.Join(r1, "ShowA_ep1.ts"))
	file := filepath.Join(r1, "ShowA_ep1.ts")

	t.Run("empty title", func(t *testing.T) {
		s := NewSearcher([]string{r1}, false, logging.Discard())
		_, err := Collect(s.Search(context.Background(), ""))
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("invalid raw pattern", func(t *testing.T) {
		s := NewSearcher([]string{r1}, true, logging.Discard())
		_, err := Collect(s.Search(context.Background(), "[ShowA"))
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("root is not a directory", func(t *testing.T) {
		s := NewSearcher([]string{file}, false, logging.Discard())
		_, err := Collect(s.Search(context.Background(), "ShowA"))
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := NewSearcher([]string{r1}, false, logging.Discard())
		_, err := Collect(s.Search(ctx, "ShowA"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
