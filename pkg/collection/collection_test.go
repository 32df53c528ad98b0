package collection

import (
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/vaultgen/vaultgen/pkg/randutil"
)

func TestFlatNamesUniqueAndExact(t *testing.T) {
	r := randutil.New(1)
	for n := 1; n <= 100; n++ {
		names := FlatNames(r, n)
		require.Len(t, names, n)

		seen := mapset.NewSet[string]()
		for _, name := range names {
			require.NotEmpty(t, name)
			require.False(t, seen.Contains(name), "duplicate name %q for n=%d", name, n)
			seen.Add(name)
		}
	}
}

func TestFlatNamesZero(t *testing.T) {
	require.Empty(t, FlatNames(randutil.New(1), 0))
}

func TestHierarchicalNamesUnique(t *testing.T) {
	r := randutil.New(2)
	paths := HierarchicalNames(r, 4, 3, 30)
	require.NotEmpty(t, paths)
	require.LessOrEqual(t, len(paths), 30)

	seen := mapset.NewSet[string]()
	for _, p := range paths {
		require.False(t, seen.Contains(p), "duplicate path %q", p)
		seen.Add(p)
	}
}

func TestHierarchicalShallowDepthReturnsTopLevel(t *testing.T) {
	r := randutil.New(3)
	paths := HierarchicalNames(r, 5, 1, 50)
	require.Len(t, paths, 5)
	for _, p := range paths {
		require.NotContains(t, p, "/")
	}
}

func TestHierarchicalTopLevelCappedByTotal(t *testing.T) {
	r := randutil.New(4)
	paths := HierarchicalNames(r, 10, 2, 4)
	require.Len(t, paths, 4)
}

func TestEnsureParentPathsClosure(t *testing.T) {
	paths := []string{"A/B/C", "X", "A/B/D"}
	closed := EnsureParentPaths(paths)

	set := mapset.NewSet[string]()
	for _, p := range closed {
		set.Add(p)
	}
	require.True(t, set.Contains("A"))
	require.True(t, set.Contains("A/B"))
	require.True(t, set.Contains("X"))

	// Idempotence: a closed set gains nothing from another pass.
	again := EnsureParentPaths(closed)
	require.ElementsMatch(t, closed, again)
}

func TestEnsureParentPathsOnGeneratedHierarchy(t *testing.T) {
	r := randutil.New(5)
	paths := HierarchicalNames(r, 3, 4, 40)
	closed := EnsureParentPaths(paths)
	again := EnsureParentPaths(closed)
	require.ElementsMatch(t, closed, again, "generated hierarchies close in one pass")
}

func TestSortByDepth(t *testing.T) {
	paths := []string{"A/B/C", "B", "A/B", "A"}
	SortByDepth(paths)
	for i := 1; i < len(paths); i++ {
		require.LessOrEqual(t,
			strings.Count(paths[i-1], "/"),
			strings.Count(paths[i], "/"),
		)
	}
	require.Equal(t, "A/B/C", paths[len(paths)-1])
}
