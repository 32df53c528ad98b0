// Package collection generates unique organizational names, either flat or
// as a hierarchy of path-like strings ("Engineering/Backend/Platform").
package collection

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vaultgen/vaultgen/pkg/randutil"
)

var departments = []string{
	"Engineering", "Marketing", "Sales", "Finance", "Human Resources",
	"Legal", "Operations", "Product", "Design", "Customer Success",
	"Security", "IT Support", "Research", "Procurement", "Facilities",
	"Quality Assurance", "Data Science", "Communications", "Logistics", "Compliance",
}

var functions = []string{
	"Payroll", "Recruiting", "Onboarding", "Infrastructure", "Analytics",
	"Brand", "Partnerships", "Billing", "Treasury", "Audit",
	"Training", "Benefits", "Networking", "Release Management", "Vendor Management",
}

var regions = []string{
	"EMEA", "APAC", "Americas", "North America", "LATAM", "UK", "DACH", "Nordics",
}

var departmentSubTeams = []string{
	"Backend", "Frontend", "Platform", "Mobile", "Field", "Enterprise",
	"SMB", "Strategy", "Planning", "Reporting", "Tooling", "Core",
}

var functionSubTeams = []string{
	"Coordination", "Administration", "Review", "Intake", "Escalations", "Scheduling",
}

var regionSubTeams = []string{
	"North", "South", "East", "West", "Central", "Remote",
}

// FlatNames returns exactly count unique names drawn from a layered
// fallback chain: departments, then business functions, then
// region-department combinations, then synthetic "Department N" names.
// The result is shuffled so callers don't always see the same leaders.
func FlatNames(r *randutil.Rand, count int) []string {
	if count <= 0 {
		return nil
	}
	seen := mapset.NewSet[string]()
	var names []string
	add := func(name string) {
		if seen.Contains(name) {
			return
		}
		seen.Add(name)
		names = append(names, name)
	}

	for _, d := range departments {
		add(d)
	}
	if len(names) < count {
		for _, f := range functions {
			add(f)
		}
	}
	if len(names) < count {
		for _, reg := range regions {
			for _, d := range departments {
				add(reg + " " + d)
				if len(names) >= count {
					break
				}
			}
			if len(names) >= count {
				break
			}
		}
	}
	for i := 1; len(names) < count; i++ {
		add(fmt.Sprintf("Department %d", i))
	}

	randutil.Shuffle(r, names)
	return names[:count]
}

// HierarchicalNames builds a set of unique path strings, expanding level by
// level until total paths exist, maxDepth levels are exhausted, or no
// parents remain to expand. The contract is best-effort: a shallow depth
// may structurally cap the result below total.
func HierarchicalNames(r *randutil.Rand, topLevel, maxDepth, total int) []string {
	if total <= 0 {
		return nil
	}
	if topLevel > total {
		topLevel = total
	}
	if topLevel <= 0 {
		topLevel = 1
	}

	paths := FlatNames(r, topLevel)
	if maxDepth <= 1 || len(paths) >= total {
		return paths
	}

	seen := mapset.NewSet[string]()
	for _, p := range paths {
		seen.Add(p)
	}

	remaining := total - len(paths)
	parents := append([]string(nil), paths...)

	for depth := 2; depth <= maxDepth && remaining > 0 && len(parents) > 0; depth++ {
		quota := remaining / len(parents)
		if quota < 1 {
			quota = 1
		}
		var nextParents []string
		for _, parent := range parents {
			if remaining <= 0 {
				break
			}
			want := quota
			if want > remaining {
				want = remaining
			}
			children := childNames(r, parent, want)
			for _, child := range children {
				path := parent + "/" + child
				if seen.Contains(path) {
					continue
				}
				seen.Add(path)
				paths = append(paths, path)
				nextParents = append(nextParents, path)
				remaining--
				if remaining <= 0 {
					break
				}
			}
		}
		parents = nextParents
	}

	return paths
}

// childNames picks a child vocabulary matching the parent's semantic
// category and pads with "Subgroup N" when the vocabulary runs out.
func childNames(r *randutil.Rand, parentPath string, count int) []string {
	leaf := parentPath
	if idx := strings.LastIndex(parentPath, "/"); idx >= 0 {
		leaf = parentPath[idx+1:]
	}

	var vocab []string
	switch {
	case containsName(departments, leaf):
		vocab = departmentSubTeams
	case containsName(functions, leaf):
		vocab = functionSubTeams
	case hasRegionPrefix(leaf):
		vocab = regionSubTeams
	}

	pool := append([]string(nil), vocab...)
	randutil.Shuffle(r, pool)
	if len(pool) > count {
		pool = pool[:count]
	}
	for i := 1; len(pool) < count; i++ {
		pool = append(pool, fmt.Sprintf("Subgroup %d", i))
	}
	return pool
}

func containsName(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func hasRegionPrefix(name string) bool {
	for _, reg := range regions {
		if strings.HasPrefix(name, reg+" ") {
			return true
		}
	}
	return false
}

// EnsureParentPaths returns paths plus every missing ancestor: for any
// "A/B/C" present, "A" and "A/B" are guaranteed present too. Applying it
// twice is a no-op.
func EnsureParentPaths(paths []string) []string {
	set := mapset.NewSet[string]()
	for _, p := range paths {
		set.Add(p)
	}
	out := append([]string(nil), paths...)
	for _, p := range paths {
		parts := strings.Split(p, "/")
		for i := 1; i < len(parts); i++ {
			ancestor := strings.Join(parts[:i], "/")
			if set.Contains(ancestor) {
				continue
			}
			set.Add(ancestor)
			out = append(out, ancestor)
		}
	}
	return out
}

// SortByDepth orders paths shallowest-first (then lexically) so that ids
// can be assigned to parents before their children.
func SortByDepth(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		di := strings.Count(paths[i], "/")
		dj := strings.Count(paths[j], "/")
		if di != dj {
			return di < dj
		}
		return paths[i] < paths[j]
	})
}
