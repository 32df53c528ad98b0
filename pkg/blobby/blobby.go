package blobby

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vaultgen/vaultgen/pkg/randutil"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

// The duplicate rate and the one-vs-two corruption split are tuned so most
// damaged records stay individually parseable.
const (
	duplicateChancePct = 15
	doubleCorruptPct   = 30
)

// CorruptionCount is the number of records damaged for a given input size
// and percentage: max(1, ceil(n*pct/100)).
func CorruptionCount(n, pct int) int {
	if n == 0 {
		return 0
	}
	count := (n*pct + 99) / 100
	if count < 1 {
		count = 1
	}
	return count
}

// pickIndices selects CorruptionCount distinct indices uniformly. The
// result is sorted: set iteration order is randomized by the runtime, and
// payload application must depend only on the injected source.
func pickIndices(r *randutil.Rand, n, pct int) []int {
	count := CorruptionCount(n, pct)
	chosen := mapset.NewSet[int]()
	for chosen.Cardinality() < count {
		chosen.Add(r.Intn(n))
	}
	indices := chosen.ToSlice()
	sort.Ints(indices)
	return indices
}

// fieldRef names a mutable string field of a record. The name keys into
// payloadForField so damage stays appropriate to the field kind.
type fieldRef[T any] struct {
	name string
	get  func(T) string
	set  func(T, string)
}

// corruptRecords is the generic data-level engine for flat formats: pick
// distinct indices, then per index either duplicate an earlier record (15%)
// or apply one or two field corruptions (70/30).
func corruptRecords[T any](r *randutil.Rand, records []*T, pct int, fields []fieldRef[*T]) {
	if len(records) == 0 {
		return
	}
	for _, idx := range pickIndices(r, len(records), pct) {
		if idx > 0 && r.Chance(duplicateChancePct) {
			dup := *records[r.Intn(idx)]
			records[idx] = &dup
			continue
		}
		applyFieldCorruptions(r, records[idx], fields)
	}
}

func applyFieldCorruptions[T any](r *randutil.Rand, rec T, fields []fieldRef[T]) {
	n := 1
	if r.Chance(doubleCorruptPct) {
		n = 2
	}
	for i := 0; i < n; i++ {
		ref := randutil.Pick(r, fields)
		old := ref.get(rec)
		p := payloadForField(r, ref.name)
		if p.Value == old {
			// An empty payload on an already-empty field is a no-op;
			// make the damage observable.
			p = Payload{CategoryUnicode, "corrupted\x00field"}
		}
		ref.set(rec, p.Value)
	}
}

// Field maps per flat format.

var lastPassFields = []fieldRef[*vault.LastPassRecord]{
	{"url", func(x *vault.LastPassRecord) string { return x.URL }, func(x *vault.LastPassRecord, v string) { x.URL = v }},
	{"username", func(x *vault.LastPassRecord) string { return x.Username }, func(x *vault.LastPassRecord, v string) { x.Username = v }},
	{"password", func(x *vault.LastPassRecord) string { return x.Password }, func(x *vault.LastPassRecord, v string) { x.Password = v }},
	{"title", func(x *vault.LastPassRecord) string { return x.Name }, func(x *vault.LastPassRecord, v string) { x.Name = v }},
	{"notes", func(x *vault.LastPassRecord) string { return x.Extra }, func(x *vault.LastPassRecord, v string) { x.Extra = v }},
}

var edgeFields = []fieldRef[*vault.EdgeRecord]{
	{"url", func(x *vault.EdgeRecord) string { return x.URL }, func(x *vault.EdgeRecord, v string) { x.URL = v }},
	{"username", func(x *vault.EdgeRecord) string { return x.Username }, func(x *vault.EdgeRecord, v string) { x.Username = v }},
	{"password", func(x *vault.EdgeRecord) string { return x.Password }, func(x *vault.EdgeRecord, v string) { x.Password = v }},
	{"title", func(x *vault.EdgeRecord) string { return x.Name }, func(x *vault.EdgeRecord, v string) { x.Name = v }},
}

var keePassXFields = []fieldRef[*vault.KeePassXRecord]{
	{"url", func(x *vault.KeePassXRecord) string { return x.URL }, func(x *vault.KeePassXRecord, v string) { x.URL = v }},
	{"username", func(x *vault.KeePassXRecord) string { return x.Username }, func(x *vault.KeePassXRecord, v string) { x.Username = v }},
	{"password", func(x *vault.KeePassXRecord) string { return x.Password }, func(x *vault.KeePassXRecord, v string) { x.Password = v }},
	{"title", func(x *vault.KeePassXRecord) string { return x.Title }, func(x *vault.KeePassXRecord, v string) { x.Title = v }},
	{"notes", func(x *vault.KeePassXRecord) string { return x.Notes }, func(x *vault.KeePassXRecord, v string) { x.Notes = v }},
}

var passwordDepotFields = []fieldRef[*vault.PasswordDepotRecord]{
	{"url", func(x *vault.PasswordDepotRecord) string { return x.URL }, func(x *vault.PasswordDepotRecord, v string) { x.URL = v }},
	{"username", func(x *vault.PasswordDepotRecord) string { return x.Username }, func(x *vault.PasswordDepotRecord, v string) { x.Username = v }},
	{"password", func(x *vault.PasswordDepotRecord) string { return x.Password }, func(x *vault.PasswordDepotRecord, v string) { x.Password = v }},
	{"title", func(x *vault.PasswordDepotRecord) string { return x.Description }, func(x *vault.PasswordDepotRecord, v string) { x.Description = v }},
	{"notes", func(x *vault.PasswordDepotRecord) string { return x.Comments }, func(x *vault.PasswordDepotRecord, v string) { x.Comments = v }},
}

var keeperFields = []fieldRef[*vault.KeeperRecord]{
	{"url", func(x *vault.KeeperRecord) string { return x.LoginURL }, func(x *vault.KeeperRecord, v string) { x.LoginURL = v }},
	{"username", func(x *vault.KeeperRecord) string { return x.Login }, func(x *vault.KeeperRecord, v string) { x.Login = v }},
	{"password", func(x *vault.KeeperRecord) string { return x.Password }, func(x *vault.KeeperRecord, v string) { x.Password = v }},
	{"title", func(x *vault.KeeperRecord) string { return x.Title }, func(x *vault.KeeperRecord, v string) { x.Title = v }},
	{"notes", func(x *vault.KeeperRecord) string { return x.Notes }, func(x *vault.KeeperRecord, v string) { x.Notes = v }},
}

// CorruptLastPass damages pct percent of records in place.
func CorruptLastPass(r *randutil.Rand, records []*vault.LastPassRecord, pct int) {
	corruptRecords(r, records, pct, lastPassFields)
}

func CorruptEdge(r *randutil.Rand, records []*vault.EdgeRecord, pct int) {
	corruptRecords(r, records, pct, edgeFields)
}

func CorruptKeePassX(r *randutil.Rand, records []*vault.KeePassXRecord, pct int) {
	corruptRecords(r, records, pct, keePassXFields)
}

func CorruptPasswordDepot(r *randutil.Rand, records []*vault.PasswordDepotRecord, pct int) {
	corruptRecords(r, records, pct, passwordDepotFields)
}

func CorruptKeeper(r *randutil.Rand, export *vault.KeeperExport, pct int) {
	corruptRecords(r, export.Records, pct, keeperFields)
}

// CorruptKeePass2 walks the group tree and applies the percentage-based
// selection to each group's own entry list independently, so corruption
// density is roughly uniform per subgroup rather than globally exact.
func CorruptKeePass2(r *randutil.Rand, group *vault.KeePass2Group, pct int) {
	if len(group.Entries) > 0 {
		corruptRecords(r, group.Entries, pct, keePass2Fields)
	}
	for _, sub := range group.Groups {
		CorruptKeePass2(r, sub, pct)
	}
}

var keePass2Fields = []fieldRef[*vault.KeePass2Entry]{
	{"url", func(x *vault.KeePass2Entry) string { return x.URL }, func(x *vault.KeePass2Entry, v string) { x.URL = v }},
	{"username", func(x *vault.KeePass2Entry) string { return x.Username }, func(x *vault.KeePass2Entry, v string) { x.Username = v }},
	{"password", func(x *vault.KeePass2Entry) string { return x.Password }, func(x *vault.KeePass2Entry, v string) { x.Password = v }},
	{"title", func(x *vault.KeePass2Entry) string { return x.Title }, func(x *vault.KeePass2Entry, v string) { x.Title = v }},
	{"notes", func(x *vault.KeePass2Entry) string { return x.Notes }, func(x *vault.KeePass2Entry, v string) { x.Notes = v }},
}
