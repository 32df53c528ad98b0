package vault

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// KeePass2Group is a node in the database tree. Ownership is a strict
// tree: a group owns its entries and child groups, nothing is shared.
type KeePass2Group struct {
	UUID    string
	Name    string
	Notes   string
	Entries []*KeePass2Entry
	Groups  []*KeePass2Group
}

type KeePass2Entry struct {
	UUID     string
	Title    string
	Username string
	Password string
	URL      string
	Notes    string
}

// ZeroUUID is the 16-zero-byte sentinel KeePass2 uses for "no reference"
// slots like LastTopVisibleEntry. Real readers expect exactly this string.
const ZeroUUID = "AAAAAAAAAAAAAAAAAAAAAA=="

// The six standard subgroups KeePass2 creates in a fresh database.
var keePass2Subgroups = []string{"General", "Windows", "Network", "Internet", "eMail", "Homebanking"}

// Share of entries kept in the root group itself, with a floor so small
// vaults still exercise the root path.
const (
	keePass2RootSharePct = 30
	keePass2RootShareMin = 8
)

// GenerateKeePass2 builds the group tree. Entry placement: 30% (minimum 8)
// stay in the root group, the remainder splits evenly across the six
// subgroups, and any leftover lands one-by-one in random subgroups. Every
// requested entry is placed exactly once.
func GenerateKeePass2(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *Options) *KeePass2Group {
	urls := newURLPicker(r, loc, opts)

	root := &KeePass2Group{
		UUID: newKeePass2UUID(r),
		Name: "Database",
	}
	for _, name := range keePass2Subgroups {
		root.Groups = append(root.Groups, &KeePass2Group{
			UUID: newKeePass2UUID(r),
			Name: name,
		})
	}

	entries := make([]*KeePass2Entry, 0, opts.LoginCount)
	for i := 0; i < opts.LoginCount; i++ {
		site := urls.pick()
		entries = append(entries, &KeePass2Entry{
			UUID:     newKeePass2UUID(r),
			Title:    siteName(site),
			Username: loc.Username(r),
			Password: pw.Password(),
			URL:      site,
			Notes:    loc.Note(r),
		})
	}

	rootShare := len(entries) * keePass2RootSharePct / 100
	if rootShare < keePass2RootShareMin {
		rootShare = keePass2RootShareMin
	}
	if rootShare > len(entries) {
		rootShare = len(entries)
	}
	root.Entries = entries[:rootShare]

	rest := entries[rootShare:]
	per := len(rest) / len(root.Groups)
	for i, sub := range root.Groups {
		sub.Entries = append(sub.Entries, rest[i*per:(i+1)*per]...)
	}
	for _, entry := range rest[per*len(root.Groups):] {
		sub := randutil.Pick(r, root.Groups)
		sub.Entries = append(sub.Entries, entry)
	}

	return root
}

// newKeePass2UUID draws from the seeded stream so a pinned seed reproduces
// every UUID in the tree.
func newKeePass2UUID(r *randutil.Rand) string {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		u = uuid.New()
	}
	return base64.StdEncoding.EncodeToString(u[:])
}

// CountEntries walks the tree and totals entries across all groups.
func (g *KeePass2Group) CountEntries() int {
	n := len(g.Entries)
	for _, sub := range g.Groups {
		n += sub.CountEntries()
	}
	return n
}

// SerializeKeePass2 renders the tree as a KeePass2 XML document.
//
// This is a manual recursive writer on purpose: KeePass2 readers depend on
// a fixed child-element order (UUID, IconID, colors, Times, Strings,
// AutoType, History, then nested entries before nested groups) and on the
// zero-UUID sentinel in reference slots, neither of which a generic XML
// encoder will guarantee.
func SerializeKeePass2(root *KeePass2Group) string {
	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8" standalone="yes"?>` + "\n")
	b.WriteString("<KeePassFile>\n")
	writeKeePass2Meta(&b, now)
	b.WriteString("\t<Root>\n")
	writeKeePass2Group(&b, root, now, 2)
	b.WriteString("\t\t<DeletedObjects/>\n")
	b.WriteString("\t</Root>\n")
	b.WriteString("</KeePassFile>")
	return b.String()
}

func writeKeePass2Meta(b *strings.Builder, now string) {
	b.WriteString("\t<Meta>\n")
	writeElem(b, 2, "Generator", "vaultgen")
	writeElem(b, 2, "DatabaseName", "Generated Vault")
	writeElem(b, 2, "DatabaseNameChanged", now)
	writeElem(b, 2, "DatabaseDescription", "")
	writeElem(b, 2, "DefaultUserName", "")
	writeElem(b, 2, "MaintenanceHistoryDays", "365")
	writeElem(b, 2, "RecycleBinEnabled", "False")
	writeElem(b, 2, "RecycleBinUUID", ZeroUUID)
	writeElem(b, 2, "LastSelectedGroup", ZeroUUID)
	writeElem(b, 2, "LastTopVisibleGroup", ZeroUUID)
	b.WriteString("\t</Meta>\n")
}

func writeKeePass2Group(b *strings.Builder, g *KeePass2Group, now string, depth int) {
	pad := strings.Repeat("\t", depth)
	b.WriteString(pad + "<Group>\n")
	writeElem(b, depth+1, "UUID", g.UUID)
	writeElem(b, depth+1, "Name", xmlEscape(g.Name))
	writeElem(b, depth+1, "Notes", xmlEscape(g.Notes))
	writeElem(b, depth+1, "IconID", "48")
	writeKeePass2Times(b, now, depth+1)
	writeElem(b, depth+1, "IsExpanded", "True")
	writeElem(b, depth+1, "DefaultAutoTypeSequence", "")
	writeElem(b, depth+1, "EnableAutoType", "null")
	writeElem(b, depth+1, "EnableSearching", "null")
	writeElem(b, depth+1, "LastTopVisibleEntry", ZeroUUID)
	for _, entry := range g.Entries {
		writeKeePass2Entry(b, entry, now, depth+1)
	}
	for _, sub := range g.Groups {
		writeKeePass2Group(b, sub, now, depth+1)
	}
	b.WriteString(pad + "</Group>\n")
}

func writeKeePass2Entry(b *strings.Builder, e *KeePass2Entry, now string, depth int) {
	pad := strings.Repeat("\t", depth)
	b.WriteString(pad + "<Entry>\n")
	writeElem(b, depth+1, "UUID", e.UUID)
	writeElem(b, depth+1, "IconID", "0")
	writeElem(b, depth+1, "ForegroundColor", "")
	writeElem(b, depth+1, "BackgroundColor", "")
	writeElem(b, depth+1, "OverrideURL", "")
	writeElem(b, depth+1, "Tags", "")
	writeKeePass2Times(b, now, depth+1)
	writeKeePass2String(b, "Title", e.Title, depth+1)
	writeKeePass2String(b, "UserName", e.Username, depth+1)
	writeKeePass2String(b, "Password", e.Password, depth+1)
	writeKeePass2String(b, "URL", e.URL, depth+1)
	writeKeePass2String(b, "Notes", e.Notes, depth+1)
	b.WriteString(pad + "\t<AutoType>\n")
	writeElem(b, depth+2, "Enabled", "True")
	writeElem(b, depth+2, "DataTransferObfuscation", "0")
	b.WriteString(pad + "\t</AutoType>\n")
	b.WriteString(pad + "\t<History/>\n")
	b.WriteString(pad + "</Entry>\n")
}

func writeKeePass2Times(b *strings.Builder, now string, depth int) {
	pad := strings.Repeat("\t", depth)
	b.WriteString(pad + "<Times>\n")
	writeElem(b, depth+1, "LastModificationTime", now)
	writeElem(b, depth+1, "CreationTime", now)
	writeElem(b, depth+1, "LastAccessTime", now)
	writeElem(b, depth+1, "ExpiryTime", now)
	writeElem(b, depth+1, "Expires", "False")
	writeElem(b, depth+1, "UsageCount", "0")
	writeElem(b, depth+1, "LocationChanged", now)
	b.WriteString(pad + "</Times>\n")
}

func writeKeePass2String(b *strings.Builder, key, value string, depth int) {
	pad := strings.Repeat("\t", depth)
	b.WriteString(pad + "<String>\n")
	writeElem(b, depth+1, "Key", key)
	writeElem(b, depth+1, "Value", xmlEscape(value))
	b.WriteString(pad + "</String>\n")
}

func writeElem(b *strings.Builder, depth int, name, value string) {
	pad := strings.Repeat("\t", depth)
	if value == "" {
		b.WriteString(pad + "<" + name + "/>\n")
		return
	}
	b.WriteString(pad + "<" + name + ">" + value + "</" + name + ">\n")
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
