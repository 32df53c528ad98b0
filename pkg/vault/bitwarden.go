package vault

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vaultgen/vaultgen/pkg/collection"
	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// ItemType discriminates the Bitwarden item union. The numeric values are
// part of the export schema.
type ItemType int

const (
	ItemTypeLogin      ItemType = 1
	ItemTypeSecureNote ItemType = 2
	ItemTypeCard       ItemType = 3
	ItemTypeIdentity   ItemType = 4
)

// BitwardenExport is the top-level unencrypted export document.
type BitwardenExport struct {
	Encrypted   bool                  `json:"encrypted"`
	Folders     []BitwardenFolder     `json:"folders"`
	Collections []BitwardenCollection `json:"collections,omitempty"`
	Items       []*BitwardenItem      `json:"items"`
}

type BitwardenFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BitwardenCollection struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organizationId"`
	Name           string  `json:"name"`
	ExternalID     *string `json:"externalId"`
}

// BitwardenItem is the 4-variant union. Exactly one of Login, SecureNote,
// Card or Identity is set, matching Type; serialization and corruption
// logic dispatch on Type, never on field presence.
type BitwardenItem struct {
	ID              string                 `json:"id"`
	OrganizationID  *string                `json:"organizationId"`
	FolderID        *string                `json:"folderId"`
	Type            ItemType               `json:"type"`
	Reprompt        int                    `json:"reprompt"`
	Name            string                 `json:"name"`
	Notes           string                 `json:"notes"`
	Favorite        bool                   `json:"favorite"`
	Fields          []BitwardenField       `json:"fields,omitempty"`
	Login           *BitwardenLogin        `json:"login,omitempty"`
	SecureNote      *BitwardenSecureNote   `json:"secureNote,omitempty"`
	Card            *BitwardenCard         `json:"card,omitempty"`
	Identity        *BitwardenIdentity     `json:"identity,omitempty"`
	PasswordHistory []BitwardenPasswordRev `json:"passwordHistory,omitempty"`
	CollectionIDs   []string               `json:"collectionIds"`
	RevisionDate    string                 `json:"revisionDate"`
	CreationDate    string                 `json:"creationDate"`
}

type BitwardenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  int    `json:"type"`
}

type BitwardenLogin struct {
	URIs     []BitwardenURI `json:"uris"`
	Username string         `json:"username"`
	Password string         `json:"password"`
	TOTP     string         `json:"totp,omitempty"`
}

type BitwardenURI struct {
	Match *int   `json:"match"`
	URI   string `json:"uri"`
}

type BitwardenSecureNote struct {
	Type int `json:"type"`
}

type BitwardenCard struct {
	CardholderName string `json:"cardholderName"`
	Brand          string `json:"brand"`
	Number         string `json:"number"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	Code           string `json:"code"`
}

type BitwardenIdentity struct {
	Title          string `json:"title"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	Address1       string `json:"address1"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
	Company        string `json:"company"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SSN            string `json:"ssn"`
	Username       string `json:"username"`
	PassportNumber string `json:"passportNumber"`
	LicenseNumber  string `json:"licenseNumber"`
}

type BitwardenPasswordRev struct {
	LastUsedDate string `json:"lastUsedDate"`
	Password     string `json:"password"`
}

const favoriteChancePct = 10

type bitwardenGenerator struct {
	rand  *randutil.Rand
	loc   *locale.Locale
	pw    *password.Generator
	urls  *urlPicker
	opts  *Options
	orgID *string
}

// GenerateBitwarden builds the full Bitwarden export: collections first
// (org vaults), then items partitioned by type in generation order:
// logins, secure notes, credit cards, identities.
func GenerateBitwarden(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *Options) (*BitwardenExport, error) {
	g := &bitwardenGenerator{
		rand: r,
		loc:  loc,
		pw:   pw,
		urls: newURLPicker(r, loc, opts),
		opts: opts,
	}
	if opts.VaultType == VaultOrg {
		id := g.newID()
		g.orgID = &id
	}

	export := &BitwardenExport{
		Encrypted: false,
		Folders:   []BitwardenFolder{},
		Items:     make([]*BitwardenItem, 0, opts.TotalItems()),
	}

	if opts.UseCollections {
		export.Collections = g.collections()
	}

	plan := []struct {
		count int
		typ   ItemType
	}{
		{opts.LoginCount, ItemTypeLogin},
		{opts.SecureNoteCount, ItemTypeSecureNote},
		{opts.CreditCardCount, ItemTypeCard},
		{opts.IdentityCount, ItemTypeIdentity},
	}
	for _, p := range plan {
		for i := 0; i < p.count; i++ {
			item, err := g.item(p.typ, export.Collections)
			if err != nil {
				return nil, err
			}
			export.Items = append(export.Items, item)
		}
	}

	return export, nil
}

// collections builds the collection list. Nested mode generates path-like
// names, back-fills missing parents, and assigns ids shallowest-first so a
// child's ancestors always exist by the time it is emitted.
func (g *bitwardenGenerator) collections() []BitwardenCollection {
	var names []string
	if g.opts.UseNestedCollections {
		depth := g.opts.CollectionNestingDepth
		if g.opts.UseRandomDepthNesting && depth > 1 {
			depth = g.rand.IntBetween(1, depth)
		}
		names = collection.HierarchicalNames(g.rand, g.opts.TopLevelCollectionCount, depth, g.opts.TotalCollectionCount)
		names = collection.EnsureParentPaths(names)
		collection.SortByDepth(names)
	} else {
		names = collection.FlatNames(g.rand, g.opts.CollectionCount)
	}

	out := make([]BitwardenCollection, 0, len(names))
	for _, name := range names {
		out = append(out, BitwardenCollection{
			ID:             g.newID(),
			OrganizationID: *g.orgID,
			Name:           name,
			ExternalID:     nil,
		})
	}
	return out
}

// newID draws from the seeded stream so a pinned seed reproduces every id.
func (g *bitwardenGenerator) newID() string {
	u, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

func (g *bitwardenGenerator) item(t ItemType, cols []BitwardenCollection) (*BitwardenItem, error) {
	created := g.timestamp()
	item := &BitwardenItem{
		ID:             g.newID(),
		OrganizationID: g.orgID,
		Type:           t,
		Notes:          g.loc.Note(g.rand),
		Favorite:       g.rand.Chance(favoriteChancePct),
		CollectionIDs:  []string{},
		CreationDate:   created,
		RevisionDate:   created,
	}

	if g.opts.VaultType == VaultOrg && g.opts.DistributeItems && len(cols) > 0 {
		item.CollectionIDs = g.assignCollections(cols)
	}

	switch t {
	case ItemTypeLogin:
		g.fillLogin(item)
	case ItemTypeSecureNote:
		item.Name = randutil.Pick(g.rand, []string{"Wifi Password", "Server Notes", "License Keys", "Door Codes", "Meeting Notes", "Recovery Info"})
		item.SecureNote = &BitwardenSecureNote{Type: 0}
	case ItemTypeCard:
		g.fillCard(item)
	case ItemTypeIdentity:
		g.fillIdentity(item)
	default:
		return nil, fmt.Errorf("unknown object type %d", t)
	}

	return item, nil
}

func (g *bitwardenGenerator) fillLogin(item *BitwardenItem) {
	site := g.urls.pick()
	username := g.loc.Email(g.rand)
	secret := password.TOTPSecret(g.rand)

	item.Name = siteName(site)
	item.Login = &BitwardenLogin{
		URIs:     []BitwardenURI{{Match: nil, URI: site}},
		Username: username,
		Password: g.pw.Password(),
		TOTP:     password.TOTPURI(item.Name, username, secret),
	}
	item.PasswordHistory = []BitwardenPasswordRev{{
		LastUsedDate: g.timestamp(),
		Password:     g.pw.Password(),
	}}
}

var cardBrands = []string{"Visa", "Mastercard", "Amex", "Discover"}

func (g *bitwardenGenerator) fillCard(item *BitwardenItem) {
	holder := g.loc.FirstName(g.rand) + " " + g.loc.LastName(g.rand)
	year := time.Now().Year() + g.rand.IntBetween(1, 5)
	item.Name = holder + "'s Card"
	item.Card = &BitwardenCard{
		CardholderName: holder,
		Brand:          randutil.Pick(g.rand, cardBrands),
		Number:         g.rand.Letters(16, randutil.Digits),
		ExpMonth:       fmt.Sprintf("%d", g.rand.IntBetween(1, 12)),
		ExpYear:        fmt.Sprintf("%d", year),
		Code:           g.rand.Letters(3, randutil.Digits),
	}
}

func (g *bitwardenGenerator) fillIdentity(item *BitwardenItem) {
	first := g.loc.FirstName(g.rand)
	last := g.loc.LastName(g.rand)
	item.Name = first + " " + last
	item.Identity = &BitwardenIdentity{
		Title:          randutil.Pick(g.rand, []string{"Mr", "Mrs", "Ms", "Dr"}),
		FirstName:      first,
		MiddleName:     "",
		LastName:       last,
		Address1:       fmt.Sprintf("%d %s Street", g.rand.IntBetween(1, 999), g.loc.LastName(g.rand)),
		City:           g.loc.LastName(g.rand) + "ville",
		State:          randutil.Pick(g.rand, []string{"CA", "NY", "TX", "WA", "IL", "MA"}),
		PostalCode:     g.rand.Letters(5, randutil.Digits),
		Country:        "US",
		Company:        g.loc.CompanyName(g.rand),
		Email:          g.loc.Email(g.rand),
		Phone:          "555-" + g.rand.Letters(4, randutil.Digits),
		SSN:            fmt.Sprintf("%s-%s-%s", g.rand.Letters(3, randutil.Digits), g.rand.Letters(2, randutil.Digits), g.rand.Letters(4, randutil.Digits)),
		Username:       g.loc.Username(g.rand),
		PassportNumber: g.rand.Letters(9, randutil.Uppercase+randutil.Digits),
		LicenseNumber:  g.rand.Letters(8, randutil.Uppercase+randutil.Digits),
	}
}

// assignCollections attaches the item to 1-3 distinct random collections.
func (g *bitwardenGenerator) assignCollections(cols []BitwardenCollection) []string {
	n := g.rand.IntBetween(1, 3)
	if n > len(cols) {
		n = len(cols)
	}
	idx := make([]int, len(cols))
	for i := range idx {
		idx[i] = i
	}
	randutil.Shuffle(g.rand, idx)
	ids := make([]string, 0, n)
	for _, i := range idx[:n] {
		ids = append(ids, cols[i].ID)
	}
	return ids
}

// timestamp returns an RFC3339 instant within the past two years.
func (g *bitwardenGenerator) timestamp() string {
	back := time.Duration(g.rand.IntBetween(0, 730*24)) * time.Hour
	return time.Now().Add(-back).UTC().Format(time.RFC3339)
}

// SerializeBitwarden renders the export as indented JSON. JSON escaping is
// intentionally left intact here: Bitwarden corruption is data-level only.
func SerializeBitwarden(export *BitwardenExport) (string, error) {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding bitwarden export: %w", err)
	}
	return string(data), nil
}
