package blobby

import (
	"github.com/vaultgen/vaultgen/pkg/randutil"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

// CorruptBitwarden damages pct percent of items in place. Bitwarden needs
// a type-aware dispatcher: the 4-variant union means there is no single
// field map, so each variant has its own corruption targets.
func CorruptBitwarden(r *randutil.Rand, export *vault.BitwardenExport, pct int) {
	items := export.Items
	if len(items) == 0 {
		return
	}
	for _, idx := range pickIndices(r, len(items), pct) {
		if idx > 0 && r.Chance(duplicateChancePct) {
			items[idx] = cloneItem(items[r.Intn(idx)])
			continue
		}
		fields := bitwardenFieldsFor(items[idx])
		if len(fields) == 0 {
			continue
		}
		applyFieldCorruptions(r, items[idx], fields)
	}
}

func bitwardenFieldsFor(item *vault.BitwardenItem) []fieldRef[*vault.BitwardenItem] {
	switch item.Type {
	case vault.ItemTypeLogin:
		return bitwardenLoginFields
	case vault.ItemTypeSecureNote:
		return bitwardenNoteFields
	case vault.ItemTypeCard:
		return bitwardenCardFields
	case vault.ItemTypeIdentity:
		return bitwardenIdentityFields
	default:
		return nil
	}
}

var bitwardenLoginFields = []fieldRef[*vault.BitwardenItem]{
	{"title", func(x *vault.BitwardenItem) string { return x.Name }, func(x *vault.BitwardenItem, v string) { x.Name = v }},
	{"notes", func(x *vault.BitwardenItem) string { return x.Notes }, func(x *vault.BitwardenItem, v string) { x.Notes = v }},
	{"url", loginURI, func(x *vault.BitwardenItem, v string) {
		if x.Login != nil && len(x.Login.URIs) > 0 {
			x.Login.URIs[0].URI = v
		}
	}},
	{"username", func(x *vault.BitwardenItem) string {
		if x.Login == nil {
			return ""
		}
		return x.Login.Username
	}, func(x *vault.BitwardenItem, v string) {
		if x.Login != nil {
			x.Login.Username = v
		}
	}},
	{"password", func(x *vault.BitwardenItem) string {
		if x.Login == nil {
			return ""
		}
		return x.Login.Password
	}, func(x *vault.BitwardenItem, v string) {
		if x.Login != nil {
			x.Login.Password = v
		}
	}},
	{"totp", func(x *vault.BitwardenItem) string {
		if x.Login == nil {
			return ""
		}
		return x.Login.TOTP
	}, func(x *vault.BitwardenItem, v string) {
		if x.Login != nil {
			x.Login.TOTP = v
		}
	}},
}

func loginURI(x *vault.BitwardenItem) string {
	if x.Login == nil || len(x.Login.URIs) == 0 {
		return ""
	}
	return x.Login.URIs[0].URI
}

var bitwardenNoteFields = []fieldRef[*vault.BitwardenItem]{
	{"title", func(x *vault.BitwardenItem) string { return x.Name }, func(x *vault.BitwardenItem, v string) { x.Name = v }},
	{"notes", func(x *vault.BitwardenItem) string { return x.Notes }, func(x *vault.BitwardenItem, v string) { x.Notes = v }},
}

var bitwardenCardFields = []fieldRef[*vault.BitwardenItem]{
	{"title", func(x *vault.BitwardenItem) string { return x.Name }, func(x *vault.BitwardenItem, v string) { x.Name = v }},
	{"username", func(x *vault.BitwardenItem) string {
		if x.Card == nil {
			return ""
		}
		return x.Card.CardholderName
	}, func(x *vault.BitwardenItem, v string) {
		if x.Card != nil {
			x.Card.CardholderName = v
		}
	}},
	{"password", func(x *vault.BitwardenItem) string {
		if x.Card == nil {
			return ""
		}
		return x.Card.Number
	}, func(x *vault.BitwardenItem, v string) {
		if x.Card != nil {
			x.Card.Number = v
		}
	}},
	{"notes", func(x *vault.BitwardenItem) string {
		if x.Card == nil {
			return ""
		}
		return x.Card.Code
	}, func(x *vault.BitwardenItem, v string) {
		if x.Card != nil {
			x.Card.Code = v
		}
	}},
}

var bitwardenIdentityFields = []fieldRef[*vault.BitwardenItem]{
	{"title", func(x *vault.BitwardenItem) string { return x.Name }, func(x *vault.BitwardenItem, v string) { x.Name = v }},
	{"username", func(x *vault.BitwardenItem) string {
		if x.Identity == nil {
			return ""
		}
		return x.Identity.Username
	}, func(x *vault.BitwardenItem, v string) {
		if x.Identity != nil {
			x.Identity.Username = v
		}
	}},
	{"notes", func(x *vault.BitwardenItem) string {
		if x.Identity == nil {
			return ""
		}
		return x.Identity.Email
	}, func(x *vault.BitwardenItem, v string) {
		if x.Identity != nil {
			x.Identity.Email = v
		}
	}},
	{"url", func(x *vault.BitwardenItem) string {
		if x.Identity == nil {
			return ""
		}
		return x.Identity.SSN
	}, func(x *vault.BitwardenItem, v string) {
		if x.Identity != nil {
			x.Identity.SSN = v
		}
	}},
}

// cloneItem deep-copies an item so a duplicate never aliases the original
// through its variant pointer.
func cloneItem(src *vault.BitwardenItem) *vault.BitwardenItem {
	dup := *src
	if src.Login != nil {
		login := *src.Login
		login.URIs = append([]vault.BitwardenURI(nil), src.Login.URIs...)
		dup.Login = &login
	}
	if src.SecureNote != nil {
		note := *src.SecureNote
		dup.SecureNote = &note
	}
	if src.Card != nil {
		card := *src.Card
		dup.Card = &card
	}
	if src.Identity != nil {
		ident := *src.Identity
		dup.Identity = &ident
	}
	dup.Fields = append([]vault.BitwardenField(nil), src.Fields...)
	dup.PasswordHistory = append([]vault.BitwardenPasswordRev(nil), src.PasswordHistory...)
	dup.CollectionIDs = append([]string(nil), src.CollectionIDs...)
	return &dup
}
