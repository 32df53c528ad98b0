package vault

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vaultgen/vaultgen/pkg/collection"
	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// KeeperExport is the Keeper JSON import document.
type KeeperExport struct {
	SharedFolders []KeeperSharedFolder `json:"shared_folders,omitempty"`
	Records       []*KeeperRecord      `json:"records"`
}

type KeeperSharedFolder struct {
	Path          string `json:"path"`
	ManageUsers   bool   `json:"manage_users"`
	ManageRecords bool   `json:"manage_records"`
	CanEdit       bool   `json:"can_edit"`
	CanShare      bool   `json:"can_share"`
}

// KeeperFolderRef attaches a record to a regular or shared folder. Paths
// are backslash-joined per Keeper's import convention.
type KeeperFolderRef struct {
	Folder       string `json:"folder,omitempty"`
	SharedFolder string `json:"shared_folder,omitempty"`
	CanEdit      bool   `json:"can_edit,omitempty"`
	CanShare     bool   `json:"can_share,omitempty"`
}

type KeeperRecord struct {
	Title        string            `json:"title"`
	Login        string            `json:"login"`
	Password     string            `json:"password"`
	LoginURL     string            `json:"login_url"`
	Notes        string            `json:"notes"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
	Folders      []KeeperFolderRef `json:"folders,omitempty"`
}

// Branching and recursion tuning for the two folder trees.
const (
	keeperRegularMinChildren  = 2
	keeperRegularMaxChildren  = 5
	keeperRegularRecursePct   = 60
	keeperSharedMinChildren   = 1
	keeperSharedMaxChildren   = 3
	keeperSharedRecursePct    = 50
	keeperFolderMaxDepth      = 4
	keeperSharedTagChancePct  = 50
	keeperTOTPFieldChancePct  = 30
)

var keeperSimpleFolders = []string{"Personal", "Work", "Archive"}

// GenerateKeeper builds the Keeper export. With nesting enabled it grows
// independent regular and shared folder trees and associates each record
// with a regular folder, a shared folder, or both; with nesting disabled
// records land in one of three flat folders plus an occasional
// "Shared Folder" tag.
func GenerateKeeper(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *Options) *KeeperExport {
	urls := newURLPicker(r, loc, opts)
	export := &KeeperExport{Records: make([]*KeeperRecord, 0, opts.LoginCount)}

	var regularPaths, sharedPaths []string
	if opts.UseNestedCollections {
		regularPaths = keeperFolderTree(r, keeperRegularMinChildren, keeperRegularMaxChildren, keeperRegularRecursePct)
		sharedPaths = keeperFolderTree(r, keeperSharedMinChildren, keeperSharedMaxChildren, keeperSharedRecursePct)
		for _, path := range sharedPaths {
			export.SharedFolders = append(export.SharedFolders, KeeperSharedFolder{
				Path:          path,
				ManageUsers:   r.Chance(30),
				ManageRecords: r.Chance(30),
				CanEdit:       r.Chance(60),
				CanShare:      r.Chance(40),
			})
		}
	}

	for i := 0; i < opts.LoginCount; i++ {
		site := urls.pick()
		rec := &KeeperRecord{
			Title:    siteName(site),
			Login:    loc.Email(r),
			Password: pw.Password(),
			LoginURL: site,
			Notes:    loc.Note(r),
		}
		if r.Chance(keeperTOTPFieldChancePct) {
			rec.CustomFields = map[string]string{
				"TFC:Keeper": password.TOTPURI(rec.Title, rec.Login, password.TOTPSecret(r)),
			}
		}
		rec.Folders = keeperFolderRefs(r, regularPaths, sharedPaths, opts.UseNestedCollections)
		export.Records = append(export.Records, rec)
	}

	return export
}

// keeperFolderTree builds a tree of backslash-joined folder paths. Each
// level spawns between min and max children and recurses with the given
// probability, bounded by keeperFolderMaxDepth.
func keeperFolderTree(r *randutil.Rand, minChildren, maxChildren, recursePct int) []string {
	topNames := collection.FlatNames(r, r.IntBetween(minChildren, maxChildren))
	var paths []string
	var grow func(prefix string, depth int)
	grow = func(prefix string, depth int) {
		if depth >= keeperFolderMaxDepth || !r.Chance(recursePct) {
			return
		}
		children := collection.FlatNames(r, r.IntBetween(minChildren, maxChildren))
		for _, child := range children {
			path := prefix + "\\" + child
			paths = append(paths, path)
			grow(path, depth+1)
		}
	}
	for _, name := range topNames {
		paths = append(paths, name)
		grow(name, 1)
	}
	return paths
}

// keeperFolderRefs decides a record's folder membership: regular, shared,
// or both, each with equal probability in nested mode.
func keeperFolderRefs(r *randutil.Rand, regular, shared []string, nested bool) []KeeperFolderRef {
	if !nested {
		refs := []KeeperFolderRef{{Folder: randutil.Pick(r, keeperSimpleFolders)}}
		if r.Chance(keeperSharedTagChancePct) {
			refs = append(refs, KeeperFolderRef{SharedFolder: "Shared Folder", CanEdit: true, CanShare: false})
		}
		return refs
	}

	var refs []KeeperFolderRef
	switch r.Intn(3) {
	case 0:
		refs = append(refs, KeeperFolderRef{Folder: randutil.Pick(r, regular)})
	case 1:
		refs = append(refs, KeeperFolderRef{SharedFolder: randutil.Pick(r, shared), CanEdit: r.Chance(50), CanShare: r.Chance(30)})
	case 2:
		refs = append(refs,
			KeeperFolderRef{Folder: randutil.Pick(r, regular)},
			KeeperFolderRef{SharedFolder: randutil.Pick(r, shared), CanEdit: r.Chance(50), CanShare: r.Chance(30)},
		)
	}

	// Drop refs whose pool was empty.
	out := refs[:0]
	for _, ref := range refs {
		if ref.Folder != "" || ref.SharedFolder != "" {
			out = append(out, ref)
		}
	}
	return out
}

// SerializeKeeper renders indented JSON.
func SerializeKeeper(export *KeeperExport) (string, error) {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding keeper export: %w", err)
	}
	return string(data), nil
}

// KeeperFolderDepth reports the nesting depth of a backslash path.
func KeeperFolderDepth(path string) int {
	return strings.Count(path, "\\") + 1
}
