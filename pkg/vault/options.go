package vault

import (
	"fmt"
)

// Format identifies a supported export format.
type Format string

const (
	FormatBitwarden     Format = "bitwarden"
	FormatLastPass      Format = "lastpass"
	FormatKeeper        Format = "keeper"
	FormatEdge          Format = "edge"
	FormatKeePassX      Format = "keepassx"
	FormatKeePass2      Format = "keepass2"
	FormatPasswordDepot Format = "passworddepot"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{
		FormatBitwarden, FormatLastPass, FormatKeeper, FormatEdge,
		FormatKeePassX, FormatKeePass2, FormatPasswordDepot,
	}
}

// ContentType returns the MIME type the API serves this format with.
func (f Format) ContentType() string {
	switch f {
	case FormatBitwarden, FormatKeeper:
		return "application/json"
	case FormatKeePass2:
		return "application/xml"
	default:
		return "text/csv"
	}
}

// Filename returns the Content-Disposition filename for this format.
func (f Format) Filename() string {
	switch f {
	case FormatBitwarden:
		return "vault_export.json"
	case FormatKeeper:
		return "keeper_export.json"
	case FormatKeePass2:
		return "keepass2_export.xml"
	case FormatLastPass:
		return "lastpass_export.csv"
	case FormatEdge:
		return "edge_export.csv"
	case FormatKeePassX:
		return "keepassx_export.csv"
	case FormatPasswordDepot:
		return "passworddepot_export.csv"
	default:
		return "vault_export.txt"
	}
}

func (f Format) valid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// VaultType distinguishes personal from organization vaults.
type VaultType string

const (
	VaultIndividual VaultType = "individual"
	VaultOrg        VaultType = "org"
)

// Bounds enforced by Validate before any generation starts.
const (
	MaxItemsPerType     = 10000
	MaxTotalItems       = 15000
	MaxNestingDepth     = 10
	MaxTotalCollections = 100
)

// Options is the full set of generation knobs. Field names follow the JSON
// request body accepted by the API.
type Options struct {
	VaultFormat Format    `json:"vaultFormat"`
	VaultType   VaultType `json:"vaultType"`

	LoginCount      int `json:"loginCount"`
	SecureNoteCount int `json:"secureNoteCount"`
	CreditCardCount int `json:"creditCardCount"`
	IdentityCount   int `json:"identityCount"`

	UseRealUrls       bool     `json:"useRealUrls"`
	UseEnterpriseUrls bool     `json:"useEnterpriseUrls"`
	EnterpriseUrls    []string `json:"enterpriseUrls,omitempty"`

	UseCollections          bool `json:"useCollections"`
	UseNestedCollections    bool `json:"useNestedCollections"`
	UseRandomDepthNesting   bool `json:"useRandomDepthNesting"`
	CollectionCount         int  `json:"collectionCount"`
	TopLevelCollectionCount int  `json:"topLevelCollectionCount"`
	CollectionNestingDepth  int  `json:"collectionNestingDepth"`
	TotalCollectionCount    int  `json:"totalCollectionCount"`
	DistributeItems         bool `json:"distributeItems"`

	UseWeakPasswords       bool `json:"useWeakPasswords"`
	WeakPasswordPercentage int  `json:"weakPasswordPercentage"`
	ReusePasswords         bool `json:"reusePasswords"`
	PasswordReusePercentage int `json:"passwordReusePercentage"`

	Language string `json:"language"`

	UseMrBlobby        bool `json:"useMrBlobby"`
	MrBlobbyPercentage int  `json:"mrBlobbyPercentage"`

	// Seed pins the random stream for reproducible vaults; zero means
	// seed from the clock.
	Seed int64 `json:"seed,omitempty"`
}

// TotalItems is the number of records generation will produce.
func (o *Options) TotalItems() int {
	return o.LoginCount + o.SecureNoteCount + o.CreditCardCount + o.IdentityCount
}

// Validate rejects out-of-range values and incompatible feature
// combinations. Generation functions trust their input: this is the only
// gate, and callers at API boundaries must use it.
func (o *Options) Validate() error {
	if !o.VaultFormat.valid() {
		return fmt.Errorf("unsupported vault format %q", o.VaultFormat)
	}
	if o.VaultType == "" {
		o.VaultType = VaultIndividual
	}
	if o.VaultType != VaultIndividual && o.VaultType != VaultOrg {
		return fmt.Errorf("unsupported vault type %q", o.VaultType)
	}

	counts := map[string]int{
		"loginCount":      o.LoginCount,
		"secureNoteCount": o.SecureNoteCount,
		"creditCardCount": o.CreditCardCount,
		"identityCount":   o.IdentityCount,
	}
	for name, n := range counts {
		if n < 0 || n > MaxItemsPerType {
			return fmt.Errorf("%s must be between 0 and %d", name, MaxItemsPerType)
		}
	}
	total := o.TotalItems()
	if total == 0 {
		return fmt.Errorf("at least one item must be requested")
	}
	if total > MaxTotalItems {
		return fmt.Errorf("total item count %d exceeds the %d limit", total, MaxTotalItems)
	}

	if o.VaultFormat != FormatBitwarden {
		if o.SecureNoteCount > 0 || o.CreditCardCount > 0 || o.IdentityCount > 0 {
			return fmt.Errorf("secure notes, credit cards and identities are only supported by the bitwarden format")
		}
		if o.UseCollections {
			return fmt.Errorf("collections are only supported by the bitwarden format")
		}
	}

	if o.UseCollections {
		if o.VaultType != VaultOrg {
			return fmt.Errorf("collections require an org vault")
		}
		if o.UseNestedCollections {
			if o.CollectionNestingDepth < 1 || o.CollectionNestingDepth > MaxNestingDepth {
				return fmt.Errorf("collectionNestingDepth must be between 1 and %d", MaxNestingDepth)
			}
			if o.TotalCollectionCount < 1 || o.TotalCollectionCount > MaxTotalCollections {
				return fmt.Errorf("totalCollectionCount must be between 1 and %d", MaxTotalCollections)
			}
			if o.TopLevelCollectionCount < 1 || o.TopLevelCollectionCount > o.TotalCollectionCount {
				return fmt.Errorf("topLevelCollectionCount must be between 1 and totalCollectionCount")
			}
		} else {
			if o.CollectionCount < 1 || o.CollectionCount > MaxTotalCollections {
				return fmt.Errorf("collectionCount must be between 1 and %d", MaxTotalCollections)
			}
		}
	} else if o.DistributeItems {
		return fmt.Errorf("distributeItems requires useCollections")
	}

	if o.UseWeakPasswords && (o.WeakPasswordPercentage < 0 || o.WeakPasswordPercentage > 100) {
		return fmt.Errorf("weakPasswordPercentage must be between 0 and 100")
	}
	if o.ReusePasswords && (o.PasswordReusePercentage < 0 || o.PasswordReusePercentage > 100) {
		return fmt.Errorf("passwordReusePercentage must be between 0 and 100")
	}
	if o.UseMrBlobby && (o.MrBlobbyPercentage < 5 || o.MrBlobbyPercentage > 100) {
		return fmt.Errorf("mrBlobbyPercentage must be between 5 and 100")
	}

	return nil
}
