// Package export orchestrates one generation run: locale resolution,
// password pool setup, format generation, serialization and optional
// Mr Blobby corruption. Everything it builds is scoped to the single call;
// no state survives between runs.
package export

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/vaultgen/vaultgen/pkg/blobby"
	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

// Result is a finished export ready to hand to an HTTP response or file.
type Result struct {
	Data        string
	ContentType string
	Filename    string
}

// Generate runs one full generation. Options must already be validated;
// this function trusts its input.
func Generate(ctx context.Context, opts vault.Options) (*Result, error) {
	l := ctxzap.Extract(ctx)

	var r *randutil.Rand
	if opts.Seed != 0 {
		r = randutil.New(opts.Seed)
	} else {
		r = randutil.NewFromTime()
	}

	loc := locale.Resolve(opts.Language)
	pw := password.NewGenerator(r, loc, opts.TotalItems(), password.Options{
		WeakEnabled:  opts.UseWeakPasswords,
		WeakPct:      opts.WeakPasswordPercentage,
		ReuseEnabled: opts.ReusePasswords,
		ReusePct:     opts.PasswordReusePercentage,
	})

	data, err := generate(r, loc, pw, &opts)
	if err != nil {
		l.Error("vault generation failed",
			zap.String("format", string(opts.VaultFormat)),
			zap.Error(err),
		)
		return nil, err
	}

	if opts.UseMrBlobby {
		data = blobby.CorruptOutput(r, data, opts.MrBlobbyPercentage, opts.VaultFormat)
	}

	l.Debug("vault generated",
		zap.String("format", string(opts.VaultFormat)),
		zap.String("locale", loc.Code),
		zap.Int("items", opts.TotalItems()),
		zap.Int("pooled_passwords", pw.Pool().Len()),
		zap.Bool("mr_blobby", opts.UseMrBlobby),
	)

	return &Result{
		Data:        data,
		ContentType: opts.VaultFormat.ContentType(),
		Filename:    opts.VaultFormat.Filename(),
	}, nil
}

// generate dispatches to the format generator, applies data-level
// corruption between generation and serialization, and serializes.
func generate(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *vault.Options) (string, error) {
	pct := opts.MrBlobbyPercentage
	corrupt := opts.UseMrBlobby

	switch opts.VaultFormat {
	case vault.FormatBitwarden:
		exp, err := vault.GenerateBitwarden(r, loc, pw, opts)
		if err != nil {
			return "", err
		}
		if corrupt {
			blobby.CorruptBitwarden(r, exp, pct)
		}
		return vault.SerializeBitwarden(exp)

	case vault.FormatKeeper:
		exp := vault.GenerateKeeper(r, loc, pw, opts)
		if corrupt {
			blobby.CorruptKeeper(r, exp, pct)
		}
		return vault.SerializeKeeper(exp)

	case vault.FormatKeePass2:
		root := vault.GenerateKeePass2(r, loc, pw, opts)
		if corrupt {
			blobby.CorruptKeePass2(r, root, pct)
		}
		return vault.SerializeKeePass2(root), nil

	case vault.FormatLastPass:
		records := vault.GenerateLastPass(r, loc, pw, opts)
		if corrupt {
			blobby.CorruptLastPass(r, records, pct)
		}
		return vault.SerializeLastPass(records), nil

	case vault.FormatEdge:
		records := vault.GenerateEdge(r, loc, pw, opts)
		if corrupt {
			blobby.CorruptEdge(r, records, pct)
		}
		return vault.SerializeEdge(records), nil

	case vault.FormatKeePassX:
		records := vault.GenerateKeePassX(r, loc, pw, opts)
		if corrupt {
			blobby.CorruptKeePassX(r, records, pct)
		}
		return vault.SerializeKeePassX(records), nil

	case vault.FormatPasswordDepot:
		records := vault.GeneratePasswordDepot(r, loc, pw, opts)
		if corrupt {
			blobby.CorruptPasswordDepot(r, records, pct)
		}
		return vault.SerializePasswordDepot(records), nil

	default:
		return "", fmt.Errorf("unsupported vault format %q", opts.VaultFormat)
	}
}
