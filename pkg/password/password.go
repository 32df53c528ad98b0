// Package password produces synthetic passwords and TOTP secrets for vault
// exports. Nothing here is a secret: output quality is tuned for realism in
// import testing, including deliberately weak and reused passwords.
package password

import (
	"fmt"
	"net/url"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// Pool holds the passwords eligible for reuse within one generation run.
// It grows monotonically and is never shared across runs.
type Pool struct {
	passwords []string
	seen      mapset.Set[string]
}

func newEmptyPool() *Pool {
	return &Pool{seen: mapset.NewSet[string]()}
}

// Len reports the number of pooled passwords.
func (p *Pool) Len() int {
	return len(p.passwords)
}

// Add appends pw unless it is already pooled.
func (p *Pool) Add(pw string) {
	if p.seen.Contains(pw) {
		return
	}
	p.seen.Add(pw)
	p.passwords = append(p.passwords, pw)
}

// Contains reports whether pw is in the pool.
func (p *Pool) Contains(pw string) bool {
	return p.seen.Contains(pw)
}

// Random returns a uniformly chosen pooled password. Empty pool returns "".
func (p *Pool) Random(r *randutil.Rand) string {
	return randutil.Pick(r, p.passwords)
}

// Options configures one run's password generation.
type Options struct {
	WeakEnabled  bool
	WeakPct      int
	ReuseEnabled bool
	ReusePct     int
}

// Generator produces passwords for a single generation run. Construct one
// per run; it is not safe for concurrent use.
type Generator struct {
	rand *randutil.Rand
	loc  *locale.Locale
	opts Options
	pool *Pool
}

// NewGenerator builds a run-scoped generator. When reuse is enabled the
// pool is pre-populated with max(5, itemCount*3/10) passwords so that early
// items already have reuse candidates; with reuse disabled the pool stays
// empty and reuse never triggers.
func NewGenerator(r *randutil.Rand, loc *locale.Locale, itemCount int, opts Options) *Generator {
	g := &Generator{rand: r, loc: loc, opts: opts, pool: newEmptyPool()}
	if !opts.ReuseEnabled {
		return g
	}
	seed := itemCount * 3 / 10
	if seed < 5 {
		seed = 5
	}
	for i := 0; i < seed; i++ {
		g.pool.Add(g.newPassword())
	}
	return g
}

// Pool exposes the run's reuse pool, mainly for tests and reporting.
func (g *Generator) Pool() *Pool {
	return g.pool
}

// Password returns the next password. The reuse draw happens before any
// new password is generated, and freshly generated passwords join the pool
// so they are eligible for reuse later in the same run.
func (g *Generator) Password() string {
	if g.pool.Len() > 0 && g.rand.Chance(g.opts.ReusePct) {
		return g.pool.Random(g.rand)
	}
	pw := g.newPassword()
	if g.opts.ReuseEnabled {
		g.pool.Add(pw)
	}
	return pw
}

func (g *Generator) newPassword() string {
	if g.opts.WeakEnabled && g.rand.Chance(g.opts.WeakPct) {
		return Weak(g.rand, g.loc)
	}
	return Strong(g.rand)
}

// Strong returns a 16-24 character password over the full charset.
func Strong(r *randutil.Rand) string {
	n := r.IntBetween(16, 24)
	return r.Letters(n, randutil.Lowercase+randutil.Uppercase+randutil.Digits+randutil.Symbols)
}

// Weak returns an intentionally low-entropy password using one of six
// strategies, chosen uniformly. Weakness is by construction, not filtered
// after the fact.
func Weak(r *randutil.Rand, loc *locale.Locale) string {
	switch r.Intn(6) {
	case 0:
		// Common dictionary word, sometimes with a lazy numeric suffix.
		word := loc.DictionaryWord(r)
		if r.Chance(50) {
			return word + fmt.Sprintf("%d", r.IntBetween(1, 99))
		}
		return word
	case 1:
		// Short random string.
		return r.Letters(r.IntBetween(3, 6), randutil.Lowercase+randutil.Digits)
	case 2:
		// Simple memorable lowercase.
		return strings.ToLower(loc.DictionaryWord(r)) + strings.ToLower(loc.DictionaryWord(r))
	case 3:
		return sequential(r)
	case 4:
		// Repeated single character.
		c := r.Letters(1, randutil.Lowercase+randutil.Digits)
		return strings.Repeat(c, r.IntBetween(4, 8))
	default:
		return loc.WeakPassword(r)
	}
}

// sequential builds a 5-8 character run of consecutive digits or letters.
// Digits wrap modulo 10; letters stay within a 20-letter window so the run
// never leaves the alphabet.
func sequential(r *randutil.Rand) string {
	n := r.IntBetween(5, 8)
	out := make([]byte, n)
	if r.Chance(50) {
		start := r.Intn(10)
		for i := range out {
			out[i] = byte('0' + (start+i)%10)
		}
	} else {
		start := r.Intn(20)
		for i := range out {
			out[i] = byte('a' + (start+i)%20)
		}
	}
	return string(out)
}

// TOTPSecret returns a 32-character uppercase alphanumeric secret.
func TOTPSecret(r *randutil.Rand) string {
	return r.Letters(32, randutil.Uppercase+randutil.Digits)
}

// TOTPURI renders an otpauth:// URI for formats that embed TOTP seeds.
func TOTPURI(issuer, account, secret string) string {
	return fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s",
		url.PathEscape(issuer), url.PathEscape(account), secret, url.QueryEscape(issuer))
}
