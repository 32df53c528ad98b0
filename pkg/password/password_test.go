package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

func testGenerator(t *testing.T, itemCount int, opts Options) *Generator {
	t.Helper()
	return NewGenerator(randutil.New(42), locale.Resolve("en"), itemCount, opts)
}

func TestPoolSeedSize(t *testing.T) {
	g := testGenerator(t, 20, Options{ReuseEnabled: true, ReusePct: 50})
	require.Equal(t, 6, g.Pool().Len(), "pool seeds with max(5, itemCount*3/10)")

	g = testGenerator(t, 3, Options{ReuseEnabled: true, ReusePct: 50})
	require.Equal(t, 5, g.Pool().Len(), "small item counts still seed 5")

	g = testGenerator(t, 1000, Options{})
	require.Equal(t, 0, g.Pool().Len(), "reuse disabled leaves the pool empty")
}

func TestFullReuseNeverIntroducesNewPasswords(t *testing.T) {
	g := testGenerator(t, 20, Options{ReuseEnabled: true, ReusePct: 100})
	seeded := g.Pool().Len()

	for i := 0; i < 200; i++ {
		pw := g.Password()
		require.True(t, g.Pool().Contains(pw), "100%% reuse must return pooled passwords")
	}
	require.Equal(t, seeded, g.Pool().Len(), "pool must not grow under full reuse")
}

func TestPoolGrowsMonotonically(t *testing.T) {
	g := testGenerator(t, 50, Options{ReuseEnabled: true, ReusePct: 40})
	prev := g.Pool().Len()
	for i := 0; i < 300; i++ {
		g.Password()
		n := g.Pool().Len()
		require.GreaterOrEqual(t, n, prev, "pool never shrinks")
		prev = n
	}
}

func TestReuseDisabledAlwaysGeneratesFresh(t *testing.T) {
	g := testGenerator(t, 10, Options{})
	for i := 0; i < 50; i++ {
		require.NotEmpty(t, g.Password())
		require.Equal(t, 0, g.Pool().Len())
	}
}

func TestWeakPasswordStrategies(t *testing.T) {
	r := randutil.New(7)
	loc := locale.Resolve("en")
	for i := 0; i < 500; i++ {
		pw := Weak(r, loc)
		require.NotEmpty(t, pw)
		require.LessOrEqual(t, len(pw), 40, "weak passwords stay short")
	}
}

func TestStrongPasswordLength(t *testing.T) {
	r := randutil.New(7)
	for i := 0; i < 100; i++ {
		pw := Strong(r)
		require.GreaterOrEqual(t, len(pw), 16)
		require.LessOrEqual(t, len(pw), 24)
	}
}

func TestTOTPSecret(t *testing.T) {
	r := randutil.New(7)
	secret := TOTPSecret(r)
	require.Len(t, secret, 32)
	require.Equal(t, strings.ToUpper(secret), secret)
	for _, c := range secret {
		require.True(t, (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'))
	}
}

func TestTOTPURI(t *testing.T) {
	uri := TOTPURI("GitHub", "dev@example.com", "ABC234")
	require.True(t, strings.HasPrefix(uri, "otpauth://totp/"))
	require.Contains(t, uri, "secret=ABC234")
	require.Contains(t, uri, "issuer=GitHub")
}

func TestWeakGenerationRespectsPercentage(t *testing.T) {
	// 100% weak: every generated password comes from a weak strategy, so
	// none should reach the strong generator's minimum length with its
	// symbol charset.
	g := testGenerator(t, 10, Options{WeakEnabled: true, WeakPct: 100})
	long := 0
	for i := 0; i < 200; i++ {
		if len(g.Password()) >= 16 {
			long++
		}
	}
	require.Less(t, long, 20, "weak passwords should rarely hit strong lengths")
}
