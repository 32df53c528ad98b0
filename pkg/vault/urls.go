package vault

import (
	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// popularSites is the curated list used when callers ask for real URLs.
var popularSites = []string{
	"https://www.google.com",
	"https://www.youtube.com",
	"https://www.facebook.com",
	"https://www.amazon.com",
	"https://www.wikipedia.org",
	"https://www.reddit.com",
	"https://www.netflix.com",
	"https://www.x.com",
	"https://www.instagram.com",
	"https://www.linkedin.com",
	"https://www.ebay.com",
	"https://www.paypal.com",
	"https://www.apple.com",
	"https://www.microsoft.com",
	"https://www.github.com",
	"https://www.stackoverflow.com",
	"https://www.dropbox.com",
	"https://www.spotify.com",
	"https://www.zoom.us",
	"https://www.slack.com",
	"https://www.adobe.com",
	"https://www.booking.com",
	"https://www.airbnb.com",
	"https://www.twitch.tv",
	"https://www.pinterest.com",
}

// DefaultEnterpriseSites backs the enterprise URL policy when the caller
// does not supply a custom list.
var DefaultEnterpriseSites = []string{
	"https://portal.office.com",
	"https://login.salesforce.com",
	"https://app.workday.com",
	"https://login.okta.com",
	"https://console.aws.amazon.com",
	"https://portal.azure.com",
	"https://app.datadoghq.com",
	"https://id.atlassian.com",
	"https://app.hubspot.com",
	"https://login.sap.com",
	"https://secure.workaday.internal",
	"https://vpn.corp.example.com",
	"https://jenkins.build.example.com",
	"https://wiki.intranet.example.com",
	"https://gitlab.internal.example.com",
}

var syntheticTLDs = []string{".com", ".net", ".org", ".io", ".co", ".app"}

// urlPicker applies the URL-selection policy shared by every format
// generator: enterprise list (caller-supplied overrides the default),
// curated popular sites, or a synthesized domain.
type urlPicker struct {
	rand       *randutil.Rand
	loc        *locale.Locale
	useReal    bool
	enterprise []string
}

func newURLPicker(r *randutil.Rand, loc *locale.Locale, opts *Options) *urlPicker {
	p := &urlPicker{rand: r, loc: loc, useReal: opts.UseRealUrls}
	if opts.UseEnterpriseUrls {
		if len(opts.EnterpriseUrls) > 0 {
			p.enterprise = opts.EnterpriseUrls
		} else {
			p.enterprise = DefaultEnterpriseSites
		}
	}
	return p
}

func (p *urlPicker) pick() string {
	if len(p.enterprise) > 0 {
		return randutil.Pick(p.rand, p.enterprise)
	}
	if p.useReal {
		return randutil.Pick(p.rand, popularSites)
	}
	return p.synthesize()
}

func (p *urlPicker) synthesize() string {
	name := p.loc.DomainWord(p.rand)
	if p.rand.Chance(40) {
		name += p.loc.DomainWord(p.rand)
	}
	return "https://www." + name + randutil.Pick(p.rand, syntheticTLDs)
}
