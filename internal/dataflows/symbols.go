package dataflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// indianSuffixes are the exchange suffixes the resolver probes, in order:
// NSE first, then BSE.
var indianSuffixes = []string{".NS", ".BO"}

// NormalizeSymbol converts a raw symbol to its canonical form.
func NormalizeSymbol(symbol string) string {
	return strings.TrimSpace(strings.ToUpper(symbol))
}

// ValidateSymbol checks that a symbol is non-empty. Anything else is left to
// the providers, which know what actually lists.
func ValidateSymbol(symbol string) error {
	if len(NormalizeSymbol(symbol)) == 0 {
		return fmt.Errorf("symbol cannot be empty")
	}
	return nil
}

// HasIndianSuffix reports whether the symbol already carries a recognized
// regional exchange suffix.
func HasIndianSuffix(symbol string) bool {
	for _, sfx := range indianSuffixes {
		if strings.HasSuffix(symbol, sfx) {
			return true
		}
	}
	return false
}

// SuffixCandidates returns the regional variants of a bare symbol, in probe
// order.
func SuffixCandidates(symbol string) []string {
	candidates := make([]string, 0, len(indianSuffixes))
	for _, sfx := range indianSuffixes {
		candidates = append(candidates, symbol+sfx)
	}
	return candidates
}

// QuoteProber answers whether a candidate symbol currently trades with a
// live market price. A false result with a nil error means the provider
// answered and the candidate has no live listing; a non-nil error means the
// probe itself failed (transport, malformed response).
type QuoteProber interface {
	HasLivePrice(ctx context.Context, symbol string) (bool, error)
}

// Resolver guesses the tradable form of a bare ticker by probing Indian
// exchange suffix variants before assuming a global listing. The heuristic
// is knowingly ambiguous: a global ticker that also happens to resolve on
// NSE or BSE is rewritten to the regional form.
type Resolver struct {
	prober QuoteProber
	log    zerolog.Logger
}

// NewResolver builds a resolver over the given probe source.
func NewResolver(prober QuoteProber, log zerolog.Logger) *Resolver {
	return &Resolver{
		prober: prober,
		log:    log.With().Str("component", "resolver").Logger(),
	}
}

// Resolve returns the symbol unchanged when it already carries a regional
// suffix, otherwise the first suffixed candidate with a live market price,
// otherwise the input itself. Probe failures never surface to the caller;
// they only advance the search to the next candidate.
func (r *Resolver) Resolve(ctx context.Context, symbol string) string {
	if HasIndianSuffix(symbol) {
		return symbol
	}

	for _, candidate := range SuffixCandidates(symbol) {
		found, err := r.prober.HasLivePrice(ctx, candidate)
		if err != nil {
			r.log.Warn().Err(err).Str("candidate", candidate).Msg("symbol probe failed")
			continue
		}
		if found {
			return candidate
		}
		r.log.Debug().Str("candidate", candidate).Msg("no live listing")
	}

	return symbol
}
