// Package variants turns one target name into the set of surface forms used
// for matching: deterministic derivations (initials, reorderings, nicknames,
// diacritic folds) plus optional LLM-suggested cultural variants.
package variants

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/namescreen/internal/cache"
	"github.com/ppiankov/namescreen/internal/llm"
	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/score"
)

// Generator produces variant sets. Identical (name, config) inputs yield
// identical sets; the cache makes repeats free within a process lifetime.
type Generator struct {
	cfg         model.VariantsConfig
	svc         *llm.Service
	store       cache.Cache
	cacheTTL    time.Duration
	fingerprint string
}

// NewGenerator creates a generator. svc and store may be nil: augmentation
// and caching are then disabled.
func NewGenerator(cfg model.VariantsConfig, svc *llm.Service, store cache.Cache, cacheTTL time.Duration) *Generator {
	fingerprint := fmt.Sprintf("augment=%t;provider=%s", cfg.Augment, svc.ProviderName())

	return &Generator{
		cfg:         cfg,
		svc:         svc,
		store:       store,
		cacheTTL:    cacheTTL,
		fingerprint: fingerprint,
	}
}

// Generate builds the variant set for one target name. The set is never
// empty: it always contains at least the normalized original name. Malformed
// input degrades the parse, it never produces an error; the only error is an
// empty name, which is an input validation failure.
func (g *Generator) Generate(ctx context.Context, rawName string) (*model.VariantSet, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, fmt.Errorf("target name is empty")
	}

	key := cache.Key(score.Normalize(rawName), g.fingerprint)
	if g.store != nil {
		if data, found := g.store.Get(key); found {
			var cached model.VariantSet
			if err := json.Unmarshal(data, &cached); err == nil && len(cached.Variants) > 0 {
				cached.FromCache = true
				return &cached, nil
			}
		}
	}

	target := ParseName(rawName)
	set := &model.VariantSet{Target: target}

	b := newBuilder()
	g.derive(b, target)

	if g.cfg.Augment && g.svc.Enabled() {
		suggested, err := g.svc.GenerateVariants(ctx, rawName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: variant augmentation failed: %v\n", err)
			set.Partial = true
		} else {
			for _, s := range suggested {
				b.add(s, model.VariantCultural)
			}
		}
	}

	set.Variants = b.variants

	// Partial sets are not cached so a later run can retry augmentation
	if g.store != nil && !set.Partial {
		if data, err := json.Marshal(set); err == nil {
			_ = g.store.Set(key, data, g.cacheTTL)
		}
	}

	return set, nil
}

// derive adds the deterministic variants in tie-break priority order:
// exact forms first, then nickname and initials, then reorderings and
// cultural normalizations.
func (g *Generator) derive(b *builder, t model.TargetName) {
	b.add(t.Raw, model.VariantExact)

	if !t.Parsed {
		b.add(t.Last, model.VariantExact)
		b.add(foldDiacritics(t.Last), model.VariantCultural)
		return
	}

	full := t.First + " " + t.Last
	if t.Middle != "" {
		full = t.First + " " + t.Middle + " " + t.Last
	}
	b.add(full, model.VariantExact)
	b.add(t.First+" "+t.Last, model.VariantExact)

	for _, nick := range nicknamesFor(t.First) {
		b.add(nick+" "+t.Last, model.VariantNickname)
	}

	b.add(initial(t.First)+" "+t.Last, model.VariantInitials)
	if t.Middle != "" {
		middles := strings.Fields(t.Middle)
		b.add(t.First+" "+initial(middles[0])+" "+t.Last, model.VariantInitials)

		all := initial(t.First)
		for _, m := range middles {
			all += " " + initial(m)
		}
		b.add(all+" "+t.Last, model.VariantInitials)
	}

	b.add(t.Last+", "+t.First, model.VariantReordered)
	if t.Middle != "" {
		// Middle-as-first: articles often drop an unused first name
		b.add(strings.Fields(t.Middle)[0]+" "+t.Last, model.VariantReordered)
	}

	if strings.Contains(t.Last, "-") {
		for _, part := range strings.Split(t.Last, "-") {
			if part != "" {
				b.add(t.First+" "+part, model.VariantCultural)
			}
		}
	}

	for _, v := range b.snapshot() {
		if folded := foldDiacritics(v.Text); folded != v.Text {
			b.add(folded, model.VariantCultural)
		}
	}
}

func initial(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	return string(r[0]) + "."
}

// builder accumulates variants with case-insensitive dedupe. The first kind
// registered for a surface form wins, which is why exact forms go in first.
type builder struct {
	variants []model.NameVariant
	seen     map[string]bool
}

func newBuilder() *builder {
	return &builder{seen: make(map[string]bool)}
}

func (b *builder) add(text string, kind model.VariantKind) {
	text = strings.ToLower(strings.Join(strings.Fields(text), " "))
	if text == "" {
		return
	}

	key := score.Normalize(text)
	if key == "" || b.seen[key] {
		return
	}
	b.seen[key] = true
	b.variants = append(b.variants, model.NameVariant{Text: text, Kind: kind})
}

func (b *builder) snapshot() []model.NameVariant {
	out := make([]model.NameVariant, len(b.variants))
	copy(out, b.variants)
	return out
}
