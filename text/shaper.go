package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Shaper measures text with full HarfBuzz shaping via go-text/typesetting:
// ligature substitution, kerning pairs, and complex-script reordering all
// affect the measured width, unlike the naive per-glyph Face.Advance.
//
// Shaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not
// concurrent-safe.
type Shaper struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	// font.Font is read-only and safe for concurrent use; caching it
	// avoids re-parsing the font data on every call.
	fontCache map[*FontSource]*font.Font
}

// NewShaper creates a Shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance returns the shaped advance width of text rendered with face.
// Returns 0 for empty text or when the font cannot be parsed by the
// shaping engine.
func (s *Shaper) Advance(text string, face *Face) float64 {
	if text == "" || face == nil {
		return 0
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return face.Advance(text)
	}

	// font.Face is NOT safe for concurrent use, so each call gets its
	// own instance. font.NewFace is cheap: it wraps the thread-safe
	// *Font and initializes glyph caches.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      goTextFace,
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	var total float64
	for _, g := range output.Glyphs {
		total += fixedToFloat(g.XAdvance)
	}
	return total
}

// RemoveSource removes the cached parsed font for a FontSource.
func (s *Shaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// getOrCreateFont returns a cached go-text font.Font for the given
// source, parsing and caching it on first use.
func (s *Shaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock.
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}

	// Cache the Font (thread-safe), not the Face.
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by
// the caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
