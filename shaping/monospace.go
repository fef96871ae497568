package shaping

import (
	"fmt"

	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/grapheme"
	"github.com/npillmayer/textpipe/uax11"
)

// NotDef is the glyph id for code-points a font has no glyph for.
const NotDef textpipe.GlyphID = 0

// Monospace is a shaper for fixed-pitch text. It produces one glyph per
// grapheme cluster, with the glyph id being the first code-point of the
// cluster. Advances are 1/2 em for narrow and 1 em for wide clusters.
//
// Monospace must not be used concurrently.
type Monospace struct {
	context *uax11.Context
	breaker *grapheme.Breaker
}

// NewMonospace creates a monospace shaper. ctx is used to resolve ambiguous
// East Asian widths; it may be nil.
func NewMonospace(ctx *uax11.Context) *Monospace {
	return &Monospace{
		context: ctx,
		breaker: grapheme.NewBreaker(),
	}
}

// Shape implements Shaper.
func (m *Monospace) Shape(cps []rune, runs []textpipe.TextRun, fonts FontSource, out *Buffer) error {
	if fonts == nil {
		return fmt.Errorf("shaping: monospace shaper: %w", ErrNoFontSource)
	}
	for _, run := range runs {
		if run.End() > len(cps) {
			return fmt.Errorf("shaping: run %v exceeds text of length %d", run.Range, len(cps))
		}
		em := fonts.Metrics(run.FontID).Size
		shaped := textpipe.ShapedRun{
			Range:      run.Range,
			GlyphStart: len(out.Glyphs),
			Level:      run.Level,
			Direction:  run.Direction(),
			FontID:     run.FontID,
			Snapshot:   run.Snapshot,
		}
		m.breaker.Clusters(cps[run.Start:run.End()], func(cluster []rune, offset int) {
			g := textpipe.Glyph{
				ID:       textpipe.GlyphID(cluster[0]),
				Cluster:  run.Start + offset,
				XAdvance: float32(uax11.Width(cluster, m.context)) * em / 2,
			}
			if !fonts.HasGlyph(run.FontID, cluster[0]) {
				g.ID = NotDef
			}
			shaped.Width += g.XAdvance
			out.Glyphs = append(out.Glyphs, g)
		})
		shaped.GlyphCount = len(out.Glyphs) - shaped.GlyphStart
		out.Runs = append(out.Runs, shaped)
	}
	CT().Debugf("shaping: %d runs shaped into %d glyphs", len(runs), len(out.Glyphs))
	return nil
}
