package pericope

import (
	"sort"

	"github.com/FocuswithJustin/pericope/core/verse"
	"github.com/FocuswithJustin/pericope/core/versification"
)

// sameBook gates every binary operation. Cross-book operands are a valid
// "no relationship" case, never an error; each operation picks its own
// degenerate result.
func (p *Pericope) sameBook(other *Pericope) bool {
	return other != nil && p.book != nil && p.book.Equal(other.book)
}

// Normalize returns a pericope whose ranges are sorted by start, with
// overlapping or exactly adjacent ranges merged. The result's ranges are
// disjoint and strictly increasing. Normalize is idempotent.
func (p *Pericope) Normalize() *Pericope {
	if len(p.ranges) == 0 {
		return Empty(p.book)
	}
	sorted := p.Ranges()
	sort.Slice(sorted, func(i, j int) bool {
		si, sj := p.start(sorted[i]), p.start(sorted[j])
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return p.end(sorted[i]).Before(p.end(sorted[j]))
	})

	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if p.touches(*last, r) {
			if p.end(*last).Before(p.end(r)) {
				last.EndChapter, last.EndVerse = r.EndChapter, r.EndVerse
			}
			continue
		}
		merged = append(merged, r)
	}
	return &Pericope{book: p.book, ranges: merged}
}

// touches reports whether next overlaps prev or starts exactly at the
// successor of prev's end. prev's start is not after next's start.
func (p *Pericope) touches(prev, next Range) bool {
	nextStart := p.start(next)
	prevEnd := p.end(prev)
	if !prevEnd.Before(nextStart) {
		return true // overlap
	}
	succ, ok := prevEnd.Successor()
	return ok && succ.Equal(nextStart)
}

// ContinuousRanges returns the maximal contiguous runs of the pericope as
// separate ranges in ascending order. It is the merge artifact of Normalize
// exposed as output.
func (p *Pericope) ContinuousRanges() []Range {
	return p.Normalize().Ranges()
}

// Union merges both range sets and normalizes. A cross-book operand leaves
// the receiver unchanged.
func (p *Pericope) Union(other *Pericope) *Pericope {
	if !p.sameBook(other) {
		return p
	}
	combined := append(p.Ranges(), other.ranges...)
	return (&Pericope{book: p.book, ranges: combined}).Normalize()
}

// rangesOverlap reports whether two ranges of this book share a verse.
func (p *Pericope) rangesOverlap(a, b Range) bool {
	return !p.end(a).Before(p.start(b)) && !p.end(b).Before(p.start(a))
}

// Intersection collects the verse-level overlap of every range pair and
// normalizes. Cross-book operands intersect in nothing.
func (p *Pericope) Intersection(other *Pericope) *Pericope {
	if !p.sameBook(other) {
		return Empty(p.book)
	}
	var overlaps []Range
	for _, a := range p.ranges {
		for _, b := range other.ranges {
			if !p.rangesOverlap(a, b) {
				continue
			}
			start := p.start(a)
			if start.Before(p.start(b)) {
				start = p.start(b)
			}
			end := p.end(a)
			if p.end(b).Before(end) {
				end = p.end(b)
			}
			overlaps = append(overlaps, Range{
				StartChapter: start.Chapter, StartVerse: start.Verse,
				EndChapter: end.Chapter, EndVerse: end.Verse,
			})
		}
	}
	return (&Pericope{book: p.book, ranges: overlaps}).Normalize()
}

// Subtract removes every verse covered by other from the receiver,
// re-splitting ranges as needed. A cross-book operand removes nothing.
func (p *Pericope) Subtract(other *Pericope) *Pericope {
	if !p.sameBook(other) {
		return p
	}
	current := p.Normalize().ranges
	for _, b := range other.Normalize().ranges {
		var next []Range
		for _, a := range current {
			next = append(next, p.subtractRange(a, b)...)
		}
		current = next
	}
	return &Pericope{book: p.book, ranges: current}
}

// subtractRange removes b's span from a, yielding zero, one, or two pieces.
func (p *Pericope) subtractRange(a, b Range) []Range {
	if !p.rangesOverlap(a, b) {
		return []Range{a}
	}
	var out []Range
	if p.start(a).Before(p.start(b)) {
		if cut, ok := p.start(b).Predecessor(); ok {
			out = append(out, Range{
				StartChapter: a.StartChapter, StartVerse: a.StartVerse,
				EndChapter: cut.Chapter, EndVerse: cut.Verse,
			})
		}
	}
	if p.end(b).Before(p.end(a)) {
		if cut, ok := p.end(b).Successor(); ok {
			out = append(out, Range{
				StartChapter: cut.Chapter, StartVerse: cut.Verse,
				EndChapter: a.EndChapter, EndVerse: a.EndVerse,
			})
		}
	}
	return out
}

// Intersects reports whether any verse is shared. Cross-book is false.
func (p *Pericope) Intersects(other *Pericope) bool {
	if !p.sameBook(other) {
		return false
	}
	for _, a := range p.ranges {
		for _, b := range other.ranges {
			if p.rangesOverlap(a, b) {
				return true
			}
		}
	}
	return false
}

// Overlaps is an alias of Intersects.
func (p *Pericope) Overlaps(other *Pericope) bool {
	return p.Intersects(other)
}

// Contains reports whether every verse of other is covered by the receiver.
// An empty other is vacuously contained. Cross-book is false.
func (p *Pericope) Contains(other *Pericope) bool {
	if !p.sameBook(other) {
		return false
	}
	if other.IsEmpty() {
		return true
	}
	mine := p.Normalize().ranges
	for _, b := range other.Normalize().ranges {
		covered := false
		for _, a := range mine {
			if !p.start(b).Before(p.start(a)) && !p.end(a).Before(p.end(b)) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// AdjacentTo reports whether the two pericopes touch with a zero-verse gap
// and no overlap: the successor of one's last verse is the other's first.
func (p *Pericope) AdjacentTo(other *Pericope) bool {
	if !p.sameBook(other) || p.IsEmpty() || other.IsEmpty() || p.Intersects(other) {
		return false
	}
	pn, on := p.Normalize(), other.Normalize()
	pFirst, _ := pn.FirstVerse()
	pLast, _ := pn.LastVerse()
	oFirst, _ := on.FirstVerse()
	oLast, _ := on.LastVerse()
	if succ, ok := pLast.Successor(); ok && succ.Equal(oFirst) {
		return true
	}
	if succ, ok := oLast.Successor(); ok && succ.Equal(pFirst) {
		return true
	}
	return false
}

// Precedes reports whether the receiver's last verse is strictly before
// other's first verse with no overlap.
func (p *Pericope) Precedes(other *Pericope) bool {
	if !p.sameBook(other) || p.IsEmpty() || other.IsEmpty() {
		return false
	}
	last, _ := p.Normalize().LastVerse()
	first, _ := other.Normalize().FirstVerse()
	return last.Before(first)
}

// Follows is the dual of Precedes.
func (p *Pericope) Follows(other *Pericope) bool {
	if !p.sameBook(other) {
		return false
	}
	return other.Precedes(p)
}

// Gaps walks the span from the pericope's first to last verse and collects
// every coordinate not covered by any range. A single contiguous range or
// single verse has no gaps.
func (p *Pericope) Gaps() []verse.Coordinate {
	n := p.Normalize()
	var gaps []verse.Coordinate
	for i := 1; i < len(n.ranges); i++ {
		c, ok := n.end(n.ranges[i-1]).Successor()
		boundary := n.start(n.ranges[i])
		for ok && c.Before(boundary) {
			gaps = append(gaps, c)
			c, ok = c.Successor()
		}
	}
	return gaps
}

// VersesInChapter sums the verses each range contributes within the
// chapter. Ranges are summed as constructed; callers whose ranges may
// overlap should normalize first to avoid double counting. Chapters not
// touched or out of bounds contribute 0.
func (p *Pericope) VersesInChapter(chapter int) int {
	total := 0
	for _, r := range p.ranges {
		if chapter < r.StartChapter || chapter > r.EndChapter {
			continue
		}
		count, ok := versification.VerseCount(p.book.Code, chapter)
		if !ok {
			continue
		}
		lo, hi := 1, count
		if chapter == r.StartChapter {
			lo = r.StartVerse
		}
		if chapter == r.EndChapter {
			hi = r.EndVerse
		}
		if hi >= lo {
			total += hi - lo + 1
		}
	}
	return total
}

// ChapterVerses lists the verse numbers present in one chapter.
type ChapterVerses struct {
	Chapter int
	Verses  []int
}

// ChaptersInRange returns, per touched chapter in ascending order, the
// ascending verse numbers present, derived by materializing every covered
// coordinate.
func (p *Pericope) ChaptersInRange() []ChapterVerses {
	var out []ChapterVerses
	for _, c := range p.Normalize().Verses() {
		if len(out) == 0 || out[len(out)-1].Chapter != c.Chapter {
			out = append(out, ChapterVerses{Chapter: c.Chapter})
		}
		last := &out[len(out)-1]
		last.Verses = append(last.Verses, c.Verse)
	}
	return out
}

// Density is the ratio of verses present to verses possible across the
// spanned chapters. A pericope within one chapter divides by that chapter's
// verse total; a multi-chapter pericope divides by the summed totals of
// every chapter from the first spanned to the last. Empty is 0.
func (p *Pericope) Density() float64 {
	n := p.Normalize()
	if n.IsEmpty() {
		return 0
	}
	first := n.ranges[0].StartChapter
	last := n.ranges[len(n.ranges)-1].EndChapter
	possible := 0
	for ch := first; ch <= last; ch++ {
		count, ok := versification.VerseCount(p.book.Code, ch)
		if !ok {
			continue
		}
		possible += count
	}
	if possible == 0 {
		return 0
	}
	return float64(p.VerseCount()) / float64(possible)
}

// Expand grows the first range's start backward by before verses and the
// last range's end forward by after verses, clamped to the chapter: the
// start never moves before verse 1 of its chapter and the end never moves
// past the chapter's last verse. Growth never crosses a chapter boundary.
func (p *Pericope) Expand(before, after int) *Pericope {
	if p.IsEmpty() {
		return p.Clear()
	}
	ranges := p.Ranges()
	if before > 0 {
		first := &ranges[0]
		first.StartVerse -= before
		if first.StartVerse < 1 {
			first.StartVerse = 1
		}
	}
	if after > 0 {
		last := &ranges[len(ranges)-1]
		if count, ok := versification.VerseCount(p.book.Code, last.EndChapter); ok {
			last.EndVerse += after
			if last.EndVerse > count {
				last.EndVerse = count
			}
		}
	}
	return &Pericope{book: p.book, ranges: ranges}
}

// Contract shrinks the first range's start forward by fromStart verses and
// the last range's end backward by fromEnd verses, walking coordinates so
// cross-chapter ranges shrink correctly. A range contracted past itself is
// removed; contracting everything away yields the empty pericope, never an
// invalid range.
func (p *Pericope) Contract(fromStart, fromEnd int) *Pericope {
	if p.IsEmpty() {
		return p.Clear()
	}
	ranges := p.Ranges()

	if len(ranges) == 1 {
		s, okS := advance(p.start(ranges[0]), fromStart)
		e, okE := retreat(p.end(ranges[0]), fromEnd)
		if !okS || !okE || s.After(e) {
			return Empty(p.book)
		}
		return &Pericope{book: p.book, ranges: []Range{{
			StartChapter: s.Chapter, StartVerse: s.Verse,
			EndChapter: e.Chapter, EndVerse: e.Verse,
		}}}
	}

	if fromStart > 0 {
		s, ok := advance(p.start(ranges[0]), fromStart)
		if !ok || s.After(p.end(ranges[0])) {
			ranges = ranges[1:]
		} else {
			ranges[0].StartChapter, ranges[0].StartVerse = s.Chapter, s.Verse
		}
	}
	if fromEnd > 0 && len(ranges) > 0 {
		i := len(ranges) - 1
		e, ok := retreat(p.end(ranges[i]), fromEnd)
		if !ok || e.Before(p.start(ranges[i])) {
			ranges = ranges[:i]
		} else {
			ranges[i].EndChapter, ranges[i].EndVerse = e.Chapter, e.Verse
		}
	}
	if len(ranges) == 0 {
		return Empty(p.book)
	}
	return &Pericope{book: p.book, ranges: ranges}
}

func advance(c verse.Coordinate, n int) (verse.Coordinate, bool) {
	for i := 0; i < n; i++ {
		next, ok := c.Successor()
		if !ok {
			return verse.Coordinate{}, false
		}
		c = next
	}
	return c, true
}

func retreat(c verse.Coordinate, n int) (verse.Coordinate, bool) {
	for i := 0; i < n; i++ {
		prev, ok := c.Predecessor()
		if !ok {
			return verse.Coordinate{}, false
		}
		c = prev
	}
	return c, true
}
