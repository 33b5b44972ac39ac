package widget

import "math"

// sizeKey keys the fit and layout caches. Inputs are sanitized before the
// key is built, so NaN never reaches the map (a NaN key would be
// unretrievable).
type sizeKey struct {
	width  float64
	height float64
}

type fitResult struct {
	width  float64
	height float64
}

// sanitizeSize clamps negative and non-finite dimensions to zero. This runs
// before any cache lookup, never inside it.
func sanitizeSize(width, height float64) (float64, float64) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		width = 0
	}
	if math.IsNaN(height) || math.IsInf(height, 0) || height < 0 {
		height = 0
	}
	return width, height
}

// Fit reports the size the widget wants inside the given box.
//
// Inputs are sanitized, results are memoized per sanitized (width, height),
// and the returned size is clamped to 0 <= result <= input on both axes.
// With a FitFunc the capability's result is used verbatim before clamping;
// without one the size is the smallest box covering all child placements,
// each child's rectangle mapped through its placement transform; with
// neither capability the widget fits (0, 0).
func (w *Base) Fit(width, height float64) (float64, float64) {
	width, height = sanitizeSize(width, height)
	key := sizeKey{width: width, height: height}
	if cached, ok := w.fitCache[key]; ok {
		return cached.width, cached.height
	}

	var fw, fh float64
	switch {
	case w.FitFunc != nil:
		fw, fh = w.FitFunc(width, height)
	case w.LayoutFunc != nil:
		for _, p := range w.Layout(width, height) {
			box := p.Transform.TransformRect(rectLTWH(0, 0, p.Width, p.Height))
			fw = math.Max(fw, box.Right)
			fh = math.Max(fh, box.Bottom)
		}
	}

	fw = math.Min(math.Max(fw, 0), width)
	fh = math.Min(math.Max(fh, 0), height)

	if w.fitCache != nil {
		w.fitCache[key] = fitResult{width: fw, height: fh}
	}
	return fw, fh
}

// Layout reports the widget's child placements inside the given box, or
// nil when the widget has no layout capability. Results are memoized the
// same way as Fit.
func (w *Base) Layout(width, height float64) []Placement {
	width, height = sanitizeSize(width, height)
	key := sizeKey{width: width, height: height}
	if cached, ok := w.layoutCache[key]; ok {
		return cached
	}

	var placements []Placement
	if w.LayoutFunc != nil {
		placements = w.LayoutFunc(width, height)
	}
	if w.layoutCache != nil {
		w.layoutCache[key] = placements
	}
	return placements
}

// invalidateCaches discards both caches together by replacing them, so fit
// and layout never disagree about before/after state. Triggered solely by
// SignalLayoutChanged.
func (w *Base) invalidateCaches() {
	w.fitCache = make(map[sizeKey]fitResult)
	w.layoutCache = make(map[sizeKey][]Placement)
}
