package pathmorphing

import "sort"

// DrawCommandWrapper pairs one source DrawCommand with the canonical cubic
// Bezier segments representing its geometry, and owns that command's split
// state: a strictly ascending list of split parameters in (0,1) and the
// commands derived from them. Wrappers are created once per command by the
// derivation pass and are only replaced wholesale when the whole path is
// rebuilt from a new command list.
type DrawCommandWrapper struct {
	source        *DrawCommand
	segments      []CubicBezier
	splits        []float64
	splitCommands []*DrawCommand
}

func newDrawCommandWrapper(source *DrawCommand, segments ...CubicBezier) *DrawCommandWrapper {
	return &DrawCommandWrapper{source: source, segments: segments}
}

// Source returns the wrapped command.
func (w *DrawCommandWrapper) Source() *DrawCommand {
	return w.source
}

// Segments returns the canonical cubic segments. Move commands and
// degenerate arcs have none.
func (w *DrawCommandWrapper) Segments() []CubicBezier {
	return w.segments
}

// SplitParameters returns a copy of the current split parameters in
// ascending order.
func (w *DrawCommandWrapper) SplitParameters() []float64 {
	return append([]float64(nil), w.splits...)
}

// Commands returns the wrapper's current command view: the derived split
// commands when splits exist, otherwise the single source command. This view
// is what feeds sub-path grouping and string regeneration.
func (w *DrawCommandWrapper) Commands() []*DrawCommand {
	if len(w.splitCommands) > 0 {
		return w.splitCommands
	}
	return []*DrawCommand{w.source}
}

// insertSplit adds t at its sorted position. Duplicate values insert
// adjacently.
func (w *DrawCommandWrapper) insertSplit(t float64) {
	i := sort.SearchFloat64s(w.splits, t)
	w.splits = append(w.splits, 0)
	copy(w.splits[i+1:], w.splits[i:])
	w.splits[i] = t
}

// removeSplit deletes the split parameter at the given index.
func (w *DrawCommandWrapper) removeSplit(i int) {
	w.splits = append(w.splits[:i], w.splits[i+1:]...)
}

// rebuildSplitCommands rederives the split-command list from the split
// parameters, cutting the original curve at boundaries [0, t1 .. tn, 1].
// Only single-segment wrappers reach this point; arc wrappers are rejected
// before any split is recorded.
func (w *DrawCommandWrapper) rebuildSplitCommands() {
	if len(w.splits) == 0 {
		w.splitCommands = nil
		return
	}

	base := w.segments[0]
	boundaries := make([]float64, 0, len(w.splits)+2)
	boundaries = append(boundaries, 0)
	boundaries = append(boundaries, w.splits...)
	boundaries = append(boundaries, 1)

	commands := make([]*DrawCommand, 0, len(boundaries)-1)
	for i := 1; i < len(boundaries); i++ {
		sub := base.Subsegment(boundaries[i-1], boundaries[i])
		last := i == len(boundaries)-1
		commands = append(commands, w.splitCommand(sub, last))
	}
	w.splitCommands = commands
}

// splitCommand converts one sub-curve back into a DrawCommand of the source
// command's variant. A ClosePath splits into lines up to the final piece,
// which keeps the closing command so the figure stays closed.
func (w *DrawCommandWrapper) splitCommand(sub CubicBezier, last bool) *DrawCommand {
	switch w.source.Kind {
	case LineCommand:
		return NewLineCommand(sub.P0, sub.P3)
	case QuadraticCurveCommand:
		return NewQuadraticCurveCommand(sub.P0, quadraticControl(sub), sub.P3)
	case BezierCurveCommand:
		return NewBezierCurveCommand(sub.P0, sub.P1, sub.P2, sub.P3)
	case CloseCommand:
		if last {
			return w.source
		}
		return NewLineCommand(sub.P0, sub.P3)
	}
	panic("split on a command without curve geometry")
}
