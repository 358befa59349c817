package pathmorphing

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned by Interpolate when the three paths involved
// do not share the same command topology.
var ErrShapeMismatch = errors.New("paths are not morphable")

// ErrArcSplitUnsupported is returned by CommitSplit when the projection
// landed on an elliptical arc command, which cannot be split.
var ErrArcSplitUnsupported = errors.New("cannot split an elliptical arc command")

// SvgPathData owns a parsed path: the wrapper list with its canonical
// geometry and split state, the derived sub-path grouping, the accumulated
// length and bounding box, and the serialized string. Mutating operations
// rebuild the grouping before returning, so the command view is always
// consistent; the string is only regenerated where documented.
//
// SvgPathData is not safe for concurrent use. Callers must finish one
// mutating call before starting the next or reading derived views.
type SvgPathData struct {
	str      string
	length   float64
	bounds   Rect
	wrappers []*DrawCommandWrapper
	subPaths []*SubPathCommand
}

// NewSvgPathData parses path data and runs the derivation pass over it.
func NewSvgPathData(data string) (*SvgPathData, error) {
	commands, err := parseCommands(data)
	if err != nil {
		return nil, err
	}
	p := &SvgPathData{str: data}
	p.rebuildFromCommands(commands)
	return p, nil
}

// rebuildFromCommands recreates the wrapper list, length and bounds from a
// flattened command list in a single left-to-right pass, threading the
// current point and the first point of the current sub-path, then rebuilds
// the grouping. Any split state held by previous wrappers is discarded.
func (p *SvgPathData) rebuildFromCommands(commands []*DrawCommand) {
	length := 0.0
	bounds := EmptyRect()
	wrappers := make([]*DrawCommandWrapper, 0, len(commands))

	current := ZeroPathOffset()
	var first *PathOffset

	for _, cmd := range commands {
		switch cmd.Kind {
		case MoveCommand:
			target := *cmd.EndPoint()
			f := target
			first = &f
			current = target
			bounds.ExpandToPoint(target)
			wrappers = append(wrappers, newDrawCommandWrapper(cmd))

		case LineCommand:
			end := *cmd.EndPoint()
			length += current.Distance(end)
			bounds.ExpandToPoint(end)
			wrappers = append(wrappers, newDrawCommandWrapper(cmd, lineCubic(current, end)))
			current = end

		case QuadraticCurveCommand:
			seg := quadraticCubic(current, *cmd.Points[1], *cmd.Points[2])
			length += seg.Length()
			bounds.ExpandToRect(seg.BoundingBox())
			wrappers = append(wrappers, newDrawCommandWrapper(cmd, seg))
			current = seg.P3

		case BezierCurveCommand:
			seg := CubicBezier{current, *cmd.Points[1], *cmd.Points[2], *cmd.Points[3]}
			length += seg.Length()
			bounds.ExpandToRect(seg.BoundingBox())
			wrappers = append(wrappers, newDrawCommandWrapper(cmd, seg))
			current = seg.P3

		case EllipticalArcCommand:
			wrapper, end := deriveArcWrapper(cmd, current, &length, &bounds)
			wrappers = append(wrappers, wrapper)
			current = end

		case CloseCommand:
			if first != nil {
				length += current.Distance(*first)
				wrappers = append(wrappers, newDrawCommandWrapper(cmd, lineCubic(current, *first)))
				current = *first
			} else {
				// no sub-path start to return to: contributes nothing
				wrappers = append(wrappers, newDrawCommandWrapper(cmd))
			}
			first = nil
		}
	}

	p.wrappers = wrappers
	p.length = length
	p.bounds = bounds
	p.subPaths = createSubPathCommands(p.flattenedCommands())
}

// deriveArcWrapper handles the three arc branches: a point-degenerate arc
// contributes nothing, a zero-radius arc behaves exactly like a line, and a
// real arc lowers to cubic segments that each contribute their own length
// and bounds. The returned end point is always the arc's declared end so the
// current point does not drift with the approximation.
func deriveArcWrapper(cmd *DrawCommand, current PathOffset, length *float64, bounds *Rect) (*DrawCommandWrapper, PathOffset) {
	args := cmd.Args
	start := PathOffset{args[0], args[1]}
	end := *cmd.EndPoint()

	if start == end {
		return newDrawCommandWrapper(cmd), end
	}

	if args[2] == 0 || args[3] == 0 {
		*length += current.Distance(end)
		bounds.ExpandToPoint(end)
		return newDrawCommandWrapper(cmd, lineCubic(current, end)), end
	}

	curves := arcToCubicCurves(args[0], args[1], args[2], args[3], args[4], cmd.ArcLarge(), cmd.ArcSweep(), args[7], args[8])
	if len(curves) == 0 {
		*length += current.Distance(end)
		bounds.ExpandToPoint(end)
		return newDrawCommandWrapper(cmd, lineCubic(current, end)), end
	}
	for _, seg := range curves {
		*length += seg.Length()
		bounds.ExpandToRect(seg.BoundingBox())
	}
	return newDrawCommandWrapper(cmd, curves...), end
}

func (p *SvgPathData) flattenedCommands() []*DrawCommand {
	var out []*DrawCommand
	for _, w := range p.wrappers {
		out = append(out, w.Commands()...)
	}
	return out
}

// Length returns the total accumulated arc length.
func (p *SvgPathData) Length() float64 {
	return p.length
}

// BoundingBox returns the axis-aligned bounds of the path's geometry. The
// result IsEmpty when no geometry contributed.
func (p *SvgPathData) BoundingBox() Rect {
	return p.bounds
}

// Commands returns the canonical structural view: the derived sub-path
// grouping of the current flattened command list.
func (p *SvgPathData) Commands() []*SubPathCommand {
	return p.subPaths
}

// Wrappers returns the wrapper list in command order.
func (p *SvgPathData) Wrappers() []*DrawCommandWrapper {
	return p.wrappers
}

// String returns the last-synchronized serialized form. Interpolation leaves
// it stale on purpose; call RegenerateString to resync.
func (p *SvgPathData) String() string {
	return p.str
}

// RegenerateString rebuilds the serialized form from the current flattened
// command list and returns it.
func (p *SvgPathData) RegenerateString() string {
	p.str = serializeCommands(p.flattenedCommands())
	return p.str
}

// IsMorphableWith reports whether two paths share the same topology: equal
// sub-path counts, per-sub-path command counts, and per-command variant and
// point arity. Raw arc argument values are not compared.
func (p *SvgPathData) IsMorphableWith(other *SvgPathData) bool {
	if len(p.subPaths) != len(other.subPaths) {
		return false
	}
	for i := range p.subPaths {
		a := p.subPaths[i].commands
		b := other.subPaths[i].commands
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j].Kind != b[j].Kind || len(a[j].Points) != len(b[j].Points) {
				return false
			}
		}
	}
	return true
}

// Interpolate sets this path's geometry to the blend of start and end at the
// given fraction. All three paths must be pairwise morphable; otherwise
// ErrShapeMismatch is returned and nothing is mutated. Point entries absent
// in either input are left untouched. Arc arguments interpolate numerically
// except the two flags, which are boolean-valued: they stay at start's value
// only when fraction is exactly 0 and snap to end's value for any other
// fraction.
//
// Wrappers, length, bounds and grouping are rebuilt before returning. The
// serialized string is intentionally not regenerated.
func (p *SvgPathData) Interpolate(start, end *SvgPathData, fraction float64) error {
	if !p.IsMorphableWith(start) || !p.IsMorphableWith(end) {
		return ErrShapeMismatch
	}

	for i, sub := range p.subPaths {
		for j, cmd := range sub.commands {
			s := start.subPaths[i].commands[j]
			e := end.subPaths[i].commands[j]

			if cmd.Kind == EllipticalArcCommand {
				for k := range cmd.Args {
					if k == arcLargeArcIndex || k == arcSweepIndex {
						if fraction == 0 {
							cmd.Args[k] = s.Args[k]
						} else {
							cmd.Args[k] = e.Args[k]
						}
						continue
					}
					cmd.Args[k] = lerp(s.Args[k], e.Args[k], fraction)
				}
				continue
			}

			for k := range cmd.Points {
				if s.Points[k] == nil || e.Points[k] == nil {
					continue
				}
				v := s.Points[k].Lerp(*e.Points[k], fraction)
				cmd.Points[k] = &v
			}
		}
	}

	var flat []*DrawCommand
	for _, sub := range p.subPaths {
		flat = append(flat, sub.commands...)
	}
	p.rebuildFromCommands(flat)
	return nil
}

// ProjectionResult is the closest point on the path to a query point, bound
// to the wrapper it came from so the split can be committed without
// re-running the search.
type ProjectionResult struct {
	Point    PathOffset
	T        float64
	Distance float64
	wrapper  *DrawCommandWrapper
}

// Wrapper returns the wrapper the projection landed on.
func (r *ProjectionResult) Wrapper() *DrawCommandWrapper {
	return r.wrapper
}

// Project finds the closest point on the path to the target. Wrappers
// without curve segments (moves, point-degenerate arcs) are skipped; ties
// keep the first-evaluated segment and wrapper. Returns nil when no wrapper
// has any segment.
func (p *SvgPathData) Project(target PathOffset) *ProjectionResult {
	var best *ProjectionResult
	for _, w := range p.wrappers {
		if len(w.segments) == 0 {
			continue
		}
		proj := w.segments[0].Project(target)
		for _, seg := range w.segments[1:] {
			if candidate := seg.Project(target); candidate.Distance < proj.Distance {
				proj = candidate
			}
		}
		if best == nil || proj.Distance < best.Distance {
			best = &ProjectionResult{Point: proj.Point, T: proj.T, Distance: proj.Distance, wrapper: w}
		}
	}
	return best
}

// CommitSplit splits the projected wrapper's command at the projection
// parameter without changing the rendered shape. Elliptical arcs cannot be
// split; wrappers without segments are a no-op. On success the flattened
// view, the grouping and the serialized string are all rebuilt.
func (p *SvgPathData) CommitSplit(res *ProjectionResult) error {
	w := res.wrapper
	if w.source.Kind == EllipticalArcCommand {
		return ErrArcSplitUnsupported
	}
	if len(w.segments) == 0 {
		return nil
	}
	w.insertSplit(res.T)
	w.rebuildSplitCommands()
	p.refresh()
	return nil
}

// RemoveSplit deletes one split parameter from a wrapper, restoring the
// pre-split command view when it was the only one. Like CommitSplit it
// rebuilds grouping and string before returning.
func (p *SvgPathData) RemoveSplit(w *DrawCommandWrapper, index int) error {
	if index < 0 || index >= len(w.splits) {
		return fmt.Errorf("split index %d out of range [0,%d)", index, len(w.splits))
	}
	w.removeSplit(index)
	w.rebuildSplitCommands()
	p.refresh()
	return nil
}

func (p *SvgPathData) refresh() {
	flat := p.flattenedCommands()
	p.subPaths = createSubPathCommands(flat)
	p.str = serializeCommands(flat)
}
