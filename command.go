package pathmorphing

import (
	"strconv"
	"strings"
)

// DrawCommandKind identifies the variant of a DrawCommand.
type DrawCommandKind int

const (
	MoveCommand DrawCommandKind = iota
	LineCommand
	QuadraticCurveCommand
	BezierCurveCommand
	EllipticalArcCommand
	CloseCommand
)

// Indices of the large-arc and sweep flags inside an EllipticalArc command's
// raw argument tuple (x0, y0, rx, ry, rotation, largeArc, sweep, x1, y1).
const (
	arcLargeArcIndex = 5
	arcSweepIndex    = 6
)

// String returns the command letter used in path data for this kind.
func (k DrawCommandKind) String() string {
	switch k {
	case MoveCommand:
		return "M"
	case LineCommand:
		return "L"
	case QuadraticCurveCommand:
		return "Q"
	case BezierCurveCommand:
		return "C"
	case EllipticalArcCommand:
		return "A"
	case CloseCommand:
		return "Z"
	}
	return "?"
}

// DrawCommand is one atomic path-drawing instruction with its geometric
// payload. Points holds the command's ordered point list; an entry may be
// nil for a point that is not meaningful (a Move's previous point), and
// consumers must skip nil entries rather than fail on them. EllipticalArc
// commands carry their nine raw arguments in Args instead of points:
// (x0, y0, rx, ry, rotation, largeArc, sweep, x1, y1), flags stored as 0/1.
type DrawCommand struct {
	Kind   DrawCommandKind
	Points []*PathOffset
	Args   []float64
}

// NewMoveCommand creates a Move command. previous may be nil when no point
// precedes the move.
func NewMoveCommand(previous *PathOffset, target PathOffset) *DrawCommand {
	return &DrawCommand{Kind: MoveCommand, Points: []*PathOffset{previous, &target}}
}

// NewLineCommand creates a Line command from start to end.
func NewLineCommand(start, end PathOffset) *DrawCommand {
	return &DrawCommand{Kind: LineCommand, Points: []*PathOffset{&start, &end}}
}

// NewQuadraticCurveCommand creates a QuadraticCurve command.
func NewQuadraticCurveCommand(start, control, end PathOffset) *DrawCommand {
	return &DrawCommand{Kind: QuadraticCurveCommand, Points: []*PathOffset{&start, &control, &end}}
}

// NewBezierCurveCommand creates a cubic BezierCurve command.
func NewBezierCurveCommand(start, control1, control2, end PathOffset) *DrawCommand {
	return &DrawCommand{Kind: BezierCurveCommand, Points: []*PathOffset{&start, &control1, &control2, &end}}
}

// NewEllipticalArcCommand creates an EllipticalArc command from the raw arc
// arguments.
func NewEllipticalArcCommand(x0, y0, rx, ry, rotation float64, largeArc, sweep bool, x1, y1 float64) *DrawCommand {
	return &DrawCommand{
		Kind: EllipticalArcCommand,
		Args: []float64{x0, y0, rx, ry, rotation, flagValue(largeArc), flagValue(sweep), x1, y1},
	}
}

// NewCloseCommand creates a ClosePath command.
func NewCloseCommand() *DrawCommand {
	return &DrawCommand{Kind: CloseCommand}
}

// EndPoint returns the command's logical end point, or nil when the command
// has none of its own (ClosePath).
func (c *DrawCommand) EndPoint() *PathOffset {
	switch c.Kind {
	case EllipticalArcCommand:
		return &PathOffset{c.Args[7], c.Args[8]}
	case CloseCommand:
		return nil
	}
	if len(c.Points) == 0 {
		return nil
	}
	return c.Points[len(c.Points)-1]
}

// ArcLarge reports the large-arc flag of an EllipticalArc command.
func (c *DrawCommand) ArcLarge() bool {
	return c.Args[arcLargeArcIndex] != 0
}

// ArcSweep reports the sweep flag of an EllipticalArc command.
func (c *DrawCommand) ArcSweep() bool {
	return c.Args[arcSweepIndex] != 0
}

// Clone returns a deep copy of the command.
func (c *DrawCommand) Clone() *DrawCommand {
	clone := &DrawCommand{Kind: c.Kind}
	if c.Points != nil {
		clone.Points = make([]*PathOffset, len(c.Points))
		for i, p := range c.Points {
			if p != nil {
				v := *p
				clone.Points[i] = &v
			}
		}
	}
	if c.Args != nil {
		clone.Args = append([]float64(nil), c.Args...)
	}
	return clone
}

// String returns the command in path-data notation.
func (c *DrawCommand) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

func (c *DrawCommand) writeTo(b *strings.Builder) {
	b.WriteString(c.Kind.String())
	switch c.Kind {
	case MoveCommand, LineCommand:
		writePoint(b, *c.Points[len(c.Points)-1])
	case QuadraticCurveCommand:
		writePoint(b, *c.Points[1])
		b.WriteByte(' ')
		writePoint(b, *c.Points[2])
	case BezierCurveCommand:
		writePoint(b, *c.Points[1])
		b.WriteByte(' ')
		writePoint(b, *c.Points[2])
		b.WriteByte(' ')
		writePoint(b, *c.Points[3])
	case EllipticalArcCommand:
		writeNumber(b, c.Args[2])
		b.WriteByte(',')
		writeNumber(b, c.Args[3])
		b.WriteByte(' ')
		writeNumber(b, c.Args[4])
		b.WriteByte(' ')
		writeFlag(b, c.ArcLarge())
		b.WriteByte(' ')
		writeFlag(b, c.ArcSweep())
		b.WriteByte(' ')
		writePoint(b, PathOffset{c.Args[7], c.Args[8]})
	case CloseCommand:
	}
}

// serializeCommands renders a flattened command list back into path data.
// It is the inverse of parseCommands for the absolute command subset the
// command model retains.
func serializeCommands(commands []*DrawCommand) string {
	var b strings.Builder
	for i, cmd := range commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		cmd.writeTo(&b)
	}
	return b.String()
}

func writePoint(b *strings.Builder, p PathOffset) {
	writeNumber(b, p.Dx)
	b.WriteByte(',')
	writeNumber(b, p.Dy)
}

func writeNumber(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

func writeFlag(b *strings.Builder, set bool) {
	if set {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
}

func flagValue(set bool) float64 {
	if set {
		return 1
	}
	return 0
}
