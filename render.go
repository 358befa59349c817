package pathmorphing

// PathProxy is the rendering-backend contract. It receives the flattened
// command sequence one drawing primitive at a time, in order, with the exact
// numeric payloads of the commands; it is expected to perform no geometry of
// its own.
type PathProxy interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ArcTo(x0, y0, rx, ry, rotation float64, largeArc, sweep bool, x1, y1 float64)
	Close()
}

// WriteToPath dispatches the path's current flattened commands to the proxy.
func (p *SvgPathData) WriteToPath(path PathProxy) {
	writeCommands(p.flattenedCommands(), path)
}

// WriteSvgPathDataToPath parses path data and writes it straight to the
// given proxy, without building an SvgPathData.
func WriteSvgPathDataToPath(svg string, path PathProxy) error {
	commands, err := parseCommands(svg)
	if err != nil {
		return err
	}
	writeCommands(commands, path)
	return nil
}

func writeCommands(commands []*DrawCommand, path PathProxy) {
	for _, cmd := range commands {
		switch cmd.Kind {
		case MoveCommand:
			t := cmd.Points[1]
			path.MoveTo(t.Dx, t.Dy)
		case LineCommand:
			t := cmd.Points[1]
			path.LineTo(t.Dx, t.Dy)
		case QuadraticCurveCommand:
			path.QuadraticTo(cmd.Points[1].Dx, cmd.Points[1].Dy, cmd.Points[2].Dx, cmd.Points[2].Dy)
		case BezierCurveCommand:
			path.CubicTo(cmd.Points[1].Dx, cmd.Points[1].Dy, cmd.Points[2].Dx, cmd.Points[2].Dy, cmd.Points[3].Dx, cmd.Points[3].Dy)
		case EllipticalArcCommand:
			a := cmd.Args
			path.ArcTo(a[0], a[1], a[2], a[3], a[4], cmd.ArcLarge(), cmd.ArcSweep(), a[7], a[8])
		case CloseCommand:
			path.Close()
		}
	}
}
