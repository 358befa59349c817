package pathmorphing

import (
	"errors"
	"fmt"
	"math"
	"unicode"
)

// parseCommands converts path data into the ordered absolute command list
// that the engine operates on. Relative, horizontal/vertical and smooth
// commands are resolved during the scan; quadratic curves and elliptical
// arcs are preserved as their own variants.
func parseCommands(svg string) ([]*DrawCommand, error) {
	if svg == "" {
		return nil, nil
	}

	parser := newSvgPathStringSource(svg)
	builder := newCommandBuilder()
	for parser.hasMoreData() {
		seg, err := parser.parseSegment()
		if err != nil {
			return nil, err
		}
		builder.addSegment(seg)
	}
	return builder.commands, nil
}

// SvgPathStringSource is a source of SVG path data.
type SvgPathStringSource struct {
	str             string
	previousCommand SvgPathSegType
	idx             int
	length          int
}

// newSvgPathStringSource creates a new SvgPathStringSource.
func newSvgPathStringSource(s string) *SvgPathStringSource {
	res := &SvgPathStringSource{
		str:    s,
		idx:    0,
		length: len(s),
	}
	res.skipOptionalSvgSpaces()
	return res
}

// isHtmlSpace checks if a character is an HTML space.
func (s *SvgPathStringSource) isHtmlSpace(c rune) bool {
	return c <= 32 && (c == 32 || c == 10 || c == 9 || c == 13 || c == 12)
}

// skipOptionalSvgSpaces skips optional spaces in the SVG string.
func (s *SvgPathStringSource) skipOptionalSvgSpaces() rune {
	for {
		if s.idx >= s.length {
			return -1
		}
		c := rune(s.str[s.idx])
		if !s.isHtmlSpace(c) {
			return c
		}
		s.idx++
	}
}

// skipOptionalSvgSpacesOrDelimiter skips optional spaces or a delimiter.
func (s *SvgPathStringSource) skipOptionalSvgSpacesOrDelimiter(delimiter rune) {
	c := s.skipOptionalSvgSpaces()
	if c == delimiter {
		s.idx++
		s.skipOptionalSvgSpaces()
	}
}

// isNumberStart checks if a character is the start of a number.
func (s *SvgPathStringSource) isNumberStart(c rune) bool {
	return unicode.IsDigit(c) || c == '+' || c == '-' || c == '.'
}

// maybeImplicitCommand determines the implicit command.
func (s *SvgPathStringSource) maybeImplicitCommand(lookahead rune, nextCommand SvgPathSegType) SvgPathSegType {
	if !s.isNumberStart(lookahead) || s.previousCommand == SvgPathSegTypeClose {
		return nextCommand
	}
	if s.previousCommand == SvgPathSegTypeMoveToAbs {
		return SvgPathSegTypeLineToAbs
	}
	if s.previousCommand == SvgPathSegTypeMoveToRel {
		return SvgPathSegTypeLineToRel
	}
	return s.previousCommand
}

// readCodeUnit reads the next character from the string.
func (s *SvgPathStringSource) readCodeUnit() rune {
	if s.idx >= s.length {
		return -1
	}
	c := rune(s.str[s.idx])
	s.idx++
	return c
}

// parseNumber parses a number from the string.
func (s *SvgPathStringSource) parseNumber() (float64, error) {
	s.skipOptionalSvgSpaces()

	sign := 1.0
	c := s.readCodeUnit()
	if c == '+' {
		c = s.readCodeUnit()
	} else if c == '-' {
		sign = -1.0
		c = s.readCodeUnit()
	}

	if (c < '0' || c > '9') && c != '.' {
		return 0, errors.New("first character of a number must be one of [0-9+-.]")
	}

	integer := 0.0
	for '0' <= c && c <= '9' {
		integer = integer*10 + float64(c-'0')
		c = s.readCodeUnit()
	}

	if !isValidRange(integer) {
		return 0, errors.New("numeric overflow")
	}

	decimalPart := 0.0
	if c == '.' {
		c = s.readCodeUnit()

		if c < '0' || c > '9' {
			return 0, errors.New("there must be at least one digit following the decimal point")
		}

		frac := 1.0
		for '0' <= c && c <= '9' {
			frac *= 0.1
			decimalPart += float64(c-'0') * frac
			c = s.readCodeUnit()
		}
	}

	number := integer + decimalPart
	number *= sign

	if s.idx < s.length && (c == 'e' || c == 'E') && (s.str[s.idx] != 'x' && s.str[s.idx] != 'm') {
		c = s.readCodeUnit()

		exponentIsNegative := false
		if c == '+' {
			c = s.readCodeUnit()
		} else if c == '-' {
			c = s.readCodeUnit()
			exponentIsNegative = true
		}

		if c < '0' || c > '9' {
			return 0, errors.New("missing exponent")
		}

		exponent := 0.0
		for c >= '0' && c <= '9' {
			exponent *= 10.0
			exponent += float64(c - '0')
			c = s.readCodeUnit()
		}
		if exponentIsNegative {
			exponent = -exponent
		}
		if !isValidExponent(exponent) {
			return 0, fmt.Errorf("invalid exponent %f", exponent)
		}
		if exponent != 0 {
			number *= math.Pow(10.0, exponent)
		}
	}

	if !isValidRange(number) {
		return 0, errors.New("numeric overflow")
	}

	if c != -1 {
		s.idx--
		s.skipOptionalSvgSpacesOrDelimiter(',')
	}
	return number, nil
}

// parseArcFlag parses an arc flag from the string.
func (s *SvgPathStringSource) parseArcFlag() (bool, error) {
	if !s.hasMoreData() {
		return false, errors.New("expected more data")
	}
	flagChar := s.str[s.idx]
	s.idx++
	s.skipOptionalSvgSpacesOrDelimiter(',')

	if flagChar == '0' {
		return false, nil
	} else if flagChar == '1' {
		return true, nil
	} else {
		return false, errors.New("invalid flag value")
	}
}

// hasMoreData checks if there is more data to parse.
func (s *SvgPathStringSource) hasMoreData() bool {
	return s.idx < s.length
}

// parseSegment parses a segment from the string.
func (s *SvgPathStringSource) parseSegment() (PathSegmentData, error) {
	if !s.hasMoreData() {
		return PathSegmentData{}, errors.New("no more data")
	}

	var segment PathSegmentData
	lookahead := rune(s.str[s.idx])
	command := mapLetterToSegmentType(lookahead)

	if s.previousCommand == SvgPathSegTypeUnknown {
		if command != SvgPathSegTypeMoveToRel && command != SvgPathSegTypeMoveToAbs {
			return PathSegmentData{}, errors.New("expected to find moveTo command")
		}
		s.idx++
	} else if command == SvgPathSegTypeUnknown {
		command = s.maybeImplicitCommand(lookahead, command)
		if command == SvgPathSegTypeUnknown {
			return PathSegmentData{}, errors.New("expected a path command")
		}
	} else {
		s.idx++
	}

	segment.Command = command
	s.previousCommand = command

	switch segment.Command {
	case SvgPathSegTypeCubicToRel, SvgPathSegTypeCubicToAbs:
		x1, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		y1, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.Point1 = PathOffset{x1, y1}
		fallthrough
	case SvgPathSegTypeSmoothCubicToRel, SvgPathSegTypeSmoothCubicToAbs:
		x2, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		y2, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.Point2 = PathOffset{x2, y2}
		fallthrough
	case SvgPathSegTypeMoveToRel, SvgPathSegTypeMoveToAbs, SvgPathSegTypeLineToRel, SvgPathSegTypeLineToAbs, SvgPathSegTypeSmoothQuadToRel, SvgPathSegTypeSmoothQuadToAbs:
		x, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		y, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.TargetPoint = PathOffset{x, y}
	case SvgPathSegTypeLineToHorizontalRel, SvgPathSegTypeLineToHorizontalAbs:
		x, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.TargetPoint = PathOffset{x, segment.TargetPoint.Dy}
	case SvgPathSegTypeLineToVerticalRel, SvgPathSegTypeLineToVerticalAbs:
		y, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.TargetPoint = PathOffset{segment.TargetPoint.Dx, y}
	case SvgPathSegTypeClose:
		s.skipOptionalSvgSpaces()
	case SvgPathSegTypeQuadToRel, SvgPathSegTypeQuadToAbs:
		x1, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		y1, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.Point1 = PathOffset{x1, y1}
		x, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		y, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.TargetPoint = PathOffset{x, y}
	case SvgPathSegTypeArcToRel, SvgPathSegTypeArcToAbs:
		x1, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		y1, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.Point1 = PathOffset{x1, y1}
		angle, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.ArcAngle = angle
		large, err := s.parseArcFlag()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.ArcLarge = large
		sweep, err := s.parseArcFlag()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.ArcSweep = sweep
		x, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		y, err := s.parseNumber()
		if err != nil {
			return PathSegmentData{}, err
		}
		segment.TargetPoint = PathOffset{x, y}
	case SvgPathSegTypeUnknown:
		return PathSegmentData{}, errors.New("unknown segment command")
	}

	return segment, nil
}

// isValidRange checks if a number is within the valid range.
func isValidRange(x float64) bool {
	return x >= -math.MaxFloat64 && x <= math.MaxFloat64
}

// isValidExponent checks if an exponent is within the valid range.
func isValidExponent(x float64) bool {
	return x >= -37 && x <= 38
}

// mapLetterToSegmentType maps a letter to a segment type.
func mapLetterToSegmentType(c rune) SvgPathSegType {
	switch c {
	case 'M':
		return SvgPathSegTypeMoveToAbs
	case 'm':
		return SvgPathSegTypeMoveToRel
	case 'L':
		return SvgPathSegTypeLineToAbs
	case 'l':
		return SvgPathSegTypeLineToRel
	case 'H':
		return SvgPathSegTypeLineToHorizontalAbs
	case 'h':
		return SvgPathSegTypeLineToHorizontalRel
	case 'V':
		return SvgPathSegTypeLineToVerticalAbs
	case 'v':
		return SvgPathSegTypeLineToVerticalRel
	case 'C':
		return SvgPathSegTypeCubicToAbs
	case 'c':
		return SvgPathSegTypeCubicToRel
	case 'S':
		return SvgPathSegTypeSmoothCubicToAbs
	case 's':
		return SvgPathSegTypeSmoothCubicToRel
	case 'Q':
		return SvgPathSegTypeQuadToAbs
	case 'q':
		return SvgPathSegTypeQuadToRel
	case 'T':
		return SvgPathSegTypeSmoothQuadToAbs
	case 't':
		return SvgPathSegTypeSmoothQuadToRel
	case 'A':
		return SvgPathSegTypeArcToAbs
	case 'a':
		return SvgPathSegTypeArcToRel
	case 'Z', 'z':
		return SvgPathSegTypeClose
	default:
		return SvgPathSegTypeUnknown
	}
}

// SvgPathSegType represents the type of an SVG path segment.
type SvgPathSegType int

const (
	SvgPathSegTypeUnknown SvgPathSegType = iota
	SvgPathSegTypeMoveToAbs
	SvgPathSegTypeMoveToRel
	SvgPathSegTypeLineToAbs
	SvgPathSegTypeLineToRel
	SvgPathSegTypeLineToHorizontalAbs
	SvgPathSegTypeLineToHorizontalRel
	SvgPathSegTypeLineToVerticalAbs
	SvgPathSegTypeLineToVerticalRel
	SvgPathSegTypeCubicToAbs
	SvgPathSegTypeCubicToRel
	SvgPathSegTypeSmoothCubicToAbs
	SvgPathSegTypeSmoothCubicToRel
	SvgPathSegTypeQuadToAbs
	SvgPathSegTypeQuadToRel
	SvgPathSegTypeSmoothQuadToAbs
	SvgPathSegTypeSmoothQuadToRel
	SvgPathSegTypeArcToAbs
	SvgPathSegTypeArcToRel
	SvgPathSegTypeClose
)

// PathSegmentData represents a segment of an SVG path.
type PathSegmentData struct {
	Command     SvgPathSegType
	TargetPoint PathOffset
	Point1      PathOffset
	Point2      PathOffset
	ArcSweep    bool
	ArcLarge    bool
	ArcAngle    float64
}

// String returns a string representation of the PathSegmentData.
func (p PathSegmentData) String() string {
	return fmt.Sprintf("PathSegmentData{%v %v %v %v %v %v}", p.Command, p.TargetPoint, p.Point1, p.Point2, p.ArcSweep, p.ArcLarge)
}

// commandBuilder accumulates parsed segments into absolute DrawCommands,
// threading the current point, the sub-path start point and the last control
// point for smooth-command reflection.
type commandBuilder struct {
	currentPoint PathOffset
	subPathPoint PathOffset
	controlPoint PathOffset
	lastCommand  SvgPathSegType
	hasCurrent   bool
	commands     []*DrawCommand
}

func newCommandBuilder() *commandBuilder {
	return &commandBuilder{
		currentPoint: ZeroPathOffset(),
		subPathPoint: ZeroPathOffset(),
		controlPoint: ZeroPathOffset(),
		lastCommand:  SvgPathSegTypeUnknown,
	}
}

// addSegment normalizes one parsed segment and appends the resulting
// DrawCommand.
func (b *commandBuilder) addSegment(segment PathSegmentData) {
	normSeg := segment
	switch segment.Command {
	case SvgPathSegTypeQuadToRel:
		normSeg.Point1 = normSeg.Point1.Add(b.currentPoint)
		normSeg.TargetPoint = normSeg.TargetPoint.Add(b.currentPoint)
	case SvgPathSegTypeCubicToRel:
		normSeg.Point1 = normSeg.Point1.Add(b.currentPoint)
		fallthrough
	case SvgPathSegTypeSmoothCubicToRel:
		normSeg.Point2 = normSeg.Point2.Add(b.currentPoint)
		fallthrough
	case SvgPathSegTypeMoveToRel, SvgPathSegTypeLineToRel, SvgPathSegTypeLineToHorizontalRel, SvgPathSegTypeLineToVerticalRel, SvgPathSegTypeSmoothQuadToRel, SvgPathSegTypeArcToRel:
		normSeg.TargetPoint = normSeg.TargetPoint.Add(b.currentPoint)
	case SvgPathSegTypeLineToHorizontalAbs:
		normSeg.TargetPoint = PathOffset{normSeg.TargetPoint.Dx, b.currentPoint.Dy}
	case SvgPathSegTypeLineToVerticalAbs:
		normSeg.TargetPoint = PathOffset{b.currentPoint.Dx, normSeg.TargetPoint.Dy}
	case SvgPathSegTypeClose:
		normSeg.TargetPoint = b.subPathPoint
	}

	switch segment.Command {
	case SvgPathSegTypeMoveToRel, SvgPathSegTypeMoveToAbs:
		var previous *PathOffset
		if b.hasCurrent {
			p := b.currentPoint
			previous = &p
		}
		b.subPathPoint = normSeg.TargetPoint
		b.commands = append(b.commands, NewMoveCommand(previous, normSeg.TargetPoint))
	case SvgPathSegTypeLineToRel, SvgPathSegTypeLineToAbs, SvgPathSegTypeLineToHorizontalRel, SvgPathSegTypeLineToHorizontalAbs, SvgPathSegTypeLineToVerticalRel, SvgPathSegTypeLineToVerticalAbs:
		b.commands = append(b.commands, NewLineCommand(b.currentPoint, normSeg.TargetPoint))
	case SvgPathSegTypeClose:
		b.commands = append(b.commands, NewCloseCommand())
	case SvgPathSegTypeSmoothCubicToRel, SvgPathSegTypeSmoothCubicToAbs:
		if !b.isCubicCommand(b.lastCommand) {
			normSeg.Point1 = b.currentPoint
		} else {
			normSeg.Point1 = b.reflectedPoint(b.currentPoint, b.controlPoint)
		}
		fallthrough
	case SvgPathSegTypeCubicToRel, SvgPathSegTypeCubicToAbs:
		b.controlPoint = normSeg.Point2
		b.commands = append(b.commands, NewBezierCurveCommand(b.currentPoint, normSeg.Point1, normSeg.Point2, normSeg.TargetPoint))
	case SvgPathSegTypeSmoothQuadToRel, SvgPathSegTypeSmoothQuadToAbs:
		if !b.isQuadraticCommand(b.lastCommand) {
			normSeg.Point1 = b.currentPoint
		} else {
			normSeg.Point1 = b.reflectedPoint(b.currentPoint, b.controlPoint)
		}
		fallthrough
	case SvgPathSegTypeQuadToRel, SvgPathSegTypeQuadToAbs:
		b.controlPoint = normSeg.Point1
		b.commands = append(b.commands, NewQuadraticCurveCommand(b.currentPoint, normSeg.Point1, normSeg.TargetPoint))
	case SvgPathSegTypeArcToRel, SvgPathSegTypeArcToAbs:
		b.commands = append(b.commands, NewEllipticalArcCommand(
			b.currentPoint.Dx, b.currentPoint.Dy,
			normSeg.Point1.Dx, normSeg.Point1.Dy,
			normSeg.ArcAngle, normSeg.ArcLarge, normSeg.ArcSweep,
			normSeg.TargetPoint.Dx, normSeg.TargetPoint.Dy))
	default:
		panic("invalid command type in path")
	}

	b.currentPoint = normSeg.TargetPoint
	b.hasCurrent = true

	if !b.isCubicCommand(segment.Command) && !b.isQuadraticCommand(segment.Command) {
		b.controlPoint = b.currentPoint
	}

	b.lastCommand = segment.Command
}

// isCubicCommand checks if a command is a cubic command.
func (b *commandBuilder) isCubicCommand(command SvgPathSegType) bool {
	return command == SvgPathSegTypeCubicToAbs || command == SvgPathSegTypeCubicToRel || command == SvgPathSegTypeSmoothCubicToAbs || command == SvgPathSegTypeSmoothCubicToRel
}

// isQuadraticCommand checks if a command is a quadratic command.
func (b *commandBuilder) isQuadraticCommand(command SvgPathSegType) bool {
	return command == SvgPathSegTypeQuadToAbs || command == SvgPathSegTypeQuadToRel || command == SvgPathSegTypeSmoothQuadToAbs || command == SvgPathSegTypeSmoothQuadToRel
}

// reflectedPoint returns the reflection of a point over another point.
func (b *commandBuilder) reflectedPoint(reflectedIn, pointToReflect PathOffset) PathOffset {
	return PathOffset{2*reflectedIn.Dx - pointToReflect.Dx, 2*reflectedIn.Dy - pointToReflect.Dy}
}
