package pathmorphing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingPathProxy collects the primitives dispatched to it, formatted the
// way the expectations are written.
type recordingPathProxy struct {
	commands []string
}

func (p *recordingPathProxy) MoveTo(x, y float64) {
	p.commands = append(p.commands, fmt.Sprintf("moveTo(%.4f, %.4f)", x, y))
}

func (p *recordingPathProxy) LineTo(x, y float64) {
	p.commands = append(p.commands, fmt.Sprintf("lineTo(%.4f, %.4f)", x, y))
}

func (p *recordingPathProxy) QuadraticTo(x1, y1, x2, y2 float64) {
	p.commands = append(p.commands, fmt.Sprintf("quadraticTo(%.4f, %.4f, %.4f, %.4f)", x1, y1, x2, y2))
}

func (p *recordingPathProxy) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.commands = append(p.commands, fmt.Sprintf("cubicTo(%.4f, %.4f, %.4f, %.4f, %.4f, %.4f)", x1, y1, x2, y2, x3, y3))
}

func (p *recordingPathProxy) ArcTo(x0, y0, rx, ry, rotation float64, largeArc, sweep bool, x1, y1 float64) {
	p.commands = append(p.commands, fmt.Sprintf("arcTo(%.4f, %.4f, %.4f, %.4f, %.4f, %t, %t, %.4f, %.4f)", x0, y0, rx, ry, rotation, largeArc, sweep, x1, y1))
}

func (p *recordingPathProxy) Close() {
	p.commands = append(p.commands, "close()")
}

func assertParsesTo(t *testing.T, input string, expected []string) {
	t.Helper()
	proxy := &recordingPathProxy{}
	err := WriteSvgPathDataToPath(input, proxy)
	assert.NoError(t, err)
	assert.Equal(t, expected, proxy.commands)
}

func TestParseAbsoluteCommands(t *testing.T) {
	assertParsesTo(t, "M0,0 L10,0 Q15,5 20,0 C25,5 30,-5 35,0 Z", []string{
		"moveTo(0.0000, 0.0000)",
		"lineTo(10.0000, 0.0000)",
		"quadraticTo(15.0000, 5.0000, 20.0000, 0.0000)",
		"cubicTo(25.0000, 5.0000, 30.0000, -5.0000, 35.0000, 0.0000)",
		"close()",
	})
}

func TestParseSmoothQuadReflection(t *testing.T) {
	assertParsesTo(t, "M20,30 Q40,5 60,30 T100,30", []string{
		"moveTo(20.0000, 30.0000)",
		"quadraticTo(40.0000, 5.0000, 60.0000, 30.0000)",
		"quadraticTo(80.0000, 55.0000, 100.0000, 30.0000)",
	})
}

func TestParseSmoothCubicReflection(t *testing.T) {
	assertParsesTo(t, "M10,80 C40,10 65,10 95,80 S150,150 180,80", []string{
		"moveTo(10.0000, 80.0000)",
		"cubicTo(40.0000, 10.0000, 65.0000, 10.0000, 95.0000, 80.0000)",
		"cubicTo(125.0000, 150.0000, 150.0000, 150.0000, 180.0000, 80.0000)",
	})
}

func TestParseHorizontalVertical(t *testing.T) {
	assertParsesTo(t, "M10,10 H40 V30 Z", []string{
		"moveTo(10.0000, 10.0000)",
		"lineTo(40.0000, 10.0000)",
		"lineTo(40.0000, 30.0000)",
		"close()",
	})
}

func TestParseRelativeAndImplicitCommands(t *testing.T) {
	assertParsesTo(t, "m5 5 l10 0 10 10", []string{
		"moveTo(5.0000, 5.0000)",
		"lineTo(15.0000, 5.0000)",
		"lineTo(25.0000, 15.0000)",
	})
}

func TestParsePreservesRawArcs(t *testing.T) {
	assertParsesTo(t, "M5.5 5.5a.5 1.5 30 1 1-.866-.5.5 1.5 30 1 1 .866.5z", []string{
		"moveTo(5.5000, 5.5000)",
		"arcTo(5.5000, 5.5000, 0.5000, 1.5000, 30.0000, true, true, 4.6340, 5.0000)",
		"arcTo(4.6340, 5.0000, 0.5000, 1.5000, 30.0000, true, true, 5.5000, 5.5000)",
		"close()",
	})
}

func TestParseErrors(t *testing.T) {
	proxy := &recordingPathProxy{}
	assert.Error(t, WriteSvgPathDataToPath("L10 0", proxy), "paths must start with a move")
	assert.Error(t, WriteSvgPathDataToPath("M10", proxy), "incomplete coordinate pair")
	assert.Error(t, WriteSvgPathDataToPath("M0,0 A5,5 0 2 0 10,0", proxy), "invalid arc flag")
	assert.Empty(t, proxy.commands)
}

func TestParseEmptyString(t *testing.T) {
	commands, err := parseCommands("")
	assert.NoError(t, err)
	assert.Empty(t, commands)
}

func TestSerializeRoundTrip(t *testing.T) {
	input := "M0,0 L10,0 Q15,5 20,0 C25,5 30,-5 35,0 A5,5 0 0 1 45,0 Z"
	commands, err := parseCommands(input)
	assert.NoError(t, err)
	assert.Equal(t, input, serializeCommands(commands))
}

func TestSerializeResolvesRelativeForms(t *testing.T) {
	commands, err := parseCommands("m10 10 h30 v20 z")
	assert.NoError(t, err)
	assert.Equal(t, "M10,10 L40,10 L40,30 Z", serializeCommands(commands))
}
