package pathmorphing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteToPathDispatch(t *testing.T) {
	p := mustParsePath(t, "M0,0 L10,0 Q15,5 20,0 C25,5 30,-5 35,0 A5,5 0 0 1 45,0 Z")

	proxy := &recordingPathProxy{}
	p.WriteToPath(proxy)

	assert.Equal(t, []string{
		"moveTo(0.0000, 0.0000)",
		"lineTo(10.0000, 0.0000)",
		"quadraticTo(15.0000, 5.0000, 20.0000, 0.0000)",
		"cubicTo(25.0000, 5.0000, 30.0000, -5.0000, 35.0000, 0.0000)",
		"arcTo(35.0000, 0.0000, 5.0000, 5.0000, 0.0000, false, true, 45.0000, 0.0000)",
		"close()",
	}, proxy.commands)
}

func TestWriteToPathReflectsSplits(t *testing.T) {
	p := mustParsePath(t, "M0,0 L10,0")
	res := p.Project(PathOffset{5, 5})
	assert.NoError(t, p.CommitSplit(res))

	proxy := &recordingPathProxy{}
	p.WriteToPath(proxy)

	assert.Equal(t, []string{
		"moveTo(0.0000, 0.0000)",
		"lineTo(5.0000, 0.0000)",
		"lineTo(10.0000, 0.0000)",
	}, proxy.commands)
}
