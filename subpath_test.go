package pathmorphing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flattenSubPaths(groups []*SubPathCommand) []*DrawCommand {
	var out []*DrawCommand
	for _, g := range groups {
		out = append(out, g.Commands()...)
	}
	return out
}

func TestCreateSubPathCommands(t *testing.T) {
	commands, err := parseCommands("M0,0 L10,0 L10,10 Z M20,0 Q25,5 30,0 C35,5 40,-5 45,0 Z")
	assert.NoError(t, err)

	groups := createSubPathCommands(commands)
	assert.Len(t, groups, 2)
	assert.Len(t, groups[0].Commands(), 4)
	assert.Len(t, groups[1].Commands(), 4)
	assert.Equal(t, MoveCommand, groups[0].Commands()[0].Kind)
	assert.Equal(t, MoveCommand, groups[1].Commands()[0].Kind)
}

func TestGroupingRoundTrip(t *testing.T) {
	inputs := []string{
		"M0,0 L10,0",
		"M0,0 L10,0 Z",
		"M0,0 L10,0 M5,5 L6,6 L7,7 M8,8 Z",
		"M0,0 Q1,1 2,0 C3,1 4,-1 5,0 A2,2 0 0 1 9,0 Z M1,1",
	}
	for _, input := range inputs {
		commands, err := parseCommands(input)
		assert.NoError(t, err)
		flattened := flattenSubPaths(createSubPathCommands(commands))
		assert.Len(t, flattened, len(commands), input)
		for i := range commands {
			assert.Same(t, commands[i], flattened[i], input)
		}
	}
}

func TestGroupingWithoutLeadingMove(t *testing.T) {
	// malformed input built directly: grouping must keep the partial group
	commands := []*DrawCommand{
		NewLineCommand(PathOffset{0, 0}, PathOffset{1, 0}),
		NewLineCommand(PathOffset{1, 0}, PathOffset{1, 1}),
		NewMoveCommand(nil, PathOffset{5, 5}),
		NewLineCommand(PathOffset{5, 5}, PathOffset{6, 6}),
	}
	groups := createSubPathCommands(commands)
	assert.Len(t, groups, 2)
	assert.Len(t, groups[0].Commands(), 2)
	assert.Equal(t, LineCommand, groups[0].Commands()[0].Kind)
	assert.Len(t, groups[1].Commands(), 2)

	flattened := flattenSubPaths(groups)
	for i := range commands {
		assert.Same(t, commands[i], flattened[i])
	}
}

func TestGroupingEmptyList(t *testing.T) {
	assert.Empty(t, createSubPathCommands(nil))
}
