package pathmorphing

// SubPathCommand is an ordered grouping of the consecutive DrawCommands that
// form one contiguous drawn figure, normally starting with a Move.
type SubPathCommand struct {
	commands []*DrawCommand
}

// Commands returns the sub-path's commands in drawing order.
func (s *SubPathCommand) Commands() []*DrawCommand {
	return s.commands
}

// createSubPathCommands groups a flattened command list into sub-paths. The
// scan runs backward from the end so that a trailing run without a Move, or
// an input that does not begin with one, is still kept as its own group;
// concatenating all groups reproduces the input exactly.
func createSubPathCommands(commands []*DrawCommand) []*SubPathCommand {
	var groups []*SubPathCommand
	var current []*DrawCommand
	for i := len(commands) - 1; i >= 0; i-- {
		current = append(current, commands[i])
		if commands[i].Kind == MoveCommand {
			groups = append(groups, &SubPathCommand{commands: current})
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, &SubPathCommand{commands: current})
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	for _, g := range groups {
		for i, j := 0, len(g.commands)-1; i < j; i, j = i+1, j-1 {
			g.commands[i], g.commands[j] = g.commands[j], g.commands[i]
		}
	}
	return groups
}
