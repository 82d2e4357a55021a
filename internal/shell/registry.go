package shell

// Registry maps command names to commands and remembers registration order,
// which is the order used by `help` and by command-name completion.
type Registry struct {
	order    []string
	commands map[string]Command
}

// NewRegistry returns a registry holding cmds in the given order.
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command)}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any command with the same name in place.
func (r *Registry) Register(c Command) {
	if _, ok := r.commands[c.Name()]; !ok {
		r.order = append(r.order, c.Name())
	}
	r.commands[c.Name()] = c
}

// Lookup finds a command by name.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// DefaultRegistry holds every built-in command.
func DefaultRegistry() *Registry {
	return NewRegistry(
		helpCommand{about{"help", "Display available commands", "help [command]"}},
		echoCommand{about{"echo", "Display a message", "echo [message]"}},
		clearCommand{about{"clear", "Clear the terminal", "clear"}},
		lsCommand{about{"ls", "List directory contents", "ls [-a] [-l] [directory]"}},
		cdCommand{about{"cd", "Change directory", "cd [directory|~|-]"}},
		catCommand{about{"cat", "Concatenate and display file contents", "cat [file]"}},
		pwdCommand{about{"pwd", "Print working directory", "pwd"}},
		themeCommand{about{"theme", "Change or display terminal theme", "theme [theme-name]"}},
		dateCommand{about{"date", "Display the current date and time", "date"}},
		whoamiCommand{about{"whoami", "Display current user", "whoami"}},
		mkdirCommand{about{"mkdir", "Create a directory", "mkdir [directory-name]"}},
		touchCommand{about{"touch", "Create a file", "touch [file-name]"}},
		editCommand{about{"edit", "Edit a file", "edit [file-name]"}},
		historyCommand{about{"history", "Show command history", "history"}},
	)
}
