package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/pflag"

	"termsim/internal/model"
	"termsim/internal/vfs"
)

// UserName is the fixed identity of every session.
const UserName = "user"

// about carries the static help text shared by all commands.
type about struct {
	name        string
	description string
	usage       string
}

func (a about) Name() string        { return a.name }
func (a about) Description() string { return a.description }
func (a about) Usage() string       { return a.usage }

func missingOperand(ctx *Context, name string) Lines {
	return output(ctx.Now, model.Error, name+": missing operand")
}

// helpCommand lists every command, or describes one.
type helpCommand struct{ about }

func (c helpCommand) Execute(args []string, ctx *Context) Result {
	if len(args) == 0 {
		var b strings.Builder
		b.WriteString("Available commands:\n\n")
		for _, cmd := range ctx.Registry.Commands() {
			fmt.Fprintf(&b, "%s - %s\n", runewidth.FillRight(cmd.Name(), 10), cmd.Description())
		}
		b.WriteString("\nType \"help [command]\" for more information about a specific command.")
		return output(ctx.Now, model.Info, b.String())
	}

	cmd, ok := ctx.Registry.Lookup(args[0])
	if !ok {
		return output(ctx.Now, model.Error, "Unknown command: "+args[0])
	}
	return output(ctx.Now, model.Info, fmt.Sprintf("Command: %s\nDescription: %s\nUsage: %s",
		cmd.Name(), cmd.Description(), cmd.Usage()))
}

type echoCommand struct{ about }

func (c echoCommand) Execute(args []string, ctx *Context) Result {
	return output(ctx.Now, model.Standard, strings.Join(args, " "))
}

type clearCommand struct{ about }

func (c clearCommand) Execute(args []string, ctx *Context) Result {
	return ClearScreen{}
}

// lsCommand lists a directory in insertion order.
type lsCommand struct{ about }

func (c lsCommand) Execute(args []string, ctx *Context) Result {
	flags := pflag.NewFlagSet("ls", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	all := flags.BoolP("all", "a", false, "do not ignore entries starting with .")
	long := flags.BoolP("long", "l", false, "use a long listing format")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return output(ctx.Now, model.Info, "Usage: "+c.Usage()+"\n"+flags.FlagUsages())
		}
		return output(ctx.Now, model.Error, "ls: "+err.Error())
	}

	target := strings.Join(flags.Args(), " ")
	if target == "" {
		target = "."
	}

	node, err := vfs.Resolve(ctx.State.FS, target, ctx.Cwd())
	if err != nil {
		return output(ctx.Now, model.Error, fmt.Sprintf("ls: cannot access '%s': No such file or directory", target))
	}
	if !node.IsDir() {
		return output(ctx.Now, model.Standard, node.Name)
	}

	var entries []*vfs.Node
	for _, child := range node.Children() {
		if *all || !strings.HasPrefix(child.Name, ".") {
			entries = append(entries, child)
		}
	}
	if len(entries) == 0 {
		return output(ctx.Now, model.Standard, "(empty directory)")
	}

	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		name := displayName(e)
		if *long {
			rows = append(rows, longRow(e, name))
		} else {
			rows = append(rows, name)
		}
	}
	sep := "  "
	if *long {
		sep = "\n"
	}
	return output(ctx.Now, model.Standard, strings.Join(rows, sep))
}

func displayName(n *vfs.Node) string {
	if n.IsDir() {
		return n.Name + model.IconDirSuffix
	}
	return n.Name
}

func longRow(n *vfs.Node, name string) string {
	perms := n.Metadata.Permissions
	if perms == "" {
		perms = "----------"
	}
	owner := n.Metadata.Owner
	if owner == "" {
		owner = UserName
	}
	modified := ""
	if !n.Metadata.Modified.IsZero() {
		modified = n.Metadata.Modified.Format("Jan 02 15:04")
	}
	return fmt.Sprintf("%s %s %s %s", perms,
		runewidth.FillRight(owner, 8),
		runewidth.FillRight(modified, 20),
		name)
}

// cdCommand validates the target before asking for the move.
type cdCommand struct{ about }

func (c cdCommand) Execute(args []string, ctx *Context) Result {
	target := strings.Join(args, " ")
	switch {
	case target == "" || target == "~":
		target = vfs.HomeDir
	case strings.HasPrefix(target, "~/"):
		target = vfs.HomeDir + target[1:]
	case target == "-":
		prev := ctx.State.Active().PrevDirectory
		if prev == "" {
			return output(ctx.Now, model.Error, "cd: OLDPWD not set")
		}
		target = prev
	}

	node, err := vfs.Resolve(ctx.State.FS, target, ctx.Cwd())
	if err != nil {
		return output(ctx.Now, model.Error, "cd: no such directory: "+target)
	}
	if !node.IsDir() {
		return output(ctx.Now, model.Error, "cd: not a directory: "+target)
	}
	return ChangeDirectory{Path: vfs.ToAbsolute(target, ctx.Cwd())}
}

type catCommand struct{ about }

func (c catCommand) Execute(args []string, ctx *Context) Result {
	if len(args) == 0 {
		return missingOperand(ctx, "cat")
	}
	target := strings.Join(args, " ")
	node, err := vfs.Resolve(ctx.State.FS, target, ctx.Cwd())
	if err != nil {
		return output(ctx.Now, model.Error, fmt.Sprintf("cat: %s: No such file or directory", target))
	}
	if node.IsDir() {
		return output(ctx.Now, model.Error, fmt.Sprintf("cat: %s: Is a directory", target))
	}
	return output(ctx.Now, model.Standard, node.Content)
}

type pwdCommand struct{ about }

func (c pwdCommand) Execute(args []string, ctx *Context) Result {
	return output(ctx.Now, model.Standard, ctx.Cwd())
}

type themeCommand struct{ about }

func (c themeCommand) Execute(args []string, ctx *Context) Result {
	if len(args) == 0 {
		var names []string
		for _, name := range model.ThemeNames() {
			if name == ctx.State.Theme {
				name += " (current)"
			}
			names = append(names, name)
		}
		return output(ctx.Now, model.Info, "Available themes:\n"+strings.Join(names, "\n"))
	}
	if _, ok := model.LookupTheme(args[0]); !ok {
		return output(ctx.Now, model.Error, "Unknown theme: "+args[0])
	}
	return ChangeTheme{Name: args[0]}
}

type dateCommand struct{ about }

func (c dateCommand) Execute(args []string, ctx *Context) Result {
	return output(ctx.Now, model.Standard, ctx.Now.Format(time.UnixDate))
}

type whoamiCommand struct{ about }

func (c whoamiCommand) Execute(args []string, ctx *Context) Result {
	return output(ctx.Now, model.Standard, UserName)
}

// parentDir resolves the directory that would hold abs.
func parentDir(ctx *Context, abs string) (*vfs.Node, bool) {
	parent, _ := vfs.Split(abs)
	node, err := vfs.Resolve(ctx.State.FS, parent, vfs.Root)
	if err != nil || !node.IsDir() {
		return nil, false
	}
	return node, true
}

type mkdirCommand struct{ about }

func (c mkdirCommand) Execute(args []string, ctx *Context) Result {
	if len(args) == 0 {
		return missingOperand(ctx, "mkdir")
	}
	operand := args[0]
	abs := vfs.ToAbsolute(operand, ctx.Cwd())
	parent, ok := parentDir(ctx, abs)
	if !ok {
		return output(ctx.Now, model.Error, mkdirError(operand, vfs.ErrNotFound))
	}
	if _, name := vfs.Split(abs); name == "" || parent.Child(name) != nil {
		return output(ctx.Now, model.Error, mkdirError(operand, vfs.ErrExists))
	}
	return CreateDirectory{Path: abs, Operand: operand}
}

func mkdirError(operand string, err error) string {
	reason := "No such file or directory"
	if errors.Is(err, vfs.ErrExists) {
		reason = "File exists"
	}
	return fmt.Sprintf("mkdir: cannot create directory '%s': %s", operand, reason)
}

type touchCommand struct{ about }

func (c touchCommand) Execute(args []string, ctx *Context) Result {
	if len(args) == 0 {
		return missingOperand(ctx, "touch")
	}
	operand := args[0]
	abs := vfs.ToAbsolute(operand, ctx.Cwd())
	if _, ok := parentDir(ctx, abs); !ok {
		return output(ctx.Now, model.Error, touchError(operand))
	}
	return CreateFile{Path: abs, Operand: operand}
}

func touchError(operand string) string {
	return fmt.Sprintf("touch: cannot touch '%s': No such file or directory", operand)
}

type editCommand struct{ about }

func (c editCommand) Execute(args []string, ctx *Context) Result {
	if len(args) == 0 {
		return missingOperand(ctx, "edit")
	}
	target := args[0]
	node, err := vfs.Resolve(ctx.State.FS, target, ctx.Cwd())
	if err != nil {
		return output(ctx.Now, model.Error, fmt.Sprintf("edit: %s: No such file", target))
	}
	if node.IsDir() {
		return output(ctx.Now, model.Error, fmt.Sprintf("edit: %s: Is a directory", target))
	}
	return OpenEditor{Path: vfs.ToAbsolute(target, ctx.Cwd()), Content: node.Content}
}

// historyCommand lists the global history, shared by all tabs.
type historyCommand struct{ about }

func (c historyCommand) Execute(args []string, ctx *Context) Result {
	if len(ctx.State.History) == 0 {
		return output(ctx.Now, model.Info, "(History is empty)")
	}
	rows := make([]string, 0, len(ctx.State.History))
	for i, item := range ctx.State.History {
		rows = append(rows, fmt.Sprintf("%4d  %s", i+1, item.Command))
	}
	return output(ctx.Now, model.Info, strings.Join(rows, "\n"))
}
