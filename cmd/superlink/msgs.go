package superlink

// Message constants
const (
	MsgShort = "Manage symlinks for Claude commands, skills and agents"
	MsgLong  = `superlink reconciles a source tree of Claude artifacts against your
~/.claude directory as symbolic links. Each command, skill and agent can be
installed (link created) or uninstalled (link removed) independently, and
conflicting paths are reported rather than overwritten.

Run with no arguments for the interactive TUI, or use the subcommands for
scripted workflows.`
)
