package show

// Message constants
const (
	MsgShort = "Render an artifact's markdown"
	MsgLong  = `The 'show' command renders an artifact's markdown in the terminal: the
command or agent file itself, or a skill's SKILL.md. Output is styled for
the terminal and falls back to plain text when stdout is not a TTY.`

	MsgExample = `  # Show a command definition
  superlink show brainstorm

  # Show a skill's SKILL.md
  superlink show skills/debugging`
)
