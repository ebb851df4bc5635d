package status

// Message constants
const (
	MsgShort = "Show the installation status of every artifact"
	MsgLong  = `The 'status' command lists all commands, skills and agents found in the
source tree, with each one's current state against the Claude directory:
installed (symlink in place), not installed, or conflict (the destination
exists but is not the expected symlink).

Status is read directly from the filesystem; nothing is modified.`

	MsgExample = `  # List all artifacts and their state
  superlink status

  # Machine-readable output
  superlink status --format yaml`
)
