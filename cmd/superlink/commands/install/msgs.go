package install

// Message constants
const (
	MsgShort = "Create symlinks for artifacts"
	MsgLong  = `The 'install' command creates symlinks in the Claude directory for the
named artifacts, or for every discovered artifact when none are named.
Artifacts may be referenced by bare name or as category/name.

Destinations that already exist are never overwritten; conflicts are
reported per artifact and other artifacts in the batch still proceed.`

	MsgExample = `  # Install everything
  superlink install

  # Install specific artifacts
  superlink install brainstorm code-review

  # Disambiguate by category
  superlink install skills/debugging`
)
