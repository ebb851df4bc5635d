package uninstall

// Message constants
const (
	MsgShort = "Remove artifact symlinks"
	MsgLong  = `The 'uninstall' command removes the symlinks for the named artifacts, or
for every installed artifact when none are named.

A destination is only removed after re-verifying that it is a symlink
pointing at the artifact's source; anything else is refused and reported.`

	MsgExample = `  # Uninstall everything
  superlink uninstall

  # Uninstall specific artifacts
  superlink uninstall brainstorm skills/debugging`
)
