package genconfig

// Message constants
const (
	MsgShort = "Write a default config file"
	MsgLong  = `The 'genconfig' command writes a commented default configuration file to
the XDG config directory. An existing file is never overwritten.`

	MsgExample = `  # Write the default config
  superlink genconfig

  # Inspect the defaults without writing
  superlink genconfig --stdout`
)
