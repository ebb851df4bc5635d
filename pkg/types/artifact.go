package types

// Status is the classified installation state of an artifact, derived from
// the filesystem at classification time.
type Status string

const (
	// StatusNotInstalled means the destination path does not exist.
	StatusNotInstalled Status = "not-installed"

	// StatusInstalled means the destination is a symlink resolving to the
	// artifact's source path.
	StatusInstalled Status = "installed"

	// StatusConflict means the destination exists but is not a symlink to
	// the source, or could not be resolved.
	StatusConflict Status = "conflict"
)

// Artifact is one installable unit: a command file, a skill directory, or an
// agent file. Name, Kind, SourcePath and DestPath are fixed at discovery;
// Status, Selected and ConflictDetail are recomputed or toggled afterwards.
type Artifact struct {
	// Name is the artifact identifier: the filename without extension for
	// file categories, the directory name for skills.
	Name string

	// Kind is the category this artifact was discovered under.
	Kind CategoryKind

	// SourcePath is the absolute path of the authoritative file or directory.
	SourcePath string

	// DestPath is the absolute path where the symlink must live for the
	// artifact to count as installed.
	DestPath string

	// Status is the classified state of DestPath relative to SourcePath.
	Status Status

	// Selected is the desired end state: true means the artifact should be
	// installed after the next reconcile, false that it should not.
	Selected bool

	// ConflictDetail explains a StatusConflict in human terms. Empty for
	// other statuses.
	ConflictDetail string
}

// Ref returns the qualified "category/name" form used in messages and
// command-line selection.
func (a *Artifact) Ref() string {
	return string(a.Kind) + "/" + a.Name
}
