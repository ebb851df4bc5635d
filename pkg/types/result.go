package types

// Action is the reconcile operation attempted for an artifact.
type Action string

const (
	// ActionInstall creates the destination symlink.
	ActionInstall Action = "install"

	// ActionUninstall removes the destination symlink.
	ActionUninstall Action = "uninstall"
)

// OperationResult records the outcome of one attempted or refused reconcile
// action. Artifacts whose state already matches their selection produce no
// result.
type OperationResult struct {
	Artifact Artifact
	Action   Action
	Success  bool
	Message  string
}
