package types

// CategoryKind identifies one of the fixed artifact categories. Each kind
// carries its own discovery and destination rules.
type CategoryKind string

const (
	// KindCommands holds slash-command markdown files.
	KindCommands CategoryKind = "commands"

	// KindSkills holds skill directories, each marked by a SKILL.md file.
	KindSkills CategoryKind = "skills"

	// KindAgents holds agent definition markdown files.
	KindAgents CategoryKind = "agents"
)

// ArtifactExtension is the file extension for leaf-file categories.
const ArtifactExtension = ".md"

// SkillMarkerFile marks a subdirectory of skills/ as an installable skill.
const SkillMarkerFile = "SKILL.md"

// Kinds returns all category kinds in display order.
func Kinds() []CategoryKind {
	return []CategoryKind{KindCommands, KindSkills, KindAgents}
}

// String returns the kind name, which doubles as both the source and
// destination subdirectory name.
func (k CategoryKind) String() string {
	return string(k)
}

// IsDirectory reports whether artifacts of this kind are whole directories
// rather than single files.
func (k CategoryKind) IsDirectory() bool {
	return k == KindSkills
}

// Category groups the artifacts discovered under one category kind.
type Category struct {
	Kind      CategoryKind
	Artifacts []Artifact
}

// AllInstalled reports whether every artifact in the category is installed.
func (c *Category) AllInstalled() bool {
	for i := range c.Artifacts {
		if c.Artifacts[i].Status != StatusInstalled {
			return false
		}
	}
	return true
}

// AllSelected reports whether every artifact in the category is selected.
func (c *Category) AllSelected() bool {
	for i := range c.Artifacts {
		if !c.Artifacts[i].Selected {
			return false
		}
	}
	return true
}
