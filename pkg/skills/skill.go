// Package skills implements validation and discovery for agent skills.
// A skill is a directory named after the skill that contains a SKILL.md
// manifest whose YAML frontmatter describes the skill's name and purpose.
package skills

// ManifestFileName is the manifest every skill directory must contain.
const ManifestFileName = "SKILL.md"

// MaxNameLength is the maximum allowed length of a skill name.
const MaxNameLength = 64

// Skill represents a discovered skill with its metadata
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description of what the skill does
	Directory   string // Full path to the skill directory
	Content     string // Full content of SKILL.md (body, not frontmatter)
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
