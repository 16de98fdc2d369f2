package skills

import "github.com/pkg/errors"

// Validation failures are sentinel errors so that callers can
// discriminate them with errors.Is. Wrapped variants carry the
// offending value or field in their message.
var (
	// ErrNameFormat indicates a skill name with characters outside [a-z0-9-].
	ErrNameFormat = errors.New("skill name must contain only lowercase letters, numbers, and hyphens")

	// ErrNameTooLong indicates a skill name longer than MaxNameLength.
	ErrNameTooLong = errors.New("skill name must be 64 characters or less")

	// ErrFrontmatterStart indicates SKILL.md does not begin with the --- delimiter.
	ErrFrontmatterStart = errors.New("SKILL.md must start with YAML frontmatter (---)")

	// ErrFrontmatterEnd indicates the frontmatter block is never closed by a --- line.
	ErrFrontmatterEnd = errors.New("SKILL.md frontmatter must end with ---")

	// ErrFieldMissing indicates a required frontmatter field is absent.
	ErrFieldMissing = errors.New("required frontmatter field missing")

	// ErrSkillDirNotFound indicates the skill directory does not exist.
	ErrSkillDirNotFound = errors.New("skill directory not found")

	// ErrManifestNotFound indicates the skill directory has no SKILL.md.
	ErrManifestNotFound = errors.New("SKILL.md not found")
)

// missingField wraps ErrFieldMissing with the name of the absent field.
func missingField(field string) error {
	return errors.Wrapf(ErrFieldMissing, "SKILL.md frontmatter must include '%s:' field", field)
}
