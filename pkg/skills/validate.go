package skills

import (
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName checks that a skill name uses only lowercase letters,
// numbers, and hyphens, and does not exceed MaxNameLength. It is a pure
// check and never touches the filesystem.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return errors.Wrapf(ErrNameFormat, "invalid skill name %q", name)
	}
	if len(name) > MaxNameLength {
		return errors.Wrapf(ErrNameTooLong, "skill name %q is %d characters", name, len(name))
	}
	return nil
}

// ValidateManifest reads the SKILL.md at path and checks its frontmatter:
// the content must start with ---, a later line consisting solely of ---
// must close the block, and the block interior must mention the name: and
// description: fields. This is a substring check, not a YAML parse; the
// fields are not validated for type or position. The first problem found
// is returned.
func ValidateManifest(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "error reading SKILL.md")
	}
	return validateFrontmatter(string(content), true)
}

// LintManifest is ValidateManifest without the early exit: every problem
// with the frontmatter is collected and returned as one error.
func LintManifest(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "error reading SKILL.md")
	}
	return validateFrontmatter(string(content), false)
}

func validateFrontmatter(content string, failFast bool) error {
	if !strings.HasPrefix(content, "---") {
		// Without a start delimiter there is no block to inspect further.
		return errors.WithStack(ErrFrontmatterStart)
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}
	if frontmatterEnd == -1 {
		return errors.WithStack(ErrFrontmatterEnd)
	}

	frontmatter := strings.Join(lines[1:frontmatterEnd], "\n")

	var result *multierror.Error
	for _, field := range []string{"name", "description"} {
		if !strings.Contains(frontmatter, field+":") {
			if failFast {
				return missingField(field)
			}
			result = multierror.Append(result, missingField(field))
		}
	}
	return result.ErrorOrNil()
}
