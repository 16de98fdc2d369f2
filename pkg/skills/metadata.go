package skills

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseMetadata decodes the frontmatter block of SKILL.md content into
// Metadata. Unlike ValidateManifest it is a real YAML parse, used for
// display once the structural checks have passed.
func ParseMetadata(content string) (Metadata, error) {
	var meta Metadata

	block, ok := frontmatterBlock(content)
	if !ok {
		return meta, errors.WithStack(ErrFrontmatterStart)
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return meta, errors.Wrap(err, "error parsing SKILL.md frontmatter")
	}
	return meta, nil
}

// frontmatterBlock returns the text between the opening --- line and the
// first closing --- line, and whether a complete block was found.
func frontmatterBlock(content string) (string, bool) {
	if !strings.HasPrefix(content, "---") {
		return "", false
	}
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}

// extractBodyContent removes YAML frontmatter and returns the body
func extractBodyContent(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
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
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
