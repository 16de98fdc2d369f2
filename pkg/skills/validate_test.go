package skills

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "simple-greeter", nil},
		{"numbers", "skill2", nil},
		{"hyphens only", "---", nil},
		{"single char", "a", nil},
		{"max length", strings.Repeat("a", 64), nil},
		{"too long", strings.Repeat("a", 65), ErrNameTooLong},
		{"uppercase", "Foo", ErrNameFormat},
		{"underscore", "foo_bar", ErrNameFormat},
		{"uppercase and underscore", "Foo_Bar", ErrNameFormat},
		{"space", "foo bar", ErrNameFormat},
		{"dot", "foo.bar", ErrNameFormat},
		{"slash", "foo/bar", ErrNameFormat},
		{"empty", "", ErrNameFormat},
		{"unicode", "héllo", ErrNameFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateManifest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeManifest(t, "---\nname: x\ndescription: y\n---\n")
		assert.NoError(t, ValidateManifest(path))
	})

	t.Run("valid with body and extra fields", func(t *testing.T) {
		path := writeManifest(t, `---
name: test-skill
description: A test skill
version: 1.0.0
---

# Test Skill

Instructions here.
`)
		assert.NoError(t, ValidateManifest(path))
	})

	t.Run("missing start delimiter", func(t *testing.T) {
		path := writeManifest(t, "name: x\ndescription: y\n")
		err := ValidateManifest(path)
		assert.True(t, errors.Is(err, ErrFrontmatterStart))
	})

	t.Run("missing end delimiter", func(t *testing.T) {
		path := writeManifest(t, "---\nname: x\ndescription: y\n")
		err := ValidateManifest(path)
		assert.True(t, errors.Is(err, ErrFrontmatterEnd))
	})

	t.Run("missing description", func(t *testing.T) {
		path := writeManifest(t, "---\nname: x\n---\n")
		err := ValidateManifest(path)
		assert.True(t, errors.Is(err, ErrFieldMissing))
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeManifest(t, "---\ndescription: y\n---\n")
		err := ValidateManifest(path)
		assert.True(t, errors.Is(err, ErrFieldMissing))
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("fields outside block are not counted", func(t *testing.T) {
		// description: appears only after the closing delimiter.
		path := writeManifest(t, "---\nname: x\n---\ndescription: y\n")
		err := ValidateManifest(path)
		assert.True(t, errors.Is(err, ErrFieldMissing))
	})

	t.Run("substring check accepts indented fields", func(t *testing.T) {
		// Deliberately not a structured YAML parse.
		path := writeManifest(t, "---\nmeta:\n  name: x\n  description: y\n---\n")
		assert.NoError(t, ValidateManifest(path))
	})

	t.Run("unreadable file", func(t *testing.T) {
		err := ValidateManifest(filepath.Join(t.TempDir(), "missing", ManifestFileName))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading SKILL.md")
	})
}

func TestLintManifest(t *testing.T) {
	t.Run("collects all missing fields", func(t *testing.T) {
		path := writeManifest(t, "---\nauthor: someone\n---\n")
		err := LintManifest(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFieldMissing))
		assert.Contains(t, err.Error(), "'name:'")
		assert.Contains(t, err.Error(), "'description:'")
	})

	t.Run("valid", func(t *testing.T) {
		path := writeManifest(t, "---\nname: x\ndescription: y\n---\n")
		assert.NoError(t, LintManifest(path))
	})

	t.Run("missing start still fails fast", func(t *testing.T) {
		path := writeManifest(t, "no frontmatter here")
		assert.True(t, errors.Is(LintManifest(path), ErrFrontmatterStart))
	})
}
