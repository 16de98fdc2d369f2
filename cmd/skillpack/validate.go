package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillpack/pkg/presenter"
	"github.com/jingkaihe/skillpack/pkg/skills"
)

var validateCmd = &cobra.Command{
	Use:   "validate <skill-name> [source-path]",
	Short: "Validate a skill directory without packaging it",
	Long: `Validate a skill directory without packaging it.

Unlike 'package', which stops at the first problem, 'validate' reports
every problem found in the SKILL.md frontmatter.

Examples:
  skillpack validate simple-greeter
  skillpack validate my-skill /path/to/skills`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		sourceDir := viper.GetString("source_dir")
		if source, err := cmd.Flags().GetString("source"); err == nil && source != "" {
			sourceDir = source
		}
		if len(args) > 1 {
			sourceDir = args[1]
		}
		if sourceDir == "" {
			sourceDir = "."
		}
		validateSkillCmd(args[0], sourceDir)
	},
}

func init() {
	validateCmd.Flags().StringP("source", "s", "", "Directory containing the skill directory")
	rootCmd.AddCommand(validateCmd)
}

func validateSkillCmd(name, sourceDir string) {
	if err := skills.ValidateName(name); err != nil {
		presenter.Error(err, "Invalid skill name")
		os.Exit(1)
	}

	skillDir := filepath.Join(sourceDir, name)
	if _, err := os.Stat(skillDir); err != nil {
		presenter.Error(errors.Wrapf(skills.ErrSkillDirNotFound, "%s", skillDir), "Invalid skill")
		os.Exit(1)
	}

	manifest := filepath.Join(skillDir, skills.ManifestFileName)
	if _, err := os.Stat(manifest); err != nil {
		presenter.Error(errors.Wrapf(skills.ErrManifestNotFound, "no %s in %s", skills.ManifestFileName, skillDir), "Invalid skill")
		os.Exit(1)
	}

	if err := skills.LintManifest(manifest); err != nil {
		presenter.Error(err, "Invalid SKILL.md")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Skill structure validated: %s", name))

	content, err := os.ReadFile(manifest)
	if err != nil {
		return
	}
	meta, err := skills.ParseMetadata(string(content))
	if err != nil {
		presenter.Warning(fmt.Sprintf("Frontmatter is not well-formed YAML: %v", err))
		return
	}
	presenter.Info(fmt.Sprintf("  name: %s", meta.Name))
	presenter.Info(fmt.Sprintf("  description: %s", meta.Description))
}
