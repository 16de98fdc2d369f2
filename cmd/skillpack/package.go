package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillpack/pkg/packager"
	"github.com/jingkaihe/skillpack/pkg/presenter"
)

// PackageConfig holds configuration for the package command
type PackageConfig struct {
	SourceDir string
	OutputDir string
	Exclude   []string
	Quiet     bool
}

// NewPackageConfig creates a new PackageConfig with defaults from viper
func NewPackageConfig() *PackageConfig {
	return &PackageConfig{
		SourceDir: viper.GetString("source_dir"),
		OutputDir: viper.GetString("output_dir"),
		Exclude:   nil,
		Quiet:     false,
	}
}

var packageCmd = &cobra.Command{
	Use:   "package <skill-name> [source-path] [output-path]",
	Short: "Package a skill directory into a .skill file",
	Long: `Package a skill directory into a .skill file.

The skill name must use only lowercase letters, numbers, and hyphens.
The source path must contain a directory named after the skill, which in
turn must contain a SKILL.md manifest with YAML frontmatter declaring at
least 'name:' and 'description:'. Both paths default to the current
working directory.

Examples:
  skillpack package simple-greeter
  skillpack package my-skill /path/to/skills .
  skillpack package my-skill --exclude '**/*.pyc' --output dist`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		config := getPackageConfigFromFlags(cmd, args)
		presenter.SetQuiet(config.Quiet)
		packageSkillCmd(args[0], config)
	},
}

func init() {
	defaults := NewPackageConfig()
	packageCmd.Flags().StringP("source", "s", defaults.SourceDir, "Directory containing the skill directory")
	packageCmd.Flags().StringP("output", "o", defaults.OutputDir, "Directory to receive the .skill file")
	packageCmd.Flags().StringSliceP("exclude", "e", defaults.Exclude, "Glob patterns for archive entries to leave out")
	packageCmd.Flags().BoolP("quiet", "q", defaults.Quiet, "Only report errors")
	rootCmd.AddCommand(packageCmd)
}

func getPackageConfigFromFlags(cmd *cobra.Command, args []string) *PackageConfig {
	config := NewPackageConfig()
	if source, err := cmd.Flags().GetString("source"); err == nil && source != "" {
		config.SourceDir = source
	}
	if output, err := cmd.Flags().GetString("output"); err == nil && output != "" {
		config.OutputDir = output
	}
	if exclude, err := cmd.Flags().GetStringSlice("exclude"); err == nil {
		config.Exclude = exclude
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
		config.Quiet = quiet
	}

	// Positional source and output paths take precedence over flags.
	if len(args) > 1 {
		config.SourceDir = args[1]
	}
	if len(args) > 2 {
		config.OutputDir = args[2]
	}

	return config
}

func packageSkillCmd(name string, config *PackageConfig) {
	presenter.Info(fmt.Sprintf("Packaging skill: %s", name))

	p := packager.New(
		packager.WithSourceDir(config.SourceDir),
		packager.WithOutputDir(config.OutputDir),
		packager.WithExclude(config.Exclude...),
	)

	result, err := p.Package(name)
	if err != nil {
		presenter.Error(err, "Failed to package skill")
		os.Exit(1)
	}

	for _, entry := range result.Entries {
		presenter.Info(fmt.Sprintf("  + %s", entry))
	}

	presenter.Success(fmt.Sprintf("Skill packaged successfully: %s", name))
	presenter.Info(fmt.Sprintf("  File: %s", result.OutputPath))
	presenter.Info(fmt.Sprintf("  Size: %.1f KB", result.SizeKB()))
}
