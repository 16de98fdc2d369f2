package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillpack/pkg/presenter"
	"github.com/jingkaihe/skillpack/pkg/skills"
)

var listCmd = &cobra.Command{
	Use:   "list [dirs...]",
	Short: "List skills found in the given directories",
	Long: `List skills found in the given directories with their names,
descriptions, and directory paths. With no arguments the configured
skill_dirs (or the default ./skills and ~/.skillpack/skills) are scanned.`,
	Run: func(_ *cobra.Command, args []string) {
		listSkillsCmd(args)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSkillsCmd(dirs []string) {
	if len(dirs) == 0 {
		dirs = viper.GetStringSlice("skill_dirs")
	}

	var opts []skills.Option
	if len(dirs) > 0 {
		opts = append(opts, skills.WithSkillDirs(dirs...))
	}

	discovery, err := skills.NewDiscovery(opts...)
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	allSkills, err := discovery.DiscoverSkills()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(allSkills) == 0 {
		presenter.Info("No skills found")
		return
	}

	names := make([]string, 0, len(allSkills))
	for name := range allSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, name := range names {
		skill := allSkills[name]
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Directory, description)
	}
	tw.Flush()
}
