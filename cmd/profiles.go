package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/scholarsim/profile"
	"github.com/lehigh-university-libraries/scholarsim/synth"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage generation profiles",
	Long:  `List, inspect, save, and delete the generation profiles used by "generate" and "pipeline".`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := profile.List()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles found")
			return nil
		}

		fmt.Println("Available profiles:")
		for _, name := range profiles {
			p, err := profile.Load(name)
			if err != nil {
				return err
			}
			desc := ""
			if p.Description != "" {
				desc = " - " + p.Description
			}
			fmt.Printf("  %s%s\n", name, desc)
		}

		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Load(args[0])
		if err != nil {
			return err
		}

		// Print as YAML
		out, err := yaml.Marshal(p)
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

var (
	saveDescription  string
	saveResearchers  int
	saveMinPapers    int
	saveMaxPapers    int
	saveMaxCitations int
	saveStartYear    int
	saveEndYear      int
	saveSeed         uint64
)

var profilesSaveCmd = &cobra.Command{
	Use:   "save [profile]",
	Short: "Save a generation profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		params := synth.DefaultParams()
		if profile.Exists(name) {
			existing, err := profile.Load(name)
			if err != nil {
				return err
			}
			params = existing.Generation
			if saveDescription == "" {
				saveDescription = existing.Description
			}
		}

		flags := cmd.Flags()
		if flags.Changed("researchers") {
			params.Researchers = saveResearchers
		}
		if flags.Changed("min-papers") {
			params.MinPapers = saveMinPapers
		}
		if flags.Changed("max-papers") {
			params.MaxPapers = saveMaxPapers
		}
		if flags.Changed("max-citations") {
			params.MaxCitations = saveMaxCitations
		}
		if flags.Changed("start-year") {
			params.StartYear = saveStartYear
		}
		if flags.Changed("end-year") {
			params.EndYear = saveEndYear
		}
		if flags.Changed("seed") {
			params.Seed = saveSeed
		}

		if err := params.Validate(); err != nil {
			return err
		}

		p := &profile.Profile{
			Name:        name,
			Description: saveDescription,
			Generation:  params,
		}
		if err := p.Save(); err != nil {
			return err
		}

		fmt.Printf("Saved profile %q\n", name)
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete [profile]",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := profile.Delete(name); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %q\n", name)
		return nil
	},
}

func init() {
	defaults := synth.DefaultParams()
	profilesSaveCmd.Flags().StringVar(&saveDescription, "description", "", "Profile description")
	profilesSaveCmd.Flags().IntVar(&saveResearchers, "researchers", defaults.Researchers, "Number of researchers")
	profilesSaveCmd.Flags().IntVar(&saveMinPapers, "min-papers", defaults.MinPapers, "Minimum papers per researcher")
	profilesSaveCmd.Flags().IntVar(&saveMaxPapers, "max-papers", defaults.MaxPapers, "Maximum papers per researcher")
	profilesSaveCmd.Flags().IntVar(&saveMaxCitations, "max-citations", defaults.MaxCitations, "Maximum citations per paper")
	profilesSaveCmd.Flags().IntVar(&saveStartYear, "start-year", defaults.StartYear, "Earliest publication year")
	profilesSaveCmd.Flags().IntVar(&saveEndYear, "end-year", defaults.EndYear, "Latest publication year")
	profilesSaveCmd.Flags().Uint64Var(&saveSeed, "seed", defaults.Seed, "Random seed")

	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesSaveCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
