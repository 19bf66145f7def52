package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fastflect/catalog"
	"fastflect/internal/models"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <model> [member...]",
	Short: "Print member descriptors of a demo model",
	Long: `Resolve members of one of the built-in models and print their
descriptors as YAML. Without member names every member is listed.`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return modelNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, ok := models.Types()[args[0]]
		if !ok {
			return fmt.Errorf("unknown model %q (known: %s)", args[0], strings.Join(modelNames(), ", "))
		}

		var members []*catalog.Member
		if len(args) == 1 {
			all, err := catalog.Members(owner)
			if err != nil {
				return err
			}
			members = all
		} else {
			for _, name := range args[1:] {
				m, err := catalog.Resolve(owner, name)
				if err != nil {
					return err
				}
				members = append(members, m)
			}
		}

		summaries := make([]catalog.Summary, len(members))
		for i, m := range members {
			summaries[i] = m.Summarize()
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(summaries)
	},
}

func modelNames() []string {
	types := models.Types()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
