package cli

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ryantking/faultdemo/internal/demo"
	"github.com/ryantking/faultdemo/internal/output"
	"github.com/spf13/cobra"
)

// CaseInfo describes a catalog entry.
type CaseInfo struct {
	Index    int      `json:"index"`
	Kind     string   `json:"kind"`
	Label    string   `json:"label"`
	Catches  []string `json:"catches"`
	Expected string   `json:"expected,omitempty"`
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the demonstration cases",
		Long: `List the demonstration cases in execution order with the kinds each
catching region declares. Use --json for structured output.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := listCases(demo.Catalog())

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				expected := info.Expected
				if expected == "" {
					expected = "(runtime)"
				}
				rows = append(rows, []string{
					strconv.Itoa(info.Index),
					info.Kind,
					strings.Join(info.Catches, ", "),
					expected,
				})
			}
			return output.Table(cmd.OutOrStdout(), []string{"#", "KIND", "CATCHES", "MESSAGE"}, rows)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// listCases describes cases in catalog order.
func listCases(cases []demo.Case) []CaseInfo {
	infos := make([]CaseInfo, 0, len(cases))
	for i, c := range cases {
		catches := make([]string, 0, len(c.Catches))
		for _, k := range c.Catches {
			catches = append(catches, k.Slug())
		}
		infos = append(infos, CaseInfo{
			Index:    i + 1,
			Kind:     c.Kind.Slug(),
			Label:    c.Kind.Label(),
			Catches:  catches,
			Expected: c.Expected,
		})
	}
	return infos
}
