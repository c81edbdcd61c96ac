package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/sortkit/pkg/sortdemo"
	"github.com/joshuapare/sortkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sort strategies and input kinds",
		Long: `The list command prints every available sort strategy, in canonical
order, followed by the input kinds accepted by --kind.

Example:
  sortctl list
  sortctl list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

type listOutput struct {
	Algorithms []string `json:"algorithms"`
	Kinds      []string `json:"kinds"`
}

func runList() error {
	out := listOutput{Algorithms: sortdemo.Algorithms()}
	for _, k := range types.InputKinds() {
		out.Kinds = append(out.Kinds, k.String())
	}

	if jsonOut {
		return printJSON(out)
	}

	printVerbose("Algorithms:\n")
	for _, name := range out.Algorithms {
		printInfo("%s\n", name)
	}
	printVerbose("\nInput kinds:\n")
	for _, k := range out.Kinds {
		printVerbose("%s\n", k)
	}
	return nil
}
