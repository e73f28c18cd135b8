package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aanand-mishra/employee-dashboard/internal/employee"
	"github.com/aanand-mishra/employee-dashboard/internal/report"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

var (
	listCriteria employee.Criteria
	listPrint    bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List employees, optionally filtered",
	PreRunE: requireSession,
	RunE: func(_ *cobra.Command, _ []string) error {
		list := employee.Filter(employees.List(), listCriteria)

		opts := report.Options{Print: listPrint}
		if !listPrint {
			opts.Status = colouredStatus
		}
		return report.WriteTable(os.Stdout, list, opts)
	},
}

var (
	activeColour   = color.New(color.FgGreen).SprintFunc()
	inactiveColour = color.New(color.FgRed).SprintFunc()
)

func colouredStatus(active bool) string {
	if active {
		return activeColour(types.StatusActive)
	}
	return inactiveColour(types.StatusInactive)
}

func init() {
	listCmd.Flags().StringVarP(&listCriteria.Search, "search", "s", "", "case-insensitive name search")
	listCmd.Flags().StringVarP(&listCriteria.Gender, "gender", "g", types.FilterAll, "All, Male, Female or Other")
	listCmd.Flags().StringVar(&listCriteria.Status, "status", types.FilterAll, "All, Active or Inactive")
	listCmd.Flags().BoolVar(&listPrint, "print", false, "print layout: no ID column, no colours")
}
