package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Show total, active and inactive employee counts",
	PreRunE: requireSession,
	RunE: func(_ *cobra.Command, _ []string) error {
		st := employees.Stats()

		fmt.Printf("Total Employees:    %d\n", st.Total)
		fmt.Printf("Active Employees:   %s\n", color.GreenString("%d", st.Active))
		fmt.Printf("Inactive Employees: %s\n", color.New(color.Faint).Sprintf("%d", st.Inactive))
		return nil
	},
}
