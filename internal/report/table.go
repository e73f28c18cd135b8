// Package report renders the employee list as an aligned text table.
//
// The same table backs the HTTP print view and employeectl's list
// command. The print layout drops the interactive columns (the ID used
// to edit, delete or toggle a row) and the trailing hint line.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

type Options struct {
	// Print selects the print layout.
	Print bool

	// Status renders the status cell. Nil means plain "Active"/"Inactive".
	Status func(active bool) string
}

// StatusText is the plain status cell.
func StatusText(active bool) string {
	if active {
		return types.StatusActive
	}
	return types.StatusInactive
}

// WriteTable writes employees to w in the given layout.
func WriteTable(w io.Writer, employees []types.Employee, opts Options) error {
	status := opts.Status
	if status == nil {
		status = StatusText
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if opts.Print {
		fmt.Fprintln(tw, "NAME\tEMAIL\tGENDER\tDATE OF BIRTH\tSTATE\tSTATUS")
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tGENDER\tDATE OF BIRTH\tSTATE\tSTATUS")
	}

	for _, e := range employees {
		email := e.Email
		if email == "" {
			email = "-"
		}
		if opts.Print {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.FullName, email, e.Gender, e.DOB, e.State, status(e.Active))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.FullName, email, e.Gender, e.DOB, e.State, status(e.Active))
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report.WriteTable: %w", err)
	}

	if len(employees) == 0 {
		_, err := fmt.Fprintln(w, "No employees found.")
		return err
	}
	if !opts.Print {
		_, err := fmt.Fprintf(w, "\n%d employee(s). Use the ID column to edit, toggle or delete.\n", len(employees))
		return err
	}
	return nil
}
