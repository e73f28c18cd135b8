// employeectl is the terminal front end of the employee dashboard. It
// works directly on the same SQLite file as the HTTP server.
//
//	employeectl --config=config/local.yaml login --email admin@bookxpert.com --password 'admin@123'
//	employeectl --config=config/local.yaml list --status Active
package main

import "github.com/aanand-mishra/employee-dashboard/cmd/employeectl/cmd"

func main() {
	cmd.Execute()
}
