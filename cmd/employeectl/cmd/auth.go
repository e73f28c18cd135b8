package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/employee-dashboard/internal/http/handlers/auth"
	"github.com/aanand-mishra/employee-dashboard/internal/session"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
	"github.com/aanand-mishra/employee-dashboard/internal/validation"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in (any well-formed email and password are accepted)",
	Long:  "Log in to the dashboard.\n\n" + auth.DemoHint,
	RunE: func(cmd *cobra.Command, _ []string) error {
		creds := types.Credentials{Email: loginEmail, Password: loginPassword}

		if errs := validation.ValidateLogin(creds); len(errs) > 0 {
			return printFieldErrors(errs)
		}

		if err := sess.Login(cmd.Context(), creds); err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				return errors.New("Invalid credentials")
			}
			return err
		}

		fmt.Println("Logged in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := sess.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password (min 6 characters, one special character)")
}
