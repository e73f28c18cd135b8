package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aanand-mishra/employee-dashboard/internal/employee"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
	"github.com/aanand-mishra/employee-dashboard/internal/validation"
)

// formFlags are the employee form's inputs. add and edit each get their
// own set so cobra can track which flags were changed per command.
type formFlags struct {
	name        string
	email       string
	gender      string
	dob         string
	state       string
	inactive    bool
	image       string
	removeImage bool
}

func (f *formFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "full name")
	fs.StringVar(&f.email, "email", "", "email address (optional)")
	fs.StringVar(&f.gender, "gender", string(types.GenderMale), "Male, Female or Other")
	fs.StringVar(&f.dob, "dob", "", "date of birth, YYYY-MM-DD")
	fs.StringVar(&f.state, "state", "", "state (e.g. Delhi, Karnataka)")
	fs.BoolVar(&f.inactive, "inactive", false, "mark the employee inactive")
	fs.StringVar(&f.image, "image", "", "path to a photo (max 2MB)")
	fs.BoolVar(&f.removeImage, "remove-image", false, "drop the current photo")
}

// apply copies every changed flag onto fields. The photo is applied only
// when it encodes cleanly; a rejected photo is reported and the rest of
// the form goes through unchanged.
func (f *formFlags) apply(cmd *cobra.Command, fields *types.EmployeeFields) {
	fs := cmd.Flags()
	if fs.Changed("name") {
		fields.FullName = f.name
	}
	if fs.Changed("email") {
		fields.Email = f.email
	}
	if fs.Changed("gender") {
		fields.Gender = types.Gender(f.gender)
	}
	if fs.Changed("dob") {
		fields.DOB = f.dob
	}
	if fs.Changed("state") {
		fields.State = f.state
	}
	if fs.Changed("inactive") {
		fields.Active = !f.inactive
	}
	if f.removeImage {
		fields.Image = ""
	}
	if f.image != "" {
		uri, err := readImage(cmd, f.image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  image: %s\n", validation.ImageError(err))
			log.Debug("image rejected", "path", f.image, "error", err)
			return
		}
		fields.Image = uri
	}
}

func readImage(cmd *cobra.Command, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", validation.ErrImageEncoding, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", validation.ErrImageEncoding, err)
	}

	return validation.EncodeImage(cmd.Context(), file, info.Size())
}

var addFlags formFlags

var addCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add an employee",
	PreRunE: requireSession,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields := types.EmployeeFields{Gender: types.GenderMale, Active: true}
		addFlags.apply(cmd, &fields)

		if errs := validation.ValidateEmployee(fields); len(errs) > 0 {
			return printFieldErrors(errs)
		}

		created, err := employees.Create(cmd.Context(), fields)
		if err != nil {
			return err
		}

		fmt.Printf("Added %s (%s).\n", created.FullName, created.ID)
		return nil
	},
}

var editFlags formFlags

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Short:   "Edit an employee; only the given flags change",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		current, err := employees.Get(id)
		if err != nil {
			return notFound(id, err)
		}

		fields := current.Fields()
		editFlags.apply(cmd, &fields)

		if errs := validation.ValidateEmployee(fields); len(errs) > 0 {
			return printFieldErrors(errs)
		}

		updated, err := employees.Update(cmd.Context(), id, fields)
		if err != nil {
			return notFound(id, err)
		}

		fmt.Printf("Updated %s (%s).\n", updated.FullName, updated.ID)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Short:   "Flip an employee between Active and Inactive",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := employees.ToggleStatus(cmd.Context(), args[0])
		if err != nil {
			return notFound(args[0], err)
		}

		fmt.Printf("%s is now %s.\n", updated.FullName, colouredStatus(updated.Active))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete an employee",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := employees.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// notFound points the user back at the list, the terminal version of
// the edit form redirecting when its id is unknown.
func notFound(id string, err error) error {
	if errors.Is(err, employee.ErrNotFound) {
		return fmt.Errorf("no employee with id %q; run `employeectl list` to see valid ids", id)
	}
	return err
}

func init() {
	addFlags.register(addCmd.Flags())
	editFlags.register(editCmd.Flags())
}
