// Package types holds all shared data structures (models) used across
// the application. Handlers, storage, validation and the stores all
// import types without depending on each other.
package types

// Gender is one of the three values offered by the employee form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every accepted Gender in the order the form shows them.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// States is the fixed list of regions an employee can be assigned to.
// The employee form only offers these values; validation rejects anything
// else.
var States = []string{
	"Delhi",
	"Maharashtra",
	"Karnataka",
	"Tamil Nadu",
	"Uttar Pradesh",
	"Rajasthan",
	"West Bengal",
}

// Filter sentinels used by the employee list view.
//
// FilterAll passes every record through for both the gender and the
// status filter. StatusActive / StatusInactive select on Employee.Active.
const (
	FilterAll      = "All"
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee represents one employee record in the roster.
//
// The json:"..." tags use the camelCase keys of the persisted collection
// document, so a collection written by an older build reads back unchanged.
type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Gender   Gender `json:"gender"`
	DOB      string `json:"dob"`
	State    string `json:"state"`
	Image    string `json:"image"`
	Active   bool   `json:"active"`
}

// EmployeeFields is every Employee field except ID, the shape accepted
// by create and update. The validate:"..." tags are checked by the
// validation package (see validation.ValidateEmployee).
type EmployeeFields struct {
	FullName string `json:"fullName" validate:"notblank"`
	Email    string `json:"email"    validate:"omitempty,loose_email"`
	Gender   Gender `json:"gender"   validate:"omitempty,oneof=Male Female Other"`
	DOB      string `json:"dob"      validate:"required"`
	State    string `json:"state"    validate:"required,region"`
	Image    string `json:"image"`
	Active   bool   `json:"active"`
}

// Fields returns the mutable part of e.
func (e Employee) Fields() EmployeeFields {
	return EmployeeFields{
		FullName: e.FullName,
		Email:    e.Email,
		Gender:   e.Gender,
		DOB:      e.DOB,
		State:    e.State,
		Image:    e.Image,
		Active:   e.Active,
	}
}

// WithID builds a full Employee from f and the given id.
func (f EmployeeFields) WithID(id string) Employee {
	return Employee{
		ID:       id,
		FullName: f.FullName,
		Email:    f.Email,
		Gender:   f.Gender,
		DOB:      f.DOB,
		State:    f.State,
		Image:    f.Image,
		Active:   f.Active,
	}
}

// Credentials is what the login screen submits.
type Credentials struct {
	Email    string `json:"email"    validate:"required,login_email"`
	Password string `json:"password" validate:"required,min=6,special_char"`
}

// Stats holds the three dashboard counters.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
