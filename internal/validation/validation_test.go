package validation

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

func validLogin() types.Credentials {
	return types.Credentials{Email: "admin@bookxpert.com", Password: "admin@123"}
}

func validEmployee() types.EmployeeFields {
	return types.EmployeeFields{
		FullName: "Suresh Raina",
		Gender:   types.GenderMale,
		DOB:      "1986-11-27",
		State:    "Uttar Pradesh",
		Active:   true,
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name  string
		creds types.Credentials
		want  Errors
	}{
		{name: "valid", creds: validLogin(), want: Errors{}},
		{
			name:  "both missing reported together",
			creds: types.Credentials{},
			want:  Errors{"email": "Email is required", "password": "Password is required"},
		},
		{
			name:  "bad email shape",
			creds: types.Credentials{Email: "admin@bookxpert", Password: "admin@123"},
			want:  Errors{"email": "Please enter a valid email (e.g., user@example.com)"},
		},
		{
			name:  "tld too long",
			creds: types.Credentials{Email: "a@b.abcdefg", Password: "admin@123"},
			want:  Errors{"email": "Please enter a valid email (e.g., user@example.com)"},
		},
		{
			name:  "plus sign not allowed in local part",
			creds: types.Credentials{Email: "a+b@example.com", Password: "admin@123"},
			want:  Errors{"email": "Please enter a valid email (e.g., user@example.com)"},
		},
		{
			name:  "short password",
			creds: types.Credentials{Email: "admin@bookxpert.com", Password: "a@1"},
			want:  Errors{"password": "Password must be at least 6 characters"},
		},
		{
			name:  "no special character",
			creds: types.Credentials{Email: "admin@bookxpert.com", Password: "admin123"},
			want:  Errors{"password": "Password must contain at least one special character (!@#$...)"},
		},
		{
			name:  "both invalid",
			creds: types.Credentials{Email: "nope", Password: "short"},
			want: Errors{
				"email":    "Please enter a valid email (e.g., user@example.com)",
				"password": "Password must be at least 6 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLogin(tt.creds))
		})
	}
}

func TestValidateLogin_ShortPasswordAlwaysRejected(t *testing.T) {
	for _, pw := range []string{"!", "!!!!!", "a@#$%", "(),.?"} {
		creds := validLogin()
		creds.Password = pw
		errs := ValidateLogin(creds)
		assert.Contains(t, errs, "password", pw)
	}
}

func TestValidateLogin_EachSpecialCharacterQualifies(t *testing.T) {
	creds := validLogin()
	creds.Password = "abcdef"
	require.Contains(t, ValidateLogin(creds), "password")

	for _, c := range SpecialChars {
		creds.Password = "abcdef" + string(c)
		assert.NotContains(t, ValidateLogin(creds), "password", string(c))
	}
}

func TestValidateEmployee(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *types.EmployeeFields)
		want   Errors
	}{
		{name: "valid without email", mutate: func(*types.EmployeeFields) {}, want: Errors{}},
		{name: "valid with email", mutate: func(f *types.EmployeeFields) { f.Email = "x@y.z" }, want: Errors{}},
		{name: "blank name", mutate: func(f *types.EmployeeFields) { f.FullName = "   " }, want: Errors{"fullName": "Full Name is required"}},
		{name: "missing dob", mutate: func(f *types.EmployeeFields) { f.DOB = "" }, want: Errors{"dob": "Date of Birth is required"}},
		{name: "missing state", mutate: func(f *types.EmployeeFields) { f.State = "" }, want: Errors{"state": "State is required"}},
		{name: "unknown state", mutate: func(f *types.EmployeeFields) { f.State = "Atlantis" }, want: Errors{"state": "Please select a valid state"}},
		{name: "unknown gender", mutate: func(f *types.EmployeeFields) { f.Gender = "Robot" }, want: Errors{"gender": "Gender must be Male, Female or Other"}},
		{
			name: "all required missing reported together",
			mutate: func(f *types.EmployeeFields) {
				*f = types.EmployeeFields{Email: "bad"}
			},
			want: Errors{
				"fullName": "Full Name is required",
				"dob":      "Date of Birth is required",
				"state":    "State is required",
				"email":    "Invalid email address",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validEmployee()
			tt.mutate(&f)
			assert.Equal(t, tt.want, ValidateEmployee(f))
		})
	}
}

func TestValidateEmployee_EveryStateAccepted(t *testing.T) {
	for _, state := range types.States {
		f := validEmployee()
		f.State = state
		assert.Empty(t, ValidateEmployee(f), state)
	}
}

func TestValidateEmployee_EmailShape(t *testing.T) {
	bad := []string{"plain", "no-at.example.com", "a@b", "@b.c", "a@.c", "a b@c.d", "a@b.", "a@@b.c"}
	good := []string{"x@y.z", "suresh@example.com", "first.last+tag@sub.domain.in"}

	for _, email := range bad {
		f := validEmployee()
		f.Email = email
		assert.Contains(t, ValidateEmployee(f), "email", email)
	}
	for _, email := range good {
		f := validEmployee()
		f.Email = email
		assert.NotContains(t, ValidateEmployee(f), "email", email)
	}
}

func TestErrors_ClearAndErr(t *testing.T) {
	errs := ValidateLogin(types.Credentials{})
	require.Len(t, errs, 2)

	err := errs.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "validation failed: email: Email is required, password: Password is required", err.Error())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, errs, verr.Fields)

	errs.Clear("email")
	assert.Equal(t, Errors{"password": "Password is required"}, errs)

	errs.Clear("password")
	assert.NoError(t, errs.Err())
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestEncodeImage(t *testing.T) {
	ctx := context.Background()

	t.Run("png becomes data uri", func(t *testing.T) {
		uri, err := EncodeImage(ctx, bytes.NewReader(pngHeader), int64(len(pngHeader)))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), uri)
	})

	t.Run("declared size over limit", func(t *testing.T) {
		_, err := EncodeImage(ctx, bytes.NewReader(pngHeader), MaxImageSize+1)
		assert.ErrorIs(t, err, ErrImageTooLarge)
		assert.Equal(t, MsgImageTooLarge, ImageError(err))
	})

	t.Run("actual size over limit", func(t *testing.T) {
		big := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
		_, err := EncodeImage(ctx, bytes.NewReader(big), 10)
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("exactly at limit is accepted", func(t *testing.T) {
		exact := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize-len(pngHeader))...)
		_, err := EncodeImage(ctx, bytes.NewReader(exact), MaxImageSize)
		assert.NoError(t, err)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := EncodeImage(ctx, strings.NewReader("just some text"), 14)
		assert.ErrorIs(t, err, ErrImageEncoding)
		assert.Equal(t, MsgImageEncoding, ImageError(err))
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := EncodeImage(cctx, bytes.NewReader(pngHeader), int64(len(pngHeader)))
		assert.ErrorIs(t, err, context.Canceled)
	})

	assert.Empty(t, ImageError(nil))
}
