package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zolve/formkit/internal/validation"
)

// isolate moves the test into an empty working directory with a clean
// FORMTERM environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())

	for _, key := range []string{
		"FORMTERM_DEBOUNCE",
		"FORMTERM_LOG_LEVEL",
		"FORMTERM_LOG_FILE",
		"FORMTERM_MESSAGES_FILE",
		"FORMTERM_COUNTRY",
		"FORMTERM_DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	isolate(t)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateValidValues(t *testing.T) {
	out, err := runCLI(t, "", "validate", "--purpose", "email", "me@example.com", "a.b@mail.co.uk")
	require.NoError(t, err)

	assert.Equal(t, "\"me@example.com\"\tok\n\"a.b@mail.co.uk\"\tok\n", out)
}

func TestValidateReportsInvalidValues(t *testing.T) {
	out, err := runCLI(t, "", "validate", "-p", "email", "me@example.com", "nope", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidValues)
	assert.Contains(t, err.Error(), "2 of 3")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "\"me@example.com\"\tok", lines[0])
	assert.Equal(t, "\"nope\"\tEMAIL\tPlease enter a valid email address", lines[1])
	assert.Equal(t, "\"\"\tREQUIRED\tThis field is required", lines[2])
}

func TestValidatePhoneUsesCountry(t *testing.T) {
	out, err := runCLI(t, "", "validate", "--purpose", "phone", "--country", "IN", "919876543210")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	out, err = runCLI(t, "", "validate", "--purpose", "phone", "--country", "in", "91")
	assert.ErrorIs(t, err, errInvalidValues)
	assert.Equal(t, "\"91\"\tINVALID\n", out)
}

func TestValidateDefaultCountryFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("FORMTERM_COUNTRY=in\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", "--purpose", "phone", "12025550143"})

	t.Setenv("FORMTERM_COUNTRY", "")
	os.Unsetenv("FORMTERM_COUNTRY")

	err := cmd.Execute()
	assert.ErrorIs(t, err, errInvalidValues, "eleven digits are too few for India")
	assert.Contains(t, out.String(), string(validation.MessagePhone))
}

func TestValidateUsesMessageOverrides(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "messages.yaml")
	require.NoError(t, os.WriteFile(file, []byte("EMAIL: That is not an email\n"), 0o644))

	t.Chdir(dir)
	t.Setenv("FORMTERM_MESSAGES_FILE", file)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", "--purpose", "email", "nope"})

	assert.Error(t, cmd.Execute())
	assert.Contains(t, out.String(), "That is not an email")
}

func TestValidateRejectsBadInvocations(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown purpose", []string{"validate", "--purpose", "shoeSize", "42"}},
		{"unknown country", []string{"validate", "--purpose", "phone", "--country", "zz", "1"}},
		{"missing purpose", []string{"validate", "value"}},
		{"missing values", []string{"validate", "--purpose", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "", tt.args...)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, errInvalidValues)
			assert.NotContains(t, out, "ok")
		})
	}
}

func TestWatchValidatesLastEditOnly(t *testing.T) {
	out, err := runCLI(t, "1\n12\n123\n1234\n12345\n",
		"watch", "--purpose", "zipCode", "--delay", "200ms")
	require.NoError(t, err)

	assert.Equal(t, "\"12345\"\tok\n", out)
}

func TestWatchReportsInvalidFinalEdit(t *testing.T) {
	out, err := runCLI(t, "abc\nab\n", "watch", "--purpose", "firstName", "--delay", "50ms")
	require.NoError(t, err)
	assert.Equal(t, "\"ab\"\tok\n", out)

	out, err = runCLI(t, "ab\nab1\n", "watch", "--purpose", "firstName", "--delay", "50ms")
	require.NoError(t, err)
	assert.Equal(t, "\"ab1\"\tNUMERIC\tNumbers are not allowed\n", out)
}

func TestWatchFlushesPendingEditOnReadError(t *testing.T) {
	isolate(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(io.MultiReader(
		strings.NewReader("1234\n12345\n"),
		iotest.ErrReader(errors.New("stdin closed")),
	))
	cmd.SetArgs([]string{"watch", "--purpose", "zipCode", "--delay", "50ms"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin closed")
	assert.Equal(t, "\"12345\"\tok\n", out.String())
}

func TestWatchWithoutInput(t *testing.T) {
	out, err := runCLI(t, "", "watch", "--purpose", "email")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPurposesListsEnumeration(t *testing.T) {
	out, err := runCLI(t, "", "purposes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(validation.Purposes()))
	assert.Equal(t, "email", lines[0])
	assert.Contains(t, lines, "visaType")
}

func TestCountriesTable(t *testing.T) {
	out, err := runCLI(t, "", "countries")
	require.NoError(t, err)

	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "India")
	assert.Contains(t, out, "+91")
	assert.Contains(t, out, "United Arab Emirates")
}

func TestRootCommandTree(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "formterm", cmd.Use)
	assert.Equal(t, Version, cmd.Version)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"validate", "watch", "purposes", "countries"} {
		assert.Contains(t, names, want)
	}
}
