package argpars

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput redirects both App outputs into buffers for the duration of f.
func captureOutput(app *App, f func()) (out, errOut string) {
	var outBuff, errBuff bytes.Buffer
	app.SetOutput(&outBuff)
	app.SetErrorOutput(&errBuff)
	f()
	return outBuff.String(), errBuff.String()
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	app := New([]string{"testapp"})
	require.Equal(t, "Usage: testapp [OPTION]...\n", app.Usage)
	require.Equal(t, "Default name", app.Name)
	require.Equal(t, "Default description", app.Description)
	require.Equal(t, "Default version", app.Version)
	require.False(t, app.AllowTrailingArg)
	require.Equal(t, []string{"testapp"}, app.Args())
}

func TestNewEmptySnapshot(t *testing.T) {
	t.Parallel()

	app := New(nil)
	require.Equal(t, "Usage:  [OPTION]...\n", app.Usage)
	require.True(t, app.NoArgumentsPassed())
	require.Equal(t, 0, app.Run())
}

func TestAddArgument(t *testing.T) {
	t.Parallel()

	t.Run("registers_flag", func(t *testing.T) {
		app := New([]string{"testapp", "--foo", "bar"})
		require.NoError(t, app.AddArgument("--foo", "foo usage"))
		require.True(t, app.Passed("--foo"))
		param, ok := app.ParameterFor("--foo")
		require.True(t, ok)
		require.Equal(t, "bar", param)
	})

	t.Run("empty_name", func(t *testing.T) {
		app := New([]string{"testapp"})
		require.ErrorIs(t, app.AddArgument("", "usage"), ErrEmptyFlagName)
	})

	t.Run("redefined", func(t *testing.T) {
		app := New([]string{"testapp", "--foo", "bar"})
		require.NoError(t, app.AddArgument("--foo", "first"))
		err := app.AddArgument("--foo", "second")
		require.ErrorIs(t, err, ErrFlagRedefined)
		require.Contains(t, err.Error(), "--foo")

		// registry is unchanged: membership and parameter behavior stay intact
		require.True(t, app.Passed("--foo"))
		param, ok := app.ParameterFor("--foo")
		require.True(t, ok)
		require.Equal(t, "bar", param)
	})

	t.Run("redefining_builtin", func(t *testing.T) {
		app := New([]string{"testapp"})
		require.ErrorIs(t, app.AddArgument(HelpFlag, "usage"), ErrFlagRedefined)
	})

	t.Run("later_registration_demotes_earlier_parameter", func(t *testing.T) {
		app := New([]string{"testapp", "--a", "--b"})
		require.NoError(t, app.AddArgument("--a", ""))

		// --b is not registered yet, so it reads as the parameter of --a
		param, ok := app.ParameterFor("--a")
		require.True(t, ok)
		require.Equal(t, "--b", param)

		require.NoError(t, app.AddArgument("--b", ""))
		param, ok = app.ParameterFor("--a")
		require.True(t, ok)
		require.Equal(t, "", param)
	})
}

func TestNoDefaultArguments(t *testing.T) {
	t.Parallel()

	t.Run("removes_builtins", func(t *testing.T) {
		app := New([]string{"testapp", "--help"})
		app.NoDefaultArguments()

		// --help is no longer registered, so validation rejects it
		require.True(t, app.WrongArgumentsPassed())
		_, errOut := captureOutput(app, func() {
			require.Equal(t, 1, app.Run())
		})
		require.Contains(t, errOut, "No such option: '--help'")

		// the literal membership test still works
		require.True(t, app.Passed("--help"))
		require.True(t, app.DefaultArgumentsPassed())
	})

	t.Run("after_custom_flags", func(t *testing.T) {
		app := New([]string{"testapp", "--mine"})
		require.NoError(t, app.AddArgument("--mine", "my flag"))
		app.NoDefaultArguments()

		// removal matches by token, custom flags are untouched
		require.False(t, app.WrongArgumentsPassed())
		require.True(t, app.Passed("--mine"))
	})

	t.Run("idempotent", func(t *testing.T) {
		app := New([]string{"testapp"})
		app.NoDefaultArguments()
		app.NoDefaultArguments()
		require.NoError(t, app.AddArgument(HelpFlag, "re-added by hand"))
	})

	t.Run("no_special_handling_in_run", func(t *testing.T) {
		app := New([]string{"testapp", "--help"})
		app.NoDefaultArguments()
		require.NoError(t, app.AddArgument("--help", "plain flag now"))

		out, errOut := captureOutput(app, func() {
			require.Equal(t, 0, app.Run())
		})
		require.Empty(t, out)
		require.Empty(t, errOut)
	})
}
