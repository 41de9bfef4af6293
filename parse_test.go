package clip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScenarioParser builds the canonical test fixture: an optional
// -v/--version flag and a mandatory --mandatory option expecting two
// sub-arguments. Output and error streams are captured in buffers.
func newScenarioParser(t *testing.T) (parser *Parser, stdout, stderr *bytes.Buffer) {
	t.Helper()

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	parser = New(
		WithProgram("scenario", "1.0.0"),
		WithOutput(stdout),
		WithErrorOutput(stderr),
	)

	err := parser.Add(
		NewOption([]string{"-v", "--version"},
			Description("Shows the application version."),
		),
		NewOption([]string{"--mandatory"},
			Description("Expects two following args."),
			Mandatory(),
			SubArg("arg1", "The argument 1."),
			SubArg("arg2", "The argument 2."),
		),
	)
	require.NoError(t, err)

	return parser, stdout, stderr
}

func TestParseResults(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string
		args []string
		exp  Result
	}{
		{
			name: "all mandatory options provided",
			args: []string{"--mandatory", "foo", "bar"},
			exp:  Ok,
		},
		{
			name: "mandatory option missing",
			args: []string{"-v"},
			exp:  Failed,
		},
		{
			name: "help alias",
			args: []string{"--help"},
			exp:  HelpRequested,
		},
		{
			name: "unrecognized token",
			args: []string{"--bogus"},
			exp:  Failed,
		},
		{
			name: "empty vector with a mandatory option",
			args: nil,
			exp:  Failed,
		},
		{
			name: "optional and mandatory together",
			args: []string{"-v", "--mandatory", "foo", "bar"},
			exp:  Ok,
		},
		{
			name: "help after valid tokens, before invalid ones",
			args: []string{"-v", "-h", "--bogus"},
			exp:  HelpRequested,
		},
		{
			name: "windows style help alias",
			args: []string{"/?"},
			exp:  HelpRequested,
		},
		{
			name: "missing sub-arguments",
			args: []string{"--mandatory", "foo"},
			exp:  Failed,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parser, _, _ := newScenarioParser(t)
			assert.Equal(t, tc.exp, parser.Parse(tc.args))
		})
	}
}

func TestParseEmptyParser(t *testing.T) {
	t.Parallel()

	parser := New(WithErrorOutput(&bytes.Buffer{}))
	assert.Equal(t, Ok, parser.Parse(nil))
	assert.Equal(t, Ok, parser.Parse([]string{}))
}

func TestParseBindsSubArguments(t *testing.T) {
	t.Parallel()

	parser, _, _ := newScenarioParser(t)
	require.Equal(t, Ok, parser.Parse([]string{"--mandatory", "foo", "bar"}))

	opt, err := parser.Lookup("--mandatory")
	require.NoError(t, err)
	assert.True(t, opt.Provided())

	arg1, err := opt.Value("arg1")
	require.NoError(t, err)
	assert.Equal(t, "foo", arg1)

	arg2, err := opt.Value("arg2")
	require.NoError(t, err)
	assert.Equal(t, "bar", arg2)
}

// Tokens consumed as sub-argument values are opaque: an alias-looking
// token binds verbatim instead of being resolved as an option.
func TestParseSubArgumentValuesAreOpaque(t *testing.T) {
	t.Parallel()

	parser, _, _ := newScenarioParser(t)
	require.Equal(t, Ok, parser.Parse([]string{"--mandatory", "-v", "bar"}))

	mandatory := parser.MustLookup("--mandatory")
	arg1, err := mandatory.Value("arg1")
	require.NoError(t, err)
	assert.Equal(t, "-v", arg1)

	version := parser.MustLookup("-v")
	assert.False(t, version.Provided(), "-v was a value, not an option occurrence")
}

func TestParseUnrecognizedToken(t *testing.T) {
	t.Parallel()

	parser, _, stderr := newScenarioParser(t)
	require.Equal(t, Failed, parser.Parse([]string{"--bogus", "--mandatory", "foo", "bar"}))

	assert.Contains(t, stderr.String(), "Invalid argument '--bogus'.")

	// Short-circuit: nothing after the failing token was examined.
	assert.False(t, parser.MustLookup("--mandatory").Provided())
}

func TestParseSuggestsClosestAlias(t *testing.T) {
	t.Parallel()

	parser, _, stderr := newScenarioParser(t)
	require.Equal(t, Failed, parser.Parse([]string{"--versoin"}))

	assert.Contains(t, stderr.String(), "Invalid argument '--versoin'.")
	assert.Contains(t, stderr.String(), "Did you mean '--version'?")
}

func TestParseMissingSubArgument(t *testing.T) {
	t.Parallel()

	parser, _, stderr := newScenarioParser(t)
	require.Equal(t, Failed, parser.Parse([]string{"--mandatory", "foo"}))

	assert.Contains(t, stderr.String(), "Missing argument 'arg2' for parameter '--mandatory'.")

	// Values bound before the failure are left as-is, not rolled back.
	opt := parser.MustLookup("--mandatory")
	arg1, err := opt.Value("arg1")
	require.NoError(t, err)
	assert.Equal(t, "foo", arg1)
	assert.False(t, opt.Provided())
}

func TestParseMandatoryMissing(t *testing.T) {
	t.Parallel()

	parser, _, stderr := newScenarioParser(t)
	require.Equal(t, Failed, parser.Parse([]string{"-v"}))

	assert.Contains(t, stderr.String(), "Mandatory parameter '--mandatory' not provided.")

	// The mandatory sweep runs only after the full vector was consumed.
	assert.True(t, parser.MustLookup("-v").Provided())
}

func TestParseHelpWritesDocument(t *testing.T) {
	t.Parallel()

	parser, stdout, stderr := newScenarioParser(t)
	require.Equal(t, HelpRequested, parser.Parse([]string{"--help"}))

	assert.Equal(t, parser.Help()+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestParseValidator(t *testing.T) {
	t.Parallel()

	t.Run("rejecting validator keeps bound values", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		parser := New(WithErrorOutput(stderr))

		var seen string
		reject := ValidatorFunc(func(opt *Option) bool {
			// Values are already bound and readable at validation time.
			seen, _ = opt.Value("level")

			return false
		})

		require.NoError(t, parser.Add(
			NewOption([]string{"--log"}, SubArg("level", "The log level."), WithValidator(reject)),
		))

		assert.Equal(t, FailedValidation, parser.Parse([]string{"--log", "debug"}))
		assert.Equal(t, "debug", seen)
		assert.Empty(t, stderr.String(), "no diagnostic beyond the result code")

		level, err := parser.MustLookup("--log").Value("level")
		require.NoError(t, err)
		assert.Equal(t, "debug", level)
		assert.False(t, parser.MustLookup("--log").Provided())
	})

	t.Run("accepting validator marks the option provided", func(t *testing.T) {
		t.Parallel()

		parser := New(WithErrorOutput(&bytes.Buffer{}))
		accept := ValidatorFunc(func(*Option) bool { return true })

		require.NoError(t, parser.Add(
			NewOption([]string{"--log"}, SubArg("level", "The log level."), WithValidator(accept)),
		))

		assert.Equal(t, Ok, parser.Parse([]string{"--log", "debug"}))
		assert.True(t, parser.MustLookup("--log").Provided())
	})
}

// Successive Parse calls on the same parser are isolated: state from a
// previous call never leaks into the next one.
func TestParseResetsBetweenCalls(t *testing.T) {
	t.Parallel()

	parser, _, _ := newScenarioParser(t)
	require.Equal(t, Ok, parser.Parse([]string{"--mandatory", "foo", "bar"}))

	require.Equal(t, Failed, parser.Parse([]string{"-v"}))

	opt := parser.MustLookup("--mandatory")
	assert.False(t, opt.Provided())

	arg1, err := opt.Value("arg1")
	require.NoError(t, err)
	assert.Empty(t, arg1)
}
