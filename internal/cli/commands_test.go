// internal/cli/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: filesystem
// PURPOSE: Test the command line outcomes end to end

package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/output"
	"github.com/arthur-debert/gccleaner/pkg/rules"
	"github.com/arthur-debert/gccleaner/pkg/testutil"
)

const sourceGCode = "G28\nM73 P10 R5\nG1 X10 Y10\nM107\n"

const validSettings = `{
  "FileNamePostFix": "_GC",
  "WaitForKey": true,
  "LineDescriptions": [
    { "StartsWith": "M73 P", "Contains": " R", "Comment": "progress" },
    { "Matches": "m107", "RemoveLine": true }
  ]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_MissingArgument(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t)

	require.NoError(t, err, "a missing argument is not a failure")
	assert.True(t, strings.HasPrefix(out, MsgMissingArgument+"\n"))
	assert.Contains(t, out, "Use this as an example:")
	assert.Contains(t, out, `"LineDescriptions"`)
}

func TestRoot_FileNotFound(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	missing := env.Path("missing.gcode")

	out, err := execute(t, missing)

	require.NoError(t, err)
	assert.Contains(t, out, "File:\n"+missing+"\nnot found.")
	assert.Contains(t, out, "Use this as an example:")
}

func TestRoot_ConfigMissing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)

	out, err := execute(t, "--config", env.Path("appsettings.json"), source)

	require.NoError(t, err)
	assert.Contains(t, out, MsgConfigProblem)
	assert.Contains(t, out, "not found")
	assert.NoFileExists(t, env.Path("part_GC.gcode"))
}

func TestRoot_ConfigWithoutRules(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)
	settings := env.WriteFile("gccleaner.yaml", "FileNamePostFix: _X\nLineDescriptions: []\n")

	out, err := execute(t, "--config", settings, source)

	require.NoError(t, err)
	assert.Contains(t, out, MsgConfigProblem)
	assert.Contains(t, out, "LineDescriptions must contain at least one entry")
	assert.Contains(t, out, "LineDescriptions:", "the example follows the settings file format")
	assert.NoFileExists(t, env.Path("part_X.gcode"))
}

func TestRoot_InvalidRule(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)
	settings := env.WriteFile("appsettings.json", `{
  "LineDescriptions": [
    { "StartsWith": "G28" },
    { "EndsWith": "R5" }
  ]
}`)

	out, err := execute(t, "--config", settings, source)

	require.NoError(t, err)
	assert.Contains(t, out, "There is a problem with at least one LineDescription in "+settings)
	assert.Contains(t, out, "line description 2 is invalid")
	assert.Contains(t, out, rules.MsgMissingComparison)
	assert.Contains(t, out, `EndsWith="R5" -> comment`)
	assert.NoFileExists(t, env.Path("part_GC.gcode"))
}

func TestFail_UncompiledRuleIsReportedAsRuleProblem(t *testing.T) {
	testutil.NewTestEnvironment(t)

	var out bytes.Buffer
	r, err := output.NewRenderer(&out, true)
	require.NoError(t, err)

	_, matchErr := rules.CompiledRule{}.MatchLine("G1 X1")
	require.Error(t, matchErr)

	o := &runOptions{configFile: "gccleaner.toml"}
	err = o.fail(r, nil, matchErr, "part.gcode")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "There is a problem with at least one LineDescription in gccleaner.toml")
	assert.Contains(t, out.String(), "used before being validated")
	assert.Contains(t, out.String(), "Use this as an example:")
	assert.Contains(t, out.String(), "FileNamePostFix = ")
	assert.NotContains(t, out.String(), "An error occurred")
}

func TestRoot_StrictRejectsRuleWithoutComparison(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)
	settings := env.WriteFile("appsettings.json", `{"LineDescriptions": [ { "Comment": "all" } ]}`)

	out, err := execute(t, "--config", settings, source)
	require.NoError(t, err)
	assert.FileExists(t, env.Path("part_GC.gcode"), "lenient validation accepts the rule")

	require.NoError(t, os.Remove(env.Path("part_GC.gcode")))
	out, err = execute(t, "--strict", "--config", settings, source)
	require.NoError(t, err)
	assert.Contains(t, out, rules.MsgMissingComparison)
	assert.NoFileExists(t, env.Path("part_GC.gcode"))
}

func TestRoot_ProcessesFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)
	settings := env.WriteFile("appsettings.json", validSettings)

	out, err := execute(t, "--config", settings, source)

	require.NoError(t, err)
	assert.Contains(t, out, MsgProcessingFile+"\n..\n\n")
	assert.Contains(t, out, "File part.gcode processed:")
	assert.Contains(t, out, "Number of Lines: 4")
	assert.Contains(t, out, "Number of Matches: 2")
	assert.Contains(t, out, "Duration: ")
	assert.NotContains(t, out, "Hit a key", "no key is awaited without a terminal")

	testutil.AssertFileContent(t, env.Path("part_GC.gcode"), "G28\n;M73 P10 R5    ;progress\nG1 X10 Y10\n")
	testutil.AssertFileContent(t, source, sourceGCode)
}

func TestRoot_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)
	settings := env.WriteFile("appsettings.json", validSettings)

	out, err := execute(t, "--dry-run", "--config", settings, source)

	require.NoError(t, err)
	assert.Contains(t, out, "Dry run: nothing was written")
	assert.Contains(t, out, "Number of Matches: 2")
	assert.NoFileExists(t, env.Path("part_GC.gcode"))
}

func TestRoot_QuietAndOverrides(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode.gcode", sourceGCode)
	settings := env.WriteFile("appsettings.json", validSettings)

	out, err := execute(t, "-q", "--postfix", "_clean", "--trailing-ext", "--config", settings, source)

	require.NoError(t, err)
	assert.NotContains(t, out, MsgProcessingFile)
	assert.True(t, strings.HasPrefix(out, "File part.gcode.gcode processed:"))
	assert.FileExists(t, env.Path("part.gcode_clean.gcode"))
}

func TestRoot_VerboseSummary(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)
	settings := env.WriteFile("appsettings.json", validSettings)

	out, err := execute(t, "-v", "--config", settings, source)

	require.NoError(t, err)
	assert.Contains(t, out, "Commented: 1")
	assert.Contains(t, out, "Removed: 1")
	assert.Contains(t, out, "Written to: "+env.Path("part_GC.gcode"))
}

func TestRoot_PreviewNeedsTerminal(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.WriteFile("part.gcode", sourceGCode)
	settings := env.WriteFile("appsettings.json", validSettings)

	_, err := execute(t, "--preview", "--config", settings, source)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.NoFileExists(t, env.Path("part_GC.gcode"))
}

func TestRoot_TooManyArguments(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "a.gcode", "b.gcode")
	assert.Error(t, err)
}

func TestExampleConfigCmd(t *testing.T) {
	t.Run("prints json by default", func(t *testing.T) {
		testutil.NewTestEnvironment(t)

		out, err := execute(t, "example-config")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "{\n"))
		assert.Contains(t, out, `"FileNamePostFix": "_GC"`)
	})

	t.Run("writes yaml to the working directory", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		env.Chdir()

		out, err := execute(t, "example-config", "-f", "yaml", "-w")
		require.NoError(t, err)
		assert.Contains(t, out, "Written gccleaner.yaml")
		assert.FileExists(t, env.Path("gccleaner.yaml"))

		out, err = execute(t, "example-config", "-f", "yaml", "-w")
		require.NoError(t, err)
		assert.Contains(t, out, "gccleaner.yaml already exists")
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		testutil.NewTestEnvironment(t)

		_, err := execute(t, "example-config", "-f", "ini")
		assert.Error(t, err)
	})
}

func TestVersionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "gccleaner version dev\n", out)
}

func TestCompletionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "completion", "bash")

	require.NoError(t, err)
	assert.Contains(t, out, "gccleaner")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
