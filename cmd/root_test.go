package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/suppressor/internal/adapter"
	"github.com/mouse-blink/suppressor/internal/controller"
	controllermocks "github.com/mouse-blink/suppressor/internal/controller/mocks"
	"github.com/mouse-blink/suppressor/internal/domain"
	m "github.com/mouse-blink/suppressor/internal/model"
)

const fooJava = `package com.acme;

class Foo {
    int cmp(int a, int b) {
        // @suppressMutation(ALL)
        if (a < b) return -1;
        // @suppressMutation(MathMutator)
        return a + b;
    }
}
`

const classesYAML = `classes:
  - name: com.acme.Foo
    sourceFile: Foo.java
    codeLines: [6, 8]
`

const mutationsYAML = `mutations:
  - class: com.acme.Foo
    line: 6
    mutator: org.pitest.mutationtest.engine.gregor.mutators.ConditionalsBoundaryMutator
    description: changed conditional boundary
  - class: com.acme.Foo
    line: 8
    mutator: org.pitest.mutationtest.engine.gregor.mutators.MathMutator
    description: Replaced integer addition with subtraction
  - class: com.acme.Foo
    line: 8
    mutator: org.pitest.mutationtest.engine.gregor.mutators.returns.PrimitiveReturnsMutator
    description: replaced int return with 0
`

type fixture struct {
	srcDir    string
	classes   string
	mutations string
	dir       string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")

	writeFile(t, filepath.Join(src, "com", "acme", "Foo.java"), fooJava)
	writeFile(t, filepath.Join(dir, "classes.yaml"), classesYAML)
	writeFile(t, filepath.Join(dir, "mutations.yaml"), mutationsYAML)

	return fixture{
		srcDir:    src,
		classes:   filepath.Join(dir, "classes.yaml"),
		mutations: filepath.Join(dir, "mutations.yaml"),
		dir:       dir,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newTestRootCmd(out, errOut *bytes.Buffer) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newFilterCmd())
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd
}

func withUI(t *testing.T, ui controller.UI) {
	t.Helper()

	original := newUI
	newUI = func(*cobra.Command) controller.UI { return ui }

	t.Cleanup(func() { newUI = original })
}

func TestRootCmd_Version(t *testing.T) {
	var out bytes.Buffer

	cmd := newTestRootCmd(&out, &bytes.Buffer{})
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, domain.FilterDescription+"\n", out.String())
}

func TestLoadOptions_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "suppressor.yaml")
	writeFile(t, cfg, "sourceDirectory: from-config\nmutatorPrefix: org.example.\nexcludeSources: gen/**\n")

	newRootCmd()

	configFlag = cfg
	sourceDirFlag = "from-flag"
	optionFlags = map[string]string{m.OptionMutatorPrefix: "org.override."}

	opts, err := loadOptions()
	require.NoError(t, err)

	assert.Equal(t, m.Options{
		m.OptionSourceDirectory: "from-flag",
		m.OptionMutatorPrefix:   "org.override.",
		m.OptionExcludeSources:  "gen/**",
	}, opts)
}

func TestIndexCmd_DisplaysDirectives(t *testing.T) {
	fx := newFixture(t)

	var out bytes.Buffer

	cmd := newTestRootCmd(&out, &bytes.Buffer{})
	withUI(t, controller.NewSimpleUI(cmd))

	cmd.SetArgs([]string{"index", "--classes", fx.classes, "--source-dir", fx.srcDir})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "com.acme.Foo")
	assert.Contains(t, output, "ALL")
	assert.Contains(t, output, "MathMutator")
	assert.Contains(t, output, "TOTAL CLASSES 1")
}

func TestIndexCmd_Errors(t *testing.T) {
	t.Run("classes manifest is required", func(t *testing.T) {
		cmd := newTestRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
		cmd.SetArgs([]string{"index", "--source-dir", t.TempDir()})

		require.ErrorIs(t, cmd.Execute(), errMissingClasses)
	})

	t.Run("source directory is required", func(t *testing.T) {
		fx := newFixture(t)

		cmd := newTestRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
		cmd.SetArgs([]string{"index", "--classes", fx.classes})

		err := cmd.Execute()

		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.ErrorIs(t, err, domain.ErrMissingSourceDirectory)
	})

	t.Run("unreadable source fails", func(t *testing.T) {
		fx := newFixture(t)
		require.NoError(t, os.Remove(filepath.Join(fx.srcDir, "com", "acme", "Foo.java")))

		cmd := newTestRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
		cmd.SetArgs([]string{"index", "--classes", fx.classes, "--source-dir", fx.srcDir})

		var scanErr *domain.ScanError
		require.ErrorAs(t, cmd.Execute(), &scanErr)
	})
}

func TestFilterCmd_SuppressesAndWritesKept(t *testing.T) {
	fx := newFixture(t)
	output := filepath.Join(fx.dir, "kept.yaml")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayFilterSummary(controller.FilterSummary{
		Description: domain.FilterDescription,
		Classes:     1,
		Total:       3,
		Kept:        1,
	}).Return(nil)
	withUI(t, ui)

	var out, errOut bytes.Buffer

	cmd := newTestRootCmd(&out, &errOut)
	cmd.SetArgs([]string{
		"filter",
		"--classes", fx.classes,
		"--mutations", fx.mutations,
		"--option", "sourceDirectory=" + fx.srcDir,
		"--output", output,
		"--parallel", "2",
		"--verbose",
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, strings.Join([]string{
		"Suppressing mutation in com.acme.Foo, line 6: ConditionalsBoundaryMutator (would have changed conditional boundary).",
		"Suppressing mutation in com.acme.Foo, line 8: MathMutator (would have Replaced integer addition with subtraction).",
		"",
	}, "\n"), out.String())
	assert.Contains(t, errOut.String(), "built suppression index")

	kept, err := adapter.NewManifestStore().LoadMutations(m.Path(output))
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, m.BuiltinMutatorPrefix+"returns.PrimitiveReturnsMutator", kept[0].Mutator)
}

func TestFilterCmd_ConfigFile(t *testing.T) {
	fx := newFixture(t)
	cfg := filepath.Join(fx.dir, "suppressor.yaml")
	writeFile(t, cfg, "sourceDirectory: "+fx.srcDir+"\nmutatorPrefix: org.pitest.\n")

	var out bytes.Buffer

	cmd := newTestRootCmd(&out, &bytes.Buffer{})
	withUI(t, controller.NewSimpleUI(cmd))

	cmd.SetArgs([]string{"filter", "--config", cfg, "--classes", fx.classes, "--mutations", fx.mutations})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output,
		"line 8: mutationtest.engine.gregor.mutators.MathMutator (would have Replaced integer addition with subtraction).")
	assert.Contains(t, output, domain.FilterDescription+": suppressed 2 of 3 mutations (1 kept, 1 classes with directives)")
}

func TestFilterCmd_RequiresMutations(t *testing.T) {
	fx := newFixture(t)

	cmd := newTestRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"filter", "--classes", fx.classes, "--source-dir", fx.srcDir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"mutations"`)
}

func TestFilterCmd_AcmeExample(t *testing.T) {
	example := filepath.Join("..", "examples", "acme")
	output := filepath.Join(t.TempDir(), "kept.yaml")

	var out bytes.Buffer

	cmd := newTestRootCmd(&out, &bytes.Buffer{})
	withUI(t, controller.NewSimpleUI(cmd))

	cmd.SetArgs([]string{
		"filter",
		"--config", filepath.Join(example, "suppressor.yaml"),
		"--source-dir", filepath.Join(example, "src"),
		"--classes", filepath.Join(example, "classes.yaml"),
		"--mutations", filepath.Join(example, "mutations.yaml"),
		"--output", output,
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, strings.Join([]string{
		"Suppressing mutation in com.acme.Calculator, line 7: ConditionalsBoundaryMutator (would have changed conditional boundary).",
		"Suppressing mutation in com.acme.Calculator, line 15: MathMutator (would have Replaced integer addition with subtraction).",
		"Suppressing mutation in com.acme.Calculator$Audit, line 23: IncrementsMutator (would have Changed increment from 1 to -1).",
		domain.FilterDescription + ": suppressed 3 of 5 mutations (2 kept, 2 classes with directives)",
		"",
	}, "\n"), out.String())

	kept, err := adapter.NewManifestStore().LoadMutations(m.Path(output))
	require.NoError(t, err)

	lines := make([]int, 0, len(kept))
	for _, c := range kept {
		lines = append(lines, c.Line)
	}

	assert.Equal(t, []int{7, 10}, lines)
}
