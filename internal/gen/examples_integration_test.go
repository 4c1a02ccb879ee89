package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tuplegen/internal/analyze"
	"tuplegen/internal/plan"
)

// TestGeneratedExamplesUpToDate regenerates every committed example
// artifact and verifies the on-disk copies are byte-identical, which
// exercises the loader, planner, and emitter end to end.
func TestGeneratedExamplesUpToDate(t *testing.T) {
	models, diags, err := analyze.NewLoader().Load("tuplegen/examples/...")
	require.NoError(t, err)
	require.False(t, diags.HasErrors(), "examples must extract cleanly: %v", diags.Error())
	require.NotEmpty(t, models)

	gen := NewGenerator(DefaultConfig())

	var files []GeneratedFile

	for _, model := range models {
		mapping, diag := plan.Build(model)
		require.Nil(t, diag, "examples must plan cleanly")

		file, err := gen.Generate(mapping)
		require.NoError(t, err)

		files = append(files, *file)
	}

	stale, err := CheckFiles(files)
	require.NoError(t, err)

	for _, s := range stale {
		t.Errorf("stale generated file %s:\n%s", s.Path, s.Diff)
	}
}
