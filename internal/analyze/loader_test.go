package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Examples(t *testing.T) {
	models, diags, err := NewLoader().Load(
		"tuplegen/examples/hello",
		"tuplegen/examples/span",
		"tuplegen/examples/empty",
	)
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())
	require.Len(t, models, 3)

	byName := make(map[string]*StructModel)
	for _, m := range models {
		byName[m.Name] = m
	}

	hello := byName["Hello"]
	require.NotNil(t, hello)
	assert.Equal(t, StrategyHeterogeneous, hello.Strategy)
	assert.Equal(t, "tuplegen/examples/hello", hello.Pkg.Path)
	assert.NotEmpty(t, hello.Pkg.Dir)
	require.Len(t, hello.Fields, 3)
	assert.Equal(t, "message", hello.Fields[0].Name)

	span := byName["Span"]
	require.NotNil(t, span)
	assert.Equal(t, StrategyPositional, span.Strategy)

	empty := byName["Empty"]
	require.NotNil(t, empty)
	assert.Empty(t, empty.Fields)
}
