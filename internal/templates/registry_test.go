package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry()
	tmpl := &Template{Kind: KindCRUD, Dir: "crud", Content: "x"}

	require.NoError(t, registry.Register(tmpl))

	err := registry.Register(tmpl)
	assert.ErrorContains(t, err, "already registered")

	err = registry.Register(&Template{Kind: KindModel})
	assert.ErrorContains(t, err, "invalid template")
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()
	tmpl := &Template{Kind: KindCRUD, Dir: "crud", Content: "x"}
	require.NoError(t, registry.Register(tmpl))

	got, err := registry.Get(KindCRUD)
	require.NoError(t, err)
	assert.Same(t, tmpl, got)

	_, err = registry.Get(KindModel)
	assert.ErrorContains(t, err, "template model not found")
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	for _, kind := range []Kind{KindModel, KindController, KindCRUD} {
		require.NoError(t, registry.Register(&Template{Kind: kind, Dir: "d", Content: "x"}))
	}

	var kinds []Kind
	for _, tmpl := range registry.List() {
		kinds = append(kinds, tmpl.Kind)
	}
	assert.Equal(t, []Kind{KindController, KindCRUD, KindModel}, kinds)
}

func TestNewBuiltinRegistry(t *testing.T) {
	registry, err := NewBuiltinRegistry()
	require.NoError(t, err)

	expected := map[Kind]struct{ dir, label string }{
		KindModel:      {"models", "Model"},
		KindCRUD:       {"crud", "Crud"},
		KindController: {"api", "Controller"},
	}

	assert.Len(t, registry.List(), len(expected))
	for kind, want := range expected {
		tmpl, err := registry.Get(kind)
		require.NoError(t, err)
		assert.Equal(t, want.dir, tmpl.Dir)
		assert.Equal(t, want.label, tmpl.Label)
		assert.NotEmpty(t, tmpl.Content)
		assert.NotEmpty(t, tmpl.Description)
	}
}
