package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New()
	require.NotNil(t, r)
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Modules())
}

func TestRegister(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(&Module{Name: "backend", Artifact: "application"}))
		require.NoError(t, r.Register(&Module{Name: "test-utils", Artifact: "library"}))

		assert.Equal(t, 2, r.Len())
		m, ok := r.Module("backend")
		require.True(t, ok)
		assert.Equal(t, "application", m.Artifact)
	})

	t.Run("preserves registration order", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(&Module{Name: "c"}))
		require.NoError(t, r.Register(&Module{Name: "a"}))
		require.NoError(t, r.Register(&Module{Name: "b"}))

		var names []string
		for _, m := range r.Modules() {
			names = append(names, m.Name)
		}
		assert.Equal(t, []string{"c", "a", "b"}, names)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		r := New()
		err := r.Register(&Module{Name: ""})
		assert.ErrorContains(t, err, "must not be empty")
	})

	t.Run("rejects nil module", func(t *testing.T) {
		r := New()
		err := r.Register(nil)
		assert.ErrorContains(t, err, "must not be nil")
	})
}

func TestRegister_DuplicateName(t *testing.T) {
	// The duplicate must fail regardless of which registration came first.
	for _, first := range []string{"library", "application"} {
		t.Run("first registered as "+first, func(t *testing.T) {
			r := New()
			require.NoError(t, r.Register(&Module{Name: "shared", Artifact: first}))

			err := r.Register(&Module{Name: "shared", Artifact: "tool"})
			require.Error(t, err)

			var dup *DuplicateModuleError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, "shared", dup.Name)
			assert.Equal(t, 1, r.Len())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("empty graph is valid", func(t *testing.T) {
		r := New()
		assert.NoError(t, r.Validate())
	})

	t.Run("acyclic graph is valid", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(&Module{Name: "core"}))
		require.NoError(t, r.Register(&Module{Name: "api", DependsOn: []string{"core"}}))
		require.NoError(t, r.Register(&Module{Name: "app", DependsOn: []string{"api", "core"}}))

		assert.NoError(t, r.Validate())
	})

	t.Run("is re-callable", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(&Module{Name: "core"}))
		require.NoError(t, r.Validate())
		require.NoError(t, r.Validate())
	})
}

func TestValidate_UnknownDependency(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&Module{Name: "backend", DependsOn: []string{"missing"}}))

	err := r.Validate()
	require.Error(t, err)

	var unknown *UnknownDependencyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "backend", unknown.Module)
	assert.Equal(t, "missing", unknown.Dependency)
}

func TestValidate_UnknownDependency_ReportsFirstInRegistrationOrder(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&Module{Name: "b", DependsOn: []string{"gone-b"}}))
	require.NoError(t, r.Register(&Module{Name: "a", DependsOn: []string{"gone-a"}}))

	// "b" was registered first, so its bad dependency wins every run.
	for i := 0; i < 3; i++ {
		err := r.Validate()
		var unknown *UnknownDependencyError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "b", unknown.Module)
		assert.Equal(t, "gone-b", unknown.Dependency)
	}
}

func TestValidate_TwoNodeCycle(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&Module{Name: "a", DependsOn: []string{"b"}}))
	require.NoError(t, r.Register(&Module{Name: "b", DependsOn: []string{"a"}}))

	err := r.Validate()
	require.Error(t, err)

	var cyc *CyclicDependencyError
	require.ErrorAs(t, err, &cyc)
	assert.Equal(t, []string{"a", "b", "a"}, cyc.Cycle)
	assert.Contains(t, cyc.Error(), "a -> b -> a")
}

func TestValidate_ThreeNodeCycle(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&Module{Name: "a", DependsOn: []string{"b"}}))
	require.NoError(t, r.Register(&Module{Name: "b", DependsOn: []string{"c"}}))
	require.NoError(t, r.Register(&Module{Name: "c", DependsOn: []string{"a"}}))

	err := r.Validate()
	var cyc *CyclicDependencyError
	require.ErrorAs(t, err, &cyc)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cyc.Cycle)
}

func TestValidate_SelfDependency(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&Module{Name: "a", DependsOn: []string{"a"}}))

	err := r.Validate()
	var cyc *CyclicDependencyError
	require.ErrorAs(t, err, &cyc)
	assert.Equal(t, []string{"a", "a"}, cyc.Cycle)
}

func TestValidate_CycleBelowHealthyRoot(t *testing.T) {
	// The cycle is only reachable through a valid module; the traversal
	// must still find it and report only the looping suffix.
	r := New()
	require.NoError(t, r.Register(&Module{Name: "root", DependsOn: []string{"x"}}))
	require.NoError(t, r.Register(&Module{Name: "x", DependsOn: []string{"y"}}))
	require.NoError(t, r.Register(&Module{Name: "y", DependsOn: []string{"x"}}))

	err := r.Validate()
	var cyc *CyclicDependencyError
	require.ErrorAs(t, err, &cyc)
	assert.Equal(t, []string{"x", "y", "x"}, cyc.Cycle)
}

func TestRegisterAfterValidate_InvalidatesState(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&Module{Name: "core"}))
	require.NoError(t, r.Validate())

	// A new registration reverts to Populated; the next BuildOrder must
	// re-validate and see the fresh (broken) declaration.
	require.NoError(t, r.Register(&Module{Name: "extra", DependsOn: []string{"nope"}}))

	_, err := r.BuildOrder()
	var unknown *UnknownDependencyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "extra", unknown.Module)
}
