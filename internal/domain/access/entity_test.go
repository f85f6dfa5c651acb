package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() PermissionTree {
	return PermissionTree{
		Nodes: []PermissionNode{
			{
				Key:     "schedule",
				Allowed: true,
				Children: []PermissionNode{
					{Key: "schedule.reorder", Allowed: false},
				},
			},
			{Key: "leave", Allowed: false},
		},
	}
}

func TestAllows(t *testing.T) {
	tree := sampleTree()

	assert.True(t, tree.Allows("schedule"))
	assert.False(t, tree.Allows("schedule.reorder"), "child refines the parent decision")
	assert.True(t, tree.Allows("schedule.export"), "missing child inherits the parent")
	assert.False(t, tree.Allows("leave"))
	assert.False(t, tree.Allows("holidays"), "unknown key denies")
}

func TestAllowsEmptyTreeDenies(t *testing.T) {
	var tree PermissionTree
	assert.False(t, tree.Allows("schedule"))
}

func TestPermissionTreeRoundTrip(t *testing.T) {
	tree := sampleTree()

	value, err := tree.Value()
	require.NoError(t, err)
	raw, ok := value.([]byte)
	require.True(t, ok)

	var decoded PermissionTree
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, tree, decoded)
}

func TestPermissionTreeValueEmpty(t *testing.T) {
	var tree PermissionTree
	value, err := tree.Value()
	require.NoError(t, err)
	assert.Nil(t, value, "empty tree stores as NULL")
}
