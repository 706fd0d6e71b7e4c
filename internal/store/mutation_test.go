package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhachu16/wdg-pm/pkg/project"
)

func TestParseMutation_Known(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want Mutation
	}{
		{"update_status", []string{"In", "Production"}, UpdateStatus{Status: "In Production"}},
		{"update_quantity", []string{"5"}, UpdateQuantity{Quantity: 5}},
		{"update_master_id", []string{"MAAS"}, UpdateMasterID{MasterID: "MAAS"}},
		{"update_name", []string{"Special", "Prototype"}, UpdateName{ProjectName: "Special Prototype"}},
		{"update_customer_id", []string{"CUST-001"}, UpdateCustomerID{CustomerID: "CUST-001"}},
		{"update_responsible", []string{"QA", "Bob", "Charlie"}, UpdateResponsible{Role: "QA", Assignees: []string{"Bob", "Charlie"}}},
		{"update_shipping_info", []string{"Post Code=99999"}, UpdateShippingInfo{Info: map[string]string{"Post Code": "99999"}}},
		{"update_file", []string{"/tmp/cube.stl", "true"}, UpdateFile{Path: "/tmp/cube.stl", NewVersion: true}},
		{"update_file", []string{"/tmp/cube.stl"}, UpdateFile{Path: "/tmp/cube.stl"}},
		{"update_file_directories", []string{"active=/tmp/files", "archive=/tmp/archive"}, UpdateFileDirectories{ActiveDir: "/tmp/files", ArchiveDir: "/tmp/archive"}},
		{"add_comment", []string{"looks", "good"}, AddComment{Text: "looks good"}},
		{"edit_comment", []string{"2", "fixed", "note"}, EditComment{ID: 2, Text: "fixed note"}},
		{"remove_comment", []string{"1"}, RemoveComment{ID: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMutation(tc.name, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m)
			assert.Equal(t, tc.name, m.Name())
		})
	}
}

func TestParseMutation_UnknownOperation(t *testing.T) {
	_, err := ParseMutation("explode", []string{"now"})
	require.Error(t, err)
	assert.True(t, project.IsUnsupportedOperation(err))
}

func TestParseMutation_MalformedArgs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"update_quantity", []string{"many"}},
		{"update_quantity", []string{}},
		{"update_status", []string{}},
		{"update_responsible", []string{"QA"}},
		{"update_file", []string{"/tmp/f.stl", "maybe"}},
		{"update_file_directories", []string{"sideways=/tmp/x"}},
		{"update_shipping_info", []string{"no-separator"}},
		{"edit_comment", []string{"two", "text"}},
		{"remove_comment", []string{"x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name+"/"+testName(tc.args), func(t *testing.T) {
			_, err := ParseMutation(tc.name, tc.args)
			require.Error(t, err)
			assert.True(t, project.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func testName(args []string) string {
	if len(args) == 0 {
		return "empty"
	}
	return args[0]
}

func TestOperationNames_AllParseable(t *testing.T) {
	// Every advertised name must be recognized (even if its args are then
	// rejected), never ErrUnsupportedOperation.
	for _, name := range OperationNames() {
		_, err := ParseMutation(name, []string{})
		assert.False(t, project.IsUnsupportedOperation(err), "operation %s not wired", name)
	}
}
