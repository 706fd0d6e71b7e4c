package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhachu16/wdg-pm/pkg/project"
)

func newFormatProject(t *testing.T) *project.Project {
	t.Helper()
	p, err := project.New("HAM", 1, "/tmp/cube.stl", "/tmp/archive",
		map[string][]string{"manager": {"Alice"}}, 2)
	require.NoError(t, err)
	return p
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "HAM_1",
			max:      14,
			expected: "HAM_1",
		},
		{
			name:     "exactly max unchanged",
			input:    strings.Repeat("a", 14),
			max:      14,
			expected: strings.Repeat("a", 14),
		},
		{
			name:     "over max truncated with ellipsis",
			input:    strings.Repeat("a", 20),
			max:      14,
			expected: strings.Repeat("a", 11) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.input, tt.max))
		})
	}
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	n := FormatTable(&buf, nil)
	assert.Equal(t, 0, n)
	assert.Contains(t, buf.String(), "No projects found")
}

func TestFormatTable_Rows(t *testing.T) {
	p := newFormatProject(t)
	p.UpdateName("Hamster Wheel")
	p.UpdateStatus("In Production")

	var buf bytes.Buffer
	n := FormatTable(&buf, []*project.Project{p})
	assert.Equal(t, 1, n)

	out := buf.String()
	assert.Contains(t, out, "HAM_1")
	assert.Contains(t, out, "Hamster Wheel")
	assert.Contains(t, out, "In Produc...")
	assert.Contains(t, out, "1 project found")
}

func TestFormatTable_UnnamedProjectShowsDash(t *testing.T) {
	p := newFormatProject(t)

	var buf bytes.Buffer
	FormatTable(&buf, []*project.Project{p})
	assert.Contains(t, buf.String(), " - ")
}

func TestFormatJSONL(t *testing.T) {
	p := newFormatProject(t)
	q := newFormatProject(t)
	q.UpdateMasterID("MAAS")

	var buf bytes.Buffer
	err := FormatJSONL(&buf, []*project.Project{p, q})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var snap project.Snapshot
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &snap))
	assert.Equal(t, "HAM_1", snap.ProjectID)
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &snap))
	assert.Equal(t, "MAAS_1", snap.ProjectID)
}

func TestFormatSingleJSON(t *testing.T) {
	p := newFormatProject(t)

	var buf bytes.Buffer
	err := FormatSingleJSON(&buf, p)
	require.NoError(t, err)

	var snap project.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
	assert.Equal(t, "HAM_1", snap.ProjectID)
	assert.Equal(t, project.DefaultStatus, snap.Status)
	assert.Equal(t, 2, snap.Quantity)
}

func TestFormatComments(t *testing.T) {
	p := newFormatProject(t)

	var buf bytes.Buffer
	n := FormatComments(&buf, p)
	assert.Equal(t, 0, n)
	assert.Contains(t, buf.String(), "No comments for project 'HAM_1'")

	p.AddComment("first note")
	p.AddComment("second note")

	buf.Reset()
	n = FormatComments(&buf, p)
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.Contains(t, out, "comment_1:")
	assert.Contains(t, out, "comment_2:")
	assert.Contains(t, out, "first note")
	// Ascending id order
	assert.Less(t, strings.Index(out, "comment_1:"), strings.Index(out, "comment_2:"))
}

func TestFormatChangeLog(t *testing.T) {
	p := newFormatProject(t)

	var buf bytes.Buffer
	n := FormatChangeLog(&buf, p)
	assert.Equal(t, 0, n)
	assert.Contains(t, buf.String(), "No changes recorded")

	p.UpdateStatus("Printed")
	p.UpdateStatus("Shipped")
	p.UpdateName("Hamster Wheel")

	buf.Reset()
	n = FormatChangeLog(&buf, p)
	assert.Equal(t, 3, n)

	out := buf.String()
	assert.Contains(t, out, "Status Change #1:")
	assert.Contains(t, out, "Status Change #2:")
	assert.Contains(t, out, "Name Change #1:")
	assert.Less(t, strings.Index(out, "Status Change #1:"), strings.Index(out, "Status Change #2:"))
}
