package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/strelow/gitref/internal/catalog"
)

func TestCenterBlockUniformPadsByWidestLine(t *testing.T) {
	in := "hi\nworld"
	out := centerBlockUniform(in, 11)

	lines := strings.Split(out, "\n")
	assert.Equal(t, 2, len(lines))
	// Both lines shift by the same amount, keyed off the widest line.
	assert.Equal(t, "   hi", lines[0])
	assert.Equal(t, "   world", lines[1])
}

func TestCenterBlockUniformSkipsBlankLines(t *testing.T) {
	out := centerBlockUniform("a\n\nb", 9)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "    a", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "    b", lines[2])
}

func TestCenterBlockUniformLeavesWideBlocksUnchanged(t *testing.T) {
	in := "0123456789"
	assert.Equal(t, in, centerBlockUniform(in, 5))
	assert.Equal(t, in, centerBlockUniform(in, 0))
}

func TestCountText(t *testing.T) {
	assert.Equal(t, "0 commands", countText(0))
	assert.Equal(t, "1 command", countText(1))
	assert.Equal(t, "5 commands", countText(5))
}

func TestChipIndexOf(t *testing.T) {
	chips := []string{"All", "Branching", "Remote"}

	assert.Equal(t, 2, chipIndexOf(chips, "Remote"))
	assert.Equal(t, 0, chipIndexOf(chips, "All"))
	// Unknown labels fall back to the first chip.
	assert.Equal(t, 0, chipIndexOf(chips, "Stashing"))
}

func TestRecordIndex(t *testing.T) {
	records := []catalog.Record{{ID: "git-init"}, {ID: "git-push"}}

	assert.Equal(t, 1, recordIndex(records, "git-push"))
	assert.Equal(t, -1, recordIndex(records, "git-rebase"))
}
