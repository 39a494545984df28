package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor(t *testing.T, slug, field string) *ListEditor {
	t.Helper()
	step := mustStep(t, slug)
	editor, err := NewListEditor(step, field)
	require.NoError(t, err)
	return editor
}

func TestNewListEditorRejectsNonListField(t *testing.T) {
	step := mustStep(t, "passport")

	_, err := NewListEditor(step, "passportNumber")
	assert.Error(t, err)

	_, err = NewListEditor(step, "noSuchField")
	assert.Error(t, err)
}

func TestListEditorAddCommitsValidDraft(t *testing.T) {
	editor := newEditor(t, "travel-company", "otherPeopleTraveling")
	editor.Draft = map[string]any{"name": "João Silva", "relation": "spouse"}

	errs := editor.Add()
	require.Empty(t, errs)
	require.Len(t, editor.Committed, 1)
	assert.Equal(t, "João Silva", editor.Committed[0]["name"])
	assert.Empty(t, editor.Draft, "draft slot resets after commit")
}

func TestListEditorAddRejectsInvalidDraft(t *testing.T) {
	editor := newEditor(t, "travel-company", "otherPeopleTraveling")
	editor.Committed = []map[string]any{{"name": "Maria", "relation": "mother"}}
	editor.Draft = map[string]any{"name": "", "relation": "friend"}

	errs := editor.Add()
	require.NotEmpty(t, errs)
	assert.Equal(t, "required", errs["name"])

	// No partial append: the committed list is untouched.
	assert.Len(t, editor.Committed, 1)
}

func TestListEditorAddSnapshotIsolatesDraft(t *testing.T) {
	editor := newEditor(t, "travel-company", "otherPeopleTraveling")
	draft := map[string]any{"name": "Pedro", "relation": "brother"}
	editor.Draft = draft

	require.Empty(t, editor.Add())

	// Mutating the original draft map must not reach the committed entry.
	draft["name"] = "changed"
	assert.Equal(t, "Pedro", editor.Committed[0]["name"])
}

func TestListEditorRemove(t *testing.T) {
	editor := newEditor(t, "travel-company", "otherPeopleTraveling")
	editor.Committed = []map[string]any{
		{"name": "A", "relation": "r"},
		{"name": "B", "relation": "r"},
		{"name": "C", "relation": "r"},
	}

	require.NoError(t, editor.Remove(1))
	require.Len(t, editor.Committed, 2)
	assert.Equal(t, "A", editor.Committed[0]["name"])
	assert.Equal(t, "C", editor.Committed[1]["name"])

	assert.Error(t, editor.Remove(-1))
	assert.Error(t, editor.Remove(2))
}

func TestListEditorAddValidatesEntryDates(t *testing.T) {
	editor := newEditor(t, "previous-travel", "usaLastTravels")
	editor.Draft = map[string]any{"arriveDate": "not-a-date", "estimatedTime": "10 days"}

	errs := editor.Add()
	require.NotEmpty(t, errs)
	assert.Equal(t, "invalid date", errs["arriveDate"])

	editor.Draft = map[string]any{"arriveDate": "2018-01-15", "estimatedTime": "10 days"}
	require.Empty(t, editor.Add())
	assert.Len(t, editor.Committed, 1)
}
