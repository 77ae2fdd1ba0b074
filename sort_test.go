// Canonical order tests.
//
// The game's own editor writes records in a fixed kind order and some
// kinds depend on their neighbours (a LAND follows its CELL, INFOs follow
// their DIAL). A sort that reorders those groups produces a plugin that
// loads but attaches landscape and dialogue to the wrong parents.
package tes3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allTags lists one tag per category, in canonical order, with the
// grouped kinds represented by their first member.
var allTags = []Tag{
	TagHeader, TagGameSetting, TagGlobalVariable, TagClass, TagFaction,
	TagRace, TagSound, TagSkill, TagMagicEffect, TagScript, TagRegion,
	TagBirthsign, TagStartScript, TagLandscapeTexture, TagSpell, TagStatic,
	TagDoor, TagMiscItem, TagWeapon, TagContainer, TagCreature, TagBodypart,
	TagLight, TagEnchanting, TagNpc, TagArmor, TagClothing, TagRepairItem,
	TagActivator, TagApparatus, TagLockpick, TagProbe, TagIngredient,
	TagBook, TagAlchemy, TagLeveledItem, TagLeveledCreature, TagCell,
	TagSoundGen, TagDialogue,
}

func TestCategoryTable(t *testing.T) {
	for want, tag := range allTags {
		got, ok := Category(tag)
		require.True(t, ok, tag.String())
		assert.Equal(t, want, got, tag.String())
	}

	for _, tag := range []Tag{TagLandscape, TagPathGrid} {
		c, _ := Category(tag)
		assert.Equal(t, 37, c, tag.String())
	}
	c, _ := Category(TagDialogueInfo)
	assert.Equal(t, 39, c)

	_, ok := Category(Tag{'X', 'X', 'X', 'X'})
	assert.False(t, ok)
	assert.Len(t, kinds, 43)
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want Key
	}{
		{"named kind uses id", &record{tag: TagWeapon, id: "iron sword", hint: 9}, Key{18, 0, "iron sword"}},
		{"hinted kind uses hint", &record{tag: TagMagicEffect, id: "x", hint: 85}, Key{8, 85, ""}},
		{"skill", &record{tag: TagSkill, hint: 26}, Key{7, 26, ""}},
		{"landscape texture", &record{tag: TagLandscapeTexture, id: "tx", hint: 3}, Key{13, 3, ""}},
		{"grouped kind drops id", &record{tag: TagCell, id: "Balmora", hint: 4}, Key{37, 0, ""}},
		{"header", &record{tag: TagHeader, id: "h"}, Key{0, 0, ""}},
		{"no capabilities", &anonymous{tag: TagStatic}, Key{15, 0, ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SortKey(tt.obj)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortKeyUnknownTag(t *testing.T) {
	_, err := SortKey(&record{tag: Tag{'Z', 'Z', 'Z', 'Z'}})
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestCompareKeys(t *testing.T) {
	assert.Negative(t, CompareKeys(Key{1, 9, "z"}, Key{2, 0, ""}))
	assert.Negative(t, CompareKeys(Key{1, 0, "z"}, Key{1, 1, "a"}))
	assert.Negative(t, CompareKeys(Key{1, 0, "B"}, Key{1, 0, "a"}))
	assert.Zero(t, CompareKeys(Key{3, 3, "x"}, Key{3, 3, "x"}))
}

// TestSortObjectsAllCategories inserts one record per category in reverse
// canonical order, plus two cells in reverse of their intended order.
// Categories come out ascending and the cells keep their insertion order,
// because category and hint tie and the sort is stable.
func TestSortObjectsAllCategories(t *testing.T) {
	var objects []Object
	for i := len(allTags) - 1; i >= 0; i-- {
		objects = append(objects, &record{tag: allTags[i], id: allTags[i].String()})
	}
	second := &anonymous{tag: TagCell, seq: 2}
	first := &anonymous{tag: TagCell, seq: 1}
	objects = append(objects, second, first)

	require.NoError(t, SortObjects(objects))

	var last int
	for i, o := range objects {
		c, _ := Category(o.Tag())
		assert.GreaterOrEqual(t, c, last, "position %d", i)
		last = c
	}

	var cells []int
	for _, o := range objects {
		if a, ok := o.(*anonymous); ok {
			cells = append(cells, a.seq)
		}
	}
	assert.Equal(t, []int{2, 1}, cells)
}

// TestSortObjectsLinkedGroups verifies that CELL/LAND/PGRD and DIAL/INFO
// are treated as one category each and keep their interleaving.
func TestSortObjectsLinkedGroups(t *testing.T) {
	objects := []Object{
		&record{tag: TagDialogue, id: "greeting"},
		&record{tag: TagDialogueInfo, id: "2"},
		&record{tag: TagDialogueInfo, id: "1"},
		&record{tag: TagCell, id: "Seyda Neen"},
		&record{tag: TagLandscape},
		&record{tag: TagPathGrid},
		&record{tag: TagCell, id: "Balmora"},
		&record{tag: TagPathGrid},
		&record{tag: TagStatic, id: "rock"},
	}
	require.NoError(t, SortObjects(objects))

	assert.Equal(t, []string{"STAT", "CELL", "LAND", "PGRD", "CELL", "PGRD", "DIAL", "INFO", "INFO"}, tags(objects))
	assert.Equal(t, "Seyda Neen", objects[1].(*record).id)
	assert.Equal(t, "Balmora", objects[4].(*record).id)
	assert.Equal(t, "2", objects[7].(*record).id)
}

// TestSortObjectsHints verifies that landscape textures are ordered by
// index, not by id or insertion.
func TestSortObjectsHints(t *testing.T) {
	objects := []Object{
		&record{tag: TagLandscapeTexture, id: "a", hint: 1},
		&record{tag: TagLandscapeTexture, id: "b", hint: 2},
		&record{tag: TagLandscapeTexture, id: "c", hint: 0},
		&record{tag: TagMagicEffect, hint: 14},
		&record{tag: TagMagicEffect, hint: 1},
		&record{tag: TagSkill, hint: 5},
		&record{tag: TagSkill, hint: 0},
	}
	require.NoError(t, SortObjects(objects))

	var hints []int32
	for _, o := range objects {
		hints = append(hints, o.(*record).hint)
	}
	assert.Equal(t, []int32{0, 5, 1, 14, 0, 1, 2}, hints)
}

func TestSortObjectsByID(t *testing.T) {
	objects := []Object{
		&record{tag: TagStatic, id: "b"},
		&record{tag: TagGameSetting, id: "sZ"},
		&record{tag: TagStatic, id: "A"},
		&record{tag: TagGameSetting, id: "fA"},
		&record{tag: TagStatic, id: "a"},
	}
	require.NoError(t, SortObjects(objects))

	var ids []string
	for _, o := range objects {
		ids = append(ids, o.(*record).id)
	}
	assert.Equal(t, []string{"fA", "sZ", "A", "a", "b"}, ids)
}

// TestSortObjectsUnknownTag verifies that the slice is untouched when any
// object has an unknown kind.
func TestSortObjectsUnknownTag(t *testing.T) {
	objects := []Object{
		&record{tag: TagStatic, id: "b"},
		&record{tag: TagHeader},
		&record{tag: Tag{'Q', 'Q', 'Q', 'Q'}},
	}
	err := SortObjects(objects)
	require.ErrorIs(t, err, ErrUnknownTag)
	assert.Equal(t, []string{"STAT", "TES3", "QQQQ"}, tags(objects))
}

func TestSortObjectsEmpty(t *testing.T) {
	assert.NoError(t, SortObjects(nil))
}
