// Canonical record order.
//
// Objects are ordered by (category, hint, id). The category comes from a
// fixed table of record kinds. Kinds that must keep their insertion order
// (cells with their landscapes and path grids, dialogues with their infos)
// share a category and contribute neither hint nor id, so the stable sort
// leaves them as they were.
package tes3

import (
	"cmp"
	"fmt"
	"strings"
)

// Key is the sort key of one object.
type Key struct {
	Category int
	Hint     int32
	ID       string
}

// CompareKeys orders keys by category, then hint, then id (bytewise).
func CompareKeys(a, b Key) int {
	return cmp.Or(
		cmp.Compare(a.Category, b.Category),
		cmp.Compare(a.Hint, b.Hint),
		strings.Compare(a.ID, b.ID),
	)
}

type kind struct {
	category int
	hinted   bool // SortHint is consulted
	named    bool // ID takes part in the key
}

// kinds is the fixed category table. Never renumber: the order is what
// the game's own tools produce.
var kinds = map[Tag]kind{
	TagHeader:           {0, false, false},
	TagGameSetting:      {1, false, true},
	TagGlobalVariable:   {2, false, true},
	TagClass:            {3, false, true},
	TagFaction:          {4, false, true},
	TagRace:             {5, false, true},
	TagSound:            {6, false, true},
	TagSkill:            {7, true, false},
	TagMagicEffect:      {8, true, false},
	TagScript:           {9, false, true},
	TagRegion:           {10, false, true},
	TagBirthsign:        {11, false, true},
	TagStartScript:      {12, false, true},
	TagLandscapeTexture: {13, true, false},
	TagSpell:            {14, false, true},
	TagStatic:           {15, false, true},
	TagDoor:             {16, false, true},
	TagMiscItem:         {17, false, true},
	TagWeapon:           {18, false, true},
	TagContainer:        {19, false, true},
	TagCreature:         {20, false, true},
	TagBodypart:         {21, false, true},
	TagLight:            {22, false, true},
	TagEnchanting:       {23, false, true},
	TagNpc:              {24, false, true},
	TagArmor:            {25, false, true},
	TagClothing:         {26, false, true},
	TagRepairItem:       {27, false, true},
	TagActivator:        {28, false, true},
	TagApparatus:        {29, false, true},
	TagLockpick:         {30, false, true},
	TagProbe:            {31, false, true},
	TagIngredient:       {32, false, true},
	TagBook:             {33, false, true},
	TagAlchemy:          {34, false, true},
	TagLeveledItem:      {35, false, true},
	TagLeveledCreature:  {36, false, true},
	TagCell:             {37, false, false}, // CELL/LAND/PGRD keep insertion order
	TagLandscape:        {37, false, false},
	TagPathGrid:         {37, false, false},
	TagSoundGen:         {38, false, true},
	TagDialogue:         {39, false, false}, // DIAL/INFO keep insertion order
	TagDialogueInfo:     {39, false, false},
}

// Category returns the category of a record kind.
func Category(tag Tag) (int, bool) {
	k, ok := kinds[tag]
	return k.category, ok
}

// SortKey computes the canonical sort key of o. It fails with ErrUnknownTag
// for kinds outside the category table.
func SortKey(o Object) (Key, error) {
	tag := o.Tag()
	k, ok := kinds[tag]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownTag, tag.String())
	}
	key := Key{Category: k.category}
	if h, ok := o.(SortHinter); ok && k.hinted {
		key.Hint = h.SortHint()
	}
	if id, ok := o.(Identified); ok && k.named {
		key.ID = id.ID()
	}
	return key, nil
}

// SortObjects puts objects into canonical order in place. Keys are computed
// for every object before anything moves, so an unknown kind leaves the
// slice untouched.
func SortObjects(objects []Object) error {
	keys := make([]Key, len(objects))
	for i, o := range objects {
		k, err := SortKey(o)
		if err != nil {
			return err
		}
		keys[i] = k
	}
	return Apply(Order(keys, func(k Key) Key { return k }, CompareKeys), objects)
}
