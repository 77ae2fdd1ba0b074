// Record capabilities.
//
// Concrete record types live with the plugin model, not here. This package
// only needs each record to save itself and to name its kind; an id and a
// sort hint are picked up when present.
package tes3

// Tag is the four-byte record kind that prefixes every record on disk.
type Tag [4]byte

// Record kinds known to the canonical order.
var (
	TagHeader           = Tag{'T', 'E', 'S', '3'}
	TagGameSetting      = Tag{'G', 'M', 'S', 'T'}
	TagGlobalVariable   = Tag{'G', 'L', 'O', 'B'}
	TagClass            = Tag{'C', 'L', 'A', 'S'}
	TagFaction          = Tag{'F', 'A', 'C', 'T'}
	TagRace             = Tag{'R', 'A', 'C', 'E'}
	TagSound            = Tag{'S', 'O', 'U', 'N'}
	TagSkill            = Tag{'S', 'K', 'I', 'L'}
	TagMagicEffect      = Tag{'M', 'G', 'E', 'F'}
	TagScript           = Tag{'S', 'C', 'P', 'T'}
	TagRegion           = Tag{'R', 'E', 'G', 'N'}
	TagBirthsign        = Tag{'B', 'S', 'G', 'N'}
	TagStartScript      = Tag{'S', 'S', 'C', 'R'}
	TagLandscapeTexture = Tag{'L', 'T', 'E', 'X'}
	TagSpell            = Tag{'S', 'P', 'E', 'L'}
	TagStatic           = Tag{'S', 'T', 'A', 'T'}
	TagDoor             = Tag{'D', 'O', 'O', 'R'}
	TagMiscItem         = Tag{'M', 'I', 'S', 'C'}
	TagWeapon           = Tag{'W', 'E', 'A', 'P'}
	TagContainer        = Tag{'C', 'O', 'N', 'T'}
	TagCreature         = Tag{'C', 'R', 'E', 'A'}
	TagBodypart         = Tag{'B', 'O', 'D', 'Y'}
	TagLight            = Tag{'L', 'I', 'G', 'H'}
	TagEnchanting       = Tag{'E', 'N', 'C', 'H'}
	TagNpc              = Tag{'N', 'P', 'C', '_'}
	TagArmor            = Tag{'A', 'R', 'M', 'O'}
	TagClothing         = Tag{'C', 'L', 'O', 'T'}
	TagRepairItem       = Tag{'R', 'E', 'P', 'A'}
	TagActivator        = Tag{'A', 'C', 'T', 'I'}
	TagApparatus        = Tag{'A', 'P', 'P', 'A'}
	TagLockpick         = Tag{'L', 'O', 'C', 'K'}
	TagProbe            = Tag{'P', 'R', 'O', 'B'}
	TagIngredient       = Tag{'I', 'N', 'G', 'R'}
	TagBook             = Tag{'B', 'O', 'O', 'K'}
	TagAlchemy          = Tag{'A', 'L', 'C', 'H'}
	TagLeveledItem      = Tag{'L', 'E', 'V', 'I'}
	TagLeveledCreature  = Tag{'L', 'E', 'V', 'C'}
	TagCell             = Tag{'C', 'E', 'L', 'L'}
	TagLandscape        = Tag{'L', 'A', 'N', 'D'}
	TagPathGrid         = Tag{'P', 'G', 'R', 'D'}
	TagSoundGen         = Tag{'S', 'N', 'D', 'G'}
	TagDialogue         = Tag{'D', 'I', 'A', 'L'}
	TagDialogueInfo     = Tag{'I', 'N', 'F', 'O'}
)

func (t Tag) String() string {
	return string(t[:])
}

// Save writes the tag bytes.
func (t Tag) Save(w *Writer) error {
	w.SaveBytes(t[:])
	return nil
}

// Object is a plugin record.
type Object interface {
	Saver
	Tag() Tag
}

// Identified is implemented by records with a unique string id.
type Identified interface {
	ID() string
}

// SortHinter lets a record refine its position within its category. Only
// landscape textures, magic effects and skills are asked; their hint is
// their index, effect id and skill id respectively.
type SortHinter interface {
	SortHint() int32
}
