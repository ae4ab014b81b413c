package session

const (
	// BandWidth is the number of levels in each prompt band.
	BandWidth = 4

	// MasteredLevel is the level at which an item leaves the working set.
	MasteredLevel = 2 * BandWidth
)

// DirectionForLevel returns the prompt direction for a mastery level.
// Levels 0-3 ask for the definition, 4-7 ask for the term.
func DirectionForLevel(level int) Direction {
	if level >= BandWidth {
		return DefinitionToTerm
	}
	return TermToDefinition
}

// Promote returns the level after a correct (or overridden) answer.
// An item sitting at a band floor jumps a full band.
func Promote(level int) int {
	if level%BandWidth == 0 {
		return level + BandWidth
	}
	return level + 1
}

// Demote returns the level after a confirmed incorrect answer.
//
// At a band floor the level still rises by one, so a freshly reached band
// is not completed by a lucky first answer. One step above the floor the
// level holds. Everywhere else it drops by one.
func Demote(level int) int {
	switch level % BandWidth {
	case 0:
		return level + 1
	case 1:
		return level
	default:
		return level - 1
	}
}
