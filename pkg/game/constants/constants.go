package constants

const (
	// GlyphWall marks an impassable cell
	GlyphWall rune = '#'
	// GlyphEmpty marks a free cell
	GlyphEmpty rune = '.'
	// GlyphDestination marks a cell a box must be pushed onto
	GlyphDestination rune = '@'
	// GlyphFirstPlayer is the glyph of player 0; player n is GlyphFirstPlayer+n
	GlyphFirstPlayer rune = 'A'
	// GlyphFirstBox is the glyph of a box owned by player 0
	GlyphFirstBox rune = 'a'
	// MaxPlayers is the number of distinct player glyphs
	MaxPlayers int = 26

	// UnlimitedUndo is the undo limit of a map without an undo quota
	UnlimitedUndo int = -1
)

// Reasons reported for actions that could not be applied.
const (
	ReasonHitWall         = "You hit a wall."
	ReasonHitPlayer       = "You hit another player."
	ReasonForeignBox      = "You cannot move other players' boxes."
	ReasonBlockedPush     = "Failed to push the box."
	ReasonUndoQuotaEmpty  = "You have run out of your undo quota."
	ReasonNothingToUndo   = "There is nothing to undo."
	ReasonUnknownPlayer   = "Player not found."
	ReasonUnsupported     = "Unsupported action."
	ReasonPlayerHasExited = "Player has already exited."
)

// PlayerGlyph returns the glyph of the given player id.
func PlayerGlyph(id int) rune {
	return GlyphFirstPlayer + rune(id)
}

// BoxGlyph returns the glyph of a box owned by the given player id.
func BoxGlyph(owner int) rune {
	return GlyphFirstBox + rune(owner)
}

// PlayerID returns the id of the player with the given glyph.
func PlayerID(glyph rune) (int, bool) {
	if glyph >= GlyphFirstPlayer && glyph < GlyphFirstPlayer+rune(MaxPlayers) {
		return int(glyph - GlyphFirstPlayer), true
	}
	return 0, false
}

// BoxOwner returns the id of the player owning a box with the given glyph.
func BoxOwner(glyph rune) (int, bool) {
	if glyph >= GlyphFirstBox && glyph < GlyphFirstBox+rune(MaxPlayers) {
		return int(glyph - GlyphFirstBox), true
	}
	return 0, false
}
