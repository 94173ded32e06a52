package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickmate/leadbook/internal/usecase"
)

func TestNormalizeNotesEmptyBecomesLoneBullet(t *testing.T) {
	assert.Equal(t, "• ", usecase.NormalizeNotes(""))
}

func TestNormalizeNotesFirstLineGetsMarker(t *testing.T) {
	assert.Equal(t, "• call the realtor", usecase.NormalizeNotes("call the realtor"))
}

func TestNormalizeNotesKeepsExistingMarker(t *testing.T) {
	text := "• call the realtor\n• schedule a visit"
	assert.Equal(t, text, usecase.NormalizeNotes(text))
}

func TestNormalizeNotesOnlyTouchesFirstLine(t *testing.T) {
	got := usecase.NormalizeNotes("first\nsecond")
	assert.Equal(t, "• first\nsecond", got)
}

func TestInsertLineBreakSeedsBulletAfterContent(t *testing.T) {
	text := "• call the realtor"
	notes, cursor := usecase.InsertLineBreak(text, len(text))

	assert.Equal(t, "• call the realtor\n• ", notes)
	assert.Equal(t, len(notes), cursor)
}

func TestInsertLineBreakOnEmptyBulletStaysBare(t *testing.T) {
	// Enter on a bullet with no content must not stack another marker.
	text := "• done\n• "
	notes, cursor := usecase.InsertLineBreak(text, len(text))

	assert.Equal(t, "• done\n• \n", notes)
	assert.Equal(t, len(notes), cursor)
}

func TestInsertLineBreakMidLineSplitsAtCursor(t *testing.T) {
	text := "• call realtor"
	cursor := len("• call")

	notes, newCursor := usecase.InsertLineBreak(text, cursor)

	assert.Equal(t, "• call\n•  realtor", notes)
	// Past the inserted newline and the seeded marker.
	assert.Equal(t, cursor+1+len("• "), newCursor)
}

func TestInsertLineBreakClampsCursor(t *testing.T) {
	notes, cursor := usecase.InsertLineBreak("• hi", 9999)
	assert.Equal(t, "• hi\n• ", notes)
	assert.Equal(t, len(notes), cursor)

	notes, cursor = usecase.InsertLineBreak("• hi", -5)
	assert.Equal(t, "\n• hi", notes)
	assert.Equal(t, 1, cursor)
}
