package usecase

import "strings"

// Notes are kept as a bulleted outline. Every persisted notes value starts
// with the two-character marker below; an empty field collapses to a lone
// marker rather than the empty string.

const bulletMarker = "• "

// NormalizeNotes enforces the outline convention on an edited value: the
// first line always carries the marker, and empty input becomes "• ".
func NormalizeNotes(text string) string {
	if text == "" {
		return bulletMarker
	}

	lines := strings.Split(text, "\n")
	if !strings.HasPrefix(lines[0], bulletMarker) {
		lines[0] = bulletMarker + lines[0]
	}
	return strings.Join(lines, "\n")
}

// InsertLineBreak handles the enter key inside the notes field. If the
// current line up to the cursor has non-blank content, the new line is seeded
// with a marker; an empty trailing bullet stays bare so runs of empty bullets
// cannot pile up. Returns the updated text and the new cursor position.
func InsertLineBreak(text string, cursor int) (string, int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}

	before := text[:cursor]
	after := text[cursor:]

	lastBullet := strings.LastIndex(before, bulletMarker)
	currentLine := before
	if lastBullet >= 0 {
		currentLine = before[lastBullet+len(bulletMarker):]
	}

	seed := ""
	if strings.TrimSpace(currentLine) != "" {
		seed = bulletMarker
	}

	newText := before + "\n" + seed + after
	return newText, cursor + 1 + len(seed)
}
