// Package editor implements the text buffer behind the prompt box and the
// settings field editor.
package editor

import "strings"

// Buffer is an editable rune sequence with a cursor. The cursor is a rune
// offset and always satisfies 0 <= cursor <= Len().
type Buffer struct {
	text   []rune
	cursor int
}

// NewBuffer returns a buffer holding s with the cursor at the end
func NewBuffer(s string) *Buffer {
	b := &Buffer{}
	b.Set(s)
	return b
}

// Insert places r at the cursor and advances past it
func (b *Buffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

// InsertString inserts s at the cursor, as typed or pasted text
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace removes the rune before the cursor. It reports whether anything
// was removed.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	return true
}

// Delete removes the rune under the cursor. It reports whether anything was
// removed.
func (b *Buffer) Delete() bool {
	if b.cursor >= len(b.text) {
		return false
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
	return true
}

func (b *Buffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *Buffer) Right() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

func (b *Buffer) Home() {
	b.cursor = 0
}

func (b *Buffer) End() {
	b.cursor = len(b.text)
}

// KillToLineStart deletes from the start of the cursor's line up to the
// cursor and moves the cursor there. It reports whether anything was removed.
func (b *Buffer) KillToLineStart() bool {
	if b.cursor == 0 {
		return false
	}

	start := 0
	for i := b.cursor - 1; i >= 0; i-- {
		if b.text[i] == '\n' {
			start = i + 1
			break
		}
	}
	if start == b.cursor {
		return false
	}

	b.text = append(b.text[:start], b.text[b.cursor:]...)
	b.cursor = start
	return true
}

// Set replaces the contents and moves the cursor to the end
func (b *Buffer) Set(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

// Clear empties the buffer
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.cursor = 0
}

func (b *Buffer) String() string {
	return string(b.text)
}

// Len returns the length in runes
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cursor returns the cursor as a rune offset
func (b *Buffer) Cursor() int {
	return b.cursor
}

func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

func (b *Buffer) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(b.text), prefix)
}

// Before returns the text left of the cursor
func (b *Buffer) Before() string {
	return string(b.text[:b.cursor])
}

// After returns the text from the cursor on
func (b *Buffer) After() string {
	return string(b.text[b.cursor:])
}
