package commands

import "strings"

// Palette tracks the filtered command list and its selection cursor.
// Whenever Visible reports true, Selected indexes into Matches.
type Palette struct {
	filter   string
	matches  []Command
	selected int
	visible  bool
}

// Sync re-derives the palette from the prompt text and reports whether the
// menu should be shown. The menu is visible only when text starts with "/"
// and at least one command matches; otherwise the palette is reset. The
// selection goes back to the top whenever the filter changes.
func (p *Palette) Sync(text string) bool {
	if !strings.HasPrefix(text, "/") {
		p.Reset()
		return false
	}

	matches := Filter(text)
	if len(matches) == 0 {
		p.Reset()
		return false
	}

	if text != p.filter || !p.visible {
		p.selected = 0
	}
	p.filter = text
	p.matches = matches
	p.visible = true
	return true
}

// Reset hides the menu and clears the filter
func (p *Palette) Reset() {
	p.filter = ""
	p.matches = nil
	p.selected = 0
	p.visible = false
}

// Up moves the selection up, stopping at the first entry
func (p *Palette) Up() {
	if p.selected > 0 {
		p.selected--
	}
}

// Down moves the selection down, stopping at the last entry
func (p *Palette) Down() {
	if p.selected < len(p.matches)-1 {
		p.selected++
	}
}

// Current returns the highlighted command, if any
func (p *Palette) Current() (Command, bool) {
	if !p.visible || p.selected >= len(p.matches) {
		return Command{}, false
	}
	return p.matches[p.selected], true
}

// Visible reports whether the menu is shown
func (p *Palette) Visible() bool {
	return p.visible
}

func (p *Palette) Selected() int {
	return p.selected
}

func (p *Palette) Filter() string {
	return p.filter
}

func (p *Palette) Matches() []Command {
	return p.matches
}
