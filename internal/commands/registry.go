// Package commands holds the fixed slash-command set and the palette that
// filters it while the user types.
package commands

import "strings"

// Effect is the action a command performs when executed
type Effect int

const (
	EffectOpenSettings Effect = iota
	EffectCycleProvider
	EffectClear
	EffectResetDefaults
	EffectExit
)

func (e Effect) String() string {
	switch e {
	case EffectOpenSettings:
		return "open-settings"
	case EffectCycleProvider:
		return "cycle-provider"
	case EffectClear:
		return "clear"
	case EffectResetDefaults:
		return "reset-defaults"
	case EffectExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command is an immutable slash command
type Command struct {
	Name        string
	Description string
	Effect      Effect
}

// registry order is the display order of the palette
var registry = []Command{
	{Name: "/settings", Description: "Configure API settings", Effect: EffectOpenSettings},
	{Name: "/provider", Description: "Switch active provider", Effect: EffectCycleProvider},
	{Name: "/clear", Description: "Clear current prompt", Effect: EffectClear},
	{Name: "/default", Description: "Reset to default settings", Effect: EffectResetDefaults},
	{Name: "/exit", Description: "Exit the application", Effect: EffectExit},
}

// All returns every command in registry order
func All() []Command {
	out := make([]Command, len(registry))
	copy(out, registry)
	return out
}

// Filter returns the commands whose name or description contains text,
// case-insensitively. An empty text or a bare "/" matches everything.
func Filter(text string) []Command {
	needle := strings.ToLower(text)
	if needle == "" || needle == "/" {
		return All()
	}

	var out []Command
	for _, cmd := range registry {
		if strings.Contains(strings.ToLower(cmd.Name), needle) ||
			strings.Contains(strings.ToLower(cmd.Description), needle) {
			out = append(out, cmd)
		}
	}
	return out
}

// Lookup finds the command whose name is exactly name
func Lookup(name string) (Command, bool) {
	for _, cmd := range registry {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}
