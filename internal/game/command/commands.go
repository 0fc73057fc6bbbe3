// Package command provides the line parser, the command table, and the
// name/alias registry for the interactive tracker.
package command

// Categories for organizing commands in help output.
const (
	CategoryRoster = "roster"
	CategoryTurn   = "turn"
	CategoryHealth = "health"
	CategoryFiles  = "files"
	CategorySystem = "system"
)

// Categories returns the command categories in help order.
func Categories() []string {
	return []string{CategoryRoster, CategoryTurn, CategoryHealth, CategoryFiles, CategorySystem}
}

// Handler identifiers mapping commands to console handlers.
const (
	HandlerHelp    = "help"
	HandlerImport  = "import"
	HandlerExport  = "export"
	HandlerAdd     = "add"
	HandlerNext    = "next"
	HandlerExit    = "exit"
	HandlerDisplay = "display"
	HandlerCurrent = "current"
	HandlerShow    = "show"
	HandlerDamage  = "damage"
	HandlerHeal    = "heal"
	HandlerTemp    = "temp"
	HandlerRemove  = "remove"
	HandlerTop     = "top"
)

// Command defines a user-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the optional inline arguments, e.g. "damage [name amount]".
	Usage string
	// Help is the one-line help text.
	Help     string
	Category string
	Handler  string
}

// BuiltinCommands returns every tracker command in help order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "import", Usage: "import [path]", Help: "Add characters to initiative order from a compatible JSON or YAML file", Category: CategoryFiles, Handler: HandlerImport},
		{Name: "export", Usage: "export [path]", Help: "Save initiative order to a JSON or YAML file that can be imported", Category: CategoryFiles, Handler: HandlerExport},
		{Name: "add", Aliases: []string{"a"}, Usage: "add", Help: "Add character to initiative order manually", Category: CategoryRoster, Handler: HandlerAdd},
		{Name: "next", Aliases: []string{"n"}, Usage: "next", Help: "Advance initiative order to the next turn", Category: CategoryTurn, Handler: HandlerNext},
		{Name: "exit", Aliases: []string{"quit", "q"}, Usage: "exit", Help: "Close this program", Category: CategorySystem, Handler: HandlerExit},
		{Name: "display", Aliases: []string{"ls"}, Usage: "display", Help: "Print the full initiative order to the console", Category: CategoryRoster, Handler: HandlerDisplay},
		{Name: "current", Aliases: []string{"c"}, Usage: "current", Help: "Print the current turn to the console", Category: CategoryTurn, Handler: HandlerCurrent},
		{Name: "show", Usage: "show [name]", Help: "Print a specific character to the console", Category: CategoryRoster, Handler: HandlerShow},
		{Name: "damage", Aliases: []string{"dmg"}, Usage: "damage [name amount]", Help: "Deal damage to a specified character", Category: CategoryHealth, Handler: HandlerDamage},
		{Name: "heal", Usage: "heal [name amount]", Help: "Heal a specified character", Category: CategoryHealth, Handler: HandlerHeal},
		{Name: "temp", Usage: "temp [name amount]", Help: "Grant temporary HP to a specified character", Category: CategoryHealth, Handler: HandlerTemp},
		{Name: "remove", Aliases: []string{"rm"}, Usage: "remove [name]", Help: "Remove a specified character from the initiative order", Category: CategoryRoster, Handler: HandlerRemove},
		{Name: "top", Usage: "top", Help: "Set the current turn to the first in initiative order (useful after adding initial characters)", Category: CategoryTurn, Handler: HandlerTop},
		{Name: "help", Aliases: []string{"?"}, Usage: "help", Help: "List available commands", Category: CategorySystem, Handler: HandlerHelp},
	}
}
