package console

// ANSI escape codes used by the panel renderer.
const (
	Reset        = "\033[0m"
	Red          = "\033[31m"
	BrightYellow = "\033[93m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}
