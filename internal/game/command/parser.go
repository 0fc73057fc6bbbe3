package command

import (
	"strconv"
	"strings"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the text after the command with inner spacing preserved,
	// so that names and paths containing spaces survive.
	RawArgs string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	cmd, rest, found := strings.Cut(line, " ")
	if !found {
		return ParseResult{Command: strings.ToLower(line)}
	}
	rest = strings.TrimSpace(rest)

	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}
	return ParseResult{
		Command: strings.ToLower(cmd),
		Args:    args,
		RawArgs: rest,
	}
}

// NameAmount splits inline "<name> <amount>" arguments where the name may
// contain spaces and the amount is the last word.
//
// Postcondition: Returns ok == false unless there are at least two words and
// the last one is a number in 0-65535.
func (p ParseResult) NameAmount() (name string, amount uint16, ok bool) {
	if len(p.Args) < 2 {
		return "", 0, false
	}
	last := p.Args[len(p.Args)-1]
	n, err := strconv.ParseUint(last, 10, 16)
	if err != nil {
		return "", 0, false
	}
	name = strings.TrimSpace(strings.TrimSuffix(p.RawArgs, last))
	return name, uint16(n), true
}
