// Package console runs the interactive initiative tracker: it reads command
// lines, prompts for arguments, drives the roster and renders the results.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/initracker/internal/game/character"
	"github.com/cory-johannsen/initracker/internal/game/command"
	"github.com/cory-johannsen/initracker/internal/game/initiative"
	"github.com/cory-johannsen/initracker/internal/records"
)

const banner = `┌──────────────────────────────────┐
│                                  │
│        Initiative Tracker!       │
│                                  │
└──────────────────────────────────┘
`

const unknownCommandText = "Sorry, I didn't understand that."

// Options configures a Session.
type Options struct {
	// Prompt is printed before each command line.
	Prompt string
	// Banner prints the title box when Run starts.
	Banner bool
}

type handlerFunc func(s *Session, args command.ParseResult) (stop bool, err error)

var handlers = map[string]handlerFunc{
	command.HandlerHelp:    (*Session).handleHelp,
	command.HandlerImport:  (*Session).handleImport,
	command.HandlerExport:  (*Session).handleExport,
	command.HandlerAdd:     (*Session).handleAdd,
	command.HandlerNext:    (*Session).handleNext,
	command.HandlerExit:    (*Session).handleExit,
	command.HandlerDisplay: (*Session).handleDisplay,
	command.HandlerCurrent: (*Session).handleCurrent,
	command.HandlerShow:    (*Session).handleShow,
	command.HandlerDamage:  (*Session).handleDamage,
	command.HandlerHeal:    (*Session).handleHeal,
	command.HandlerTemp:    (*Session).handleTemp,
	command.HandlerRemove:  (*Session).handleRemove,
	command.HandlerTop:     (*Session).handleTop,
}

// Session is one interactive tracker session. It is the only writer to its
// roster; commands run one at a time.
type Session struct {
	opts     Options
	roster   *initiative.Roster
	registry *command.Registry
	prompter *Prompter
	render   Renderer
	out      io.Writer
	logger   *zap.Logger
}

// NewSession wires a session together.
//
// Precondition: every argument except logger must be non-nil.
func NewSession(opts Options, roster *initiative.Roster, registry *command.Registry, prompter *Prompter, render Renderer, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		opts:     opts,
		roster:   roster,
		registry: registry,
		prompter: prompter,
		render:   render,
		out:      out,
		logger:   logger,
	}
}

// Run reads and executes commands until exit, end of input, or ctx is done.
//
// Postcondition: Returns nil on exit or end of input; ctx.Err() when cancelled;
// otherwise the input read error.
func (s *Session) Run(ctx context.Context) error {
	if s.opts.Banner {
		fmt.Fprint(s.out, banner)
	}
	s.logger.Info("session started")
	defer s.logger.Info("session ended", zap.Int("characters", s.roster.Len()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.prompter.Line(s.opts.Prompt)
		if err != nil {
			return ignoreEOF(err)
		}
		stop, err := s.Execute(line)
		if err != nil {
			return ignoreEOF(err)
		}
		if stop {
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Execute runs a single command line.
//
// Postcondition: stop is true when the command ends the session; err is
// non-nil only when input ended or failed while the command was prompting.
func (s *Session) Execute(line string) (stop bool, err error) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false, nil
	}

	cmd, ok := s.registry.Resolve(parsed.Command)
	if !ok {
		s.logger.Debug("unknown command", zap.String("input", parsed.Command))
		s.println(unknownCommandText)
		return false, nil
	}
	h, ok := handlers[cmd.Handler]
	if !ok {
		s.logger.Error("command has no handler", zap.String("command", cmd.Name), zap.String("handler", cmd.Handler))
		s.println(unknownCommandText)
		return false, nil
	}

	s.logger.Debug("command", zap.String("name", cmd.Name), zap.Strings("args", parsed.Args))
	stop, err = h(s, parsed)
	if err == nil && !stop {
		s.println("")
	}
	return stop, err
}

// Import loads the record file at path into the roster, prompting for each
// record's score. Read and parse failures are reported to the user and leave
// the roster unchanged.
//
// Postcondition: Returns a non-nil error only when input ended or failed
// during score prompts.
func (s *Session) Import(path string) error {
	recs, err := records.ReadFile(path)
	if err != nil {
		s.logger.Warn("import failed", zap.String("path", path), zap.Error(err))
		s.println(Message(err))
		return nil
	}
	s.logger.Debug("records read", zap.String("path", path), zap.Int("count", len(recs)))
	return s.roster.Import(recs, initiative.ScoreFunc(s.prompter.ScoreFor))
}

// Export writes the roster to a new file at path. Failures are reported to the
// user; an existing file is never replaced.
func (s *Session) Export(path string) {
	recs, err := s.roster.Export()
	if err == nil {
		err = records.WriteFile(path, recs)
	}
	if err != nil {
		s.logger.Warn("export failed", zap.String("path", path), zap.Error(err))
		s.println(Message(err))
		return
	}
	s.logger.Info("roster exported", zap.String("path", path), zap.Int("count", len(recs)))
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printCurrent() {
	c, ok := s.roster.Current()
	if !ok {
		s.println(EmptyRosterText)
		return
	}
	fmt.Fprint(s.out, s.render.Panel(c))
}

// argOrPrompt returns the inline argument text, or prompts for it.
func (s *Session) argOrPrompt(args command.ParseResult, label string) (string, error) {
	if args.RawArgs != "" {
		return args.RawArgs, nil
	}
	return s.prompter.Line(label)
}

// nameAmount returns inline "<name> <amount>" arguments, or prompts for both.
func (s *Session) nameAmount(args command.ParseResult) (string, uint16, error) {
	if name, amount, ok := args.NameAmount(); ok {
		return name, amount, nil
	}
	name, err := s.argOrPrompt(args, "Name: ")
	if err != nil {
		return "", 0, err
	}
	amount, err := s.prompter.Uint16("Amount: ")
	return name, amount, err
}

func (s *Session) handleHelp(command.ParseResult) (bool, error) {
	byCategory := s.registry.CommandsByCategory()
	for _, category := range command.Categories() {
		cmds := byCategory[category]
		if len(cmds) == 0 {
			continue
		}
		s.println(strings.ToUpper(category[:1]) + category[1:] + ":")
		for _, cmd := range cmds {
			line := fmt.Sprintf("  %-8s %-21s %s", cmd.Name+":", cmd.Usage, cmd.Help)
			if len(cmd.Aliases) > 0 {
				line += " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			s.println(line)
		}
	}
	return false, nil
}

func (s *Session) handleImport(args command.ParseResult) (bool, error) {
	path, err := s.argOrPrompt(args, "Enter path to JSON: ")
	if err != nil {
		return false, err
	}
	return false, s.Import(path)
}

func (s *Session) handleExport(args command.ParseResult) (bool, error) {
	path, err := s.argOrPrompt(args, "Enter target path for JSON file: ")
	if err != nil {
		return false, err
	}
	s.Export(path)
	return false, nil
}

func (s *Session) handleAdd(command.ParseResult) (bool, error) {
	name, err := s.prompter.Text("Name: ")
	if err != nil {
		return false, err
	}
	ac, err := s.prompter.Uint8("AC: ")
	if err != nil {
		return false, err
	}
	maxHP, err := s.prompter.Uint16("HP: ")
	if err != nil {
		return false, err
	}
	score, err := s.prompter.Score("Score: ")
	if err != nil {
		return false, err
	}
	s.roster.Insert(character.New(name, ac, maxHP, score))
	return false, nil
}

func (s *Session) handleNext(command.ParseResult) (bool, error) {
	s.roster.Advance()
	s.printCurrent()
	return false, nil
}

func (s *Session) handleExit(command.ParseResult) (bool, error) {
	return true, nil
}

func (s *Session) handleDisplay(command.ParseResult) (bool, error) {
	fmt.Fprint(s.out, s.render.Roster(s.roster.Characters()))
	return false, nil
}

func (s *Session) handleCurrent(command.ParseResult) (bool, error) {
	s.printCurrent()
	return false, nil
}

func (s *Session) handleShow(args command.ParseResult) (bool, error) {
	name, err := s.argOrPrompt(args, "Name: ")
	if err != nil {
		return false, err
	}
	if c, ok := s.roster.Find(name); ok {
		fmt.Fprint(s.out, s.render.Panel(c))
	}
	return false, nil
}

func (s *Session) handleDamage(args command.ParseResult) (bool, error) {
	name, amount, err := s.nameAmount(args)
	if err != nil {
		return false, err
	}
	s.roster.Damage(name, amount)
	return false, nil
}

func (s *Session) handleHeal(args command.ParseResult) (bool, error) {
	name, amount, err := s.nameAmount(args)
	if err != nil {
		return false, err
	}
	s.roster.Heal(name, amount)
	return false, nil
}

func (s *Session) handleTemp(args command.ParseResult) (bool, error) {
	name, amount, err := s.nameAmount(args)
	if err != nil {
		return false, err
	}
	s.roster.GrantTemp(name, amount)
	return false, nil
}

func (s *Session) handleRemove(args command.ParseResult) (bool, error) {
	name, err := s.argOrPrompt(args, "Name: ")
	if err != nil {
		return false, err
	}
	if err := s.roster.Remove(name); err != nil {
		s.println(Message(err))
	}
	return false, nil
}

func (s *Session) handleTop(command.ParseResult) (bool, error) {
	s.roster.ResetToHead()
	s.printCurrent()
	return false, nil
}
