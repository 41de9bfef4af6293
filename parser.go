// Package clip is a small, declarative command-line option parser.
//
// Callers build a Parser, register Options on it (each with aliases, a
// description, a mandatory flag, ordered sub-arguments and an optional
// validator), then hand Parse the process argument vector. The parser
// walks the vector in a single pass, binds sub-argument values, enforces
// mandatory-option presence, and can render a formatted help screen.
//
// There are no subcommands, no environment or file binding, and no type
// coercion: bound values are the raw tokens from the command line.
//
//	parser := clip.New(clip.WithProgram("app", "1.0.0"))
//	parser.Add(clip.NewOption([]string{"--host"},
//		clip.Mandatory(),
//		clip.SubArg("addr", "The address to connect to."),
//	))
//
//	switch parser.Parse(os.Args[1:]) {
//	case clip.Ok:
//		host, _ := parser.MustLookup("--host").Value("addr")
//		...
//	}
package clip

import (
	"io"
	"os"
)

// defaultWidth drives all word-wrapping and column layout in the help
// document unless overridden with WithWidth.
const defaultWidth = 80

// Parser owns the set of registered options and parses argument vectors
// against them. Options are registered during setup, before the first
// Parse call; the alias index holds pointers into the registration list,
// so registering further options never invalidates earlier lookups.
type Parser struct {
	program     string
	version     string
	description string
	width       int
	stdout      io.Writer
	stderr      io.Writer

	options []*Option
	index   map[string]*Option
}

// ParserSetting configures a Parser under construction.
type ParserSetting func(p *Parser)

// WithProgram sets the program name and version shown in the help header.
// Without it the header block is omitted entirely.
func WithProgram(name, version string) ParserSetting {
	return func(p *Parser) {
		p.program = name
		p.version = version
	}
}

// WithDescription sets the description paragraph shown below the help
// header, word-wrapped to the configured width.
func WithDescription(desc string) ParserSetting {
	return func(p *Parser) { p.description = desc }
}

// WithWidth overrides the maximum line width (default 80 columns) used
// for word-wrapping and column layout in the help document.
func WithWidth(columns int) ParserSetting {
	return func(p *Parser) {
		if columns > 0 {
			p.width = columns
		}
	}
}

// WithOutput redirects the help document away from os.Stdout.
func WithOutput(w io.Writer) ParserSetting {
	return func(p *Parser) { p.stdout = w }
}

// WithErrorOutput redirects diagnostic lines away from os.Stderr.
func WithErrorOutput(w io.Writer) ParserSetting {
	return func(p *Parser) { p.stderr = w }
}

// New returns an empty parser ready for option registration.
func New(settings ...ParserSetting) *Parser {
	parser := &Parser{
		width:  defaultWidth,
		stdout: os.Stdout,
		stderr: os.Stderr,
		index:  make(map[string]*Option),
	}

	for _, setting := range settings {
		setting(parser)
	}

	return parser
}

// Add registers one or more options, in order. Each option is checked
// before being indexed: it must have at least one alias, none of its
// aliases may be a reserved help alias or collide with an already
// registered alias, and its sub-argument ids must be unique within the
// option. The first failing option aborts registration with a typed
// error; options registered before it remain registered.
func (p *Parser) Add(options ...*Option) error {
	for _, opt := range options {
		if err := p.check(opt); err != nil {
			return err
		}

		p.options = append(p.options, opt)
		for _, alias := range opt.aliases {
			p.index[alias] = opt
		}
	}

	return nil
}

func (p *Parser) check(opt *Option) error {
	if len(opt.aliases) == 0 {
		return newError(ErrEmptyAliases, "option registered without aliases")
	}

	aliases := make(map[string]struct{}, len(opt.aliases))
	for _, alias := range opt.aliases {
		if isHelpAlias(alias) {
			return newErrorf(ErrReservedAlias, "alias '%s' is reserved for the help screen", alias)
		}

		if _, taken := p.index[alias]; taken {
			return newErrorf(ErrDuplicatedAlias, "alias '%s' registered twice", alias)
		}

		if _, dup := aliases[alias]; dup {
			return newErrorf(ErrDuplicatedAlias, "alias '%s' registered twice", alias)
		}
		aliases[alias] = struct{}{}
	}

	seen := make(map[string]struct{}, len(opt.subs))
	for _, sub := range opt.subs {
		if _, dup := seen[sub.ID]; dup {
			return newErrorf(ErrDuplicatedArgument, "argument '%s' declared twice for option '%s'", sub.ID, opt.Name())
		}
		seen[sub.ID] = struct{}{}
	}

	return nil
}

// Lookup returns the option registered under the given alias, or an
// ErrOptionNotFound error. Any of the option's aliases resolves to the
// same option.
func (p *Parser) Lookup(alias string) (*Option, error) {
	opt, found := p.index[alias]
	if !found {
		return nil, newErrorf(ErrOptionNotFound, "option '%s' not found", alias)
	}

	return opt, nil
}

// MustLookup is a Lookup that panics on unregistered aliases. It is meant
// for reading values back after a successful Parse, where the alias is a
// compile-time constant the caller just registered.
func (p *Parser) MustLookup(alias string) *Option {
	opt, err := p.Lookup(alias)
	if err != nil {
		panic(err)
	}

	return opt
}

// Options returns the registered options in registration order.
func (p *Parser) Options() []*Option {
	options := make([]*Option, len(p.options))
	copy(options, p.options)

	return options
}

// Reset clears the provided flags and bound sub-argument values of every
// registered option. Parse calls it on entry, so successive parses on the
// same Parser are isolated; callers only need it to discard state between
// a Parse call and a later read.
func (p *Parser) Reset() {
	for _, opt := range p.options {
		opt.reset()
	}
}

func (p *Parser) aliases() []string {
	var aliases []string
	for _, opt := range p.options {
		aliases = append(aliases, opt.aliases...)
	}

	return aliases
}
