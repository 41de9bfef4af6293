package clip

import "fmt"

// helpAliases are recognized before alias resolution, anywhere in the
// vector. They cannot be registered as option aliases.
var helpAliases = []string{"--help", "-h", "/?"}

func isHelpAlias(token string) bool {
	for _, alias := range helpAliases {
		if token == alias {
			return true
		}
	}

	return false
}

// Parse consumes the argument vector (excluding the program name) in a
// single forward pass. Options are recognized by exact token match
// against their aliases; a matched option then consumes one token per
// declared sub-argument, in declaration order, without inspecting those
// tokens further. After the vector is consumed, every mandatory option
// must have been provided.
//
// The first error short-circuits: a help alias writes the help document
// to the output stream and returns HelpRequested, an unrecognized token
// or a missing sub-argument writes a diagnostic to the error stream and
// returns Failed, a rejecting validator returns FailedValidation.
// Sub-argument values bound before a failure are left in place.
//
// Parse resets all option state on entry, so repeated calls on the same
// Parser are isolated. It is not safe for concurrent use.
func (p *Parser) Parse(args []string) Result {
	p.Reset()

	for i := 0; i < len(args); i++ {
		token := args[i]

		if isHelpAlias(token) {
			p.WriteHelp(p.stdout)
			fmt.Fprintln(p.stdout)

			return HelpRequested
		}

		opt, found := p.index[token]
		if !found {
			p.errorf("Invalid argument '%s'.%s Use --help for more information.",
				token, p.suggestion(token))

			return Failed
		}

		for s := range opt.subs {
			if i+1 >= len(args) {
				p.errorf("Missing argument '%s' for parameter '%s'. Use --help for more information.",
					opt.subs[s].ID, token)

				return Failed
			}

			i++
			opt.subs[s].value = args[i]
		}

		if opt.validator != nil && !opt.validator.Validate(opt) {
			return FailedValidation
		}

		opt.provided = true
	}

	for _, opt := range p.options {
		if !opt.satisfied() {
			p.errorf("Mandatory parameter '%s' not provided. Use --help for more information.",
				opt.Name())

			return Failed
		}
	}

	return Ok
}

// suggestion returns a formatted "did you mean" clause when a registered
// alias is close enough to the unrecognized token, and an empty string
// otherwise.
func (p *Parser) suggestion(token string) string {
	alias, distance := closestChoice(token, p.aliases())
	if alias == "" || distance > len(token)/2 {
		return ""
	}

	return fmt.Sprintf(" Did you mean '%s'?", alias)
}

func (p *Parser) errorf(format string, args ...interface{}) {
	fmt.Fprintf(p.stderr, format+"\n", args...)
}
