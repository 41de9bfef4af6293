package clip

// SubArgument describes a single positional value that an option expects
// to find right after one of its aliases on the command line. The bound
// value is written by Parse and read back with Option.Value.
type SubArgument struct {
	// ID uniquely names the sub-argument within its owning option.
	ID string

	// Description documents the sub-argument in the help screen.
	Description string

	value string
}

// Validator checks an option once all of its sub-argument values have been
// bound for the current Parse call. Returning false aborts parsing with
// FailedValidation. The option's bound values are readable through
// Option.Value at the time of the call.
type Validator interface {
	Validate(opt *Option) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(opt *Option) bool

// Validate implements Validator.
func (f ValidatorFunc) Validate(opt *Option) bool { return f(opt) }

// Option describes one recognized command-line option: its aliases (the
// first one is canonical and used in diagnostics), a description for the
// help screen, whether the option is mandatory, the ordered sub-arguments
// it consumes, and an optional validator.
//
// Options are declarative: everything except the provided flag and the
// bound sub-argument values is fixed at construction time, and those two
// are only ever mutated by Parse.
type Option struct {
	aliases     []string
	description string
	mandatory   bool
	subs        []SubArgument
	subIndex    map[string]int
	validator   Validator
	provided    bool
}

// OptionSetting configures an Option under construction.
type OptionSetting func(o *Option)

// Description sets the option's help description.
func Description(desc string) OptionSetting {
	return func(o *Option) { o.description = desc }
}

// Mandatory marks the option as required: parsing fails unless the option
// appears in the argument vector.
func Mandatory() OptionSetting {
	return func(o *Option) { o.mandatory = true }
}

// SubArg appends one expected sub-argument. Sub-arguments are consumed in
// the order they were declared.
func SubArg(id, desc string) OptionSetting {
	return func(o *Option) {
		o.subs = append(o.subs, SubArgument{ID: id, Description: desc})
	}
}

// WithValidator attaches a validator, invoked by Parse after the option's
// sub-arguments have been bound.
func WithValidator(v Validator) OptionSetting {
	return func(o *Option) { o.validator = v }
}

// NewOption builds an option from its aliases and settings. Construction
// performs no validation: structural checks (non-empty aliases, alias and
// sub-argument uniqueness) are run when the option is registered on a
// Parser with Add.
func NewOption(aliases []string, settings ...OptionSetting) *Option {
	opt := &Option{aliases: aliases}

	for _, setting := range settings {
		setting(opt)
	}

	opt.subIndex = make(map[string]int, len(opt.subs))
	for i, sub := range opt.subs {
		if _, found := opt.subIndex[sub.ID]; !found {
			opt.subIndex[sub.ID] = i
		}
	}

	return opt
}

// Name returns the canonical alias, the first one declared.
func (o *Option) Name() string {
	if len(o.aliases) == 0 {
		return ""
	}

	return o.aliases[0]
}

// Aliases returns a copy of the option's aliases, in declaration order.
func (o *Option) Aliases() []string {
	aliases := make([]string, len(o.aliases))
	copy(aliases, o.aliases)

	return aliases
}

// Description returns the option's help description.
func (o *Option) Description() string { return o.description }

// IsMandatory reports whether the option must appear on the command line.
func (o *Option) IsMandatory() bool { return o.mandatory }

// Provided reports whether the last Parse call matched this option, bound
// all of its sub-arguments and passed its validator.
func (o *Option) Provided() bool { return o.provided }

// Value returns the sub-argument value bound by the last Parse call, or
// an ErrUnknownArgument error if no sub-argument with this id was declared
// on the option.
func (o *Option) Value(id string) (string, error) {
	idx, found := o.subIndex[id]
	if !found {
		return "", newErrorf(ErrUnknownArgument, "unknown argument '%s' for option '%s'", id, o.Name())
	}

	return o.subs[idx].value, nil
}

// satisfied is the mandatory check run after the argument vector has been
// fully consumed: optional options always pass.
func (o *Option) satisfied() bool {
	return !o.mandatory || o.provided
}

// reset clears the per-parse state so that successive Parse calls on the
// same Parser are isolated from each other.
func (o *Option) reset() {
	o.provided = false
	for i := range o.subs {
		o.subs[i].value = ""
	}
}
