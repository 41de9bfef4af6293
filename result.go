package clip

// Result is the outcome of a Parse call. Callers branch their process
// exit behavior on it: the parser itself never terminates the process.
type Result int

const (
	// Ok indicates that the whole argument vector was consumed and all
	// mandatory options were provided.
	Ok Result = iota

	// HelpRequested indicates that a help alias was found and the help
	// document was written to the output stream. No further tokens were
	// examined and no mandatory check was run.
	HelpRequested

	// Failed indicates an unrecognized token, a missing sub-argument, or
	// a mandatory option absent from the vector. A diagnostic line was
	// written to the error stream.
	Failed

	// FailedValidation indicates that an option's validator rejected the
	// bound sub-argument values. No diagnostic is emitted beyond the
	// result itself.
	FailedValidation
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case HelpRequested:
		return "help requested"
	case Failed:
		return "failed"
	case FailedValidation:
		return "failed validation"
	default:
		return "unrecognized result"
	}
}
