// A small demo application showing option registration, validators, and
// reading bound values back after parsing.
package main

import (
	"fmt"
	"os"

	"github.com/reeflective/clip"
)

func main() {
	parser := clip.New(
		clip.WithProgram("Sample Application", "9.9.9.9"),
		clip.WithDescription("This is a sample application description. "+
			"The string here will break into multiple lines if it overlaps "+
			"the maximum line width."),
	)

	showVersion := false

	err := parser.Add(
		clip.NewOption([]string{"-v", "--version"},
			clip.Description("Shows the application version."),
			clip.WithValidator(clip.ValidatorFunc(func(*clip.Option) bool {
				showVersion = true

				return true
			})),
		),
		clip.NewOption([]string{"--mandatory"},
			clip.Description("This is a mandatory argument and it expects two following args {arg1} and {arg2}."),
			clip.Mandatory(),
			clip.SubArg("arg1", "The argument 1."),
			clip.SubArg("arg2", "The argument 2."),
		),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch parser.Parse(os.Args[1:]) {
	case clip.Ok:
		arg1, _ := parser.MustLookup("--mandatory").Value("arg1")
		arg2, _ := parser.MustLookup("--mandatory").Value("arg2")

		fmt.Println("Parsing OK!")
		fmt.Println("Argument 1:", arg1)
		fmt.Println("Argument 2:", arg2)

	case clip.HelpRequested:
		os.Exit(0)

	default:
		os.Exit(2)
	}

	if showVersion {
		fmt.Println("Showing application version: 9.9.9.9")
	}
}
