package main

import (
	"github.com/nickwells/param.mod/v6/param"
)

const noteStopping = "servitorconnect - stopping"

// addNotes adds the notes to the usage message
func addNotes(ps *param.PSet) error {
	ps.AddNote(noteStopping,
		"The program stops when the duration has passed. You can also"+
			" stop it at any time by interrupting it (typically by"+
			" typing Ctrl-C). This is not treated as an error and the"+
			" exit status will be zero."+
			"\n\n"+
			"If the intention file cannot be read the program stops"+
			" straight away with an exit status of one.",
		param.NoteSeeParam(paramNameDuration))

	return nil
}
