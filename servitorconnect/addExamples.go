package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message
func addExamples(ps *param.PSet) error {
	ps.AddExample(`servitorconnect -intent "I am healthy" -repeats 10 -duration 86400`,
		"This will repeat the intention ten times straight away and then"+
			" ten more times every hour for the next 24 hours.")
	ps.AddExample(`servitorconnect -file intention.txt -repeats 1 -duration 600`,
		"This will read the intention from the file 'intention.txt' and"+
			" repeat it once. As the duration is less than an hour it"+
			" will not be repeated again but the countdown will be shown"+
			" for ten minutes.")
	ps.AddExample(`servitorconnect`,
		"This will ask you for the intention (or the name of a file"+
			" containing it), the number of repeats per hour and the"+
			" duration in seconds.")

	return nil
}
