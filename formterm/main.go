// Formterm is a terminal profile form built from validated input groups.
//
// Usage:
//
//	# Fill in the form interactively
//	formterm
//
//	# Check values from a script
//	formterm validate --purpose email me@example.com
//
//	# Validate a stream of edits the way the form does
//	tail -f edits.txt | formterm watch --purpose phone --country in
//
//	# List field purposes and phone countries
//	formterm purposes
//	formterm countries
package main

func main() {
	Execute()
}
