// Package cli implements the interactive recarchiver menu.
//
// A single command is chosen per run, either from the first positional
// argument or from the menu read on stdin:
//
//	1: Check disk free space
//	2: Search recorded
//	3: Upload recorded
//	4: Delete recorded
//
// Commands prompt for what they need (a title, an S3 prefix, a
// confirmation) and write their report to the App's output. Errors are
// returned to the caller; an unknown selection is only reported.
package cli
