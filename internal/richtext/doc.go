// Package richtext renders the site's lightweight text format into blocks.
//
// Block syntax (whole line):
//
//	# Heading      level 1 heading
//	## Heading     level 2 heading
//	### Heading    level 3 heading
//	---            horizontal rule
//	-> text <-     centered paragraph, or centered heading with -> # text <-
//	![alt](src)    image (profiles with SupportsImages)
//	- item         list item; 3+ leading spaces make it a child of the previous item
//	(empty line)   ends the current paragraph or list
//	(any text)     paragraph; consecutive lines are joined with a space
//
// Inline syntax: **bold**, *italic*, `code`, plus the link forms selected by
// the profile's LinkSyntax.
package richtext
