package regex

import "regexp"

var (
	// Git and Repo patterns
	SSHRepo   = regexp.MustCompile(`git@github\.com[:/]([^/]+)/([^/.]+)`)
	HTTPSRepo = regexp.MustCompile(`https://github\.com/([^/]+)/([^/.]+)`)
	OwnerRepo = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

	// Slug patterns for export file names
	SlugSeparator = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)
