// Package urltext provides a batch URL-to-text extraction tool.
// It reads a list of URLs from a text file, fetches each page, extracts
// the main readable content (title + body, boilerplate discarded), and
// writes one plain-text file per URL to an output directory.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, readability/, fs/).
package urltext
