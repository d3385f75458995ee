// Package markdown implements document ingestion for the blog: filesystem
// discovery, front matter extraction and validation, and goldmark-backed body
// rendering. Every build-time diagnostic names the offending file so a broken
// document never publishes silently.
package markdown
