// Package generator renders the post collection into a static site: one HTML
// page per post, an index, category and tag listings, plus feeds, a sitemap
// and theme assets. Builds are incremental by default; a manifest written next
// to the output records page hashes so unchanged pages are skipped.
package generator
