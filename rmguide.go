// Package rmguide scrapes the Jama Requirements Management Guide into a
// single hierarchical corpus. It fetches every chapter, article, and the
// glossary under rate limiting and bounded concurrency, extracts structured
// content (markdown body, sections, cross-references, key concepts), and
// assembles the results into a Guide exportable as JSON, JSONL, or a
// consolidated markdown document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, htmltomarkdown/).
package rmguide
