// Package mdport converts HTML posts into Markdown for content migrations.
// It locates a content region in a parsed HTML document, strips comments and
// configured noise from it, and renders what remains as Markdown.
//
// This package contains domain types, interfaces and the dependency-free
// Converter pipeline following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, htmltomarkdown/, etree/).
package mdport
