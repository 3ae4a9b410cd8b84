// Package readmegen assembles a combined README from per-variant markdown
// sources. Each source contributes a title token, an overview section and a
// "C++" feature section, which are substituted into a template.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, goquery/, fs/).
package readmegen
