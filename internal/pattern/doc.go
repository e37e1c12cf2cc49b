// Package pattern resolves the naming convention between tenant projects and
// dashboard index patterns.
//
// Plugin-generated index patterns follow the dotted form
//
//	<prefix>.<name>.<uid>.*
//
// where <prefix> is fixed by configuration. The Codec converts between that
// form and project.Project values; the Resolver layers document fetching on
// top of it to extract a tenant's project set and to pick the default index
// pattern among versioned config documents.
//
// All state (compiled matcher, prefix, configured version) is established at
// construction and read-only afterwards, so a single Codec or Resolver is
// safe for concurrent use.
package pattern
