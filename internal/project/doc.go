// Package project defines the tenant project identity used across tenantd.
//
// Project Representation:
//
// A project is a workspace identity composed of:
//   - Name (identifier; plugin-generated names use alphanumerics and hyphens)
//   - UID (optional unique-instance qualifier, empty when absent)
//
// Projects are immutable value objects compared by value equality. A project
// without a UID is a distinct identity from the same name with any UID.
//
// Sentinels:
//
// Three reserved values exist process-wide:
//   - Empty: no project could be determined
//   - AllAlias (".all"): the alias meaning "all tenants"
//   - EmptyProject (".empty-project"): marker for a tenant with no index
//     patterns yet
package project
