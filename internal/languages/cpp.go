package languages

// CPPQuery captures plain identifiers and member names.
// Namespace and type names are left out: a variable never appears in those positions.
const CPPQuery = `
[
  (identifier)
  (field_identifier)
] @name
`
