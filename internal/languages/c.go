package languages

// CQuery captures plain identifiers and struct member names
const CQuery = `
[
  (identifier)
  (field_identifier)
] @name
`
