package languages

// RustQuery captures identifiers and field accesses
const RustQuery = `
[
  (identifier)
  (field_identifier)
] @name
`
