package languages

// GoQuery captures identifiers and selector fields (x.field)
const GoQuery = `
[
  (identifier)
  (field_identifier)
] @name
`
