package languages

// PythonQuery captures identifiers; attributes are identifiers in this grammar
const PythonQuery = `
(identifier) @name
`
