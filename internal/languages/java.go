package languages

// JavaQuery captures identifiers; field accesses use the same node kind in Java
const JavaQuery = `
(identifier) @name
`
