package languages

// JavaScriptQuery captures identifiers, property names and shorthand properties ({ a }).
// It is shared by the JavaScript and TypeScript grammars.
const JavaScriptQuery = `
[
  (identifier)
  (property_identifier)
  (shorthand_property_identifier)
] @name
`
