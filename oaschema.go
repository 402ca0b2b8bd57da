// oaschema models the JSON Schema subset of OpenAPI 3.0 as a typed
// tree, see package schema for the node model and its codec.
package oaschema
