// Package types defines the entity records, patch structs, and standard
// errors shared by the since storage layer and its consumers.
package types
