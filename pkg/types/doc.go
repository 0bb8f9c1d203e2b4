// Package types defines the entity types (Page, User), the ordered metadata
// container, the standard error taxonomy, and the Config shared by the query
// layer, the content processor, and the wiki repository.
package types
