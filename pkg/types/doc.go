// Package types defines the food catalog and ledger entity types, the Catalog
// and LogBook interfaces, the diet goal profile, and the standard error types
// for the yada diet tracker.
//
// Foods are a tagged sum of two kinds. A basic food stores its calories per
// serving directly; a composite food derives them from weighted components.
// Components and ledger entries refer to foods by ID and resolve them through
// a Resolver (normally the Catalog) at read time, so nothing but the catalog
// holds a food for longer than a single call.
package types
