// Package storage provides folder-scoped JSON document storage for DocFold.
//
// Documents are arbitrary JSON values identified by a (folder, key)
// pair. Folders are flat namespaces under a single storage root; there
// is no nesting.
//
// Two backends implement the Store interface:
//
//   - FSStore: one subdirectory per folder, one <key>.json file per
//     document. This is the canonical on-disk layout.
//   - BadgerStore: an embedded Badger KV store keyed folder/key, for
//     deployments that prefer one database file over a file tree.
//
// Folder and key names are validated at every entry point: empty
// names, ".", "..", and names containing path separators are rejected
// before any filesystem or database access.
package storage
