// Package db provides the persistence layer for the PawsGo application.
// It stores every domain collection as a JSON blob in a flat key-value table,
// mirroring the mobile-preferences layout the data model was designed around.
//
// This package is responsible for:
//   - Establishing and managing the SQLite connection (`db.go`).
//   - Exposing the blob store over SQLite (`Store`) and an in-memory twin for
//     tests (`MemoryStore`).
//   - Implementing the repository interfaces from the `domain` package
//     (`PetRepository`, `WalkRepository`, `WalkerRepository`, `UserRepository`)
//     on a single Repository that mutates in-memory collections and persists
//     them synchronously.
//   - Managing database migrations (`migrations/`).
package db
