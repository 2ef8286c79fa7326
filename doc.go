// Package recipevault is the Composition Root for the recipevault application.
//
// It connects the core domain (recipe repository, state containers) with the
// infrastructure adapters (filesystem store, login client) using explicit
// constructor wiring at startup.
//
// Philosophy:
//
// Recipevault is a single-user recipe catalog backed by plain files. The vault
// directory is the system of record: one YAML document per recipe, readable
// and editable with any text editor. Everything above the store is a thin,
// observable layer that keeps displayed state consistent with the files.
//
//   - **Hexagonal core**: the repository depends on the core.Store contract,
//     not on the filesystem adapter.
//   - **Push-based state**: list and form containers publish retained
//     snapshots (collection, loading flag, last error) to subscribers.
//   - **Reconciliation**: a filesystem watcher feeds background mutations
//     back into the displayed collection without a manual reload.
//
// Usage:
//
//	app, err := recipevault.New("~/.recipevault",
//		recipevault.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	recipes, err := app.Repo.ListAll(ctx)
package recipevault
