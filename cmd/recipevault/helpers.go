package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/wenhuei/recipevault"
)

// openApp wires the application over the resolved vault directory.
func openApp() (*recipevault.App, error) {
	vault, err := resolveVault()
	if err != nil {
		return nil, err
	}
	return recipevault.New(vault, recipevault.WithLogger(slog.Default()))
}

// requireLogin gates recipe commands on session presence.
func requireLogin(app *recipevault.App) error {
	if !app.Auth.LoggedIn.Get() {
		return fmt.Errorf("not logged in (run 'recipevault login' first)")
	}
	return nil
}

// joinLines turns repeatable flag values into the newline-separated block the
// form container expects.
func joinLines(values []string) string {
	return strings.Join(values, "\n")
}

// typeName resolves a recipe type id to a display name, falling back to the
// raw id for unknown types (the store does not validate the foreign key).
func typeName(app *recipevault.App, id string) string {
	if name, ok := app.Catalog.NameOf(id); ok {
		return name
	}
	return id
}
