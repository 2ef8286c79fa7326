// Package auth tracks the logged-in state and persists a session marker
// across restarts. The marker's mere presence denotes a logged-in state;
// there is no expiry or validity check, which is a known limitation rather
// than a contract.
package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/wenhuei/recipevault/pkg/state"
)

// sessionKey is the well-known key the marker is stored under.
const sessionKey = "UserSession"

// Manager is the session state machine: LoggedOut <-> LoggedIn.
// The LoggedIn observable retains the current state for subscribers.
type Manager struct {
	mu     sync.Mutex
	path   string
	client *Client
	logger *slog.Logger

	LoggedIn *state.Value[bool]
}

// NewManager creates a manager whose initial state is reconstructed from the
// persisted marker: LoggedIn if a marker exists, LoggedOut otherwise.
func NewManager(path string, client *Client, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		path:   path,
		client: client,
		logger: logger,
	}
	_, present := m.readMarker()
	m.LoggedIn = state.NewValue(present)
	return m
}

// Login authenticates against the remote endpoint. Invalid credentials yield
// (false, nil) and leave the state at LoggedOut; only unexpected transport
// failures return an error. On success the marker is persisted before the
// result is reported.
func (m *Manager) Login(ctx context.Context, username, password string) (bool, error) {
	ok, err := m.client.Authenticate(ctx, username, password)
	if err != nil {
		return false, err
	}
	if !ok {
		m.logger.Debug("login rejected", "username", username)
		return false, nil
	}

	if err := m.writeMarker(username); err != nil {
		return false, fmt.Errorf("failed to persist session: %w", err)
	}

	m.LoggedIn.Set(true)
	m.logger.Debug("session started", "username", username)
	return true, nil
}

// Logout erases the persisted marker and transitions to LoggedOut.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	err := os.Remove(m.path)
	m.mu.Unlock()

	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to erase session: %w", err)
	}

	m.LoggedIn.Set(false)
	m.logger.Debug("session ended")
	return nil
}

// CurrentUser decodes the persisted marker back to the username.
func (m *Manager) CurrentUser() (string, bool) {
	marker, ok := m.readMarker()
	if !ok {
		return "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(marker)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// writeMarker persists the obfuscated session marker. Base64 is a
// placeholder carried over from the original scheme, not a security
// mechanism.
func (m *Manager) writeMarker(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	marker := base64.StdEncoding.EncodeToString([]byte(username))
	data, err := json.MarshalIndent(map[string]string{sessionKey: marker}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0600)
}

// readMarker loads the marker from disk, if any.
func (m *Manager) readMarker() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		return "", false
	}

	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", false
	}

	marker, ok := payload[sessionKey]
	return marker, ok && marker != ""
}
