// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain stores the database connection string in the OS credential
// store so `tables` can start without a --url flag.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

var (
	globalManager *Manager
	mu            sync.Mutex
)

// ErrNoDSN is returned when nothing has been saved yet.
var ErrNoDSN = errors.New("no database connection saved")

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "tables"

// KeyDBDSN is the item key holding the connection string.
const KeyDBDSN = "db_dsn"

// Manager provides thread-safe access to the stored connection string.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the native credential store for this platform.
func NewManager() (*Manager, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends(runtime.GOOS),
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
		KeychainName:    "login",
	})
	if err != nil {
		return nil, err
	}
	return NewManagerWithRing(ring), nil
}

// NewManagerWithRing wraps an already opened keyring.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the process-wide manager, retrying initialization on
// every call until it succeeds once.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}
	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return m, nil
}

// allowedBackends lists the native secret stores for goos. The file backend
// is never used.
func allowedBackends(goos string) []keyring.BackendType {
	switch goos {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend}
	default:
		return []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	}
}

// SaveDSN stores the database DSN in the keychain.
func (m *Manager) SaveDSN(dsn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: KeyDBDSN, Data: []byte(dsn), Label: "tables database connection"})
}

// LoadDSN retrieves the database DSN. ErrNoDSN is returned when none is stored.
func (m *Manager) LoadDSN() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyDBDSN)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNoDSN
	}
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", ErrNoDSN
	}
	return string(it.Data), nil
}

// ClearDSN removes the stored DSN. Removing a missing item is not an error.
func (m *Manager) ClearDSN() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeyDBDSN); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
