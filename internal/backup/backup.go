// Package backup snapshots the document store into a sibling backups
// directory and rotates old snapshots. It works on both store shapes: a
// single SQLite file or a diskv collection directory.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxBackups is the number of snapshots kept after rotation.
	MaxBackups = 14

	backupDirName = "backups"
	filePrefix    = "daybook-"
)

// Info describes one snapshot.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots the store at storePath into <parent>/backups.
type Manager struct {
	storePath string
	backupDir string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), backupDirName),
	}
}

// BackupDir returns the snapshot directory.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create snapshots the store and rotates old snapshots. A rotation failure is
// reported on stderr but does not fail the backup.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	src, err := os.Stat(m.storePath)
	if err != nil {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	dest := m.uniquePath(time.Now())
	if src.IsDir() {
		err = copyDir(m.storePath, dest)
	} else {
		err = copyFile(m.storePath, dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}

	if err := m.rotate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}
	return dest, nil
}

// uniquePath generates a timestamped snapshot path, extending the name when a
// snapshot from the same minute already exists.
func (m *Manager) uniquePath(now time.Time) string {
	path := filepath.Join(m.backupDir, filePrefix+now.Format("20060102-1504"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	path = filepath.Join(m.backupDir, filePrefix+now.Format("20060102-150405"))
	counter := 1
	base := path
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}

// List returns all snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), filePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// rotate removes the oldest snapshots beyond MaxBackups.
func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), MaxBackups):] {
		if err := os.RemoveAll(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0o700); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			if err := copyDir(from, to); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(from, to); err != nil {
			return err
		}
	}
	return nil
}
