package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/afero"
)

// versionWidth pads version prefixes: 000001_create_owner_tables.
const versionWidth = 6

var headerTmpl = template.Must(template.New("header").Parse(
	`-- Migration: {{.Name}}{{if .Down}} (Rollback){{end}}
-- Created: {{.Created.Format "2006-01-02T15:04:05Z07:00"}}
{{- if and .Description (not .Down)}}
-- Description: {{.Description}}
{{- end}}

`))

// MigrationFile describes a scaffolded up/down pair.
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Created     time.Time
	UpPath      string
	DownPath    string
}

// CreateMigration scaffolds the next numbered pair in dir on disk.
func CreateMigration(dir, name, description string) (*MigrationFile, error) {
	return scaffold(afero.NewOsFs(), dir, name, description, time.Now())
}

func scaffold(fsys afero.Fs, dir, name, description string, now time.Time) (*MigrationFile, error) {
	slug := sanitizeName(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}
	existing, err := ListMigrations(afero.NewIOFS(afero.NewBasePathFs(fsys, dir)))
	if err != nil {
		return nil, err
	}

	mf := &MigrationFile{
		Version:     fmt.Sprintf("%0*d", versionWidth, nextVersion(existing)),
		Name:        name,
		Description: description,
		Created:     now,
	}
	base := path.Join(dir, mf.Version+"_"+slug)
	mf.UpPath, mf.DownPath = base+".up.sql", base+".down.sql"

	if err := writeHeader(fsys, mf.UpPath, mf, false); err != nil {
		return nil, err
	}
	if err := writeHeader(fsys, mf.DownPath, mf, true); err != nil {
		_ = fsys.Remove(mf.UpPath)
		return nil, err
	}
	return mf, nil
}

func writeHeader(fsys afero.Fs, name string, mf *MigrationFile, down bool) error {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	return headerTmpl.Execute(f, struct {
		*MigrationFile
		Down bool
	}{mf, down})
}

// nextVersion is one past the highest numeric prefix among names.
func nextVersion(names []string) int {
	highest := 0
	for _, n := range names {
		prefix, _, _ := strings.Cut(n, "_")
		if v, err := strconv.Atoi(prefix); err == nil {
			highest = max(highest, v)
		}
	}
	return highest + 1
}

// sanitizeName lowercases name, turns spaces, dashes and underscores into
// single underscores and drops everything else.
func sanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return ' '
		}
		return -1
	}, strings.ToLower(name))
	return strings.Join(strings.Fields(cleaned), "_")
}

// ListMigrations returns the sorted names of the up migrations at the root
// of fsys, without the .up.sql suffix. A missing directory lists nothing.
func ListMigrations(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if base, ok := strings.CutSuffix(e.Name(), ".up.sql"); ok && !e.IsDir() && base != "" {
			names = append(names, base)
		}
	}
	slices.Sort(names)
	return names, nil
}
