// Package manifest hashes the output tree and writes MANIFEST.json.
package manifest

import (
	"fmt"

	"github.com/starford/tfphases/internal/checksum"
	"github.com/starford/tfphases/internal/models"
	"github.com/starford/tfphases/internal/storage"
)

// FileName is the manifest location relative to the output root. It is
// never listed in its own files.
const FileName = "MANIFEST.json"

// Identity names the bundle in the manifest header.
type Identity struct {
	Name    string
	Profile string
}

// Build hashes every regular file under each of dirs, in order, and
// assembles the manifest for bc. Files within a dir are sorted by path.
func Build(store storage.Provider, bc models.BuildContext, id Identity, dirs ...string) (*models.Manifest, error) {
	m := &models.Manifest{
		Name:           id.Name,
		Profile:        id.Profile,
		Phase:          bc.Phase,
		Cloud:          bc.Cloud,
		Region:         bc.Region,
		GeneratedAtUTC: bc.GeneratedAtUTC(),
		Files:          []models.FileRecord{},
	}

	for _, dir := range dirs {
		paths, err := store.Files(dir)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			if p == FileName {
				continue
			}
			sum, err := hash(store, p)
			if err != nil {
				return nil, err
			}
			m.Files = append(m.Files, models.FileRecord{Path: p, SHA256: sum})
		}
	}
	return m, nil
}

func hash(store storage.Provider, p string) (string, error) {
	rc, err := store.Open(p)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	sum, err := checksum.Reader(rc)
	if err != nil {
		return "", fmt.Errorf("manifest: hash %s: %w", p, err)
	}
	return sum, nil
}

// Write serializes m, validates it against the schema and replaces
// MANIFEST.json.
func Write(store storage.Provider, m *models.Manifest) error {
	data, err := storage.EncodeJSON(m)
	if err != nil {
		return err
	}
	if err := Validate(data); err != nil {
		return err
	}
	return store.Write(FileName, data)
}
