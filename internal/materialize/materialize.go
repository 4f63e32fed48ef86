// Package materialize copies a phase template tree into the output bundle,
// rendering placeholders in text files along the way.
package materialize

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/starford/tfphases/internal/apperr"
	"github.com/starford/tfphases/internal/storage"
)

// BundleDir is the bundle subtree relative to the output root.
const BundleDir = "bundle"

// TextExtensions marks which file extensions are rendered. Anything else is
// copied byte for byte.
var TextExtensions = map[string]bool{
	".tf":   true,
	".md":   true,
	".yml":  true,
	".yaml": true,
	".json": true,
	".rego": true,
	".txt":  true,
}

// Renderer rewrites decoded template text.
type Renderer interface {
	Render(text string) string
}

// Result summarizes one materialization.
type Result struct {
	Files    int
	Rendered int
	Copied   int
}

// Materialize replaces bundleDir (relative to the store root) with a copy of
// templateDir. Files with a text extension that decode as UTF-8 are passed
// through r; everything else keeps its exact bytes. Symlinks, including a
// symlinked templateDir, are followed and their targets copied.
func Materialize(templateDir string, store storage.Provider, bundleDir string, r Renderer) (Result, error) {
	var res Result

	info, err := os.Stat(templateDir)
	if err != nil || !info.IsDir() {
		return res, fmt.Errorf("%w: %s", apperr.ErrMissingTemplate, templateDir)
	}
	root, err := filepath.EvalSymlinks(templateDir)
	if err != nil {
		return res, fmt.Errorf("materialize: resolve %s: %w", templateDir, err)
	}

	if err := store.RemoveAll(bundleDir); err != nil {
		return res, err
	}
	if err := store.MkdirAll(bundleDir); err != nil {
		return res, err
	}

	c := &copier{store: store, r: r, res: &res}
	if err := c.copyDir(root, bundleDir, map[string]bool{root: true}); err != nil {
		return res, fmt.Errorf("materialize: %w", err)
	}
	return res, nil
}

type copier struct {
	store storage.Provider
	r     Renderer
	res   *Result
}

// copyDir copies the resolved directory src into dst. ancestors holds the
// resolved paths of the directories currently being copied; reaching one
// again through a symlink is a cycle.
func (c *copier) copyDir(src, dst string, ancestors map[string]bool) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		p := filepath.Join(src, e.Name())
		target := path.Join(dst, e.Name())

		info, err := os.Stat(p) // follows symlinks
		if err != nil {
			return err
		}

		if info.IsDir() {
			resolved, err := filepath.EvalSymlinks(p)
			if err != nil {
				return err
			}
			if ancestors[resolved] {
				return fmt.Errorf("symlink cycle at %s", p)
			}
			if err := c.store.MkdirAll(target); err != nil {
				return err
			}
			ancestors[resolved] = true
			err = c.copyDir(resolved, target, ancestors)
			delete(ancestors, resolved)
			if err != nil {
				return err
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		rendered, err := materializeFile(p, target, info.Mode(), c.store, c.r)
		if err != nil {
			return err
		}
		c.res.Files++
		if rendered {
			c.res.Rendered++
		} else {
			c.res.Copied++
		}
	}
	return nil
}

func materializeFile(src, dst string, mode fs.FileMode, store storage.Provider, r Renderer) (bool, error) {
	if IsTextFile(src) {
		raw, err := os.ReadFile(src)
		if err != nil {
			return false, err
		}
		if text, ok := decodeText(raw); ok {
			out := r.Render(text)
			return true, store.Copy(dst, strings.NewReader(out), mode)
		}
		// Undecodable text falls back to a verbatim copy.
	}
	return false, copyFile(src, dst, mode, store)
}

func copyFile(src, dst string, mode fs.FileMode, store storage.Provider) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	return store.Copy(dst, f, mode)
}

// decodeText reports whether raw is valid UTF-8 and returns it as text.
func decodeText(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// IsTextFile reports whether name carries a renderable extension.
func IsTextFile(name string) bool {
	return TextExtensions[strings.ToLower(extension(name))]
}

// extension mirrors filepath.Ext except that a leading-dot name such as
// ".tf" has no extension.
func extension(name string) string {
	base := filepath.Base(name)
	trimmed := strings.TrimLeft(base, ".")
	if !strings.Contains(trimmed, ".") {
		return ""
	}
	return filepath.Ext(base)
}

