// Package packager turns a validated skill directory into a .skill
// archive: a deflate-compressed zip whose entries keep the skill
// directory as their top-level path component.
package packager

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/jingkaihe/skillpack/pkg/skills"
)

// Packager packages skills from a source directory into .skill archives.
type Packager struct {
	sourceDir string
	outputDir string
	exclude   []string
}

// Option is a function that configures a Packager
type Option func(*Packager)

// WithSourceDir sets the directory containing the skill directory.
// Defaults to the current working directory.
func WithSourceDir(dir string) Option {
	return func(p *Packager) {
		if dir != "" {
			p.sourceDir = dir
		}
	}
}

// WithOutputDir sets the directory that receives the .skill file.
// Defaults to the current working directory.
func WithOutputDir(dir string) Option {
	return func(p *Packager) {
		if dir != "" {
			p.outputDir = dir
		}
	}
}

// WithExclude sets doublestar glob patterns matched against archive entry
// names (skill-dir-prefixed, slash-separated). Matching files are left
// out of the archive.
func WithExclude(patterns ...string) Option {
	return func(p *Packager) {
		p.exclude = patterns
	}
}

// New creates a Packager rooted at the current working directory unless
// overridden by options.
func New(opts ...Option) *Packager {
	p := &Packager{
		sourceDir: ".",
		outputDir: ".",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result describes a successfully written archive.
type Result struct {
	OutputPath string   // Full path of the .skill file
	Size       int64    // Size of the archive in bytes
	Entries    []string // Archive entry names in written (sorted) order
}

// SizeKB returns the archive size in kilobytes.
func (r *Result) SizeKB() float64 {
	return float64(r.Size) / 1024
}

// Validate runs every check short of writing the archive: skill name,
// directory existence, manifest presence, and manifest frontmatter.
// It returns the skill directory path on success.
func (p *Packager) Validate(name string) (string, error) {
	if err := skills.ValidateName(name); err != nil {
		return "", err
	}

	skillDir := filepath.Join(p.sourceDir, name)
	if _, err := os.Stat(skillDir); err != nil {
		return "", errors.Wrapf(skills.ErrSkillDirNotFound, "%s", skillDir)
	}

	manifest := filepath.Join(skillDir, skills.ManifestFileName)
	if _, err := os.Stat(manifest); err != nil {
		return "", errors.Wrapf(skills.ErrManifestNotFound, "no %s in %s", skills.ManifestFileName, skillDir)
	}

	if err := skills.ValidateManifest(manifest); err != nil {
		return "", err
	}

	return skillDir, nil
}

// Package validates the named skill and writes <output>/<name>.skill
// containing every regular file under the skill directory, entry names
// prefixed with the skill name. Entries are sorted so identical inputs
// produce archives with identical entry order. On any write failure the
// partial output file is removed.
func (p *Packager) Package(name string) (*Result, error) {
	skillDir, err := p.Validate(name)
	if err != nil {
		return nil, err
	}

	entries, err := p.collectEntries(skillDir, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate skill files")
	}

	outputPath := filepath.Join(p.outputDir, name+".skill")
	if err := p.writeArchive(outputPath, skillDir, name, entries); err != nil {
		os.Remove(outputPath)
		return nil, errors.Wrap(err, "failed to create package")
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat package")
	}

	return &Result{
		OutputPath: outputPath,
		Size:       info.Size(),
		Entries:    entries,
	}, nil
}

// collectEntries walks the skill directory and returns the sorted entry
// names for every regular file, minus exclusions.
func (p *Packager) collectEntries(skillDir, name string) ([]string, error) {
	var entries []string

	err := filepath.Walk(skillDir, func(fpath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(skillDir, fpath)
		if err != nil {
			return err
		}
		entry := path.Join(name, filepath.ToSlash(rel))

		excluded, err := p.isExcluded(entry)
		if err != nil {
			return err
		}
		if !excluded {
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(entries)
	return entries, nil
}

func (p *Packager) isExcluded(entry string) (bool, error) {
	for _, pattern := range p.exclude {
		matched, err := doublestar.Match(pattern, entry)
		if err != nil {
			return false, errors.Wrapf(err, "invalid exclude pattern %q", pattern)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// writeArchive writes the zip file. Entry names are already relative to
// the skill directory's parent, so the on-disk path is recovered by
// stripping the name prefix and rejoining under skillDir.
func (p *Packager) writeArchive(outputPath, skillDir, name string, entries []string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	for _, entry := range entries {
		rel := filepath.FromSlash(entry[len(name)+1:])
		if err := addFile(zw, entry, filepath.Join(skillDir, rel)); err != nil {
			return errors.Wrapf(err, "failed to add %s", entry)
		}
	}

	if err := zw.Close(); err != nil {
		return err
	}
	return out.Close()
}

func addFile(zw *zip.Writer, entry, fpath string) error {
	src, err := os.Open(fpath)
	if err != nil {
		return err
	}
	defer src.Close()

	// zip.Writer.Create compresses with deflate.
	dst, err := zw.Create(entry)
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	return err
}
