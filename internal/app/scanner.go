package app

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/rospkg-go/internal/config"
	"github.com/quantmind-br/rospkg-go/internal/domain"
	"github.com/quantmind-br/rospkg-go/internal/manifest"
	"github.com/quantmind-br/rospkg-go/internal/utils"
)

// manifestFilename is the file name a scan looks for.
const manifestFilename = "package.xml"

// Scanner walks a workspace tree, parsing and validating every package
// manifest it finds.
type Scanner struct {
	cfg     *config.Config
	logger  *utils.Logger
	exclude []*regexp.Regexp
}

// ScannerOptions contains options for creating a scanner
type ScannerOptions struct {
	Config *config.Config
	Logger *utils.Logger
}

// NewScanner creates a new scanner with the given configuration
func NewScanner(opts ScannerOptions) (*Scanner, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	exclude := make([]*regexp.Regexp, 0, len(cfg.Scan.Exclude))
	for _, pattern := range cfg.Scan.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		exclude = append(exclude, re)
	}

	return &Scanner{
		cfg:     cfg,
		logger:  logger.WithComponent("scanner"),
		exclude: exclude,
	}, nil
}

// Scan discovers every package.xml under root and parses and validates
// each one concurrently. Per-file failures land in the report, not in the
// returned error; the error covers discovery problems only.
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.Report, error) {
	root = utils.ExpandPath(root)
	if !utils.IsDir(root) {
		return nil, fmt.Errorf("workspace %s is not a directory", root)
	}

	paths, err := s.discover(root)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Int("manifests", len(paths)).Str("root", root).Msg("Discovery complete")

	var bar *progressbar.ProgressBar
	if s.cfg.Scan.Progress {
		bar = utils.NewProgressBar(len(paths), utils.DescValidating)
	}

	results := make([]domain.Result, len(paths))
	indices := make([]int, len(paths))
	for i := range indices {
		indices[i] = i
	}

	utils.ParallelForEach(ctx, indices, s.cfg.Scan.Workers, func(_ context.Context, i int) error {
		results[i] = s.check(paths[i])
		if bar != nil {
			_ = bar.Add(1)
		}
		return nil
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return &domain.Report{Root: root, Results: results}, nil
}

// check parses and validates one manifest file.
func (s *Scanner) check(path string) domain.Result {
	m, err := manifest.ParseFile(path)
	if err != nil {
		s.logger.Debug().Str("path", path).Err(err).Msg("Parse failed")
		return domain.Result{Path: path, Err: err}
	}

	m, err = manifest.Validate(m)
	if err != nil {
		s.logger.Debug().Str("path", path).Err(err).Msg("Validation failed")
		return domain.Result{Path: path, Err: err}
	}

	if m.Format == manifest.Format3 && len(m.Authors) == 0 {
		s.logger.Debug().Str("path", path).Msg("Format 3 manifest without authors")
	}

	return domain.Result{Path: path, Manifest: m}
}

// discover collects all package.xml paths under root, skipping excluded
// subtrees.
func (s *Scanner) discover(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if s.excluded(path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && d.Name() == manifestFilename {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return paths, nil
}

// excluded matches path against the exclude patterns. Directories are
// matched with a trailing slash so patterns like `.*/build/.*` prune the
// whole subtree.
func (s *Scanner) excluded(path string, isDir bool) bool {
	normalized := filepath.ToSlash(path)
	if isDir {
		normalized += "/"
	}
	for _, re := range s.exclude {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}
