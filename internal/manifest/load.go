package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/fsutil"
	"github.com/vk/locationmanager/internal/simhost"
)

var (
	// ErrDuplicatePackage indicates two package blocks with the same GUID.
	ErrDuplicatePackage = errors.New("duplicate package")
	// ErrDuplicateHost indicates more than one host block.
	ErrDuplicateHost = errors.New("more than one host block")
)

// Set is everything loaded from a group of manifest files.
type Set struct {
	Packages []*Package
	// Host is nil when no host block was found.
	Host *simhost.Config
}

// Load parses every .hcl file under paths. Paths may name files or
// directories; missing paths are skipped.
func Load(ctx context.Context, paths ...string) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	set := &Set{}
	seen := make(map[string]string)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := set.decode(hclFile.Body, file, seen); err != nil {
			return nil, err
		}
	}

	logger.Debug("Manifest loading complete.", "packages", len(set.Packages), "host", set.Host != nil)
	return set, nil
}

// LoadBytes parses a single manifest held in memory.
func LoadBytes(src []byte, filename string) (*Set, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	set := &Set{}
	if err := set.decode(hclFile.Body, filename, make(map[string]string)); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Set) decode(body hcl.Body, file string, seen map[string]string) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	for _, pb := range root.Packages {
		if prev, ok := seen[pb.GUID]; ok {
			return fmt.Errorf("%w: %s declared in %s and %s", ErrDuplicatePackage, pb.GUID, prev, file)
		}
		seen[pb.GUID] = file
		pkg, err := translatePackage(pb)
		if err != nil {
			return fmt.Errorf("%s: package %s: %w", file, pb.GUID, err)
		}
		s.Packages = append(s.Packages, pkg)
	}

	for _, hb := range root.Hosts {
		if s.Host != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateHost, file)
		}
		cfg, err := translateHost(hb)
		if err != nil {
			return fmt.Errorf("%s: host: %w", file, err)
		}
		s.Host = cfg
	}
	return nil
}
