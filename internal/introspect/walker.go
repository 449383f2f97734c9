// Package introspect resolves a Python package tree into structured records:
// packages, modules, and classified module members. It works statically, by
// parsing source files with tree-sitter, so only objects defined in a file
// ever count as that file's members.
package introspect

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/docsage/docsage/internal/docstring"
)

// ErrPackageNotFound is returned when the root package cannot be resolved
// against the source root. Missing sub-packages are logged and skipped
// instead.
var ErrPackageNotFound = errors.New("package not found")

// Config holds the knobs for an Introspector.
type Config struct {
	// SourceRoot is the directory containing the root package directory.
	SourceRoot string

	// Excludes are glob patterns matched against qualified dotted names;
	// matching packages and modules are skipped. Names containing "tests"
	// are always skipped.
	Excludes []string

	Logger *slog.Logger
}

// Introspector walks Python package trees rooted at a source directory.
type Introspector struct {
	sourceRoot string
	excludes   []glob.Glob
	logger     *slog.Logger
}

// New builds an Introspector, compiling the exclusion patterns up front.
func New(cfg Config) (*Introspector, error) {
	in := &Introspector{
		sourceRoot: cfg.SourceRoot,
		logger:     cfg.Logger,
	}
	if in.logger == nil {
		in.logger = slog.Default()
	}

	for _, pattern := range cfg.Excludes {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		in.excludes = append(in.excludes, compiled)
	}

	return in, nil
}

// PackageContents walks the package tree rooted at the given dotted name and
// returns one record per discovered package. The walk is depth-first over an
// explicit stack; only the relative order package → its contents is
// meaningful to callers.
func (in *Introspector) PackageContents(root string) ([]PackageRecord, error) {
	if !in.isPackage(root) {
		return nil, fmt.Errorf("%w: %q under %s", ErrPackageNotFound, root, in.sourceRoot)
	}

	type frame struct {
		name   string
		parent string
	}

	var records []PackageRecord
	stack := []frame{{name: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		record, err := in.readPackage(top.name, top.parent)
		if err != nil {
			if top.parent == "" {
				return nil, err
			}
			in.logger.Warn("skipping package", "package", top.name, "error", err)
			continue
		}
		records = append(records, record)

		for _, sub := range record.SubPackages {
			stack = append(stack, frame{name: top.name + "." + sub, parent: top.name})
		}
	}

	return records, nil
}

// readPackage builds the record for one package directory.
func (in *Introspector) readPackage(name, parent string) (PackageRecord, error) {
	dir := in.resolveDir(name)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return PackageRecord{}, fmt.Errorf("reading package %s: %w", name, err)
	}

	record := PackageRecord{
		Name:          shortName(name),
		QualifiedName: name,
		Hierarchy:     strings.Split(name, "."),
		Parent:        parent,
	}

	for _, entry := range entries {
		child := strings.TrimSuffix(entry.Name(), ".py")
		qualified := name + "." + child

		switch {
		case entry.IsDir() && in.isPackage(qualified):
			if in.excluded(qualified) {
				continue
			}
			record.SubPackages = append(record.SubPackages, child)
		case !entry.IsDir() && strings.HasSuffix(entry.Name(), ".py") && entry.Name() != "__init__.py":
			if in.excluded(qualified) {
				continue
			}
			record.Modules = append(record.Modules, child)
		}
	}

	init, err := parseModuleFile(filepath.Join(dir, "__init__.py"))
	if err != nil {
		return PackageRecord{}, fmt.Errorf("reading package %s: %w", name, err)
	}
	record.Summary = docstring.Parse(docstring.Clean(init.docstring)).SummaryText()
	record.Exports = init.exports

	return record, nil
}

// ModuleContents parses the module with the given qualified dotted name and
// returns its record with member stubs for every locally-defined top-level
// class and function, in declaration order.
func (in *Introspector) ModuleContents(qualified string) (ModuleRecord, error) {
	hierarchy := strings.Split(qualified, ".")
	path := filepath.Join(in.sourceRoot, filepath.Join(hierarchy...)+".py")

	mod, err := parseModuleFile(path)
	if err != nil {
		return ModuleRecord{}, fmt.Errorf("reading module %s: %w", qualified, err)
	}

	record := ModuleRecord{
		Name:          shortName(qualified),
		QualifiedName: qualified,
		Hierarchy:     hierarchy,
		Package:       strings.Join(hierarchy[:len(hierarchy)-1], "."),
		Summary:       docstring.Parse(docstring.Clean(mod.docstring)).SummaryText(),
		Exports:       mod.exports,
	}

	for _, def := range mod.defs {
		record.Members = append(record.Members, MemberStub{Name: def.name, object: def})
	}

	return record, nil
}

// MemberDetails resolves a member stub into a full record: docstring plus
// kind classification. Detail is nil when the object fits no known kind.
func (in *Introspector) MemberDetails(module ModuleRecord, stub MemberStub) (MemberRecord, error) {
	if stub.object == nil {
		return MemberRecord{}, fmt.Errorf("member %s of %s has no source object", stub.Name, module.QualifiedName)
	}

	qualified := module.QualifiedName + "." + stub.Name
	return MemberRecord{
		Name:          stub.Name,
		QualifiedName: qualified,
		Hierarchy:     strings.Split(qualified, "."),
		Module:        module.QualifiedName,
		Docstring:     docstring.Clean(stub.object.docstring),
		Detail:        classify(stub.object),
	}, nil
}

// isPackage reports whether the dotted name resolves to a directory holding
// an __init__.py file.
func (in *Introspector) isPackage(name string) bool {
	info, err := os.Stat(filepath.Join(in.resolveDir(name), "__init__.py"))
	return err == nil && !info.IsDir()
}

// excluded applies the built-in "tests" filter and the configured patterns
// to a qualified dotted name.
func (in *Introspector) excluded(qualified string) bool {
	if strings.Contains(qualified, "tests") {
		return true
	}
	for _, pattern := range in.excludes {
		if pattern.Match(qualified) {
			return true
		}
	}
	return false
}

func (in *Introspector) resolveDir(name string) string {
	return filepath.Join(in.sourceRoot, filepath.Join(strings.Split(name, ".")...))
}

func shortName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
