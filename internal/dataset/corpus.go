package dataset

import (
	"fmt"
	"log/slog"

	"github.com/docsage/docsage/internal/introspect"
)

// Builder orchestrates a full corpus build: walk the package tree, resolve
// every module and member, and synthesize the datasets in a fixed order so a
// fixed allocator seed reproduces the corpus byte for byte.
type Builder struct {
	Introspector *introspect.Introspector
	Generator    *Generator
	Logger       *slog.Logger

	// Progress, when set, is called as each stage advances. Stage names are
	// "packages", "modules" and "members".
	Progress func(stage string, completed, total int)
}

// Build produces the ordered dataset list for the package tree rooted at the
// given dotted name: all package datasets, then all module datasets, then the
// member and member-kind datasets, in walk order.
func (b *Builder) Build(root string) ([]Dataset, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	packages, err := b.Introspector.PackageContents(root)
	if err != nil {
		return nil, err
	}
	logger.Info("enlisted packages recursively", "count", len(packages))

	var modules []introspect.ModuleRecord
	for _, pkg := range packages {
		for _, name := range pkg.Modules {
			module, err := b.Introspector.ModuleContents(pkg.QualifiedName + "." + name)
			if err != nil {
				logger.Warn("failed to read module", "module", name, "error", err)
				continue
			}
			modules = append(modules, module)
		}
	}
	logger.Info("enlisted modules recursively", "count", len(modules))

	var members []introspect.MemberRecord
	for _, module := range modules {
		for _, stub := range module.Members {
			member, err := b.Introspector.MemberDetails(module, stub)
			if err != nil {
				logger.Warn("failed to resolve member", "member", stub.Name, "error", err)
				continue
			}
			members = append(members, member)
		}
	}
	logger.Info("enlisted members recursively", "count", len(members))

	var datasets []Dataset

	for i, pkg := range packages {
		ds, err := b.Generator.PackageDataset(pkg)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.QualifiedName, err)
		}
		datasets = append(datasets, ds)
		b.report("packages", i+1, len(packages))
	}

	for i, module := range modules {
		ds, err := b.Generator.ModuleDataset(module)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", module.QualifiedName, err)
		}
		datasets = append(datasets, ds)
		b.report("modules", i+1, len(modules))
	}

	for i, member := range members {
		memberSets, err := b.Generator.MemberDataset(member)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", member.QualifiedName, err)
		}
		datasets = append(datasets, memberSets...)
		b.report("members", i+1, len(members))
	}

	return datasets, nil
}

func (b *Builder) report(stage string, completed, total int) {
	if b.Progress != nil {
		b.Progress(stage, completed, total)
	}
}

// Flatten folds an ordered dataset list into the JSON corpus shape.
func Flatten(datasets []Dataset) Corpus {
	corpus := Corpus{
		RetrievalDocuments: []string{},
		TuningDocuments:    []Document{},
	}
	for _, ds := range datasets {
		corpus.RetrievalDocuments = append(corpus.RetrievalDocuments, ds.RetrievalChunks...)
		corpus.TuningDocuments = append(corpus.TuningDocuments, ds.TuningDocuments...)
	}
	return corpus
}
