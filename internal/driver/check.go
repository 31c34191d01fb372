// Package driver wires the pipeline: load, lex, parse, lower. It owns
// everything outside one file's lowering pass, including parallelism
// across files and the on-disk result cache.
package driver

import (
	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/hir"
	"tern/internal/lexer"
	"tern/internal/parser"
	"tern/internal/project"
	"tern/internal/source"
)

// CheckOptions configure one check run.
type CheckOptions struct {
	// MaxDiagnostics caps the bag; 0 means unbounded.
	MaxDiagnostics int
	// DumpTypes renders the type table after lowering.
	DumpTypes bool
	// Cache, when set, short-circuits unchanged files.
	Cache *DiskCache
	// Events, when set, receives per-file progress notifications.
	Events EventSink
}

// CheckResult is the outcome of checking one file.
type CheckResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Module *hir.Module
	// Dump is the rendered type table when DumpTypes was requested.
	Dump string
	// Cached is set when the result was answered from the disk cache; in
	// that case Module is nil and Rendered carries the diagnostics.
	Cached   bool
	Rendered string
	Broken   bool
}

// Check runs the pipeline on one file already loaded into the set.
func Check(fset *source.FileSet, id source.FileID, opts CheckOptions) CheckResult {
	file := fset.Get(id)
	res := CheckResult{Path: file.Path, FileID: id}

	// The dump flag changes what a payload carries, so it is part of the
	// cache key, not a payload field.
	cacheKey := project.Combine(project.Digest(file.Hash), optionsDigest(opts))
	if opts.Cache != nil {
		if payload, ok := opts.Cache.Get(cacheKey); ok {
			res.Cached = true
			res.Rendered = payload.Diagnostics
			res.Dump = payload.Dump
			res.Broken = payload.Broken
			opts.emit(Event{Path: file.Path, Stage: StageLower, Status: doneStatus(res.Broken)})
			return res
		}
	}

	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 256
	}
	bag := diag.NewBag(maxDiags)
	rep := diag.BagReporter{Bag: bag}

	opts.emit(Event{Path: file.Path, Stage: StageParse, Status: StatusWorking})
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	builder := ast.NewBuilder()
	parsed := parser.ParseFile(lx, builder, parser.Options{Reporter: rep})
	opts.emit(Event{Path: file.Path, Stage: StageLower, Status: StatusWorking})
	mod := hir.Lower(builder, parsed.File, rep)

	bag.Sort()
	res.Bag = bag
	res.Module = mod
	res.Broken = bag.HasErrors()
	res.Rendered = diag.FormatGolden(bag.Items(), fset, true)
	if opts.DumpTypes {
		res.Dump = mod.Table.Dump()
	}

	if opts.Cache != nil {
		opts.Cache.Put(cacheKey, &Payload{
			Schema:      cacheSchemaVersion,
			Diagnostics: res.Rendered,
			Dump:        res.Dump,
			Broken:      res.Broken,
		})
	}
	opts.emit(Event{Path: file.Path, Stage: StageLower, Status: doneStatus(res.Broken)})
	return res
}

func doneStatus(broken bool) Status {
	if broken {
		return StatusError
	}
	return StatusDone
}

func optionsDigest(opts CheckOptions) project.Digest {
	var d project.Digest
	if opts.DumpTypes {
		d[0] = 1
	}
	return d
}

// CheckPath loads one file from disk and checks it.
func CheckPath(fset *source.FileSet, path string, opts CheckOptions) (CheckResult, error) {
	id, err := fset.Load(path)
	if err != nil {
		return CheckResult{Path: path}, err
	}
	return Check(fset, id, opts), nil
}
