package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"tern/internal/source"
)

// ListSourceFiles returns every *.tn file under dir, sorted for a
// deterministic order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tn") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every source file under dir, fanning out across jobs
// workers (0 means GOMAXPROCS). Results come back in path order. Files in
// one directory are independent compilation units; only the driver is
// allowed this parallelism, one lowering pass stays single-threaded.
func CheckDir(ctx context.Context, dir string, jobs int, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Loading mutates the set, so it happens up front on one goroutine.
	fset := source.NewFileSet()
	ids := make([]source.FileID, len(files))
	for i, path := range files {
		id, err := fset.Load(path)
		if err != nil {
			return nil, nil, err
		}
		ids[i] = id
		opts.emit(Event{Path: path, Stage: StageParse, Status: StatusQueued})
	}

	results := make([]CheckResult, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := Check(fset, ids[i], opts)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fset, results, nil
}
