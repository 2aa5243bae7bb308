package cli

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/alitto/pond"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/utahta/go-openuri"
)

// stdinName selects standard input in place of a path or URL.
const stdinName = "-"

// result is the outcome of processing one input.
type result struct {
	name string
	out  []byte
	err  error
}

// read returns the content of a local file, an http(s) URL or stdin.
func (a *app) read(name string) ([]byte, error) {
	if name == stdinName {
		b, err := io.ReadAll(os.Stdin)
		return b, errors.Wrap(err, "Read stdin")
	}
	httpClient := &http.Client{Timeout: a.cfg.Timeout}
	rc, err := openuri.Open(name, openuri.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errors.Wrapf(err, "Open %v", name)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	return b, errors.Wrapf(err, "Read %v", name)
}

// each reads every input and applies fn to it on a worker pool. Results are
// returned in input order.
func (a *app) each(names []string, fn func(data []byte) ([]byte, error)) []result {
	workers := lo.Min([]int{a.cfg.Workers, len(names)})
	a.log.Debugf("Processing %d input(s) with %d worker(s)", len(names), workers)

	results := make([]result, len(names))
	pool := pond.New(max(workers, 1), 0, pond.MinWorkers(0))
	for i, name := range names {
		pool.Submit(func() {
			res := result{name: name}
			data, err := a.read(name)
			if err == nil {
				res.out, res.err = fn(data)
			} else {
				res.err = err
			}
			results[i] = res
		})
	}
	pool.StopAndWait()
	return results
}

// failed reports every failed result and returns an error naming how many
// inputs failed, or nil.
func (a *app) failed(results []result) error {
	n := lo.CountBy(results, func(r result) bool { return r.err != nil })
	if n == 0 {
		return nil
	}
	for _, r := range results {
		if r.err != nil {
			report(os.Stderr, r.name, r.err)
		}
	}
	return errors.Newf("%d of %d input(s) failed", n, len(results))
}

// isLocal reports whether name is a local file path rather than stdin or a
// URL.
func isLocal(name string) bool {
	return name != stdinName && !strings.Contains(name, "://")
}

// create opens path for writing, or stdout when path is empty or "-".
func create(path string) (io.WriteCloser, error) {
	if path == "" || path == stdinName {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	return f, errors.Wrapf(err, "Create %v", path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
