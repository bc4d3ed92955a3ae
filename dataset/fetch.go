package dataset

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultURL is the canonical location of the COLOR benchmark archive.
const DefaultURL = "https://mat.tepper.cmu.edu/COLOR/instances/instances.tar"

var (
	// ErrBadStatus signals a non-2xx response for the archive download.
	ErrBadStatus = errors.New("dataset: unexpected response status")

	// ErrUnsafePath signals an archive entry that would land outside the
	// target directory.
	ErrUnsafePath = errors.New("dataset: archive entry escapes target directory")
)

// Options parameterizes Fetch. The zero value downloads DefaultURL with
// http.DefaultClient; Dir must name the target directory.
type Options struct {
	// URL overrides the archive location.
	URL string

	// Dir is the directory the archive content is extracted into.
	// It is created when missing.
	Dir string

	// Client overrides the HTTP client, mostly for tests.
	Client *http.Client
}

// Fetch downloads the benchmark archive and extracts its regular files
// into opts.Dir, streaming the tar straight off the response body. It
// returns the archive-relative names of the extracted files in archive
// order.
//
// Errors: ErrBadStatus on a non-2xx response; ErrUnsafePath on a
// traversal entry (extraction stops there, files already written stay);
// transport, tar and filesystem failures wrapped with context. A
// canceled ctx aborts the transfer mid-stream.
func Fetch(ctx context.Context, opts Options) ([]string, error) {
	url := opts.URL
	if url == "" {
		url = DefaultURL
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create %s: %w", opts.Dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: request %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("dataset: GET %s: %s: %w", url, resp.Status, ErrBadStatus)
	}

	return extract(tar.NewReader(resp.Body), opts.Dir)
}

// extract unpacks every regular file of the archive into dir.
func extract(tr *tar.Reader, dir string) ([]string, error) {
	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return names, fmt.Errorf("dataset: read archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			// Directories are implied by the file paths; links and
			// specials have no business in a benchmark archive.
			continue
		}

		target, err := safeJoin(dir, hdr.Name)
		if err != nil {
			return names, err
		}
		if err = writeFile(target, tr); err != nil {
			return names, fmt.Errorf("dataset: extract %s: %w", hdr.Name, err)
		}
		names = append(names, hdr.Name)
	}

	return names, nil
}

// safeJoin resolves an archive entry name under dir, rejecting entries
// that climb out of it.
func safeJoin(dir, name string) (string, error) {
	target := filepath.Join(dir, filepath.FromSlash(name))
	if target != dir && !strings.HasPrefix(target, dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("dataset: entry %q: %w", name, ErrUnsafePath)
	}

	return target, nil
}

// writeFile creates path (and its parents) with the content of r.
func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
