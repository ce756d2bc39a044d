package download

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ResolvePath returns the file path a download of rawURL should be saved to.
// When dest is an existing directory the file name is taken from the last
// segment of the URL path; otherwise dest is returned unchanged.
func ResolvePath(rawURL, dest string) (string, error) {
	info, err := os.Stat(dest)
	if err != nil || !info.IsDir() {
		return dest, nil
	}

	name, err := FileName(rawURL)
	if err != nil {
		return "", err
	}

	return filepath.Join(dest, name), nil
}

// FileName derives a file name from the path of rawURL. Links ending in
// "/download", as served by SourceForge mirrors, name the file by the
// segment before it.
func FileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}

	p := path.Clean("/" + strings.TrimSuffix(u.Path, "/"))

	name := path.Base(p)
	if name == "download" {
		name = path.Base(path.Dir(p))
	}

	if name == "/" || name == "." || name == "" {
		return "", &Error{Err: ErrNoFileName, Detail: rawURL}
	}

	return name, nil
}
