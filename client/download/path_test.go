package download

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFileName(t *testing.T) {
	testCases := map[string]struct {
		url    string
		exp    string
		expErr error
	}{
		"plain":        {url: "http://example.test/file.bin", exp: "file.bin"},
		"nested":       {url: "https://example.test/a/b/c.tar.gz", exp: "c.tar.gz"},
		"query":        {url: "https://example.test/pkg.zip?mirror=1", exp: "pkg.zip"},
		"trailing":     {url: "https://example.test/releases/v1/", exp: "v1"},
		"sourceforge":  {url: "https://sourceforge.net/projects/x/files/lib-1.2.7z/download", exp: "lib-1.2.7z"},
		"noPath":       {url: "https://example.test", expErr: ErrNoFileName},
		"rootPath":     {url: "https://example.test/", expErr: ErrNoFileName},
		"onlyDownload": {url: "https://example.test/download", expErr: ErrNoFileName},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := FileName(tc.url)
			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("exp err %v, got: %v", tc.expErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("exp nil err, got: %v", err)
			}

			if got != tc.exp {
				t.Errorf("exp %q, got %q", tc.exp, got)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()

	testCases := map[string]struct {
		url    string
		dest   string
		exp    string
		expErr error
	}{
		"filePath": {
			url:  "http://example.test/file.bin",
			dest: filepath.Join(dir, "out.bin"),
			exp:  filepath.Join(dir, "out.bin"),
		},
		"directory": {
			url:  "http://example.test/file.bin",
			dest: dir,
			exp:  filepath.Join(dir, "file.bin"),
		},
		"directoryNoName": {
			url:    "http://example.test/",
			dest:   dir,
			expErr: ErrNoFileName,
		},
		"missingParentUnchanged": {
			url:  "http://example.test/file.bin",
			dest: filepath.Join(dir, "missing", "out.bin"),
			exp:  filepath.Join(dir, "missing", "out.bin"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ResolvePath(tc.url, tc.dest)
			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("exp err %v, got: %v", tc.expErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("exp nil err, got: %v", err)
			}

			if got != tc.exp {
				t.Errorf("exp %q, got %q", tc.exp, got)
			}
		})
	}
}
