//go:build ignore
// +build ignore

// Download fetches the Unicode test and data files used by the conformance
// tests into folder ucd. Run with
//
//   go run download.go
//
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const ucdBase = "https://www.unicode.org/Public/15.1.0/ucd/"

var ucdFiles = []string{
	"auxiliary/LineBreakTest.txt",
	"auxiliary/GraphemeBreakTest.txt",
	"Scripts.txt",
	"PropertyValueAliases.txt",
}

func main() {
	for _, name := range ucdFiles {
		if err := download(ucdBase+name, filepath.Join("ucd", filepath.Base(name))); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
			os.Exit(1)
		}
	}
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return writeFile(path, resp.Body)
}

func writeFile(path string, rc io.Reader) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
