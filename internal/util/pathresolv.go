//
// Corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const pathDebug = false

// ResolveFile resolves a path to a file, trying (in order) the path as
// given, relative to the working directory, relative to the executable,
// and relative to the user's home directory. Returns an absolute path
// or a not-found error.
func ResolveFile(file string) (string, error) {
	notFound := fmt.Errorf("file could not be found: %s", file)
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if pathDebug {
		log.Println("file not found", file)
	}
	return file, notFound
}

// ResolveFolder resolves a path to a folder using the same search order
// as ResolveFile. The folder is never created.
func ResolveFolder(folder string) (string, error) {
	notFound := fmt.Errorf("folder could not be found: %s", folder)
	folder = filepath.Clean(folder)

	if filepath.IsAbs(folder) {
		if folderExists(folder) {
			return folder, nil
		}
		return folder, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if pathDebug {
		log.Println("folder not found", folder)
	}
	return folder, notFound
}

// ResolveCreateFolder returns a folder path, creating the folder when it
// does not exist. An absolute path is used as given. Of a relative path
// only the last element is used: the folder of that name in the working
// directory, or, when it cannot be created there, in the OS temp
// directory.
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		err := os.MkdirAll(folderPath, 0755)
		return folderPath, err
	}

	dir, _ := os.Getwd()
	candidate := filepath.Join(dir, filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.MkdirAll(candidate, 0755); err == nil {
		return candidate, nil
	}

	candidate = filepath.Join(os.TempDir(), filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	err := os.MkdirAll(candidate, 0755)
	return candidate, err
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsDir()
}
