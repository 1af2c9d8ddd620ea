//go:build mage

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// commandFiles matches the sample command files under testdata/.
const commandFiles = "testdata/*.txt"

// Stats prints one JSON record with Go lines of code, split into production
// and tests, and the number of sample command files and the commands in them.
func Stats() error {
	var prodLines, testLines int

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path == "vendor" || path == ".git" || path == binaryDir || strings.HasPrefix(path, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasPrefix(path, "magefiles") {
			return nil
		}
		count, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") {
			testLines += count
		} else {
			prodLines += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	files, commands, err := countCommands(commandFiles)
	if err != nil {
		return err
	}

	line, err := json.Marshal(map[string]int{
		"go_loc_prod":       prodLines,
		"go_loc_test":       testLines,
		"go_loc":            prodLines + testLines,
		"testdata_files":    files,
		"testdata_commands": commands,
	})
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

// countCommands counts the files matching pattern and the commands they
// hold. A command starts at every create, push or pop token.
func countCommands(pattern string) (files, commands int, err error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, 0, err
	}
	for _, path := range matches {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			continue
		}
		files++
		for _, tok := range strings.Fields(string(data)) {
			switch tok {
			case "create", "push", "pop":
				commands++
			}
		}
	}
	return files, commands, nil
}
