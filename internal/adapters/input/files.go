// Package input reads the options and keypoints files.
package input

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
)

// ParseError reports a malformed line in an input file. It is never
// retried; malformed user input aborts the run.
type ParseError struct {
	File   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// ReadOptions reads candidate addresses, one per line. Outer whitespace
// is trimmed and empty lines are skipped.
func ReadOptions(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}

	return out, nil
}

// ReadKeypoints reads weighted key locations, one per line: a decimal
// weight, a single space, then the address (internal spaces preserved).
func ReadKeypoints(path string) ([]domain.KeyPoint, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("read keypoints: %w", err)
	}

	out := make([]domain.KeyPoint, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		weightTok, address, _ := strings.Cut(line, " ")

		weight, err := strconv.ParseFloat(weightTok, 64)
		if err != nil {
			return nil, &ParseError{
				File:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("first token %q is not a valid decimal weight", weightTok),
			}
		}
		if weight < 0 {
			return nil, &ParseError{
				File:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("weight %v is negative", weight),
			}
		}
		if address == "" {
			return nil, &ParseError{
				File:   path,
				Line:   i + 1,
				Reason: "missing address after weight",
			}
		}

		out = append(out, domain.KeyPoint{Weight: weight, Address: address})
	}

	return out, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(expandHome(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %q: %w", path, err)
	}

	return lines, nil
}

// expandHome resolves a leading ~ so paths like ~/options.txt work.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
