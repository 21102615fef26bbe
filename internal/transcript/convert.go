package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// result of one conversion pass
type Summary struct {
	Entries   int
	Rollovers int64
	Elapsed   time.Duration // elapsed time at the last entry, before display wrap
}

// Convert reads transcript lines from r and writes their QDA form to w, one
// flushed line per entry. It stops at the first invalid line; output already
// written for earlier lines is left in w.
func Convert(r io.Reader, w io.Writer) (Summary, error) {
	var summary Summary

	reader := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	normalizer := NewNormalizer()
	lineNum := 0

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return summary, fmt.Errorf(
				"error reading transcript at line %d: %w",
				lineNum+1,
				readErr,
			)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNum++

		line = strings.TrimSuffix(line, "\n")
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		entry, err := ParseLine(line)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.LineNo = lineNum
			}
			return summary, err
		}

		elapsed, err := normalizer.Next(entry)
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", lineNum, err)
		}

		if _, err := out.WriteString(FormatLine(elapsed) + "\n"); err != nil {
			return summary, fmt.Errorf("failed to write output: %w", err)
		}
		if err := out.Flush(); err != nil {
			return summary, fmt.Errorf("failed to write output: %w", err)
		}

		summary.Entries++
		summary.Rollovers = normalizer.Days()
		summary.Elapsed = elapsed.Duration

		if readErr == io.EOF {
			break
		}
	}

	return summary, nil
}

// OutputPath inserts ".qda" before the extension of the input file name, or
// appends it when the file name has none. Directory names are left alone.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		return input + ".qda"
	}
	return strings.TrimSuffix(input, ext) + ".qda" + ext
}

// ConvertFile converts the transcript at inputPath into the file named by
// OutputPath and returns that path.
func ConvertFile(inputPath string) (string, Summary, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return "", Summary{}, fmt.Errorf("couldn't read %s: %w", inputPath, err)
	}
	defer func() {
		_ = in.Close()
	}()

	outputPath := OutputPath(inputPath)
	out, err := os.Create(outputPath)
	if err != nil {
		return "", Summary{}, fmt.Errorf(
			"couldn't create %s: %w",
			outputPath,
			err,
		)
	}

	summary, err := Convert(in, out)
	if err != nil {
		err = fmt.Errorf("%s: %w", inputPath, err)
	}
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("couldn't write %s: %w", outputPath, closeErr)
	}

	return outputPath, summary, err
}
