package loaders

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"
)

// FileBytes reads the whole file named by the variable's value. I/O failures
// come back as plain value errors so that Load reports them against the
// variable that named the file.
func FileBytes(raw string) ([]byte, error) {
	data, err := os.ReadFile(raw)

	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("file not found: %s", raw)
	case errors.Is(err, os.ErrPermission):
		return nil, fmt.Errorf("no permission to read: %s", raw)
	case errors.Is(err, syscall.EISDIR):
		return nil, fmt.Errorf("unexpected directory: %s", raw)
	}

	return nil, err
}

// FileUTF8 reads the file named by the variable's value as UTF-8 text.
func FileUTF8(raw string) (string, error) {
	data, err := FileBytes(raw)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("could not decode as UTF-8: %s", raw)
	}

	return string(data), nil
}

// FileASCII reads the file named by the variable's value as ASCII text.
func FileASCII(raw string) (string, error) {
	data, err := FileBytes(raw)
	if err != nil {
		return "", err
	}

	for _, b := range data {
		if b > 0x7f {
			return "", fmt.Errorf("could not decode as ASCII: %s", raw)
		}
	}

	return string(data), nil
}

// PEMFile reads every PEM-encoded block from the file named by the
// variable's value. Blocks come back verbatim, BEGIN and END lines included,
// each with a trailing newline. A file with no blocks is an error.
func PEMFile(raw string) ([]string, error) {
	return pemBlocks(raw, 0, -1)
}

// PEMFileRange is PEMFile with bounds on the block count. max < 0 means
// unbounded. It returns a loader, so partially applying the bounds composes
// with FieldLoaders:
//
//	FieldLoaders: map[string]envtyped.LoaderFunc{
//		"ca_bundle": envtyped.LoaderFor(loaders.PEMFileRange(1, 5)),
//	}
func PEMFileRange(min, max int) func(string) ([]string, error) {
	return func(raw string) ([]string, error) {
		return pemBlocks(raw, min, max)
	}
}

// PEMData reads a file expected to hold exactly one PEM block.
func PEMData(raw string) (string, error) {
	blocks, err := pemBlocks(raw, 1, 1)
	if err != nil {
		return "", err
	}

	return blocks[0], nil
}

func pemBlocks(raw string, min, max int) ([]string, error) {
	txt, err := FileASCII(raw)
	if err != nil {
		return nil, err
	}

	var blocks []string

	var block []string

	for _, line := range strings.Split(txt, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if len(block) > 0 {
			block = append(block, line)

			if strings.HasPrefix(line, "-----END ") && strings.HasSuffix(line, "-----") {
				blocks = append(blocks, strings.Join(block, "\n")+"\n")
				block = nil
			}

			continue
		}

		if strings.HasPrefix(line, "-----BEGIN ") && strings.HasSuffix(line, "-----") {
			block = append(block, line)
		}
	}

	if len(blocks) == 0 {
		return nil, fmt.Errorf("no valid PEM encoded data found: %s", raw)
	}

	if min == 0 && max < 0 {
		return blocks, nil
	}

	msg := fmt.Sprintf("expected at least %d PEM encoded data: %s", min, raw)
	if max >= 0 {
		msg = fmt.Sprintf("expected between %d and %d PEM encoded data: %s", min, max, raw)
	}

	if len(blocks) < min {
		return nil, errors.New(msg)
	}

	if max >= 0 && max < len(blocks) {
		return nil, errors.New(msg)
	}

	return blocks, nil
}
