package adapters

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"shellpin/internal/core"
	"shellpin/internal/ports"
	"shellpin/internal/types"
)

// DescriptorFileAdapter parses the line-oriented environment descriptor
// format:
//
//	# comment
//	snapshot <url> <revision>
//	input <attr-path>[@qualifier]
//
// Exactly one snapshot line is required; input lines keep their order.
type DescriptorFileAdapter struct{}

func NewDescriptorFileAdapter() DescriptorFileAdapter {
	return DescriptorFileAdapter{}
}

func (a DescriptorFileAdapter) LoadDescriptor(path string) (types.SnapshotLocator, []types.InputSpecifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SnapshotLocator{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("descriptor file not found").
			WithCause(err)
	}
	return a.ParseDescriptor(string(data))
}

func (a DescriptorFileAdapter) ParseDescriptor(text string) (types.SnapshotLocator, []types.InputSpecifier, error) {
	var locator types.SnapshotLocator
	var specifiers []types.InputSpecifier
	haveSnapshot := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for scanner.Scan() {
		line++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "snapshot":
			if haveSnapshot {
				return types.SnapshotLocator{}, nil, syntaxError(line, "duplicate snapshot line")
			}
			if len(fields) != 3 {
				return types.SnapshotLocator{}, nil, syntaxError(line, "snapshot line requires a url and a revision")
			}
			locator = types.SnapshotLocator{
				SourceURL: fields[1],
				Revision:  strings.ToLower(fields[2]),
			}
			haveSnapshot = true
		case "input":
			if len(fields) != 2 {
				return types.SnapshotLocator{}, nil, syntaxError(line, "input line requires exactly one specifier")
			}
			specifier, err := core.ParseSpecifier(fields[1])
			if err != nil {
				return types.SnapshotLocator{}, nil, syntaxError(line, fmt.Sprintf("invalid input specifier: %s", fields[1]))
			}
			specifiers = append(specifiers, specifier)
		default:
			return types.SnapshotLocator{}, nil, syntaxError(line, fmt.Sprintf("unknown directive: %s", fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return types.SnapshotLocator{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan descriptor").
			WithCause(err)
	}
	if !haveSnapshot {
		return types.SnapshotLocator{}, nil, syntaxError(line, "descriptor is missing a snapshot line")
	}
	return locator, specifiers, nil
}

func syntaxError(line int, detail string) error {
	return types.DescriptorSyntaxError{Line: line, Detail: detail}
}

var _ ports.DescriptorPort = DescriptorFileAdapter{}
