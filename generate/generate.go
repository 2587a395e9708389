/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate runs the tokens-to-variables pipeline: resolve inputs,
// parse, flatten, format, write.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenvars/config"
	"bennypowers.dev/tokenvars/convert"
	"bennypowers.dev/tokenvars/fs"
	"bennypowers.dev/tokenvars/internal/logger"
	"bennypowers.dev/tokenvars/parser"
	"bennypowers.dev/tokenvars/token"
)

// Sentinel errors classifying pipeline failures.
var (
	// ErrInput indicates the input could not be found, read or parsed.
	ErrInput = errors.New("input error")

	// ErrOutput indicates the output could not be rendered or written.
	ErrOutput = errors.New("output error")
)

// Options configures a pipeline run.
type Options struct {
	// FS is the filesystem to read from and write to. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Root is the directory relative paths are resolved against.
	Root string

	// Input is a token document path or a glob.
	Input string

	// OutputPath is the file to write.
	OutputPath string

	// Convert configures flattening and formatting.
	Convert convert.Options

	// Parser overrides the document parser.
	Parser parser.Parser

	// DryRun renders the output without writing it.
	DryRun bool
}

// Result describes a completed run.
type Result struct {
	// OutputPath is the resolved output file.
	OutputPath string

	// Files lists the input documents in processing order.
	Files []string

	// Declarations holds every declaration, across all inputs.
	Declarations []token.Declaration

	// Output is the rendered file content.
	Output []byte

	// Written is false for dry runs.
	Written bool
}

// Run executes the pipeline.
func Run(ctx context.Context, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	p := opts.Parser
	if p == nil {
		p = parser.NewDocumentParser()
	}

	files, err := config.ExpandPattern(filesystem, opts.Root, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no input files match %s", ErrInput, opts.Input)
	}

	result := &Result{
		OutputPath: resolve(opts.Root, opts.OutputPath),
		Files:      files,
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tree, err := p.ParseFile(filesystem, file, parser.Options{})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInput, err)
		}
		decls := convert.Declarations(tree, opts.Convert)
		logger.Debug("%s: %d declarations", file, len(decls))
		result.Declarations = append(result.Declarations, decls...)
	}

	checkNames(result.Declarations)

	out, err := convert.FormatDeclarations(result.Declarations, opts.Convert.Format, opts.Convert)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	result.Output = out

	if opts.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fs.WriteFileAll(filesystem, result.OutputPath, out); err != nil {
		return nil, fmt.Errorf("%w: failed to write %s: %w", ErrOutput, result.OutputPath, err)
	}
	result.Written = true
	return result, nil
}

// checkNames warns about declarations that will not produce usable variables.
func checkNames(decls []token.Declaration) {
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		if d.Name == "" {
			logger.Warn("token with value %q has an empty name", d.Value)
			continue
		}
		if seen[d.Name] {
			logger.Warn("duplicate variable name %q", d.Name)
		}
		seen[d.Name] = true
	}
}

func resolve(root, path string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
