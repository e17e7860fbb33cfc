package main

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"

	"github.com/dctlab/codec/internal/transform"
)

//go:embed default_suite.yaml
var defaultSuiteYAML []byte

// SuiteCase is one row of a benchmark suite: a name and the Parameters to
// run the input image through.
type SuiteCase struct {
	Name      string  `yaml:"name"`
	Quality   float64 `yaml:"quality"`
	Transform string  `yaml:"transform"`
}

// Suite is an ordered list of cases to run against the same input image.
type Suite struct {
	Cases []SuiteCase `yaml:"cases"`
}

// parseTransform maps a suite's or a flag's transform name to a
// transform.Choice.
func parseTransform(name string) (transform.Choice, error) {
	switch strings.ToLower(name) {
	case "fast":
		return transform.Fast, nil
	case "matrix":
		return transform.Matrix, nil
	case "approx":
		return transform.Approx, nil
	case "identity":
		return transform.Identity, nil
	default:
		return 0, fmt.Errorf("dctbench: unrecognized transform %q (want fast, matrix, approx, or identity)", name)
	}
}

// loadDefaultSuite parses the suite embedded at build time, covering a
// representative spread of quality factors and transforms so "dctbench
// -bench" works with no other flags.
func loadDefaultSuite() (Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(defaultSuiteYAML, &s); err != nil {
		return Suite{}, fmt.Errorf("dctbench: parsing embedded default suite: %w", err)
	}
	return s, nil
}

// loadSuiteFile reads a suite from a plain text file: one invocation per
// line, shell-tokenized, in the form "-name <n> -quality <q> -transform
// <t>". Blank lines and lines starting with # are skipped.
func loadSuiteFile(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("dctbench: reading suite file: %w", err)
	}

	var s Suite
	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens, err := shlex.Split(line)
		if err != nil {
			return Suite{}, fmt.Errorf("dctbench: suite file line %d: %w", lineNo+1, err)
		}
		c, err := parseSuiteLine(tokens)
		if err != nil {
			return Suite{}, fmt.Errorf("dctbench: suite file line %d: %w", lineNo+1, err)
		}
		s.Cases = append(s.Cases, c)
	}
	return s, nil
}

// parseSuiteLine interprets already-tokenized "-flag value" pairs into a
// SuiteCase, independent of any particular shell's quoting rules (shlex
// has already handled that).
func parseSuiteLine(tokens []string) (SuiteCase, error) {
	c := SuiteCase{Quality: 1.0, Transform: "fast"}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		next := func() (string, error) {
			i++
			if i >= len(tokens) {
				return "", fmt.Errorf("flag %q needs a value", tok)
			}
			return tokens[i], nil
		}
		switch tok {
		case "-name":
			v, err := next()
			if err != nil {
				return SuiteCase{}, err
			}
			c.Name = v
		case "-quality":
			v, err := next()
			if err != nil {
				return SuiteCase{}, err
			}
			q, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return SuiteCase{}, fmt.Errorf("invalid -quality %q: %w", v, err)
			}
			c.Quality = q
		case "-transform":
			v, err := next()
			if err != nil {
				return SuiteCase{}, err
			}
			c.Transform = v
		default:
			return SuiteCase{}, fmt.Errorf("unrecognized flag %q", tok)
		}
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("q=%.2f/%s", c.Quality, c.Transform)
	}
	return c, nil
}
