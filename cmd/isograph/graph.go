package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rdfkit/isograph/isograph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <a.nt> <b.nt>",
	Short: "Report whether two flat triple files describe isomorphic graphs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g1, err := readGraphFile(args[0])
		if err != nil {
			return err
		}
		g2, err := readGraphFile(args[1])
		if err != nil {
			return err
		}
		ok, err := isograph.AreIsomorphicDecision(g1, g2)
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	},
}

// readGraphFile reads a minimal "s p o ." flat triple format, one
// statement per line — not a Turtle or N-Triples parser, just enough to
// round-trip the fixtures this tool is meant to exercise. Blank lines and
// '#' comment lines are skipped.
func readGraphFile(path string) (isograph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return isograph.Graph{}, err
	}
	defer f.Close()

	var triples []isograph.Triple
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSuffix(line, ".")
		toks := strings.Fields(line)
		if len(toks) != 3 {
			return isograph.Graph{}, fmt.Errorf("%s:%d: expected 3 tokens, got %d", path, lineNo, len(toks))
		}
		triples = append(triples, isograph.Triple{
			S: parseFlatTerm(toks[0]),
			P: parseFlatTerm(toks[1]),
			O: parseFlatTerm(toks[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return isograph.Graph{}, err
	}
	return isograph.NewGraph(triples...), nil
}

func parseFlatTerm(tok string) isograph.Term {
	switch {
	case strings.HasPrefix(tok, "_:"):
		return isograph.BlankNode{ID: strings.TrimPrefix(tok, "_:")}
	case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
		return isograph.IRI{Value: strings.TrimSuffix(strings.TrimPrefix(tok, "<"), ">")}
	case strings.HasPrefix(tok, `"`):
		return isograph.Literal{Lexical: strings.Trim(tok, `"`)}
	default:
		return isograph.IRI{Value: tok}
	}
}
