/*
Command llversion prints the list families compiled into this module, together with
their version tags.

Usage:

	llversion [-yaml] [-require name@major.minor.patch[,…]]

With -require, llversion checks that each named family is compiled in with a version
compatible to the one given, and exits with status 1 otherwise.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/linkedlists"
	"github.com/npillmayer/linkedlists/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("llversion", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asYAML := fs.Bool("yaml", false, "print modules as YAML")
	require := fs.String("require", "", "comma-separated list of name@version requirements")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *require != "" {
		if err := checkRequirements(*require); err != nil {
			fmt.Fprintln(stderr, "llversion:", err)
			return 1
		}
	}
	if *asYAML {
		out, err := linkedlists.Manifest()
		if err != nil {
			fmt.Fprintln(stderr, "llversion:", err)
			return 1
		}
		stdout.Write(out)
		return 0
	}
	for _, m := range linkedlists.Modules() {
		experimental := ""
		if m.Version.Experimental() {
			experimental = " (experimental)"
		}
		fmt.Fprintf(stdout, "%-6s %s%s\n", m.Name, m.Version, experimental)
	}
	return 0
}

func checkRequirements(reqs string) error {
	for _, req := range strings.Split(reqs, ",") {
		name, tag, found := strings.Cut(strings.TrimSpace(req), "@")
		if !found {
			return fmt.Errorf("requirement %q: expected name@version", req)
		}
		required, err := version.Parse(tag)
		if err != nil {
			return fmt.Errorf("requirement %q: %w", req, err)
		}
		if err := linkedlists.Require(name, required); err != nil {
			return err
		}
	}
	return nil
}
