// Command inventory prints the static host inventory as JSON in the
// dynamic-inventory convention: --list for the full mapping, --host
// for one host's variables.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"user-api-service/internal/inventory"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	switch {
	case len(args) == 1 && args[0] == "--list":
		return emit(inventory.Static())
	case len(args) == 2 && args[0] == "--host":
		return emit(inventory.HostVars(args[1]))
	default:
		return fmt.Errorf("usage: %s --list | --host <hostname>", os.Args[0])
	}
}

func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
