// Command pview inspects typespec files: it resolves the declared type
// descriptors and shows the default value the runtime synthesizes for each.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/statelang/machine-runtime/types"
	"github.com/statelang/machine-runtime/typespec"
	"github.com/statelang/machine-runtime/value"
)

func main() {
	var (
		specFile    = flag.String("spec", "", "Path to typespec yaml file")
		typeName    = flag.String("type", "", "Single declared type to show (optional)")
		list        = flag.Bool("list", false, "List declared types and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *specFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: pview -spec <types.yaml> [-type name]")
		fmt.Fprintln(os.Stderr, "       pview -spec <types.yaml> -list")
		fmt.Fprintln(os.Stderr, "       pview -spec <types.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		value.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*specFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*specFile, *typeName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(specFile, typeName string, listOnly bool) error {
	resolved, err := typespec.ParseFile(specFile, builtinRegistry())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	if listOnly {
		for _, name := range names {
			fmt.Printf("%s: %s\n", name, resolved[name])
		}
		return nil
	}

	if typeName != "" {
		t, ok := resolved[typeName]
		if !ok {
			return fmt.Errorf("type %q not declared in %s", typeName, specFile)
		}
		printType(typeName, t)
		return nil
	}

	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}
		printType(name, resolved[name])
	}
	return nil
}

func printType(name string, t *types.Type) {
	fmt.Println(renderHeader(name, t))
	v := value.MkDefault(t)
	defer v.Free()
	fmt.Print(renderTree(v))
}

// builtinRegistry carries the foreign types the inspector understands.
// Specs referencing other foreign types still need the real host program.
func builtinRegistry() *types.Registry {
	reg := types.NewRegistry()
	// text: a plain string payload, handy for examples and demos.
	_ = reg.Register(&types.ForeignType{
		Name:  "text",
		Clone: func(data any) any { return data },
		Free:  func(data any) {},
		Equals: func(a, b any) bool {
			return a.(string) == b.(string)
		},
		Hash: func(data any) uint32 {
			var h uint32 = 2166136261
			for _, c := range []byte(data.(string)) {
				h = (h ^ uint32(c)) * 16777619
			}
			return h
		},
	})
	return reg
}
