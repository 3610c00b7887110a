// checkcatalog validates a catalog file and prints what the storefront
// would see. Useful before deploying a catalog edit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spanishfly666/telegram-nitro-bot/internal/catalog"
)

func main() {
	path := flag.String("catalog", "catalog.yaml", "Catalog file path")
	flag.Parse()

	svc, err := catalog.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	categories := svc.Categories()
	fmt.Printf("%s: %d categories, %d products\n", *path, len(categories), len(svc.Products("")))

	for _, label := range categories {
		fmt.Printf("  %s: %d products\n", label, len(svc.Products(label)))
	}

	// Products outside every listed category still render when no category
	// is selected; flag them so typos in labels get caught.
	listed := make(map[string]bool, len(categories))
	for _, label := range categories {
		listed[label] = true
	}
	for _, p := range svc.Products("") {
		if !listed[p.Category] {
			fmt.Printf("  warning: product %q has unlisted category %q\n", p.Name, p.Category)
		}
	}
}
