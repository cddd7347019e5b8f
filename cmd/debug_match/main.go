package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"floorops/core/cleaning"
	"floorops/core/config"
	"floorops/core/database"
	"floorops/feature/catalog"
)

// Probe the matcher against the live dictionaries:
//
//	go run ./cmd/debug_match size '12 X 24 in.'
func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: debug_match <size|name|price> <raw text>")
		os.Exit(2)
	}
	mode := cleaning.Mode(os.Args[1])
	raw := os.Args[2]
	if !mode.Valid() {
		log.Fatalf("unknown mode %q", os.Args[1])
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	dict := cleaning.NewDictionary()
	if db, err := database.Connect(cfg.Database); err != nil {
		fmt.Printf("database unavailable (%v), matching against empty dictionary\n", err)
	} else {
		store := catalog.NewStore(db)
		if err := store.Migrate(); err != nil {
			log.Fatal(err)
		}
		loaded, err := cleaning.LoadDictionary(context.Background(), store)
		if err != nil {
			log.Fatal(err)
		}
		dict = loaded
	}

	fmt.Printf("dictionary: %d sizes, %d product names (version %d)\n",
		len(dict.Sizes), len(dict.ProductNames), dict.Version)

	result := cleaning.Match(raw, mode, dict)
	fmt.Printf("raw:    %q\n", raw)
	fmt.Printf("mode:   %s\n", mode)
	fmt.Printf("value:  %q\n", result.Value)
	fmt.Printf("status: %s\n", result.Status)
}
