package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"floorops/core/config"
	"floorops/core/database"
	"floorops/feature/catalog"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// dictionaryCmd groups the dictionary maintenance commands.
var dictionaryCmd = &cobra.Command{
	Use:   "dictionary",
	Short: "Inspect and seed the cleaning dictionaries",
}

var dictionaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Dump the dictionary contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return runDictionaryList(cmd.Context(), store)
	},
}

var seedFlags struct {
	file string
	kind string
}

var dictionarySeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Bulk-load alias edges from a CSV file",
	Long: `Reads a two-column CSV (alias text, mapped value) and registers every row
as a size or product alias. Existing edges are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return runDictionarySeed(cmd.Context(), store)
	},
}

var dictionarySchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the dictionary table layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		return runDictionarySchema(db)
	},
}

func init() {
	dictionarySeedCmd.Flags().StringVar(&seedFlags.file, "file", "", "CSV file with alias,mapped columns")
	dictionarySeedCmd.Flags().StringVar(&seedFlags.kind, "kind", "size", "alias kind: size or product")
	_ = dictionarySeedCmd.MarkFlagRequired("file")

	dictionaryCmd.AddCommand(dictionaryListCmd)
	dictionaryCmd.AddCommand(dictionarySeedCmd)
	dictionaryCmd.AddCommand(dictionarySchemaCmd)
	RootCmd.AddCommand(dictionaryCmd)
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("dictionary database unavailable: %w", err)
	}
	return db, nil
}

func openStore() (*catalog.Store, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	store := catalog.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

func runDictionaryList(ctx context.Context, store *catalog.Store) error {
	sizes, err := store.ListSizes(ctx)
	if err != nil {
		return err
	}
	sizeAliases, err := store.ListSizeAliases(ctx)
	if err != nil {
		return err
	}
	products, err := store.ListProducts(ctx)
	if err != nil {
		return err
	}
	productAliases, err := store.ListProductAliases(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Sizes (%d):\n", len(sizes))
	for _, s := range sizes {
		fmt.Printf("  %s\n", s.Label)
	}
	fmt.Printf("\nSize aliases (%d):\n", len(sizeAliases))
	for _, a := range sizeAliases {
		fmt.Printf("  %s -> %s\n", a.Text, a.MappedSize)
	}
	fmt.Printf("\nProducts (%d):\n", len(products))
	for _, p := range products {
		fmt.Printf("  %s\n", p.Name)
	}
	fmt.Printf("\nProduct aliases (%d):\n", len(productAliases))
	for _, a := range productAliases {
		fmt.Printf("  %s -> %s\n", a.Text, a.MappedName)
	}
	return nil
}

func runDictionarySeed(ctx context.Context, store *catalog.Store) error {
	if seedFlags.kind != "size" && seedFlags.kind != "product" {
		return fmt.Errorf("unknown alias kind %q (want size or product)", seedFlags.kind)
	}

	f, err := os.Open(seedFlags.file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", seedFlags.file, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", seedFlags.file, err)
	}

	for i, record := range records {
		text, mapped := record[0], record[1]
		if seedFlags.kind == "size" {
			err = store.CreateSizeAlias(ctx, text, mapped)
		} else {
			err = store.CreateProductAlias(ctx, text, mapped)
		}
		if err != nil {
			return fmt.Errorf("row %d (%q): %w", i+1, text, err)
		}
	}
	fmt.Printf("Seeded %d %s aliases\n", len(records), seedFlags.kind)
	return nil
}

func runDictionarySchema(db *gorm.DB) error {
	for _, table := range []string{"sizes", "size_aliases", "products", "product_aliases"} {
		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", table)
		for _, col := range columns {
			fmt.Printf("  %-16s %s\n", col.Field, col.Type)
		}
		fmt.Println()
	}
	return nil
}
