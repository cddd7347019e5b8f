package cmd

import (
	"context"
	"fmt"
	"os"

	"floorops/core/cleaning"
	"floorops/core/config"
	"floorops/core/database"
	"floorops/core/logger"
	"floorops/core/sheetio"
	"floorops/feature/catalog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanFlags struct {
	in          string
	out         string
	sizeColumn  string
	nameColumn  string
	priceColumn string
}

// cleanCmd runs the cleaning engine non-interactively over a file.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a vendor spreadsheet in one pass",
	Long: `Runs the cleaning engine over a spreadsheet file without an operator:
assigned columns are scanned against the persisted dictionaries and the
cleaned values are written back. Rows the dictionaries cannot resolve pass
through unchanged; use the server UI to reconcile and promote rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd.Context())
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanFlags.in, "in", "", "input spreadsheet (.xlsx/.csv)")
	cleanCmd.Flags().StringVar(&cleanFlags.out, "out", "", "output file; format follows the extension")
	cleanCmd.Flags().StringVar(&cleanFlags.sizeColumn, "size-column", "", "column holding sizes")
	cleanCmd.Flags().StringVar(&cleanFlags.nameColumn, "name-column", "", "column holding product names")
	cleanCmd.Flags().StringVar(&cleanFlags.priceColumn, "price-column", "", "column holding prices")
	_ = cleanCmd.MarkFlagRequired("in")
	_ = cleanCmd.MarkFlagRequired("out")
	RootCmd.AddCommand(cleanCmd)
}

func runClean(ctx context.Context) error {
	if cleanFlags.sizeColumn == "" && cleanFlags.nameColumn == "" && cleanFlags.priceColumn == "" {
		return fmt.Errorf("at least one of --size-column, --name-column, --price-column is required")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	data, err := os.ReadFile(cleanFlags.in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cleanFlags.in, err)
	}
	sheet, err := sheetio.Parse(cleanFlags.in, data)
	if err != nil {
		return err
	}

	session, err := cleaning.NewSession(uuid.NewString(), sheet)
	if err != nil {
		return err
	}

	// The dictionary comes from the database when it is reachable; otherwise
	// the run still normalizes dimensions and prices, just without aliases.
	if db, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Dictionary database unavailable, cleaning without aliases", zap.Error(err))
		session.Dict = cleaning.NewDictionary()
	} else {
		store := catalog.NewStore(db)
		if err := store.Migrate(); err != nil {
			return err
		}
		dict, err := cleaning.LoadDictionary(ctx, store)
		if err != nil {
			return err
		}
		session.Dict = dict
	}

	assignments := map[cleaning.Mode]string{
		cleaning.ModeSize:  cleanFlags.sizeColumn,
		cleaning.ModeName:  cleanFlags.nameColumn,
		cleaning.ModePrice: cleanFlags.priceColumn,
	}
	for mode, column := range assignments {
		if column == "" {
			continue
		}
		if err := session.AssignColumn(mode, column); err != nil {
			return err
		}
	}

	format, err := sheetio.DetectFormat(cleanFlags.out)
	if err != nil {
		return err
	}
	out, err := sheetio.Write(format, session.ExportSheet())
	if err != nil {
		return err
	}
	if err := os.WriteFile(cleanFlags.out, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cleanFlags.out, err)
	}

	counts := map[cleaning.Status]int{}
	for _, row := range session.Rows {
		for _, res := range row.Results {
			counts[res.Status]++
		}
	}
	logg.Info("Cleaning finished",
		zap.String("in", cleanFlags.in),
		zap.String("out", cleanFlags.out),
		zap.Int("rows", len(session.Rows)),
		zap.Int("matched", counts[cleaning.StatusMatched]),
		zap.Int("new", counts[cleaning.StatusNew]),
		zap.Int("unknown", counts[cleaning.StatusUnknown]),
	)
	return nil
}
