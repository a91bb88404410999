// Command extract runs the listing parser once over a text file (or stdin)
// and prints the appraised results as a table. With -db the results are also
// appended to the local store.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/lmittmann/tint"

	"nadlan_radar/internal/domain/entity"
	"nadlan_radar/internal/domain/service/extract"
	"nadlan_radar/internal/domain/service/valuation"
	"nadlan_radar/internal/domain/value"
	"nadlan_radar/internal/infrastructure/persistence"
	"nadlan_radar/pkg/application/connectors"
	"nadlan_radar/pkg/contextx"
)

func main() {
	file := flag.String("file", "", "input text file (default stdin)")
	dbPath := flag.String("db", "", "sqlite path to append results to (optional)")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelWarn,
	}))

	ctx := contextx.WithLogger(context.Background(), log)

	if err := run(ctx, *file, *dbPath); err != nil {
		log.Error("extract failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, file, dbPath string) error {
	text, err := readInput(file)
	if err != nil {
		return err
	}

	catalog := value.DefaultCatalog()
	extractor := extract.New(catalog, extract.DefaultBounds())
	appraiser := valuation.NewAppraiser(catalog)

	listings := extractor.Extract(text)

	appraised := make([]entity.AppraisedListing, 0, len(listings))
	for _, listing := range listings {
		appraised = append(appraised, entity.AppraisedListing{
			Listing:   listing,
			Valuation: appraiser.Appraise(listing),
		})
	}

	if dbPath != "" {
		if err := persist(ctx, dbPath, appraised); err != nil {
			return err
		}
	}

	printTable(appraised)

	return nil
}

func readInput(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}

	return string(data), nil
}

func persist(ctx context.Context, dbPath string, appraised []entity.AppraisedListing) error {
	sqlite := &connectors.SQLite{Path: dbPath}
	db := sqlite.Client(ctx)
	defer sqlite.Close(ctx)

	if err := persistence.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := persistence.NewListingRepository(db).CreateBatch(ctx, appraised); err != nil {
		return fmt.Errorf("save listings: %w", err)
	}

	return nil
}

func printTable(appraised []entity.AppraisedListing) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "CITY\tTYPE\tROOMS\tFLOOR\tAREA\tPRICE\tFAIR\tDEV%\tCONF")

	for _, a := range appraised {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%d\t%d\t%d\t%+.1f\t%d\n",
			a.Listing.City,
			a.Listing.PropertyType,
			a.Listing.Rooms,
			a.Listing.Floor,
			a.Listing.Area,
			a.Listing.Price,
			a.Valuation.FairValue,
			a.Valuation.DeviationPct,
			a.Listing.Confidence,
		)
	}
}
