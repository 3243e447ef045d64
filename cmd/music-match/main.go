// Command music-match runs the music taste matching service and its
// maintenance commands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/musicmatch/music-match/internal/catalog"
	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/feature"
	"github.com/musicmatch/music-match/internal/importer"
	"github.com/musicmatch/music-match/internal/training"
	"github.com/musicmatch/music-match/internal/web"
)

const usage = `Usage: music-match <command> [flags]

Commands:
  serve      Start the API server
  init-db    Create database tables
  import     Import songs from the catalog (-query, -limit)
  seed       Generate synthetic songs (-songs, -seed)
  cluster    Train taste clusters (-n, -auto)
`

// defaultSeed fixes seed-data randomness so repeated runs are identical.
const defaultSeed = 42

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("please set the DATABASE_URL environment variable")
	}

	database, err := db.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	switch cmd := os.Args[1]; cmd {
	case "serve":
		return runServe(database, log)
	case "init-db":
		return runInitDB(ctx, database, log)
	case "import":
		return runImport(ctx, database, log)
	case "seed":
		return runSeed(ctx, database, log)
	case "cluster":
		return runCluster(ctx, database, log)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runServe(database *db.DB, log zerolog.Logger) error {
	addr := os.Getenv("MUSICMATCH_ADDR")
	server := web.NewServer(web.ServerConfig{Addr: addr}, database, log)
	return server.Run()
}

func runInitDB(ctx context.Context, database *db.DB, log zerolog.Logger) error {
	if err := database.InitSchema(ctx); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	log.Info().Msg("database initialized")
	return nil
}

func runImport(ctx context.Context, database *db.DB, log zerolog.Logger) error {
	flags := flag.NewFlagSet("import", flag.ExitOnError)
	query := flags.String("query", "", "catalog search query")
	limit := flags.Int("limit", 50, "maximum tracks to import")
	flags.Parse(os.Args[2:])

	if *query == "" {
		return fmt.Errorf("import requires -query")
	}

	cat, source, err := newFeatureSource(ctx, log)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("import requires catalog credentials: %w", catalog.ErrMissingCredentials)
	}

	svc := importer.New(database, cat, source, log)
	result, err := svc.Import(ctx, *query, *limit)
	if err != nil {
		return fmt.Errorf("importing songs: %w", err)
	}

	fmt.Printf("Imported %d songs (%d skipped)\n", result.Imported, result.Skipped)
	return nil
}

func runSeed(ctx context.Context, database *db.DB, log zerolog.Logger) error {
	flags := flag.NewFlagSet("seed", flag.ExitOnError)
	count := flags.Int("songs", importer.DefaultSeedCount, "number of songs to generate")
	seed := flags.Int64("seed", defaultSeed, "random seed")
	flags.Parse(os.Args[2:])

	svc := importer.New(database, nil, feature.NewSyntheticSource(*seed), log)
	result, err := svc.Seed(ctx, *count, *seed)
	if err != nil {
		return fmt.Errorf("seeding songs: %w", err)
	}

	fmt.Printf("Created %d synthetic songs\n", result.Imported)
	return nil
}

func runCluster(ctx context.Context, database *db.DB, log zerolog.Logger) error {
	flags := flag.NewFlagSet("cluster", flag.ExitOnError)
	n := flags.Int("n", 8, "number of clusters")
	auto := flags.Bool("auto", false, "select the cluster count automatically")
	flags.Parse(os.Args[2:])

	svc := training.New(database, log)
	result, err := svc.Run(ctx, training.Options{ClusterCount: *n, Auto: *auto})
	if errors.Is(err, training.ErrNoSongs) {
		return fmt.Errorf("no songs in database; run import or seed first")
	}
	if err != nil {
		return fmt.Errorf("training clusters: %w", err)
	}

	fmt.Print(training.Summary(result))
	return nil
}

// newFeatureSource selects the audio descriptor source once at startup:
// catalog-backed when credentials are configured, synthetic otherwise.
func newFeatureSource(ctx context.Context, log zerolog.Logger) (*catalog.Client, feature.Source, error) {
	cat, err := catalog.NewFromEnv(ctx)
	if errors.Is(err, catalog.ErrMissingCredentials) {
		log.Warn().Msg("catalog credentials not set, using synthetic audio features")
		return nil, feature.NewSyntheticSource(defaultSeed), nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("creating catalog client: %w", err)
	}
	return cat, cat, nil
}
