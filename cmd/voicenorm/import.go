// CLAUDE:SUMMARY CLI subcommand that registers remote word lists and builds lexicon packs from them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/voicenorm/pkg/importer"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	load := configFlags(fs)
	register := fs.String("register", "", "YAML file of sources to register (replaces rows with the same id)")
	source := fs.String("source", "", "source ID to import")
	all := fs.Bool("all", false, "import all registered sources")
	check := fs.Bool("check", false, "HEAD every source URL and record availability")
	setURL := fs.String("set-url", "", "new URL for -source")
	outputDir := fs.String("output-dir", "", "pack output directory (default: lexicon_dir)")
	fs.Parse(args)

	cfg, logger := load()
	if *outputDir == "" {
		*outputDir = cfg.LexiconDir
	}
	sourcesDBPath := cfg.SourcesDB
	if sourcesDBPath == "" {
		sourcesDBPath = filepath.Join(*outputDir, "sources.db")
	}
	if err := os.MkdirAll(filepath.Dir(sourcesDBPath), 0o755); err != nil {
		fatal(logger, "create sources dir", err)
	}

	sdb, err := importer.OpenSourceDB(sourcesDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erreur ouverture %s: %v\n", sourcesDBPath, err)
		os.Exit(1)
	}
	defer sdb.Close()

	if *register != "" {
		sources, err := importer.LoadSources(*register)
		if err != nil {
			fatal(logger, "register", err)
		}
		for _, src := range sources {
			if err := sdb.Put(src); err != nil {
				fatal(logger, "register "+src.ID, err)
			}
			fmt.Printf("[%s] enregistrée\n", src.ID)
		}
	}

	if *setURL != "" {
		if *source == "" {
			fmt.Fprintln(os.Stderr, "-set-url requires -source")
			os.Exit(1)
		}
		if err := sdb.SetURL(*source, *setURL); err != nil {
			fatal(logger, "set url", err)
		}
		fmt.Printf("[%s] URL -> %s\n", *source, *setURL)
		return
	}

	if *check {
		av, err := importer.NewChecker(sdb, logger, time.Hour).CheckAll(context.Background())
		if err != nil {
			fatal(logger, "check sources", err)
		}
		fmt.Printf("%d sources, %d joignables\n", av.Total, av.Reachable)
		for _, id := range av.Unreachable {
			fmt.Printf("  [%s] injoignable\n", id)
		}
	}

	if !*all && *source == "" {
		listSources(sdb)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	im := importer.New(nil, logger)

	if *all {
		sources, err := sdb.ListSources()
		if err != nil {
			fatal(logger, "list sources", err)
		}
		failed := 0
		for _, src := range sources {
			if !runImport(ctx, im, src, *outputDir) {
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	src, err := sdb.Get(*source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erreur: %v\n", err)
		listSources(sdb)
		os.Exit(1)
	}
	if !runImport(ctx, im, *src, *outputDir) {
		os.Exit(1)
	}
}

func runImport(ctx context.Context, im *importer.Importer, src importer.Source, outputDir string) bool {
	fmt.Printf("[%s] Import en cours...\n", src.ID)
	m, err := im.Import(ctx, src, outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] ERREUR: %v\n", src.ID, err)
		return false
	}
	fmt.Printf("[%s] OK -> %s/%s/ (version %s)\n", src.ID, outputDir, m.ID, m.Version)
	return true
}

func listSources(sdb *importer.SourceDB) {
	sources, err := sdb.ListSources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erreur: %v\n", err)
		return
	}
	fmt.Println("Sources enregistrées :")
	fmt.Println()
	if len(sources) == 0 {
		fmt.Println("  (aucune)")
	}
	for _, src := range sources {
		status := ""
		if src.LastStatus != nil {
			status = fmt.Sprintf("  [%d]", *src.LastStatus)
		}
		if src.LastError != nil && *src.LastError != "" {
			status += "  " + *src.LastError
		}
		fmt.Printf("  %-25s  %s  (-> %s)%s\n", src.ID, src.Description, src.PackID, status)
	}
	fmt.Println()
	fmt.Println("Usage :")
	fmt.Println("  voicenorm import -register sources.yaml")
	fmt.Println("  voicenorm import -source <id> [-output-dir <dir>]")
	fmt.Println("  voicenorm import -all [-output-dir <dir>]")
	fmt.Println("  voicenorm import -check")
	fmt.Println("  voicenorm import -source <id> -set-url <url>")
	fmt.Println()
	fmt.Println("Rechargez le serveur (SIGHUP) après un import.")
}
