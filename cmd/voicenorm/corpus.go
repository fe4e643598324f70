// CLAUDE:SUMMARY CLI subcommand over the regression corpus: list, failures, add, delete, check.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hazyhaar/voicenorm/pkg/corpus"
)

func cmdCorpus(args []string) {
	fs := flag.NewFlagSet("corpus", flag.ExitOnError)
	load := configFlags(fs)
	input := fs.String("input", "", "utterance to add")
	expected := fs.String("expected", "", "expected normalized output for -input")
	note := fs.String("note", "", "free-form note for -input")
	fs.Parse(args)

	action := fs.Arg(0)
	if action == "" {
		fmt.Println("Usage :")
		fmt.Println("  voicenorm corpus list")
		fmt.Println("  voicenorm corpus failures")
		fmt.Println("  voicenorm corpus -input <text> -expected <text> [-note <text>] add")
		fmt.Println("  voicenorm corpus delete <id>")
		fmt.Println("  voicenorm corpus check")
		return
	}

	cfg, logger := load()
	if cfg.CorpusDB == "" {
		fmt.Fprintln(os.Stderr, "corpus_db is not configured")
		os.Exit(1)
	}
	store, err := corpus.Open(cfg.CorpusDB)
	if err != nil {
		fatal(logger, "open corpus", err)
	}
	defer store.Close()
	if err := store.Seed(corpus.Defaults()); err != nil {
		fatal(logger, "seed corpus", err)
	}

	switch action {
	case "list", "failures":
		list := store.List
		if action == "failures" {
			list = store.Failures
		}
		phrases, err := list()
		if err != nil {
			fatal(logger, "list corpus", err)
		}
		for _, p := range phrases {
			printPhrase(p)
		}

	case "add":
		if *input == "" || *expected == "" {
			fmt.Fprintln(os.Stderr, "add requires -input and -expected")
			os.Exit(1)
		}
		id, err := store.Put(*input, *expected, *note)
		if err != nil {
			fatal(logger, "add phrase", err)
		}
		fmt.Println(id)

	case "delete":
		if fs.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "delete requires a phrase id")
			os.Exit(1)
		}
		if err := store.Delete(fs.Arg(1)); err != nil {
			fatal(logger, "delete phrase", err)
		}

	case "check":
		_, norm := loadNormalizer(cfg, logger)
		rep, err := corpus.NewChecker(store, norm, logger, cfg.CheckInterval).CheckAll(context.Background())
		if err != nil {
			fatal(logger, "check corpus", err)
		}
		fmt.Printf("%d phrases, %d passed, %d failed\n", rep.Total, rep.Passed, rep.Failed)
		if rep.Failed > 0 {
			failures, _ := store.Failures()
			for _, p := range failures {
				printPhrase(p)
			}
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown corpus action %q\n", action)
		os.Exit(1)
	}
}

func printPhrase(p corpus.Phrase) {
	status := "  "
	if p.LastPass != nil {
		status = "ok"
		if !*p.LastPass {
			status = "KO"
		}
	}
	fmt.Printf("%s  %s  %q -> %q\n", status, p.ID, p.Input, p.Expected)
	if p.LastPass != nil && !*p.LastPass && p.LastOutput != nil {
		fmt.Printf("      got %q\n", *p.LastOutput)
	}
}
