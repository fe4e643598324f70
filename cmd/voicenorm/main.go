package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "normalize":
		cmdNormalize(os.Args[2:])
	case "call":
		cmdCall(os.Args[2:])
	case "corpus":
		cmdCorpus(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: voicenorm <command>

Commands:
  serve       Start the HTTP server (and the QUIC chassis when enabled)
  normalize   Normalize text from arguments or stdin
  call        Call an MCP tool over QUIC
  corpus      List, add or check regression phrases
  import      Register and import lexicon packs from remote sources
  version     Print the version
`)
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

// configFlags registers -config on fs and returns a loader to call after Parse.
func configFlags(fs *flag.FlagSet) func() (*config, *slog.Logger) {
	path := fs.String("config", "config.yaml", "path to config file")
	return func() (*config, *slog.Logger) {
		explicit := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" {
				explicit = true
			}
		})
		return mustConfig(*path, explicit)
	}
}
