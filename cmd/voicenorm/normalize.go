package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hazyhaar/voicenorm/pkg/voicenorm"
)

func cmdNormalize(args []string) {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	load := configFlags(fs)
	asJSON := fs.Bool("json", false, "print the analysis (rewrites) as JSON lines")
	fs.Parse(args)

	cfg, logger := load()
	_, norm := loadNormalizer(cfg, logger)

	if fs.NArg() > 0 {
		if err := printNormalized(os.Stdout, norm, strings.Join(fs.Args(), " "), *asJSON); err != nil {
			fatal(logger, "write", err)
		}
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := printNormalized(os.Stdout, norm, sc.Text(), *asJSON); err != nil {
			fatal(logger, "write", err)
		}
	}
	if err := sc.Err(); err != nil {
		fatal(logger, "read stdin", err)
	}
}

func printNormalized(w io.Writer, norm *voicenorm.Normalizer, text string, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, norm.Normalize(text))
		return err
	}
	return json.NewEncoder(w).Encode(norm.Analyze(text))
}
