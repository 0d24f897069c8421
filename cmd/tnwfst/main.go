// Copyright 2026 Charles University, Faculty of Arts,
//                Department of Linguistics
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/tn-wfst/audit"
	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/fsutil"
	"github.com/czcorpus/tn-wfst/normalizer"
)

var (
	version   string
	build     string
	gitCommit string
)

func main() {
	flag.Usage = func() {
		fmt.Println("\n+-------------------------------------------------------------+")
		fmt.Println("| tnwfst - a Chinese/English/Japanese text/inverse-text        |")
		fmt.Println("|          normalization engine built on a hand-rolled WFST    |")
		fmt.Printf("|                       version %s                         |\n", version)
		fmt.Println("|          (c) Charles University, Faculty of Arts             |")
		fmt.Println("+-------------------------------------------------------------+")
		fmt.Println("\nUsage:")
		fmt.Println("tnwfst --language zh --direction itn --text \"三十五\"")
		fmt.Println("tnwfst --language en --direction itn --file input.txt")
		fmt.Println("tnwfst version\n\tshow detailed version information")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("tnwfst %s\nbuild date: %s\nlast commit: %s\n", version, build, gitCommit)
		return
	}

	language := flag.String("language", "zh", "language grammar to use (zh, en, ja)")
	direction := flag.String("direction", "itn", "normalization direction (tn, itn)")
	text := flag.String("text", "", "a single string to normalize")
	file := flag.String("file", "", "path to a file to normalize, one input per line")
	cacheDir := flag.String("cache_dir", "", "directory for the compiled-grammar cache (empty disables caching)")
	overwriteCache := flag.Bool("overwrite_cache", false, "ignore any existing cache and rebuild the grammar")
	auditDBType := flag.String("audit_db_type", "", "audit log backend (sqlite, mysql, empty disables audit logging)")
	auditDBPath := flag.String("audit_db_path", "", "sqlite audit log path")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")

	def := classes.DefaultOptions()
	enableStandaloneNumber := flag.Bool("enable_standalone_number", def.EnableStandaloneNumber, "tag bare cardinal numbers outside of money/date/time context")
	enable0To9 := flag.Bool("enable_0_to_9", def.Enable0To9, "accepted for compatibility; has no effect on the output")
	enableMillion := flag.Bool("enable_million", def.EnableMillion, "tag the Chinese 万/ten-thousand cardinal scale")
	removeInterjections := flag.Bool("remove_interjections", def.RemoveInterjections, "accepted for compatibility; interjections are not removed")
	removeErhua := flag.Bool("remove_erhua", def.RemoveErhua, "strip the Chinese 儿化 suffix before tagging")
	traditionalToSimple := flag.Bool("traditional_to_simple", def.TraditionalToSimple, "accepted for compatibility; traditional characters are not converted")
	removePuncts := flag.Bool("remove_puncts", def.RemovePuncts, "strip punctuation from the output")
	fullToHalf := flag.Bool("full_to_half", def.FullToHalf, "fold fullwidth characters to halfwidth before tagging")
	tagOOV := flag.Bool("tag_oov", def.TagOOV, "mark fallback characters with an oov field")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *text == "" && *file == "" {
		fmt.Fprintln(os.Stderr, "ERROR: one of --text or --file is required")
		flag.Usage()
		os.Exit(1)
	}

	if *cacheDir != "" && *overwriteCache {
		cachePath := filepath.Join(*cacheDir, *language+"_"+*direction+".cache")
		if fsutil.IsFile(cachePath) {
			if err := os.Remove(cachePath); err != nil {
				log.Fatal().Err(err).Msg("failed to remove existing cache file")
			}
		}
	}

	conf := normalizer.Config{
		Language:  *language,
		Direction: *direction,
		CacheDir:  *cacheDir,
		Audit:     audit.DBConf{Type: *auditDBType, Path: *auditDBPath},
		Options: classes.Options{
			EnableStandaloneNumber: *enableStandaloneNumber,
			Enable0To9:             *enable0To9,
			EnableMillion:          *enableMillion,
			RemoveInterjections:    *removeInterjections,
			RemoveErhua:            *removeErhua,
			TraditionalToSimple:    *traditionalToSimple,
			RemovePuncts:           *removePuncts,
			FullToHalf:             *fullToHalf,
			TagOOV:                 *tagOOV,
		},
	}

	n, err := normalizer.New(*language, *direction, conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize normalizer")
	}

	ctx := context.Background()
	exitCode := 0
	if *text != "" {
		if !runOne(ctx, n, *text) {
			exitCode = 1
		}
	}
	if *file != "" {
		scanner, err := fsutil.NewMultiFileScanner(*file)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open --file input")
		}
		for scanner.Scan() {
			if !runOne(ctx, n, scanner.Text()) {
				exitCode = 1
			}
		}
		fileErr := scanner.Err()
		scanner.Close()
		if fileErr != nil {
			log.Fatal().Err(fileErr).Msg("error reading --file input")
		}
	}
	n.Close()
	os.Exit(exitCode)
}

func runOne(ctx context.Context, n *normalizer.Normalizer, line string) bool {
	out, err := n.Normalize(ctx, line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s: %s\n", line, err)
		return false
	}
	fmt.Println(out)
	return true
}
