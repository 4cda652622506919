package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/reoring/lexema"
)

var (
	okMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓")
	badMark = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗")
	detail  = lipgloss.NewStyle().Faint(true)
)

func main() {
	app := &cli.App{
		Name:  "lexema",
		Usage: "validate lexicon schema documents",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log document loading details",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "validate a lexicon file, or every lexicon under a directory",
				ArgsUsage: "<path> [<path>...]",
				Action:    runCheck,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fileEntry ties a loaded file to the document id it contributed, so
// catalog-level results can be reported per file.
type fileEntry struct {
	path    string
	id      string
	loadErr error
}

func runCheck(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("check needs a file or directory path", 64)
	}
	logger := zap.NewNop()
	if c.Bool("verbose") {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = dev
	}
	defer logger.Sync()

	files, err := collectFiles(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return cli.Exit("no lexicon files found", 64)
	}

	// All files land in one catalog so cross-document references resolve.
	catalog := lexema.NewCatalog()
	entries := make([]*fileEntry, 0, len(files))
	for _, path := range files {
		entries = append(entries, loadFile(catalog, path, logger))
	}

	report := catalog.Validate()

	valid, invalid := 0, 0
	for _, e := range entries {
		switch {
		case e.loadErr != nil:
			invalid++
			fmt.Printf("%s %s\n", badMark, e.path)
			fmt.Printf("    %s\n", detail.Render(e.loadErr.Error()))
		case len(report[e.id]) > 0:
			invalid++
			fmt.Printf("%s %s\n", badMark, e.path)
			for _, msg := range report[e.id] {
				fmt.Printf("    %s\n", detail.Render(msg))
			}
		default:
			valid++
			fmt.Printf("%s %s\n", okMark, e.path)
		}
	}
	fmt.Printf("\n%d valid, %d invalid\n", valid, invalid)
	if invalid > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func loadFile(catalog *lexema.Catalog, path string, logger *zap.Logger) *fileEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		return &fileEntry{path: path, loadErr: err}
	}
	var doc *lexema.Document
	if isYAMLPath(path) {
		doc, err = lexema.ParseDocumentYAML(data)
	} else {
		doc, err = lexema.ParseDocument(data)
	}
	if err != nil {
		return &fileEntry{path: path, loadErr: err}
	}
	if err := catalog.Add(doc); err != nil {
		return &fileEntry{path: path, loadErr: err}
	}
	logger.Debug("loaded lexicon",
		zap.String("path", path),
		zap.String("id", doc.ID),
		zap.Int("defs", len(doc.Defs())))
	return &fileEntry{path: path, id: doc.ID}
}

// collectFiles expands directory arguments into their *.json and
// *.yaml/*.yml files; explicit file arguments are taken as given.
func collectFiles(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return nil
			}
			if isLexiconPath(path) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func isLexiconPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
