// Command refs is the CLI tool for the pericope library.
// It parses references, scans text for reference mentions, and
// maintains indexed reference databases.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/pericope/core/books"
	"github.com/FocuswithJustin/pericope/core/pericope"
	"github.com/FocuswithJustin/pericope/core/refparse"
	"github.com/FocuswithJustin/pericope/internal/logging"
	"github.com/FocuswithJustin/pericope/internal/osis"
	"github.com/FocuswithJustin/pericope/internal/refstore"
)

const version = "0.1.0"

// CLI defines the command-line interface for refs.
var CLI struct {
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log level"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log output format"`

	Parse   ParseCmd   `cmd:"" help:"Parse a reference and print its normal form"`
	Scan    ScanCmd    `cmd:"" help:"Scan text for references"`
	Books   BooksCmd   `cmd:"" help:"List known books"`
	Index   IndexGroup `cmd:"" help:"Reference index operations"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// IndexGroup contains index database operations.
type IndexGroup struct {
	Sessions IndexSessionsCmd `cmd:"" help:"List scan sessions in an index"`
	Show     IndexShowCmd     `cmd:"" help:"Show references stored by a session"`
	Book     IndexBookCmd     `cmd:"" help:"Show indexed references within a book"`
}

// ParseCmd parses a single reference.
type ParseCmd struct {
	Reference string `arg:"" help:"Reference text, e.g. 'Gen 1:1-3'"`
	JSON      bool   `help:"Output as JSON"`
}

func (c *ParseCmd) Run() error {
	p, err := refparse.Parse(c.Reference)
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", c.Reference, err)
	}

	if c.JSON {
		first, _ := p.FirstVerse()
		last, _ := p.LastVerse()
		out := struct {
			Canonical string `json:"canonical"`
			Full      string `json:"full"`
			Book      string `json:"book"`
			Verses    int    `json:"verses"`
			First     int    `json:"first_encoded"`
			Last      int    `json:"last_encoded"`
		}{
			Canonical: p.Normalize().String(),
			Full:      p.Render(pericope.FormatFullName),
			Book:      p.Book().Code,
			Verses:    p.VerseCount(),
			First:     first.Encode(),
			Last:      last.Encode(),
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	norm := p.Normalize()
	fmt.Printf("Reference: %s\n", norm)
	fmt.Printf("  Full name: %s\n", norm.Render(pericope.FormatFullName))
	fmt.Printf("  Verses: %d\n", norm.VerseCount())
	if first, ok := norm.FirstVerse(); ok {
		fmt.Printf("  First: %s\n", first)
	}
	if last, ok := norm.LastVerse(); ok {
		fmt.Printf("  Last: %s\n", last)
	}
	return nil
}

// ScanCmd scans a text file for references.
type ScanCmd struct {
	Path  string `arg:"" help:"Input file ('-' for stdin; .xz and .osis handled by suffix)"`
	Index string `help:"Write results to an index database at this path" type:"path"`
	OSIS  bool   `name:"osis" help:"Treat input as an OSIS XML document"`
}

func (c *ScanCmd) Run() error {
	r, closer, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer closer()

	var found []*pericope.Pericope
	if c.OSIS || strings.HasSuffix(c.Path, ".osis") || strings.HasSuffix(c.Path, ".osis.xz") {
		found, err = osis.ExtractRefs(r)
		if err != nil {
			return fmt.Errorf("extracting references: %w", err)
		}
	} else {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		found = refparse.Scan(string(data))
	}

	logging.ScanEvent(c.Path, len(found), len(found))

	for _, p := range found {
		fmt.Println(p)
	}

	if c.Index == "" {
		return nil
	}

	store, err := refstore.Open(c.Index)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}
	defer store.Close()

	session, err := store.BeginSession(c.Path)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	stored := 0
	for _, p := range found {
		if err := store.AddPericope(session.ID, p); err != nil {
			return fmt.Errorf("indexing %s: %w", p, err)
		}
		stored++
	}
	logging.IndexEvent(session.ID, c.Path, stored)
	fmt.Printf("\nIndexed %d reference(s) in session %s\n", stored, session.ID)
	return nil
}

// openInput opens path for reading, decompressing .xz transparently.
func openInput(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, f.Close, nil
	}
	xr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("opening xz stream: %w", err)
	}
	return xr, f.Close, nil
}

// BooksCmd lists known books.
type BooksCmd struct {
	Testament string `enum:"old,new," help:"Restrict to one testament"`
}

func (c *BooksCmd) Run() error {
	list := books.AllBooks()
	if c.Testament != "" {
		list = books.TestamentBooks(books.Testament(c.Testament))
	}
	for _, b := range list {
		fmt.Printf("%2d  %-3s  %-20s  %d chapters\n", b.Number, b.Code, b.Name, b.Chapters)
	}
	return nil
}

// IndexSessionsCmd lists scan sessions in an index.
type IndexSessionsCmd struct {
	DB string `required:"" help:"Index database path" type:"path"`
}

func (c *IndexSessionsCmd) Run() error {
	store, err := refstore.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.Sessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}
	for _, s := range sessions {
		fmt.Printf("%s\n", s.ID)
		fmt.Printf("  Source: %s\n", s.Source)
		fmt.Printf("  Created: %s\n", s.CreatedAt)
	}
	fmt.Printf("Total: %d session(s)\n", len(sessions))
	return nil
}

// IndexShowCmd shows references stored by a session.
type IndexShowCmd struct {
	DB      string `required:"" help:"Index database path" type:"path"`
	Session string `arg:"" help:"Session ID"`
}

func (c *IndexShowCmd) Run() error {
	store, err := refstore.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.BySession(c.Session)
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Println(rec.Reference)
	}
	fmt.Printf("Total: %d reference(s)\n", len(records))
	return nil
}

// IndexBookCmd shows indexed references within one book.
type IndexBookCmd struct {
	DB   string `required:"" help:"Index database path" type:"path"`
	Book string `arg:"" help:"Book name or code"`
}

func (c *IndexBookCmd) Run() error {
	b := books.FindByName(c.Book)
	if b == nil {
		return fmt.Errorf("unknown book: %s", c.Book)
	}

	store, err := refstore.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.InBook(b.Code)
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Println(rec.Reference)
	}
	fmt.Printf("Total: %d reference(s) in %s\n", len(records), b.Name)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("refs version %s (sqlite driver: %s)\n", version, refstore.DriverType())
	return nil
}

func logLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func logFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("refs"),
		kong.Description("Scripture reference parsing and indexing"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logLevel(CLI.LogLevel), logFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
