// Command generate writes a static JSON snapshot of the portfolio API:
//
//	generate [flags] <output-dir>
//
// It produces projects.json (the listing with resolved category labels and
// image URLs), categories.json, and one projects/<id>.json per project.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"araltech.tech/portfolio/internal/config"
	"araltech.tech/portfolio/internal/portfolioapi"
	"araltech.tech/portfolio/internal/services"
)

// detailFetchLimit bounds concurrent project detail requests.
const detailFetchLimit = 4

type snapshotProject struct {
	services.Card
	ImageURL string `json:"image_url,omitempty"`
}

func main() {
	fs := newFlagSet(os.Stderr)
	cfg, err := config.Load(fs, os.Args[1:], nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := portfolioapi.New(cfg.APIBaseURL, &http.Client{}, logger)
	if err := generate(ctx, client, fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

// newFlagSet builds the command's flag set with its usage text on output.
func newFlagSet(output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: generate [flags] <output-dir>")
		fs.PrintDefaults()
	}
	return fs
}

func generate(ctx context.Context, client *portfolioapi.Client, outputDir string, out io.Writer) error {
	projectsDir := filepath.Join(outputDir, "projects")
	if err := os.MkdirAll(projectsDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	listing := services.NewListing()
	if err := listing.Load(ctx, client); err != nil {
		return fmt.Errorf("%s: %w", listing.Message(), err)
	}

	cards := listing.Cards()
	projects := make([]snapshotProject, 0, len(cards))
	for _, card := range cards {
		projects = append(projects, snapshotProject{Card: card, ImageURL: client.ImageURL(card.Project.Image)})
	}
	if err := writeJSON(filepath.Join(outputDir, "projects.json"), projects); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outputDir, "categories.json"), listing.Categories()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d projects and %d categories\n", len(projects), len(listing.Categories()))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchLimit)
	for _, card := range cards {
		id := card.Project.ID
		g.Go(func() error {
			p, err := client.GetProject(gctx, id)
			if err != nil {
				return fmt.Errorf("project %d: %w", id, err)
			}
			return writeJSON(filepath.Join(projectsDir, strconv.Itoa(id)+".json"), snapshotProject{
				Card:     services.Card{Project: *p, CategoryLabel: card.CategoryLabel},
				ImageURL: client.ImageURL(p.Image),
			})
		})
	}
	return g.Wait()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
