// Package main provides a terminal reader for the feed. It talks to a running
// catalog API and keeps this machine's comments and likes in a local overlay
// database, exactly like the browser client keeps them in local storage.
//
// Usage:
//
//	jobeee [flags] feed
//	jobeee [flags] stories
//	jobeee [flags] aclonas
//	jobeee [flags] thread <id>
//	jobeee [flags] comment <thread-id> <name> <text>
//	jobeee [flags] like <thread-id>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/princeofgodman/figma-jobeee/internal/client"
	"github.com/princeofgodman/figma-jobeee/internal/domain"
	"github.com/princeofgodman/figma-jobeee/internal/overlay"
)

var (
	serverURL  = flag.String("server", "http://localhost:8080", "Catalog API base URL")
	pathPrefix = flag.String("path-prefix", "/api/v1", "Catalog API route prefix")
	dataPath   = flag.String("data-path", "", "Overlay database directory (default: ~/jobeee/data)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	base := *dataPath
	if base == "" {
		base = os.ExpandEnv("$HOME/jobeee/data")
	}
	if err := os.MkdirAll(base, 0o750); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	backend, err := overlay.OpenSQLite(filepath.Join(base, "overlay.db"))
	if err != nil {
		log.Fatalf("Failed to open overlay database: %v", err)
	}
	defer backend.Close()

	c := client.New(*serverURL, *pathPrefix, overlay.New(backend, logger), logger)
	ctx := context.Background()

	if err := run(ctx, c, flag.Args()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {
	switch args[0] {
	case "feed":
		view, err := c.Load(ctx)
		if err != nil {
			return err
		}
		printFeed(view.Feed)
		return nil

	case "stories":
		stories, err := c.Stories(ctx)
		if err != nil {
			return err
		}
		for _, s := range stories {
			name := "unknown"
			if s.User != nil {
				name = s.User.Name
			}
			fmt.Printf("%-16s %s\n", s.ID, name)
		}
		return nil

	case "aclonas":
		aclonas, err := c.Aclonas(ctx)
		if err != nil {
			return err
		}
		for _, a := range aclonas {
			company := ""
			if a.Company != nil {
				company = a.Company.Name
			}
			fmt.Printf("%-12s %s (%s)\n", a.ID, a.Title, company)
		}
		return nil

	case "thread":
		if len(args) < 2 {
			return fmt.Errorf("usage: thread <id>")
		}
		detail, err := c.Thread(ctx, args[1])
		if err != nil {
			return err
		}
		printThread(detail)
		return nil

	case "comment":
		if len(args) < 4 {
			return fmt.Errorf("usage: comment <thread-id> <name> <text>")
		}
		comment, err := c.AddComment(args[1], args[2], strings.Join(args[3:], " "), "")
		if err != nil {
			return err
		}
		fmt.Printf("Added local comment %s\n", comment.ID)
		return nil

	case "like":
		if len(args) < 2 {
			return fmt.Errorf("usage: like <thread-id>")
		}
		likes, err := c.LikeThread(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Liked. %d local likes on %s\n", likes, args[1])
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printFeed(items []domain.FeedItem) {
	for _, item := range items {
		company := ""
		if item.Data.Company != nil {
			company = item.Data.Company.Name
		}
		fmt.Printf("%-8s %-20s %-14s %s (%d likes, %d comments)\n",
			item.Type, item.ID, company, item.Data.Title, item.Data.LikeCount, item.Data.CommentCount)
	}
}

func printThread(detail *domain.ThreadDetail) {
	company := ""
	if detail.Company != nil {
		company = " @ " + detail.Company.Name
	}
	fmt.Printf("%s%s\n", detail.Title, company)
	fmt.Printf("%d likes, %d comments\n\n", detail.LikeCount, detail.CommentCount)

	for _, c := range detail.Comments {
		origin := ""
		if c.IsLocal() {
			origin = " (you)"
		}
		fmt.Printf("  %s%s: %s\n", c.UserName, origin, c.Content)
	}
}
