/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: collect.go
Description: Collect command implementation. Fetches documents from
configured web sources into the corpus store, deduplicates them, and writes
one text file per document into the corpus directory. Script-heavy sites
can be rendered through a real browser with --render.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunCollect fetches configured sources into a corpus directory
func RunCollect(cmd *cobra.Command, args []string) error {
	fmt.Println("🌐 Maylee - Corpus Collection")
	fmt.Println("=============================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	urls := viper.GetStringSlice("collect_urls")
	if configured := viper.GetStringSlice("collect.urls"); len(urls) == 0 {
		urls = configured
	}
	if len(urls) == 0 {
		return fmt.Errorf("no source URLs: pass --url or set collect.urls in the config")
	}

	outputDir := viper.GetString("collect_output")
	selector := viper.GetString("collect_selector")
	workers := viper.GetInt("collect_workers")
	render := viper.GetBool("collect_render")

	fmt.Printf("Sources:  %d URL(s)\n", len(urls))
	fmt.Printf("Selector: %s\n", selector)
	fmt.Printf("Output:   %s\n", outputDir)
	fmt.Printf("Render:   %v\n", render)
	fmt.Println()

	// Graceful shutdown on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n🛑 Received shutdown signal, stopping collection...")
		cancel()
	}()

	logger := logrus.StandardLogger()

	var sources []corpus.Source
	if render {
		browser := corpus.NewBrowserSource("browser", urls, selector)
		if err := browser.Start(ctx); err != nil {
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Stop()
		sources = append(sources, browser)
	} else {
		sources = append(sources, corpus.NewWebSource("web", urls, selector))
	}

	store := corpus.NewStore()
	collector := corpus.NewCollector(store, logger, workers)

	start := time.Now()
	stats := collector.Collect(ctx, sources)

	if err := writeCorpus(store, outputDir); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}

	fmt.Println()
	fmt.Printf("📊 Documents:  %d fetched, %d added, %d duplicates\n", stats.Documents, stats.Added, stats.Duplicates)
	fmt.Printf("📊 Failures:   %d\n", stats.Failures)
	fmt.Printf("⏱️  Duration:   %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Println("✨ Collection completed!")
	return nil
}

// writeCorpus writes every stored document as one text file named by its id
func writeCorpus(store *corpus.Store, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}

	for _, doc := range store.GetAll() {
		path := filepath.Join(dir, doc.ID+".txt")
		if err := os.WriteFile(path, []byte(doc.Text), 0644); err != nil {
			return fmt.Errorf("failed to write document %s: %w", doc.ID, err)
		}
	}
	return nil
}
