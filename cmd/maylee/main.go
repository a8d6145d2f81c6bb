/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Maylee NLP toolkit.
Provides descriptor inspection and validation, model training and
evaluation, and web corpus collection with configuration management.
*/

package main

import (
	"fmt"
	"os"

	maylee "github.com/kleascm/maylee-nlp"
	"github.com/kleascm/maylee-nlp/cmd/maylee/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string

	// Training configuration
	trainData       string
	trainDescriptor string
	trainOutput     string
	trainIterations int
	trainCutoff     int
	trainLanguage   string
	trainDicts      []string
	trainMinNgram   int
	trainMaxNgram   int

	// Evaluation configuration
	evalModel  string
	evalData   string
	evalReport string

	// Collection configuration
	collectURLs     []string
	collectOutput   string
	collectSelector string
	collectWorkers  int
	collectRender   bool

	// Inspection configuration
	inspectSerializers bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "maylee",
		Short: "Maylee - Statistical NLP toolkit with descriptor-driven feature generation",
		Long: `Maylee is a statistical natural language processing toolkit. It trains and
runs name finder, language detector, and document categorizer models, all
built on a descriptor-driven feature generation engine. Models package
their descriptor, weights, and resources into a single portable file.`,
		Version: maylee.Version,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json, custom)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect <descriptor.xml>",
		Short: "Parse a feature generator descriptor and print its elements",
		Long: `Parse a feature generator descriptor and print every element in document
order: generator classes, parameter names, and leaf values. With
--serializers the resource serializer mappings the descriptor declares are
printed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunInspect,
	}
	inspectCmd.Flags().BoolVar(&inspectSerializers, "serializers", false, "Also print discovered serializer mappings")
	viper.BindPFlag("inspect_serializers", inspectCmd.Flags().Lookup("serializers"))
	rootCmd.AddCommand(inspectCmd)

	// Add check command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check <descriptor.xml>",
		Short: "Dry-run a descriptor build and classify any failure",
		Long: `Build the full feature generator pipeline from a descriptor against an
empty resource provider and report exactly which class of problem failed:
malformed markup, unknown generator class, bad parameters, or missing
resources. Useful before committing a descriptor to a long training run.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunCheck,
	})

	// Add train command
	trainCmd := &cobra.Command{
		Use:   "train <name|langdetect|doccat>",
		Short: "Train a model from a corpus file",
		Long: `Train a statistical model and package it into a single model file. Name
finder training reads <START:type> annotated sentences and needs a feature
generator descriptor; language detector training reads tab-separated
language/text lines; categorizer training reads category-first token lines.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"name", "namefind", "langdetect", "doccat"},
		RunE:      commands.RunTrain,
	}

	trainCmd.Flags().StringVar(&trainData, "data", "", "Training corpus file (required)")
	trainCmd.Flags().StringVar(&trainDescriptor, "descriptor", "", "Feature generator descriptor (name finder only)")
	trainCmd.Flags().StringVar(&trainOutput, "output", "model.bin", "Output model file")
	trainCmd.Flags().IntVar(&trainIterations, "iterations", 100, "Training iterations")
	trainCmd.Flags().IntVar(&trainCutoff, "cutoff", 5, "Minimum feature frequency")
	trainCmd.Flags().StringVar(&trainLanguage, "language", "en", "Model language code")
	trainCmd.Flags().StringSliceVar(&trainDicts, "dict", []string{}, "Dictionary resource (key=path, repeatable)")
	trainCmd.Flags().IntVar(&trainMinNgram, "min-ngram", 0, "Minimum character n-gram length (langdetect only)")
	trainCmd.Flags().IntVar(&trainMaxNgram, "max-ngram", 0, "Maximum character n-gram length (langdetect only)")

	trainCmd.MarkFlagRequired("data")

	viper.BindPFlag("train_data", trainCmd.Flags().Lookup("data"))
	viper.BindPFlag("train_descriptor", trainCmd.Flags().Lookup("descriptor"))
	viper.BindPFlag("train_output", trainCmd.Flags().Lookup("output"))
	viper.BindPFlag("train_iterations", trainCmd.Flags().Lookup("iterations"))
	viper.BindPFlag("train_cutoff", trainCmd.Flags().Lookup("cutoff"))
	viper.BindPFlag("train_language", trainCmd.Flags().Lookup("language"))
	viper.BindPFlag("train_dicts", trainCmd.Flags().Lookup("dict"))
	viper.BindPFlag("train_min_ngram", trainCmd.Flags().Lookup("min-ngram"))
	viper.BindPFlag("train_max_ngram", trainCmd.Flags().Lookup("max-ngram"))

	rootCmd.AddCommand(trainCmd)

	// Add evaluate command
	evaluateCmd := &cobra.Command{
		Use:   "evaluate <name|langdetect|doccat>",
		Short: "Evaluate a packaged model against a reference corpus",
		Long: `Load a packaged model, run it over an annotated reference corpus, and
print the scores: precision, recall and F1 for name finding, accuracy for
language detection and categorization. With --report a JSON evaluation
report is written as well.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"name", "namefind", "langdetect", "doccat"},
		RunE:      commands.RunEvaluate,
	}

	evaluateCmd.Flags().StringVar(&evalModel, "model", "", "Packaged model file (required)")
	evaluateCmd.Flags().StringVar(&evalData, "data", "", "Reference corpus file (required)")
	evaluateCmd.Flags().StringVar(&evalReport, "report", "", "Directory for JSON evaluation reports")

	evaluateCmd.MarkFlagRequired("model")
	evaluateCmd.MarkFlagRequired("data")

	viper.BindPFlag("eval_model", evaluateCmd.Flags().Lookup("model"))
	viper.BindPFlag("eval_data", evaluateCmd.Flags().Lookup("data"))
	viper.BindPFlag("eval_report", evaluateCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(evaluateCmd)

	// Add collect command
	collectCmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect a text corpus from web sources",
		Long: `Fetch documents from configured web sources, extract their text content,
deduplicate, and write one text file per document into the corpus
directory. Static pages are fetched over plain HTTP; --render drives a
real browser for script-heavy sites.`,
		RunE: commands.RunCollect,
	}

	collectCmd.Flags().StringSliceVar(&collectURLs, "url", []string{}, "Source URL (repeatable)")
	collectCmd.Flags().StringVar(&collectOutput, "output", "./corpus", "Corpus output directory")
	collectCmd.Flags().StringVar(&collectSelector, "selector", "p", "CSS selector for text extraction")
	collectCmd.Flags().IntVar(&collectWorkers, "workers", 4, "Number of parallel fetch workers")
	collectCmd.Flags().BoolVar(&collectRender, "render", false, "Render pages in a browser before extraction")

	viper.BindPFlag("collect_urls", collectCmd.Flags().Lookup("url"))
	viper.BindPFlag("collect_output", collectCmd.Flags().Lookup("output"))
	viper.BindPFlag("collect_selector", collectCmd.Flags().Lookup("selector"))
	viper.BindPFlag("collect_workers", collectCmd.Flags().Lookup("workers"))
	viper.BindPFlag("collect_render", collectCmd.Flags().Lookup("render"))

	rootCmd.AddCommand(collectCmd)

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Run:   commands.RunVersion,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
