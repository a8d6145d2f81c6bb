/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: train.go
Description: Train command implementation. Reads a training corpus, fits the
requested model type (name finder, language detector, or document
categorizer), and writes the packaged model to disk.
*/

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/maylee-nlp/pkg/doccat"
	"github.com/kleascm/maylee-nlp/pkg/langdetect"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/kleascm/maylee-nlp/pkg/namefind"
	"github.com/kleascm/maylee-nlp/pkg/train"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunTrain trains the requested model type from a corpus file
func RunTrain(cmd *cobra.Command, args []string) error {
	fmt.Println("🧠 Maylee - Model Training")
	fmt.Println("==========================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	task := args[0]
	dataPath := viper.GetString("train_data")
	outputPath := viper.GetString("train_output")
	params := train.Params{
		Iterations: viper.GetInt("train_iterations"),
		Cutoff:     viper.GetInt("train_cutoff"),
	}
	language := viper.GetString("train_language")

	fmt.Printf("Task:       %s\n", task)
	fmt.Printf("Corpus:     %s\n", dataPath)
	fmt.Printf("Output:     %s\n", outputPath)
	fmt.Printf("Iterations: %d\n", params.Iterations)
	fmt.Printf("Cutoff:     %d\n", params.Cutoff)
	fmt.Println()

	data, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("failed to open training corpus: %w", err)
	}
	defer data.Close()

	logger := logrus.StandardLogger()
	start := time.Now()

	var p *model.Package
	switch task {
	case namefind.ModelType, "name":
		p, err = trainNameFinder(data, language, params, logger)
	case langdetect.ModelType:
		p, err = trainLanguageDetector(data, params, logger)
	case doccat.ModelType:
		p, err = trainCategorizer(data, language, params, logger)
	default:
		return fmt.Errorf("unknown model type %q, want name, langdetect or doccat", task)
	}
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if err := model.WritePackageFile(outputPath, p); err != nil {
		return fmt.Errorf("failed to write model package: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"model_id":   p.Manifest.ID,
		"model_type": p.Manifest.Type,
		"path":       outputPath,
		"duration":   time.Since(start),
	}).Info("Model saved")

	fmt.Println()
	fmt.Printf("📦 Model ID: %s\n", p.Manifest.ID)
	fmt.Printf("📦 Entries:  %v\n", p.Names())
	fmt.Printf("⏱️  Duration: %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Println("✨ Training completed!")
	return nil
}

// trainNameFinder trains a name finder from annotated sentences
func trainNameFinder(data *os.File, language string, params train.Params, logger *logrus.Logger) (*model.Package, error) {
	descriptorPath := viper.GetString("train_descriptor")
	if descriptorPath == "" {
		return nil, fmt.Errorf("name finder training needs --descriptor")
	}
	descriptor, err := os.ReadFile(descriptorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	resources, err := loadDictionaries(viper.GetStringSlice("train_dicts"))
	if err != nil {
		return nil, err
	}

	samples := namefind.NewSampleStreamReader(data)
	return namefind.NewTrainer(params, logger).Train(language, samples, descriptor, resources)
}

// trainLanguageDetector trains a language detector from tab-separated lines
func trainLanguageDetector(data *os.File, params train.Params, logger *logrus.Logger) (*model.Package, error) {
	trainer := langdetect.NewTrainer(params, logger)

	minNgram := viper.GetInt("train_min_ngram")
	maxNgram := viper.GetInt("train_max_ngram")
	if minNgram > 0 || maxNgram > 0 {
		if err := trainer.SetNgramRange(minNgram, maxNgram); err != nil {
			return nil, err
		}
	}

	return trainer.Train(langdetect.NewSampleStreamReader(data))
}

// trainCategorizer trains a document categorizer from category-first lines
func trainCategorizer(data *os.File, language string, params train.Params, logger *logrus.Logger) (*model.Package, error) {
	samples := doccat.NewSampleStreamReader(data)
	return doccat.NewTrainer(params, logger).Train(language, samples)
}
