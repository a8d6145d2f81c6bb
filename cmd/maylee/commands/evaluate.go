/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluate.go
Description: Evaluate command implementation. Loads a packaged model, runs
it over a reference corpus, prints the scores, and optionally writes a JSON
evaluation report.
*/

package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/kleascm/maylee-nlp/pkg/doccat"
	"github.com/kleascm/maylee-nlp/pkg/eval"
	"github.com/kleascm/maylee-nlp/pkg/langdetect"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/kleascm/maylee-nlp/pkg/namefind"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunEvaluate scores a packaged model against a reference corpus
func RunEvaluate(cmd *cobra.Command, args []string) error {
	fmt.Println("📏 Maylee - Model Evaluation")
	fmt.Println("============================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	task := args[0]
	modelPath := viper.GetString("eval_model")
	dataPath := viper.GetString("eval_data")

	fmt.Printf("Task:   %s\n", task)
	fmt.Printf("Model:  %s\n", modelPath)
	fmt.Printf("Corpus: %s\n", dataPath)
	fmt.Println()

	p, err := model.ReadPackageFile(modelPath)
	if err != nil {
		return fmt.Errorf("failed to read model package: %w", err)
	}

	data, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("failed to open evaluation corpus: %w", err)
	}
	defer data.Close()

	var report *eval.EvaluationReport
	switch task {
	case namefind.ModelType, "name":
		report, err = evaluateNameFinder(p, data)
	case langdetect.ModelType:
		report, err = evaluateLanguageDetector(p, data)
	case doccat.ModelType:
		report, err = evaluateCategorizer(p, data)
	default:
		return fmt.Errorf("unknown model type %q, want name, langdetect or doccat", task)
	}
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	report.Model = p.Manifest.ID

	logger := logrus.StandardLogger()
	logger.WithFields(logrus.Fields{
		"task":    report.Task,
		"samples": report.Samples,
	}).Info("Evaluation completed")

	fmt.Printf("Samples: %d\n", report.Samples)
	names := make([]string, 0, len(report.Scores))
	for name := range report.Scores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-10s %.4f\n", name, report.Scores[name])
	}

	if reportDir := viper.GetString("eval_report"); reportDir != "" {
		path, err := eval.WriteReport(reportDir, report)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Println()
		fmt.Printf("📄 Report written to %s\n", path)
	}

	fmt.Println("✨ Evaluation completed!")
	return nil
}

// evaluateNameFinder scores decoded spans against the annotated reference
func evaluateNameFinder(p *model.Package, data *os.File) (*eval.EvaluationReport, error) {
	finder, err := namefind.Load(p)
	if err != nil {
		return nil, err
	}
	evaluator := namefind.NewEvaluator(finder)
	if err := evaluator.Evaluate(namefind.NewSampleStreamReader(data)); err != nil {
		return nil, err
	}
	return evaluator.Report(), nil
}

// evaluateLanguageDetector scores predicted languages against the reference
func evaluateLanguageDetector(p *model.Package, data *os.File) (*eval.EvaluationReport, error) {
	detector, err := langdetect.Load(p)
	if err != nil {
		return nil, err
	}
	evaluator := langdetect.NewEvaluator(detector)
	if err := evaluator.Evaluate(langdetect.NewSampleStreamReader(data)); err != nil {
		return nil, err
	}
	return evaluator.Report(), nil
}

// evaluateCategorizer scores predicted categories against the reference
func evaluateCategorizer(p *model.Package, data *os.File) (*eval.EvaluationReport, error) {
	categorizer, err := doccat.Load(p)
	if err != nil {
		return nil, err
	}
	evaluator := doccat.NewEvaluator(categorizer)
	if err := evaluator.Evaluate(doccat.NewSampleStreamReader(data)); err != nil {
		return nil, err
	}
	return evaluator.Report(), nil
}
