/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Utility for writing evaluation results to the reports directory.
Handles timestamped, task-specific subdirectory naming. Ensures directories
exist and writes JSON files for easy analysis.
*/

package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// EvaluationReport is the JSON document produced by an evaluation run.
type EvaluationReport struct {
	ID        string                 `json:"id"`
	Task      string                 `json:"task"`
	Model     string                 `json:"model,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Samples   int64                  `json:"samples"`
	Scores    map[string]float64     `json:"scores"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// NewEvaluationReport creates an empty report for a task with a fresh ID.
func NewEvaluationReport(task string) *EvaluationReport {
	return &EvaluationReport{
		ID:        uuid.New().String(),
		Task:      task,
		Timestamp: time.Now().UTC(),
		Scores:    make(map[string]float64),
		Details:   make(map[string]interface{}),
	}
}

// WriteReport writes a report to the reports directory with timestamp and task
func WriteReport(baseDir string, report *EvaluationReport) (string, error) {
	// Ensure reports directory and subdirectory exist
	reportDir := filepath.Join(baseDir, report.Task)
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_namefind.json
	timestamp := report.Timestamp.Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.json", timestamp, report.Task)
	filePath := filepath.Join(reportDir, filename)

	// Marshal report to JSON
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	// Write to file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}
