package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/lingocoach/internal/database"
	"github.com/example/lingocoach/pkg/models"
)

// ImportConfig defines how vocabulary rows map onto word fields.
type ImportConfig struct {
	FilePath  string // Path to the Excel or CSV file
	Language  string // Language the imported words belong to
	SheetName string // Excel sheet to import
	StartRow  int    // First data row (1-based); earlier rows are headers
	Topic     string // Default topic for rows without their own
}

// DefaultImportConfig returns the default import configuration.
// Expected columns: word, translation, context, topic, difficulty.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName: "Sheet1",
		StartRow:  2,
		Topic:     "General",
	}
}

// ImportResult holds the outcome of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports vocabulary from an Excel or CSV file into the word
// store, creating topics as needed. Imported words feed the new-word pool.
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	importer := newRowImporter(config)

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := importer.process(row, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	importer := newRowImporter(config)

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++
		if err := importer.process(row, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// rowImporter caches topic lookups across rows of one import run.
type rowImporter struct {
	config    ImportConfig
	topicRepo *database.TopicRepository
	wordRepo  *database.WordRepository
	topics    map[string]int64
}

func newRowImporter(config ImportConfig) *rowImporter {
	return &rowImporter{
		config:    config,
		topicRepo: database.NewTopicRepository(),
		wordRepo:  database.NewWordRepository(),
		topics:    make(map[string]int64),
	}
}

func (ri *rowImporter) process(row []string, result *ImportResult) error {
	word := cell(row, 0)
	translation := cell(row, 1)
	if word == "" || translation == "" {
		result.Skipped++
		return nil
	}

	topicName := cell(row, 3)
	if topicName == "" {
		topicName = ri.config.Topic
	}
	topicID, err := ri.topicID(topicName)
	if err != nil {
		return err
	}

	difficulty := 5
	if d, err := strconv.Atoi(cell(row, 4)); err == nil && d >= 1 && d <= 10 {
		difficulty = d
	}

	entry := &models.Word{
		Word:        word,
		Language:    ri.config.Language,
		Translation: translation,
		Context:     cell(row, 2),
		TopicID:     topicID,
		Difficulty:  difficulty,
	}
	if err := ri.wordRepo.Create(entry); err != nil {
		// Unique constraint on (word, language, topic) makes re-imports safe
		result.Skipped++
		return nil
	}
	result.Created++
	return nil
}

func (ri *rowImporter) topicID(name string) (int64, error) {
	key := strings.ToLower(name)
	if id, ok := ri.topics[key]; ok {
		return id, nil
	}
	topic, err := ri.topicRepo.GetOrCreate(name, ri.config.Language)
	if err != nil {
		return 0, err
	}
	ri.topics[key] = topic.ID
	return topic.ID, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
