package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/lingocoach/internal/articles"
	"github.com/example/lingocoach/internal/config"
	"github.com/example/lingocoach/internal/database"
	"github.com/example/lingocoach/internal/profile"
	"github.com/example/lingocoach/internal/review"
	"github.com/example/lingocoach/internal/scheduler"
	"github.com/example/lingocoach/internal/vocab"
)

// logNotifier writes due-word reminders to the process log. A chat or push
// transport can replace it without touching the scheduler.
type logNotifier struct{}

func (logNotifier) SendDueReminder(language string, count int) error {
	log.Printf("%d %s words are due for review", count, language)
	return nil
}

func main() {
	importFile := flag.String("import-words", "", "path to a CSV or Excel vocabulary file to import")
	importLang := flag.String("language", "english", "language for imported vocabulary")
	importTopic := flag.String("topic", "", "topic for imported vocabulary")
	articleURL := flag.String("import-article", "", "URL of an article to fetch into the article pool")
	flag.Parse()

	config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importFile != "" {
		runWordImport(*importFile, *importLang, *importTopic)
		return
	}
	if *articleURL != "" {
		runArticleImport(*articleURL)
		return
	}

	log.Printf("Review strategy: %s", review.ForName(config.ReviewStrategy()).Name())

	selector := review.NewSelector(database.NewWordProgressRepository())
	profiles := profile.NewService(database.NewProfileRepository(), database.NewSessionRepository())

	sched := scheduler.New(selector, profiles, logNotifier{})
	sched.Start()
	defer sched.Stop()

	log.Println("Review scheduler started. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v", sig)
}

func runWordImport(path, language, topic string) {
	cfg := vocab.DefaultImportConfig()
	cfg.FilePath = path
	cfg.Language = language
	if topic != "" {
		cfg.Topic = topic
	}

	result, err := vocab.ImportWords(cfg)
	if err != nil {
		log.Fatalf("Failed to import words: %v", err)
	}
	log.Printf("Imported %d of %d words (%d skipped, %d errors) from %s",
		result.Created, result.TotalProcessed, result.Skipped, len(result.Errors), path)
	for _, e := range result.Errors {
		log.Printf("Import error: %s", e)
	}
}

func runArticleImport(url string) {
	pool, err := articles.NewPool(config.ArticlesDir())
	if err != nil {
		log.Fatalf("Failed to open article pool: %v", err)
	}
	name, err := pool.ImportFromURL(url)
	if err != nil {
		log.Fatalf("Failed to import article: %v", err)
	}
	log.Printf("Saved article %q", name)
}
