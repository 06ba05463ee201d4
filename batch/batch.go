// Package batch drives a full extraction run: enumerate chapter files,
// extract verses from each, and write one JSON array at the end. Failures
// are contained at file granularity; only an unreadable source directory or
// an unwritable output aborts the run.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bible-extractor/extractor"
	"bible-extractor/model"
)

// Options configures one extraction run.
type Options struct {
	SourceDir   string
	OutputPath  string
	Profile     extractor.Profile
	Translation string
	// ReportPath, when set, receives the run report as JSON.
	ReportPath string
}

// SkippedFile records one file that produced no records and why.
type SkippedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report summarizes one run for the skipped-file review pass.
type Report struct {
	RunID       string        `json:"runId"`
	Translation string        `json:"translation"`
	FilesSeen   int           `json:"filesSeen"`
	FilesLoaded int           `json:"filesLoaded"`
	Records     int           `json:"records"`
	Skipped     []SkippedFile `json:"skipped"`
}

func (r *Report) skip(name, reason string) {
	r.Skipped = append(r.Skipped, SkippedFile{Name: name, Reason: reason})
}

// Run processes every chapter file in opts.SourceDir in lexical filename
// order and writes the accumulated records to opts.OutputPath. Note that
// lexical file order is the output order; it does not coincide with
// canonical book order.
func Run(opts Options) (*Report, error) {
	entries, err := os.ReadDir(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading source dir: %w", err)
	}

	report := &Report{
		RunID:       uuid.NewString(),
		Translation: opts.Translation,
		Skipped:     []SkippedFile{},
	}
	records := make([]model.VerseRecord, 0, 1024)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		code, chapter, ok := ParseFilename(name)
		if !ok {
			continue
		}
		report.FilesSeen++

		book, ok := model.BookName(code)
		if !ok {
			log.Warn().Str("file", name).Str("code", code).Msg("unknown book code, skipping")
			report.skip(name, "unknown book code "+code)
			continue
		}

		raw, err := os.ReadFile(filepath.Join(opts.SourceDir, name))
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("read failed, skipping")
			report.skip(name, "read failed: "+err.Error())
			continue
		}

		verses := extractor.Extract(string(raw), opts.Profile)
		if len(verses) == 0 {
			log.Warn().Str("file", name).Msg("no verses extracted, skipping")
			report.skip(name, "no verses extracted")
			continue
		}

		for _, v := range verses {
			records = append(records, model.NewVerseRecord(book, chapter, v.Number, v.Text, opts.Translation))
		}
		report.FilesLoaded++
		log.Debug().Str("file", name).Str("book", book).Int("chapter", chapter).Int("verses", len(verses)).Msg("extracted")
	}
	report.Records = len(records)

	if err := WriteJSON(opts.OutputPath, records); err != nil {
		return nil, err
	}
	if opts.ReportPath != "" {
		if err := WriteJSON(opts.ReportPath, report); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("runId", report.RunID).
		Int("files", report.FilesLoaded).
		Int("records", report.Records).
		Int("skipped", len(report.Skipped)).
		Str("output", opts.OutputPath).
		Msg("extraction finished")
	return report, nil
}

// WriteJSON writes v as indented JSON with HTML escaping off, so non-ASCII
// text and characters like & stay literal in the output file.
func WriteJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %v: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("writing %v: %w", path, err)
	}
	return f.Close()
}
