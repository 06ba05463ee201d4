package model

import (
	"fmt"
	"strings"
)

// Verse is one extracted verse before it is enriched with book and chapter
// metadata.
type Verse struct {
	Number int
	Text   string
}

// VerseRecord is the flattened row written to the output JSON array. Field
// names match what the consuming app's data layer expects, so they stay in
// PascalCase on the wire.
type VerseRecord struct {
	Book        string `json:"Book"`
	Chapter     int    `json:"Chapter"`
	Verse       int    `json:"Verse"`
	Text        string `json:"Text"`
	Translation string `json:"Translation"`
	Reference   string `json:"Reference"`
	FullText    string `json:"FullText"`
	Testament   string `json:"Testament"`
	BookNumber  int    `json:"BookNumber"`
}

// NewVerseRecord builds a record for one verse, deriving the denormalized
// reference strings and the testament/rank of the book.
func NewVerseRecord(book string, chapter, verse int, text, translation string) VerseRecord {
	ref := fmt.Sprintf("%s %d:%d", book, chapter, verse)
	return VerseRecord{
		Book:        book,
		Chapter:     chapter,
		Verse:       verse,
		Text:        text,
		Translation: translation,
		Reference:   ref,
		FullText:    fmt.Sprintf("%s: %s", ref, text),
		Testament:   Testament(book),
		BookNumber:  BookNumber(book),
	}
}

// Validate checks a record against the invariants the data layer relies on.
// BookNumber 0 is tolerated: one of the source scripts never ranked books.
func (r VerseRecord) Validate() error {
	if !IsCanonical(r.Book) {
		return fmt.Errorf("unknown book %q", r.Book)
	}
	if r.Chapter < 1 {
		return fmt.Errorf("chapter %d out of range", r.Chapter)
	}
	if r.Verse < 1 {
		return fmt.Errorf("verse %d out of range", r.Verse)
	}
	if r.Text == "" {
		return fmt.Errorf("empty text")
	}
	if strings.ContainsAny(r.Text, "<>") {
		return fmt.Errorf("markup left in text: %q", r.Text)
	}
	if ref := fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse); r.Reference != ref {
		return fmt.Errorf("reference %q, want %q", r.Reference, ref)
	}
	if want := r.Reference + ": " + r.Text; r.FullText != want {
		return fmt.Errorf("fullText does not match reference and text")
	}
	if r.Testament != Testament(r.Book) {
		return fmt.Errorf("testament %q, want %q", r.Testament, Testament(r.Book))
	}
	if r.BookNumber != 0 && r.BookNumber != BookNumber(r.Book) {
		return fmt.Errorf("bookNumber %d, want %d", r.BookNumber, BookNumber(r.Book))
	}
	return nil
}
