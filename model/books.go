package model

// bookNames maps the book codes used in chapter filenames (GEN01.htm,
// JHN03.htm, ...) to canonical English book names. The codes follow the
// Paratext/USFM abbreviations used by the source corpus.
var bookNames = map[string]string{
	"GEN": "Genesis", "EXO": "Exodus", "LEV": "Leviticus", "NUM": "Numbers", "DEU": "Deuteronomy",
	"JOS": "Joshua", "JDG": "Judges", "RUT": "Ruth", "1SA": "1 Samuel", "2SA": "2 Samuel",
	"1KI": "1 Kings", "2KI": "2 Kings", "1CH": "1 Chronicles", "2CH": "2 Chronicles",
	"EZR": "Ezra", "NEH": "Nehemiah", "EST": "Esther", "JOB": "Job", "PSA": "Psalms",
	"PRO": "Proverbs", "ECC": "Ecclesiastes", "SNG": "Song of Solomon", "ISA": "Isaiah",
	"JER": "Jeremiah", "LAM": "Lamentations", "EZK": "Ezekiel", "DAN": "Daniel",
	"HOS": "Hosea", "JOL": "Joel", "AMO": "Amos", "OBA": "Obadiah", "JON": "Jonah",
	"MIC": "Micah", "NAM": "Nahum", "HAB": "Habakkuk", "ZEP": "Zephaniah", "HAG": "Haggai",
	"ZEC": "Zechariah", "MAL": "Malachi",
	"MAT": "Matthew", "MRK": "Mark", "LUK": "Luke", "JHN": "John", "ACT": "Acts",
	"ROM": "Romans", "1CO": "1 Corinthians", "2CO": "2 Corinthians", "GAL": "Galatians",
	"EPH": "Ephesians", "PHP": "Philippians", "COL": "Colossians", "1TH": "1 Thessalonians",
	"2TH": "2 Thessalonians", "1TI": "1 Timothy", "2TI": "2 Timothy", "TIT": "Titus",
	"PHM": "Philemon", "HEB": "Hebrews", "JAS": "James", "1PE": "1 Peter", "2PE": "2 Peter",
	"1JN": "1 John", "2JN": "2 John", "3JN": "3 John", "JUD": "Jude", "REV": "Revelation",
}

// bookOrder is the canonical 66-book reading order.
var bookOrder = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles",
	"Ezra", "Nehemiah", "Esther", "Job", "Psalms",
	"Proverbs", "Ecclesiastes", "Song of Solomon", "Isaiah",
	"Jeremiah", "Lamentations", "Ezekiel", "Daniel",
	"Hosea", "Joel", "Amos", "Obadiah", "Jonah",
	"Micah", "Nahum", "Habakkuk", "Zephaniah", "Haggai",
	"Zechariah", "Malachi",
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians",
	"Ephesians", "Philippians", "Colossians", "1 Thessalonians",
	"2 Thessalonians", "1 Timothy", "2 Timothy", "Titus",
	"Philemon", "Hebrews", "James", "1 Peter", "2 Peter",
	"1 John", "2 John", "3 John", "Jude", "Revelation",
}

// The first 39 books of bookOrder are the Old Testament.
const oldTestamentBooks = 39

const (
	TestamentOld = "Old"
	TestamentNew = "New"
)

var bookRank = func() map[string]int {
	m := make(map[string]int, len(bookOrder))
	for i, name := range bookOrder {
		m[name] = i + 1
	}
	return m
}()

// BookName resolves a filename book code to its canonical English name.
func BookName(code string) (string, bool) {
	name, ok := bookNames[code]
	return name, ok
}

// BookNumber returns the 1-based rank of a book in canonical reading order,
// or 0 for names outside the canon.
func BookNumber(name string) int {
	return bookRank[name]
}

// IsCanonical reports whether name is one of the 66 canonical books.
func IsCanonical(name string) bool {
	return bookRank[name] != 0
}

// Testament returns "Old" for the first 39 canonical books and "New" for
// everything after Malachi.
func Testament(name string) string {
	if r := bookRank[name]; r >= 1 && r <= oldTestamentBooks {
		return TestamentOld
	}
	return TestamentNew
}
