package batch

import (
	"regexp"
	"strconv"
)

// Chapter files are named <BOOKCODE><chapter>.htm, e.g. JHN03.htm or
// PSA119.htm. The code match is non-greedy so numbered books like 1CH01.htm
// split as 1CH + 01 and zero-padded chapters like PSA001.htm as PSA + 001.
var chapterFileRe = regexp.MustCompile(`^([A-Z0-9]+?)(\d+)\.htm$`)

// ParseFilename splits a chapter filename into its book code and chapter
// number. ok is false when the name does not have the expected shape or the
// chapter number is zero.
func ParseFilename(name string) (code string, chapter int, ok bool) {
	m := chapterFileRe.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return m[1], n, true
}
