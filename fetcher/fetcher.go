// Package fetcher downloads a translation's chapter HTML files from a
// mirror's index page into a local directory, ready for extraction.
package fetcher

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"bible-extractor/batch"
	"bible-extractor/utils"
)

// Fetch downloads every chapter file linked from indexURL into destDir and
// returns the number of files written. Links are recognized by filename
// shape; duplicates are downloaded once. Individual download failures are
// logged and skipped.
func Fetch(indexURL, destDir string) (int, error) {
	resp, err := utils.Request().Get(indexURL)
	if err != nil {
		return 0, fmt.Errorf("fetching index: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("fetching index: %v", resp.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return 0, fmt.Errorf("parsing index: %w", err)
	}

	base, err := url.Parse(indexURL)
	if err != nil {
		return 0, fmt.Errorf("parsing index url: %w", err)
	}

	seen := make(map[string]bool)
	var hrefs []string
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		name := path.Base(href)
		if _, _, ok := batch.ParseFilename(name); !ok {
			return
		}
		if seen[name] {
			return
		}
		seen[name] = true
		hrefs = append(hrefs, href)
	})
	if len(hrefs) == 0 {
		return 0, fmt.Errorf("no chapter links found at %v", indexURL)
	}
	log.Info().Int("links", len(hrefs)).Str("index", indexURL).Msg("found chapter links")

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, fmt.Errorf("creating dest dir: %w", err)
	}

	count := 0
	for _, href := range hrefs {
		ref, err := url.Parse(href)
		if err != nil {
			log.Warn().Str("href", href).Msg("unparseable link, skipping")
			continue
		}
		target := base.ResolveReference(ref).String()
		name := utils.CleanFileName(path.Base(ref.Path))

		resp, err := utils.Request().Get(target)
		if err != nil {
			log.Warn().Err(err).Str("url", target).Msg("download failed, skipping")
			continue
		}
		if resp.StatusCode() != http.StatusOK {
			log.Warn().Str("url", target).Str("status", resp.Status()).Msg("download failed, skipping")
			continue
		}
		if err := os.WriteFile(filepath.Join(destDir, name), resp.Body(), 0644); err != nil {
			return count, fmt.Errorf("writing %v: %w", name, err)
		}
		count++
		log.Debug().Str("file", name).Msg("downloaded")
	}

	log.Info().Int("files", count).Str("dest", destDir).Msg("fetch finished")
	return count, nil
}
