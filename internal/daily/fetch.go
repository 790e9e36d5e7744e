// apps/go-solver/internal/daily/fetch.go
//
// Today's answer from a published page.
//
// The page is parsed with goquery; every <p> is scanned for a sentence of the
// form "... it's WORD." and the first WORD that is a valid five-letter word wins.

package daily

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// DefaultURL is the page scanned when DAILY_URL is not set.
const DefaultURL = "https://www.tomsguide.com/news/what-is-todays-wordle-answer"

// ErrNoAnswer is returned when no recognizable answer is found.
var ErrNoAnswer = errors.New("could not find today's answer")

var answerPattern = regexp.MustCompile(`(?i)it['’]s ([A-Z]+)\.`)

// Fetch downloads url and extracts today's answer. A nil client means
// http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, url string) (game.Word, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "wordle-solver/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	return Extract(resp.Body)
}

// Extract scans an HTML document for the answer sentence.
func Extract(r io.Reader) (game.Word, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}
	var found game.Word
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		for _, m := range answerPattern.FindAllStringSubmatch(p.Text(), -1) {
			if w, err := game.ParseWord(m[1]); err == nil {
				found = w
				return false
			}
		}
		return true
	})
	if found == "" {
		return "", ErrNoAnswer
	}
	return found, nil
}
