package pages

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Position is one job listing discovered under a department filter. The
// record is taken from a single page snapshot and never refreshed: if the
// site changes afterwards, the mismatch surfaces when the apply affordance
// is opened.
type Position struct {
	Title      string
	Department string
	ApplyURL   string
	HasApply   bool
	Removed    bool
}

// ParsePositions extracts the listing rows for one department from a page
// snapshot. It is pure: same HTML in, same positions out.
func ParsePositions(html, department string) ([]Position, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ElementNotFoundError{
			Selector:    JobRow,
			Description: "job listing rows",
			Cause:       err,
		}
	}

	var positions []Position
	doc.Find(JobRow).Each(func(_ int, row *goquery.Selection) {
		dept, _ := row.Attr("data-department")
		if dept != department {
			return
		}

		pos := Position{
			Title:      strings.TrimSpace(row.Find(JobTitleCell).First().Text()),
			Department: dept,
		}

		link := row.Find(ApplyLink).First()
		if link.Length() > 0 && strings.Contains(strings.ToLower(link.Text()), "apply") {
			pos.HasApply = true
			pos.ApplyURL, _ = link.Attr("href")
		}

		pos.Removed = isRemoved(row) || !pos.HasApply

		positions = append(positions, pos)
	})

	return positions, nil
}

// isRemoved checks the card for the stable withdrawn-listing indicators:
// an explicit marker element, or the removal text anywhere in the row.
func isRemoved(row *goquery.Selection) bool {
	if row.Find(RemovedNotice).Length() > 0 {
		return true
	}
	return strings.Contains(strings.ToLower(row.Text()), removedText)
}
