package portal

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTableSelector matches the attendance table of the portal
const DefaultTableSelector = "table.table.table-bordered.table-striped.table-hover"

// ExtractRows returns the trimmed text of every td of every body row of the
// first table matching selector.
func ExtractRows(markup io.Reader, selector string) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(markup)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no element matches %q", ErrTableNotFound, selector)
	}

	var rows [][]string
	table.Find("tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})
		rows = append(rows, cells)
	})
	return rows, nil
}
