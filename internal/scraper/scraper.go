package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mbruckner/tourwatch/internal/tour"
)

const (
	ListingURL = "https://www.alpenverein-heidelberg.de/index.php?inhalt=tourensucheergebnis"
	UserAgent  = "tourwatch/1.0 (github.com/mbruckner/tourwatch)"
	Timeout    = 30 * time.Second
)

// headerMarker identifies the start of a tour entry in the listing markup.
const headerMarker = "background-color:silver"

// datePattern captures a begin date and an optional end date from the first
// header line. Trailing content like ", 1 Tage" is ignored.
var datePattern = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{2})\s*(?:-\s*(\d{2}\.\d{2}\.\d{2}))?`)

// Scraper fetches and parses the tour listing page.
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
}

// New creates a Scraper for the given listing URL. Empty url, zero timeout,
// or empty userAgent fall back to the package defaults.
func New(url string, timeout time.Duration, userAgent string) *Scraper {
	if url == "" {
		url = ListingURL
	}
	if timeout <= 0 {
		timeout = Timeout
	}
	if userAgent == "" {
		userAgent = UserAgent
	}
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		url:       url,
		userAgent: userAgent,
	}
}

// URL returns the listing URL this scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// FetchTours fetches the listing page and extracts all tour entries.
func (s *Scraper) FetchTours() ([]tour.Tour, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseTours(resp.Body), nil
}

// parseTours extracts tour entries from the listing HTML. Unparsable input
// yields an empty slice. A header without an anchor id or a title is walked
// but not emitted; emit order follows document order, duplicates included.
func (s *Scraper) parseTours(r io.Reader) []tour.Tour {
	tours := make([]tour.Tour, 0)

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return tours
	}

	doc.Find("p[style*='" + headerMarker + "']").Each(func(_ int, header *goquery.Selection) {
		t := s.parseEntry(doc, header)
		if t.ID != "" && t.Title != "" {
			tours = append(tours, t)
		}
	})

	return tours
}

// parseEntry builds one tour record from its header paragraph.
func (s *Scraper) parseEntry(doc *goquery.Document, header *goquery.Selection) tour.Tour {
	var t tour.Tour

	// Header lines: date (with optional range), title, tour type.
	lines := nonEmptyLines(header.Text())
	if len(lines) >= 1 {
		if m := datePattern.FindStringSubmatch(lines[0]); m != nil {
			t.BeginDate = m[1]
			t.EndDate = m[1]
			if m[2] != "" {
				t.EndDate = m[2]
			}
		}
	}
	if len(lines) >= 2 {
		t.Title = lines[1]
	}
	if len(lines) >= 3 {
		t.TourType = lines[2]
	}

	if name, ok := header.Find("a[name]").First().Attr("name"); ok && name != "" {
		t.ID = name
		t.URL = s.url + "#" + name
	}

	parseAnnotations(header, &t)

	if t.ID != "" {
		parseDetail(doc, &t)
	}

	return t
}

// parseAnnotations walks the paragraphs between this header and the next one
// and picks up the leader and registration status lines.
func parseAnnotations(header *goquery.Selection, t *tour.Tour) {
	for sib := header.Next(); sib.Length() > 0 && goquery.NodeName(sib) == "p"; sib = sib.Next() {
		if style, ok := sib.Attr("style"); ok && strings.Contains(style, headerMarker) {
			break // next tour entry
		}

		text := strippedText(sib)

		if strings.HasPrefix(text, "Leitung:") {
			link := sib.Find("a[href^='mailto:']").First()
			if link.Length() > 0 {
				t.Leader = strippedText(link)
				// The full text may list additional leaders without mail links.
				t.LeaderFull = strings.TrimSpace(strings.ReplaceAll(sib.Text(), "Leitung:", ""))
			}
		} else if strings.Contains(text, "Anmeldestatus:") {
			if alt, ok := sib.Find("img").First().Attr("alt"); ok && alt != "" {
				t.RegistrationStatus = alt
			}
			t.RegistrationText = strings.TrimSpace(strings.ReplaceAll(text, "Anmeldestatus:", ""))
		}
	}
}

// parseDetail locates the collapsible detail block for a tour and extracts
// the labeled fields. The block's id is the header anchor with its leading
// "t" replaced by "b" (t7138 → b7138). A missing block is not an error.
func parseDetail(doc *goquery.Document, t *tour.Tour) {
	divID := "b" + t.ID[1:]
	detail := doc.Find("div#" + divID).First()
	if detail.Length() == 0 {
		return
	}

	t.DescriptionFull = joinedText(detail, "\n")
	if markup, err := goquery.OuterHtml(detail); err == nil {
		t.DescriptionHTML = markup
	}

	detail.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strippedText(p)
		switch {
		case strings.HasPrefix(text, "Ort:"):
			t.Location = stripLabel(text, "Ort:")
		case strings.HasPrefix(text, "Anforderungen:"):
			t.Requirements = stripLabel(text, "Anforderungen:")
		case strings.HasPrefix(text, "max. Teilnehmerzahl:"):
			t.MaxParticipants = stripLabel(text, "max. Teilnehmerzahl:")
		case strings.HasPrefix(text, "Treffpunkt:"):
			t.MeetingPoint = stripLabel(text, "Treffpunkt:")
		case strings.HasPrefix(text, "Anmeldeschluss:"):
			t.RegistrationDeadline = stripLabel(text, "Anmeldeschluss:")
		case strings.HasPrefix(text, "Kursgeb"):
			// The label spelling varies (Kursgebühr/Kursgebuehr, often with
			// an "(ermäßigt)" suffix), so the value keeps the whole line.
			t.CourseFee = strings.TrimSpace(text)
		case strings.HasPrefix(text, "Vorbesprechung:"):
			t.PreMeeting = stripLabel(text, "Vorbesprechung:")
		case strings.HasPrefix(text, "Ausrüstung:"), strings.HasPrefix(text, "Ausruestung:"):
			t.Equipment = stripLabel(stripLabel(text, "Ausrüstung:"), "Ausruestung:")
		}
	})
}

// stripLabel removes every occurrence of a field label and trims the rest.
func stripLabel(text, label string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, label, ""))
}

// nonEmptyLines splits text on newlines and returns the trimmed non-empty lines.
func nonEmptyLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// strippedText concatenates the individually trimmed text nodes of a
// selection. Labels and values butt up against each other in the result
// ("Ort:Vereinsheim"), which keeps prefix matching independent of the
// whitespace the listing happens to render.
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		walkText(node, func(text string) {
			b.WriteString(strings.TrimSpace(text))
		})
	}
	return b.String()
}

// joinedText joins the trimmed, non-empty text nodes of a selection with sep.
func joinedText(sel *goquery.Selection, sep string) string {
	parts := make([]string, 0)
	for _, node := range sel.Nodes {
		walkText(node, func(text string) {
			if text = strings.TrimSpace(text); text != "" {
				parts = append(parts, text)
			}
		})
	}
	return strings.Join(parts, sep)
}

// walkText visits every text node under n in document order.
func walkText(n *html.Node, visit func(string)) {
	if n.Type == html.TextNode {
		visit(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, visit)
	}
}
