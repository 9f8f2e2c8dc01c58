package category

import (
	"context"
	"encoding/csv"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/width"
)

// Row is a single entry in the category table.
type Row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Popular is the curated list of category shortcuts surfaced by the UI. It
// is fixed data, not derived from the table.
var Popular = []Row{
	{ID: "30-300", Name: "ハンバーグ"},
	{ID: "30-307", Name: "カレー"},
	{ID: "30-309", Name: "唐揚げ"},
	{ID: "14-121", Name: "オムライス"},
	{ID: "15-687", Name: "カルボナーラ"},
	{ID: "30-301", Name: "餃子"},
	{ID: "33-353", Name: "だし巻き卵・卵焼き"},
	{ID: "17-159", Name: "味噌汁"},
	{ID: "14-131", Name: "チャーハン"},
	{ID: "30-302", Name: "肉じゃが"},
}

// Source provides the raw category table text. The table is a TSV with a
// header row and columns [id, name, url].
type Source interface {
	Load(ctx context.Context) (string, error)
}

// Index owns the loaded category table. The table is fetched once on first
// use and cached for the process lifetime.
type Index struct {
	source Source
	group  singleflight.Group

	mu     sync.RWMutex
	rows   []Row
	loaded bool
}

func NewIndex(source Source) *Index {
	return &Index{source: source}
}

// Load returns the category table, fetching and parsing it on first use.
// Load fails open: a read or parse failure is logged and an empty table
// returned, so downstream search degrades to no matches instead of failing
// the request.
func (i *Index) Load(ctx context.Context) []Row {
	i.mu.RLock()
	if i.loaded {
		rows := i.rows
		i.mu.RUnlock()
		return rows
	}
	i.mu.RUnlock()

	res, err, _ := i.group.Do("load", func() (any, error) {
		text, err := i.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		return parseTable(text)
	})
	if err != nil {
		slog.ErrorContext(ctx, "category: loading table", "error", err)
		return nil
	}
	rows := res.([]Row)

	i.mu.Lock()
	i.rows = rows
	i.loaded = true
	i.mu.Unlock()
	return rows
}

// Loaded reports whether the table has been loaded successfully.
func (i *Index) Loaded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.loaded
}

func parseTable(text string) ([]Row, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, record := range records {
		// First row is the header.
		if i == 0 {
			continue
		}
		if len(record) < 3 {
			continue
		}
		id := strings.TrimSpace(record[0])
		if id == "" {
			continue
		}
		rows = append(rows, Row{
			ID:   id,
			Name: strings.TrimSpace(record[1]),
			URL:  strings.TrimSpace(record[2]),
		})
	}
	return rows, nil
}

// Normalize folds a string for matching: surrounding whitespace is trimmed,
// width variants are folded, katakana is folded to hiragana, and letters are
// lowercased. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = width.Fold.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// Search returns rows whose normalized name contains the normalized query
// as a substring, ordered by exact match, then prefix match, then shorter
// name, truncated to limit.
func Search(query string, rows []Row, limit int) []Row {
	if limit <= 0 || len(rows) == 0 {
		return nil
	}
	q := Normalize(query)
	if q == "" {
		return nil
	}

	type candidate struct {
		row  Row
		name string
	}
	var found []candidate
	for _, row := range rows {
		name := Normalize(row.Name)
		if strings.Contains(name, q) {
			found = append(found, candidate{row: row, name: name})
		}
	}

	sort.SliceStable(found, func(a, b int) bool {
		an, bn := found[a].name, found[b].name
		if (an == q) != (bn == q) {
			return an == q
		}
		ap, bp := strings.HasPrefix(an, q), strings.HasPrefix(bn, q)
		if ap != bp {
			return ap
		}
		// Shorter name first, a proxy for the more specific category.
		return len([]rune(found[a].row.Name)) < len([]rune(found[b].row.Name))
	})

	if len(found) > limit {
		found = found[:limit]
	}
	results := make([]Row, len(found))
	for i, c := range found {
		results[i] = c.row
	}
	return results
}

// ByID returns the row with the given ID, without normalization, or nil.
func ByID(id string, rows []Row) *Row {
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}
