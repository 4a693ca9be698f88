package jobs

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// FromDB reads postings from a LinkedIn jobs SQLite export: company names
// from `companies`, scraped jobs newest first, optionally limited.
func FromDB(dbPath string, limit int) ([]Posting, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	companies := map[int64]string{}
	rows, err := db.Query(`SELECT company_id, name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	for rows.Next() {
		var id sql.NullInt64
		var name sql.NullString
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan company: %w", err)
		}
		if id.Valid {
			companies[id.Int64] = name.String
		}
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("read companies: %w", err)
	}

	query := `
		SELECT j.company_id, j.title, j.description, j.skills_desc
		FROM jobs j
		WHERE j.description IS NOT NULL
		  AND j.description != ''
		  AND j.scraped > 0
		ORDER BY j.listed_time DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err = db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var postings []Posting
	for rows.Next() {
		var companyID sql.NullInt64
		var title, description, skillsDesc sql.NullString
		if err := rows.Scan(&companyID, &title, &description, &skillsDesc); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		company := companies[companyID.Int64]
		if p, ok := buildPosting(title.String, company, description.String, skillsDesc.String); ok {
			postings = append(postings, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read jobs: %w", err)
	}
	return postings, nil
}

// FromCSV reads postings from a headered export (title, company_name or
// name, description, skills_desc). The limit counts accepted postings.
func FromCSV(path string, limit int) ([]Posting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	field := func(rec []string, name string) string {
		if i, ok := col[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var postings []Posting
	for {
		if limit > 0 && len(postings) >= limit {
			break
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		company := field(rec, "company_name")
		if company == "" {
			company = field(rec, "name")
		}
		p, ok := buildPosting(field(rec, "title"), CleanText(company), field(rec, "description"), field(rec, "skills_desc"))
		if ok {
			postings = append(postings, p)
		}
	}
	return postings, nil
}
