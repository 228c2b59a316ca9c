package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ParseProductGroups lee el CSV de importación de grupos de artículos:
// id;nombre;descripción (descripción opcional). Con o sin encabezado; la
// primera fila se descarta si su primera celda no parece un código.
func ParseProductGroups(r io.Reader) ([]entity.ProductGroup, error) {
	records, err := readSemicolon(r)
	if err != nil {
		return nil, fmt.Errorf("csv de grupos: %w", err)
	}
	records = skipHeader(records, "varugrupp", "id")

	groups := make([]entity.ProductGroup, 0, len(records))
	for _, rec := range records {
		g := entity.ProductGroup{
			ID:     cleanCode(at(rec, 0)),
			Name:   strings.TrimSpace(at(rec, 1)),
			Active: true,
		}
		g.Description = strings.TrimSpace(at(rec, 2))
		groups = append(groups, g)
	}
	return groups, nil
}

// ParseArticles lee el CSV de importación de artículos:
// número;grupo;texto;cuentaProveedor (las dos últimas opcionales).
func ParseArticles(r io.Reader) ([]entity.Article, error) {
	records, err := readSemicolon(r)
	if err != nil {
		return nil, fmt.Errorf("csv de artículos: %w", err)
	}
	records = skipHeader(records, "artikelnummer", "number")

	articles := make([]entity.Article, 0, len(records))
	for _, rec := range records {
		articles = append(articles, entity.Article{
			Number:          cleanCode(at(rec, 0)),
			GroupID:         cleanCode(at(rec, 1)),
			Text:            strings.TrimSpace(at(rec, 2)),
			SupplierAccount: parseInt(at(rec, 3)),
			Active:          true,
		})
	}
	return articles, nil
}

func readSemicolon(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isEmptyRecord(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// skipHeader descarta la primera fila si su primera celda coincide con alguno
// de los nombres de encabezado conocidos (insensible a mayúsculas).
func skipHeader(records [][]string, headerNames ...string) [][]string {
	if len(records) == 0 {
		return records
	}
	first := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(records[0][0], bomPrefix)))
	for _, name := range headerNames {
		if first == name {
			return records[1:]
		}
	}
	return records
}

func at(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
