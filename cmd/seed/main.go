// seed genera el script SQL que puebla variant_dimensions, las dimensiones
// que ofrece el formulario de alta de productos (Size, Color, Style por defecto).
//
// Uso: go run ./cmd/seed [ruta/dimensions.csv]
// El CSV viene del sistema anterior en ISO-8859-1 (títulos con acentos), una
// dimensión por línea. Si no existe, se usan las dimensiones por defecto.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_dimensions.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var defaultDimensions = []string{"Size", "Color", "Style"}

func main() {
	csvPath := "dimensions.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	titles, err := readDimensions(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if titles == nil {
		titles = defaultDimensions
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_dimensions.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Dimensiones de variante para el formulario de alta\n")
	out.WriteString("-- Generado por cmd/seed\n\n")
	out.WriteString("INSERT INTO variant_dimensions (title) VALUES\n")
	for i, t := range titles {
		sep := ","
		if i == len(titles)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s')%s\n", escapeSQL(t), sep)
	}
	out.WriteString("ON CONFLICT (title) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d dimensiones\n", outPath, len(titles))
}

// readDimensions devuelve los títulos del CSV, deduplicados en orden de
// aparición. Devuelve nil (sin error) si el archivo no existe.
func readDimensions(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var titles []string
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		title := strings.TrimSpace(rec[0])
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		titles = append(titles, title)
	}
	return titles, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
