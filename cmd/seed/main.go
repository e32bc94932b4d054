// seed genera un script SQL para poblar el catálogo de productos y sus
// códigos únicos a partir del CSV del proveedor de etiquetas (exportado
// en ISO-8859-1, separado por punto y coma).
//
// Formato esperado por fila: codigo;producto_id;nombre;precio_unitario
//
// Uso: go run ./cmd/seed [ruta/codigos.csv]
// Por defecto busca codigos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_codes.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	id    string
	name  string
	price string
}

func main() {
	csvPath := "codigos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 4
	rows, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	products := make(map[string]productRow)
	codes := make(map[string]string) // codigo -> producto
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "codigo") {
			continue // cabecera
		}
		code := strings.TrimSpace(row[0])
		id := strings.TrimSpace(row[1])
		name := strings.TrimSpace(row[2])
		price := strings.TrimSpace(row[3])
		if code == "" || id == "" {
			continue
		}
		if price == "" {
			price = "0"
		}
		products[id] = productRow{id: id, name: name, price: price}
		codes[code] = id
	}

	var productIDs []string
	for id := range products {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	var codeIDs []string
	for c := range codes {
		codeIDs = append(codeIDs, c)
	}
	sort.Strings(codeIDs)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_codes.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de productos y códigos únicos\n")
	out.WriteString("-- Generado desde el CSV del proveedor de etiquetas\n\n")

	out.WriteString("-- 1. Productos\n")
	for _, id := range productIDs {
		p := products[id]
		fmt.Fprintf(out, "INSERT INTO products (id, field_key, name, unit_price)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', %s)\n", escapeSQL(p.id), escapeSQL(p.id), escapeSQL(p.name), p.price)
		out.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, unit_price = EXCLUDED.unit_price, updated_at = now();\n")
	}

	out.WriteString("\n-- 2. Códigos únicos\n")
	for _, code := range codeIDs {
		fmt.Fprintf(out, "INSERT INTO unique_codes (code, product_id)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s')\n", escapeSQL(code), escapeSQL(codes[code]))
		out.WriteString("ON CONFLICT (code) DO UPDATE SET product_id = EXCLUDED.product_id;\n")
	}

	fmt.Printf("Generado %s: %d productos, %d códigos\n", outPath, len(productIDs), len(codeIDs))
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
