package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type currency struct {
	Name   string
	Code   string
	Num    string
	Scale  string
	Symbol string
}

const (
	dataFile     = "currency_data.csv"
	templateFile = "currency_data.tmpl"
	outputFile   = "currency_data.go"
)

func main() {
	dir := filepath.Join("scripts", "currency")

	recs, err := readRecords(filepath.Join(dir, dataFile))
	if err != nil {
		panic(fmt.Errorf("reading %v: %w", dataFile, err))
	}

	currs, err := toCurrencies(recs)
	if err != nil {
		panic(fmt.Errorf("converting records: %w", err))
	}

	code, err := render(filepath.Join(dir, templateFile), currs)
	if err != nil {
		panic(fmt.Errorf("rendering %v: %w", templateFile, err))
	}

	if err := write(outputFile, code); err != nil {
		panic(fmt.Errorf("writing %v: %w", outputFile, err))
	}
}

func readRecords(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}
	return reader.ReadAll()
}

// toCurrencies keeps XXX at index 0, so that the zero value of
// coins.Currency means "no currency".
func toCurrencies(recs [][]string) ([]currency, error) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i][1], recs[j][1]
		switch {
		case a == "XXX":
			return b != "XXX"
		case b == "XXX":
			return false
		}
		return a < b
	})

	currs := make([]currency, 0, len(recs))
	seen := map[string]bool{}
	for _, rec := range recs {
		if len(rec) != 5 {
			return nil, fmt.Errorf("record %q: want 5 fields, got %v", rec, len(rec))
		}
		curr := currency{
			Name:   rec[0],
			Code:   rec[1],
			Num:    rec[2],
			Scale:  rec[3],
			Symbol: rec[4],
		}
		if seen[curr.Code] || seen[curr.Num] {
			return nil, fmt.Errorf("record %q: duplicate code", rec)
		}
		seen[curr.Code], seen[curr.Num] = true, true
		currs = append(currs, curr)
	}
	if len(currs) == 0 || currs[0].Code != "XXX" {
		return nil, fmt.Errorf("XXX must be present")
	}
	return currs, nil
}

func render(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, currs); err != nil {
		return nil, err
	}
	return format.Source(output.Bytes())
}

func write(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err := writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
