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
	"strconv"
	"strings"
	"text/template"
)

type unit struct {
	Name        string
	Tag         int
	Factor      int64
	Decimals    int
	LongName    string
	ShortName   string
	Description string
	Keys        []string
}

func main() {
	// Read the unit table
	data, err := readCsvFile(filepath.Join("scripts", "unit", "unit_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert and check the records
	units, err := convertDataToUnits(data)
	if err != nil {
		panic(fmt.Errorf("error converting records: %v", err))
	}

	// Generate Go code from the units using a template
	code, err := generateGoCode(filepath.Join("scripts", "unit", "unit_data.tmpl"), units)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("unit_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToUnits keeps the catalog order of the file, which is also the
// order of the Unit constants. Tags are independent of that order and must be
// unique, as must every lookup key.
func convertDataToUnits(data [][]string) ([]unit, error) {
	units := []unit{}
	tags := map[int]string{}
	keys := map[string]string{}
	for _, rec := range data {
		tag, err := strconv.Atoi(rec[1])
		if err != nil || tag < 0 || tag > 255 {
			return nil, fmt.Errorf("%v: invalid tag %q", rec[0], rec[1])
		}
		if other, ok := tags[tag]; ok {
			return nil, fmt.Errorf("%v: tag %v already used by %v", rec[0], tag, other)
		}
		tags[tag] = rec[0]
		factor, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%v: invalid factor %q", rec[0], rec[2])
		}
		decimals, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("%v: invalid decimals %q", rec[0], rec[3])
		}
		if pow10(decimals) != factor {
			return nil, fmt.Errorf("%v: factor %v is not 10^%v", rec[0], factor, decimals)
		}
		u := unit{
			Name:        rec[0],
			Tag:         tag,
			Factor:      factor,
			Decimals:    decimals,
			LongName:    rec[4],
			ShortName:   rec[5],
			Description: rec[6],
		}
		candidates := []string{u.LongName, u.ShortName}
		if rec[7] != "" {
			candidates = append(candidates, strings.Split(rec[7], "|")...)
		}
		for _, k := range candidates {
			switch other, ok := keys[k]; {
			case !ok:
				keys[k] = u.Name
				u.Keys = append(u.Keys, k)
			case other != u.Name:
				return nil, fmt.Errorf("%v: key %q already used by %v", u.Name, k, other)
			}
		}
		sort.Strings(u.Keys)
		units = append(units, u)
	}
	return units, nil
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}
	return p
}

func generateGoCode(filename string, units []unit) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, units)
	if err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
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
