package grouped

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "value")
	GroupColumn string // Column name for group labels (default: "group")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "value",
		GroupColumn: "group",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a grouped sample from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a grouped sample from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, groupIdx := -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "value" || h == "Value" || h == "y")):
				valueIdx = i
			case h == opts.GroupColumn || (opts.GroupColumn == "" && (h == "group" || h == "Group" || h == "g")):
				groupIdx = i
			}
		}

		if valueIdx == -1 || groupIdx == -1 {
			return nil, fmt.Errorf("%w: columns %q and %q not found in header", ErrInvalidShape, opts.ValueColumn, opts.GroupColumn)
		}
	} else {
		// No header - assume first column is value, second is group
		valueIdx = 0
		groupIdx = 1
	}

	var values []float64
	var labels []int

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx >= len(record) || groupIdx >= len(record) {
			return nil, fmt.Errorf("%w: row has %d columns", ErrInvalidShape, len(record))
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue // Skip missing observations
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // Skip invalid values
		}

		groupStr := strings.TrimSpace(strings.Trim(record[groupIdx], "\""))
		group, err := strconv.ParseFloat(groupStr, 64)
		if err != nil || group != math.Trunc(group) {
			return nil, fmt.Errorf("%w: %q", ErrNonIntegerLabel, groupStr)
		}

		values = append(values, val)
		labels = append(labels, int(group))
	}

	return New(values, labels)
}

// SaveCSV saves a grouped sample to a CSV file with value and group columns.
func SaveCSV(sample *Sample, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("value,group\n")
	for i, v := range sample.Values {
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString(",")
		writer.WriteString(strconv.Itoa(sample.Labels[i]))
		writer.WriteString("\n")
	}

	return nil
}
