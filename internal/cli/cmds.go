package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/replit/otable"
	"github.com/replit/otable/internal/pager"
	"github.com/replit/otable/internal/source"
	"github.com/replit/otable/internal/trace"
	"github.com/replit/otable/internal/util"
)

// loadRecords reads FILE as described by the input flags, dying on
// failure.
func loadRecords(ctx context.Context, path string, input inputOptions) *source.Records {
	span, _ := trace.StartSpan(ctx, "loadRecords")
	defer span.Finish()

	format, err := source.ParseFormat(input.formatStr, path)
	if err != nil {
		util.Die("Error: %s", err)
	}
	records, err := source.Load(path, format, input.key)
	if err != nil {
		util.Die("%s", err)
	}
	return records
}

// emit prints text (paging it if needed) or writes it to writePath.
func emit(text string, writePath string) {
	if writePath != "" {
		if err := util.TryWriteAtomic(writePath, []byte(text)); err != nil {
			util.Die("%s", err)
		}
		util.ProgressMsg("wrote " + writePath)
		return
	}
	if err := pager.PrintOrPage(text); err != nil {
		util.Die("%s", err)
	}
}

// emitTable outputs t in the requested format.
func emitTable(ctx context.Context, t *otable.Table, outputFormat outputFormat, writePath string) {
	span, _ := trace.StartSpan(ctx, "emitTable")
	defer span.Finish()

	switch outputFormat {
	case outputFormatTable:
		text, err := renderTable(t)
		if err != nil {
			util.Die("%s", err)
		}
		emit(text, writePath)

	case outputFormatJSON:
		records, err := tableRecords(t)
		if err != nil {
			util.Die("%s", err)
		}
		outputB, err := json.Marshal(records)
		if err != nil {
			panic(err)
		}
		emit(string(outputB)+"\n", writePath)
	}
}

// runShow implements 'otable show'.
func runShow(ctx context.Context, path string, input inputOptions, columns []string, outputFormat outputFormat, writePath string) {
	records := loadRecords(ctx, path, input)
	keys := source.Keys(records.Rows)
	if len(columns) > 0 {
		if err := checkColumns(columns, keys); err != nil {
			util.Die("%s: %s", path, err)
		}
		keys = columns
	}
	if len(keys) == 0 {
		util.Die("%s: no records to show", path)
	}

	t, err := recordTable(records.Rows, keys, true)
	if err != nil {
		util.Die("%s", err)
	}
	emitTable(ctx, t, outputFormat, writePath)
}

// runDescribe implements 'otable describe'.
func runDescribe(ctx context.Context, path string, row int, input inputOptions, outputFormat outputFormat) {
	records := loadRecords(ctx, path, input)
	lines, err := describeLines(records.Rows, source.Keys(records.Rows), row)
	if err != nil {
		util.Die("%s: %s", path, err)
	}
	if len(lines) == 0 {
		util.Die("%s: record %d has no fields", path, row)
	}

	t, err := otable.FromStructs(lines)
	if err != nil {
		util.Panicf("building describe table: %s", err)
	}
	emitTable(ctx, t, outputFormat, "")
}

// runSet implements 'otable set'.
func runSet(ctx context.Context, path string, row int, column, valueStr string, input inputOptions) {
	records := loadRecords(ctx, path, input)
	value, err := source.ParseValue(valueStr)
	if err != nil {
		util.Die("%s", err)
	}

	t, err := recordTable(records.Rows, source.Keys(records.Rows), false)
	if err != nil {
		util.Die("%s: %s", path, err)
	}
	r, err := t.Row(row)
	if err != nil {
		util.Die("%s: %s", path, err)
	}
	if err := r.SetCellByName(column, value); err != nil {
		util.Die("%s: row %d: %s", path, row, err)
	}

	span, _ := trace.StartSpan(ctx, "saveRecords")
	defer span.Finish()
	if err := records.Save(path); err != nil {
		util.Die("%s", err)
	}
	util.ProgressMsg(fmt.Sprintf("%s: set row %d %s to %s", path, row, column, cellText(value)))
}

// queryProgress is the progress message for a query, or "" when JSON
// goes to stdout and a message would corrupt it.
func queryProgress(path, query string, outputFormat outputFormat, writePath string) string {
	if outputFormat == outputFormatJSON && writePath == "" {
		return ""
	}
	return "querying " + util.QuoteCmd([]string{path, query})
}

// runQuery implements 'otable query'.
func runQuery(ctx context.Context, path, query string, outputFormat outputFormat, writePath string) {
	span, spanCtx := trace.StartSpan(ctx, "runQuery")
	defer span.Finish()

	if msg := queryProgress(path, query, outputFormat, writePath); msg != "" {
		util.ProgressMsg(msg)
	}
	result, err := source.Query(spanCtx, path, query)
	if err != nil {
		util.Die("%s: %s", path, err)
	}
	if len(result.Columns) == 0 {
		util.Die("%s: query returned no columns", path)
	}

	t, err := recordTable(result.Rows, result.Columns, false)
	if err != nil {
		util.Die("%s", err)
	}
	emitTable(spanCtx, t, outputFormat, writePath)
}

// runListFormats implements 'otable list-formats'.
func runListFormats() {
	lines := []formatLine{}
	for format, exts := range source.Formats {
		lines = append(lines, formatLine{
			Format:     string(format),
			Extensions: strings.Join(exts, ", "),
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Format < lines[j].Format
	})

	t, err := otable.FromStructs(lines)
	if err != nil {
		util.Panicf("building format table: %s", err)
	}
	text, err := renderTable(t)
	if err != nil {
		util.Panicf("rendering format table: %s", err)
	}
	fmt.Print(text)
}
