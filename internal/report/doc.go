// Package report builds the Excel workbooks the dashboard offers for
// download: the full-year report, single-month sales sheets and the
// client directory. Sheet names, column headers and cell layouts match
// the files the dashboard has always produced, so downstream
// spreadsheets keep working.
package report
