// Package parser reads worksheets into header-addressed tables and writes
// tables back out as workbooks.
package parser
