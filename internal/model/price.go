package model

import "github.com/shopspring/decimal"

// DefaultGrades are the standard gold fineness marks the post is built for.
var DefaultGrades = []int{999, 750, 585, 550, 375}

// PriceLine describes a buy price of one gram of gold at the given fineness.
type PriceLine struct {
	Grade        int             // ex: 585
	PricePerGram decimal.Decimal // ex: 1263.6876876876876877
}

// Rounded returns the price rounded to the nearest integer, halves away from zero.
func (p PriceLine) Rounded() int64 {
	return p.PricePerGram.Round(0).IntPart()
}

// PriceTable is ordered by descending grade.
type PriceTable []PriceLine

// Grades returns the grades of the table in table order.
func (t PriceTable) Grades() []int {
	grades := make([]int, len(t))
	for i, line := range t {
		grades[i] = line.Grade
	}

	return grades
}
