package model

// CategoryTotal is the summed value of one category in a breakdown.
type CategoryTotal struct {
	Key   string
	Label string
	Total float64
}

// Breakdown holds the cost summary for one selection.
type Breakdown struct {
	Structure  CategoryTotal
	Roof       CategoryTotal
	AddOns     []CategoryTotal // enabled add-ons only, in summing order
	Labor      float64
	GrandTotal float64
}

// ChartPoint is one bar of the summary chart.
type ChartPoint struct {
	Label string
	Value float64
}

// Share is a chart point annotated with its fraction of the grand total.
type Share struct {
	ChartPoint
	Fraction float64
}
