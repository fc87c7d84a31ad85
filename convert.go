package finpension

// Conversion is the outcome of converting one report: the two Parqet tables
// and the run summary.
type Conversion struct {
	// Transactions is the securities table: every activity that is not a
	// cash transfer.
	Transactions []Activity
	// Cash is the cash table: every activity booked against the holding
	// account. It is only meant to be written when a holding account was
	// configured.
	Cash []Activity

	Summary Summary
}

// Partition splits expanded activities into the securities table and the
// cash table. Input order is preserved in both. A plain transfer with no
// holding account lands in neither table; no activity lands in both.
func Partition(activities []Activity) (transactions, cash []Activity) {
	for _, a := range activities {
		if !a.Type.IsTransfer() {
			transactions = append(transactions, a)
		}
		if a.Holding != "" {
			cash = append(cash, a)
		}
	}
	return transactions, cash
}

// Convert expands the report and partitions the result.
func (p *Report) Convert(opts Options) (*Conversion, error) {
	activities, err := ExpandAll(p, opts)
	if err != nil {
		return nil, err
	}
	transactions, cash := Partition(activities)
	return &Conversion{
		Transactions: transactions,
		Cash:         cash,
		Summary:      summarize(p, activities),
	}, nil
}
