package model

// ReportRow is one formatted data row of the report table, in the fixed
// six-column layout: Tanggal, Keterangan, Tipe, Metode, Jumlah, Saldo.
type ReportRow struct {
	Date        string
	Description string
	Kind        string
	Method      string
	Amount      string
	Balance     string
}

// Report is the compiled document artifact for one partition: header
// metadata, chronological data rows, three trailing summary values and a
// fixed closing block. It is produced on demand and never retained.
type Report struct {
	Title     string
	Partition string

	// Rows are formatted data rows in chronological order, matching the
	// order the running balances were computed in.
	Rows []ReportRow

	// Summary values recomputed independently from the full annotated set,
	// not read off the last running-balance cell.
	TotalIncome    int64
	TotalExpense   int64
	ClosingBalance int64

	// Closing block.
	Dateline     string
	IssuerName   string
	ReceiverName string
}
