package request

type CreateTransactionRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Method      string `json:"method"`
	Partition   string `json:"partition"`
	Amount      int64  `json:"amount"`
}
