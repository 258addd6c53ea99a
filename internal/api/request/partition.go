package request

type CreatePartitionRequest struct {
	Name string `json:"name"`
}
