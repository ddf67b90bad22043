package domain

type Notification struct {
	ID         int32             `json:"id"`
	RenterName string            `json:"renter_name"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  string            `json:"created_on"`
}
