package dto

type CareerResponse struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

type CareersResponse struct {
	Careers []CareerResponse `json:"careers"`
}
