package dto

// Envelope wraps every read response as {"data": ...}.
// Lists are never null; a missing single item is {"data": null}.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// ErrorResponseDTO is the common error response body.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"internal_error"`
}

// ServiceListDTO is a concrete swagger-friendly type for the services list response
// swagger:model ServiceListDTO
type ServiceListDTO struct {
	Data []ServiceDTO `json:"data"`
}

// BlogListDTO is a concrete swagger-friendly type for the blogs list response
// swagger:model BlogListDTO
type BlogListDTO struct {
	Data []BlogDTO `json:"data"`
}

// EventListDTO is a concrete swagger-friendly type for the events list response
// swagger:model EventListDTO
type EventListDTO struct {
	Data []EventDTO `json:"data"`
}
