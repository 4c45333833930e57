package tsgen

// Utility is a fixed declaration appended after all model declarations.
type Utility interface {
	Lines() []string
}

// PaginatedResponse is the generic wrapper for paged result lists.
type PaginatedResponse struct{}

// Lines implements Utility.
func (PaginatedResponse) Lines() []string {
	return []string{
		"/**",
		" * Generic paginated response wrapper",
		" */",
		"export interface PaginatedResponse<T> {",
		"  /** Array of results */",
		"  Items?: T[];",
		"  /** Pagination metadata */",
		"  PaginationResponse?: PaginationResponse;",
		"}",
		"",
	}
}

// CollectionResponse is a response wrapper that lists Element values under Key.
type CollectionResponse struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Element     string `json:"element"`
	Description string `json:"description,omitempty"`
}

// DefaultCollection is the appointment list wrapper.
var DefaultCollection = CollectionResponse{
	Name:        "AppointmentResponse",
	Key:         "Appointments",
	Element:     "Appointment",
	Description: `Appointment response (uses "Appointments" key)`,
}

// Lines implements Utility.
func (c CollectionResponse) Lines() []string {
	var lines []string
	if desc := cleanDescription(c.Description); desc != "" {
		lines = append(lines, "/**", " * "+desc, " */")
	}
	return append(lines,
		"export interface "+c.Name+" {",
		"  "+c.Key+"?: "+ShortName(c.Element)+"[];",
		"  PaginationResponse?: PaginationResponse;",
		"}",
		"",
	)
}

// DefaultUtilities returns the utility declarations every document carries
// unless the caller supplies its own.
func DefaultUtilities() []Utility {
	return []Utility{PaginatedResponse{}, DefaultCollection}
}
