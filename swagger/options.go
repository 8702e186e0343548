package swagger

// UIOptions mirrors the Swagger UI display settings. Values are copied when a handler is built,
// so later changes to a UIOptions variable do not affect running handlers.
type UIOptions struct {
	DeepLinking              bool     `json:"deepLinking"`
	DisplayOperationID       bool     `json:"displayOperationId"`
	DefaultModelsExpandDepth int      `json:"defaultModelsExpandDepth"`
	DefaultModelExpandDepth  int      `json:"defaultModelExpandDepth"`
	DefaultModelRendering    string   `json:"defaultModelRendering"`
	DisplayRequestDuration   bool     `json:"displayRequestDuration"`
	DocExpansion             string   `json:"docExpansion"`
	Filter                   bool     `json:"filter"`
	MaxDisplayedTags         int      `json:"maxDisplayedTags,omitempty"`
	OperationsSorter         string   `json:"operationsSorter"`
	ShowExtensions           bool     `json:"showExtensions"`
	ShowCommonExtensions     bool     `json:"showCommonExtensions"`
	TagsSorter               string   `json:"tagsSorter"`
	SupportedSubmitMethods   []string `json:"supportedSubmitMethods"`
	ValidatorURL             *string  `json:"validatorUrl"`
}

// DefaultUIOptions returns the read-only viewer configuration: deep linking on, operations sorted
// by method, tags sorted alphabetically, models expanded one level and "try it out" disabled.
func DefaultUIOptions() UIOptions {
	return UIOptions{
		DeepLinking:              true,
		DisplayOperationID:       false,
		DefaultModelsExpandDepth: 1,
		DefaultModelExpandDepth:  1,
		DefaultModelRendering:    "example",
		DisplayRequestDuration:   true,
		DocExpansion:             "none",
		Filter:                   true,
		OperationsSorter:         "method",
		ShowExtensions:           false,
		ShowCommonExtensions:     false,
		TagsSorter:               "alpha",
		SupportedSubmitMethods:   []string{},
		ValidatorURL:             nil,
	}
}

func (o UIOptions) clone() UIOptions {
	out := o
	out.SupportedSubmitMethods = append([]string{}, o.SupportedSubmitMethods...)
	if o.ValidatorURL != nil {
		v := *o.ValidatorURL
		out.ValidatorURL = &v
	}
	return out
}
