package explain

// OutputFormat selects how a report is returned to the caller.
type OutputFormat string

const (
	// OutputText renders the report as an indented text block.
	OutputText OutputFormat = "text"
	// OutputDict returns the structured report form.
	OutputDict OutputFormat = "dict"
)

// Row is one line of an attribution table: a feature, its qualitative
// contribution symbol, and optionally the raw attribution value.
type Row struct {
	FeatureName  string   `json:"feature_name"`
	Qualitative  string   `json:"qualitative_explanation"`
	Quantitative *float64 `json:"quantitative_explanation,omitempty"`
}

// TableData is one rendered attribution table. ClassName is set for
// multiclass problems, where one table is produced per class.
type TableData struct {
	ClassName string `json:"class_name,omitempty"`
	Rows      []Row  `json:"rows"`
}

// ClassProbability is one class's predicted probability, display-rounded.
type ClassProbability struct {
	ClassName   string  `json:"class_name"`
	Probability float64 `json:"probability"`
}

// PredictedValues summarizes the model output for one record of a best/worst
// report. Values are display-rounded. Probabilities is nil for regression.
type PredictedValues struct {
	Probabilities  []ClassProbability `json:"probabilities,omitempty"`
	PredictedValue string             `json:"predicted_value"`
	TargetValue    string             `json:"target_value"`
	ErrorName      string             `json:"error_name"`
	ErrorValue     float64            `json:"error_value"`
}

// RankInfo identifies one explained record's place in its report.
type RankInfo struct {
	// Prefix is "best", "worst", or empty for arbitrary-index reports.
	Prefix string `json:"prefix,omitempty"`
	// Rank is 1-based within the prefix group.
	Rank int `json:"rank"`
	// Index is the record's row index in the caller's input.
	Index int `json:"index"`
	// Total is the denominator shown in the heading.
	Total int `json:"total"`
}

// RecordSection is the full explanation of one record: heading, optional
// predicted-value summary, and one or more attribution tables.
type RecordSection struct {
	Rank            RankInfo         `json:"rank"`
	PredictedValues *PredictedValues `json:"predicted_values,omitempty"`
	Tables          []TableData      `json:"explanations"`
}

// Report is the structured form of a prediction-explanation report. The text
// form is derived from it; both formats always agree.
type Report struct {
	Sections []RecordSection `json:"explanations"`
}

// Result is what the explain entry points return. Report is always
// populated; Text is populated when the text format was requested.
type Result struct {
	Format OutputFormat
	Text   string
	Report *Report
}
