// Standard attribute keys for report-generation logging. Using these keys
// keeps log output filterable across the explain entry points.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator wrapper type.
	// Examples: "Regressor", "Classifier"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "explain_prediction", "explain_predictions",
	// "explain_predictions_best_worst"
	OperationKey = "ml.operation"

	// ProblemTypeKey records the problem type driving report selection.
	// Values: "regression", "binary", "multiclass"
	ProblemTypeKey = "ml.problem_type"

	// MetricKey names the per-record error metric used for best/worst ranking.
	MetricKey = "ml.metric"
)

// Data shape.
const (
	// SamplesKey indicates the number of records being explained.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns.
	FeaturesKey = "data.features"
)

// Report shape.
const (
	// ReportTypeKey records which report family was requested.
	ReportTypeKey = "report.type"

	// OutputFormatKey records the requested output format ("text" or "dict").
	OutputFormatKey = "report.output_format"

	// TopKKey records the display budget per attribution table.
	TopKKey = "report.top_k"

	// NumToExplainKey records how many best and worst records are explained.
	NumToExplainKey = "report.num_to_explain"
)
