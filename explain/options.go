package explain

// Option configures an explain entry point.
type Option func(*config)

type config struct {
	topK              int
	includeShapValues bool
	trainingData      *Features
	numToExplain      int
	metric            *Metric
	outputFormat      OutputFormat
	attributor        Attributor
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		topK:         3,
		numToExplain: 5,
		outputFormat: OutputText,
		attributor:   LinearSHAP{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithTopK sets how many of the highest and lowest contributing features to
// include in each table. Default is 3.
func WithTopK(k int) Option {
	return func(cfg *config) {
		cfg.topK = k
	}
}

// WithIncludeShapValues adds the raw attribution values as an extra column.
func WithIncludeShapValues(include bool) Option {
	return func(cfg *config) {
		cfg.includeShapValues = include
	}
}

// WithTrainingData supplies the data the model was fit on. Its column means
// become the attribution background for attributors that need one.
func WithTrainingData(training Features) Option {
	return func(cfg *config) {
		cfg.trainingData = &training
	}
}

// WithNumToExplain sets how many of the best and worst records to explain.
// Default is 5.
func WithNumToExplain(n int) Option {
	return func(cfg *config) {
		cfg.numToExplain = n
	}
}

// WithMetric overrides the per-record error metric used to rank records for
// best/worst reports. Lower scores must be better.
func WithMetric(metric Metric) Option {
	return func(cfg *config) {
		cfg.metric = &metric
	}
}

// WithOutputFormat selects the text or structured output form. Default is
// OutputText.
func WithOutputFormat(format OutputFormat) Option {
	return func(cfg *config) {
		cfg.outputFormat = format
	}
}

// WithAttributor overrides the attribution algorithm. Default is LinearSHAP.
func WithAttributor(attributor Attributor) Option {
	return func(cfg *config) {
		cfg.attributor = attributor
	}
}

// background returns the per-feature reference point derived from the
// configured training data, or nil when none was supplied.
func (cfg *config) background() []float64 {
	if cfg.trainingData == nil {
		return nil
	}
	return columnMeans(*cfg.trainingData)
}

func columnMeans(f Features) []float64 {
	rows := f.NumRows()
	if rows == 0 {
		return nil
	}
	means := make([]float64, f.NumFeatures())
	for j := range means {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += f.Matrix().At(i, j)
		}
		means[j] = sum / float64(rows)
	}
	return means
}
