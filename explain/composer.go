package explain

// sectionComposer assembles one RecordSection per entry of the report's index
// list by invoking its three makers in fixed order: heading, predicted
// values, tables.
type sectionComposer struct {
	heading         headingMaker
	predictedValues predictedValuesMaker
	tables          tableMaker
}

func (c sectionComposer) compose(data *reportData) (*Report, error) {
	sections := make([]RecordSection, 0, len(data.indexList))
	for rank, index := range data.indexList {
		tables, err := c.tables(index, data)
		if err != nil {
			return nil, err
		}
		sections = append(sections, RecordSection{
			Rank:            c.heading(rank, index),
			PredictedValues: c.predictedValues(index, data),
			Tables:          tables,
		})
	}
	return &Report{Sections: sections}, nil
}
