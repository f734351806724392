package query

// StatisticsReport summarizes the shape and consanguinity of the whole
// store: counts, sibship size, generation depth, and coefficient spread.
type StatisticsReport struct {
	TotalPersons  int
	TotalFamilies int
	// Orphans counts persons with neither an origin family nor a union
	// family: nodes the graph does not connect to anyone.
	Orphans int
	// Roots counts persons with no recorded origin family (founders):
	// the candidate Sosa roots.
	Roots int

	AverageSibshipSize float64
	MaxGenerationDepth uint64

	MeanConsanguinity float64
	MaxConsanguinity  float64
}

// GetStatisticsReport computes a StatisticsReport over the whole store. It
// runs the consanguinity kernel from scratch and, with every person as a
// Sosa root, builds (or reuses) that root's cache; the deepest ancestor
// generation found across them is MaxGenerationDepth.
func (f *Facade) GetStatisticsReport() Envelope[StatisticsReport] {
	report := StatisticsReport{
		TotalPersons:  len(f.store.Persons),
		TotalFamilies: len(f.store.Families),
	}

	for _, idx := range f.store.PersonIndices() {
		person := f.store.Persons[idx]
		if person.OriginFamily == 0 {
			report.Roots++
			if len(person.UnionFamilies) == 0 {
				report.Orphans++
			}
		}
	}

	familiesWithChildren := 0
	totalChildren := 0
	for _, idx := range f.store.FamilyIndices() {
		family := f.store.Families[idx]
		if len(family.Children) == 0 {
			continue
		}
		familiesWithChildren++
		totalChildren += len(family.Children)
	}
	if familiesWithChildren > 0 {
		report.AverageSibshipSize = float64(totalChildren) / float64(familiesWithChildren)
	}

	for _, idx := range f.store.PersonIndices() {
		cache, err := f.sosaManager.GetCache(idx)
		if err != nil {
			continue
		}
		if cache.MaxGeneration > report.MaxGenerationDepth {
			report.MaxGenerationDepth = cache.MaxGeneration
		}
	}

	result := f.Consanguinity(true)
	coefficients := result.Data.Coefficients
	if len(coefficients) > 0 {
		var sum float64
		for _, coefficient := range coefficients {
			sum += coefficient
			if coefficient > report.MaxConsanguinity {
				report.MaxConsanguinity = coefficient
			}
		}
		report.MeanConsanguinity = sum / float64(len(coefficients))
	}

	return ok(report)
}
