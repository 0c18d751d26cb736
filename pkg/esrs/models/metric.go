package models

// Metric is one named result computed for a category.
type Metric struct {
	Name string `json:"name"`
	// Value is int64, float64 or string.
	Value interface{} `json:"value"`
}

// MetricSet is the ordered list of metrics computed for one category.
// Order follows rule evaluation, not names.
type MetricSet []Metric

// Get returns the value of the named metric.
func (m MetricSet) Get(name string) (interface{}, bool) {
	for _, metric := range m {
		if metric.Name == name {
			return metric.Value, true
		}
	}
	return nil, false
}

// Has reports whether the named metric is present.
func (m MetricSet) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Names returns metric names in order.
func (m MetricSet) Names() []string {
	names := make([]string, len(m))
	for i, metric := range m {
		names[i] = metric.Name
	}
	return names
}
