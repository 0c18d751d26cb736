package aggregator

import (
	"fmt"

	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
)

// Inputs is what a rule sees: the combined category table and the metrics
// computed so far for that category.
type Inputs struct {
	Table   *models.Table
	Metrics models.MetricSet
}

// AggFunc produces a metric value. It only runs once the rule's columns and
// metric dependencies are known to be present.
type AggFunc func(in Inputs) (interface{}, error)

// Guard decides whether a derived metric is computed. When it declines, a
// non-empty note is reported as a data-quality warning.
type Guard func(in Inputs) (ok bool, note string)

// Rule describes one metric of a category.
type Rule struct {
	// Metric is the output name.
	Metric string
	// Columns must all be present in the category table.
	Columns []string
	// Needs lists earlier metrics that must all have been produced.
	Needs []string
	Agg   AggFunc
	Guard Guard
}

// RuleSet maps a category code to its rules in evaluation order.
type RuleSet map[string][]Rule

// Sum adds up every value of column.
func Sum(metric, column string) Rule {
	return Rule{
		Metric:  metric,
		Columns: []string{column},
		Agg: func(in Inputs) (interface{}, error) {
			values, _ := in.Table.Column(column)
			return sumValues(column, values)
		},
	}
}

// Total adds up previously computed metrics, or joins them when they are
// all text. It is produced only when every one of them is present.
func Total(metric string, parts ...string) Rule {
	return Rule{
		Metric: metric,
		Needs:  parts,
		Agg: func(in Inputs) (interface{}, error) {
			var total interface{}
			for i, p := range parts {
				v, _ := in.Metrics.Get(p)
				if i == 0 {
					total = v
					continue
				}
				sum, err := addValues(total, v)
				if err != nil {
					return nil, err
				}
				total = sum
			}
			return total, nil
		},
	}
}

// Percent computes numerator / denominator * 100 from previously computed
// metrics. It is produced only when the denominator is strictly positive.
func Percent(metric, numerator, denominator string) Rule {
	return Rule{
		Metric: metric,
		Needs:  []string{numerator, denominator},
		Guard: func(in Inputs) (bool, string) {
			v, _ := in.Metrics.Get(denominator)
			d, ok := toFloat(v)
			if !ok {
				return false, fmt.Sprintf("%s is not numeric (%v)", denominator, v)
			}
			nv, _ := in.Metrics.Get(numerator)
			if _, ok := toFloat(nv); !ok {
				return false, fmt.Sprintf("%s is not numeric (%v)", numerator, nv)
			}
			switch {
			case d > 0:
				return true, ""
			case d < 0:
				return false, fmt.Sprintf("%s is negative (%v)", denominator, v)
			default:
				return false, ""
			}
		},
		Agg: func(in Inputs) (interface{}, error) {
			nv, _ := in.Metrics.Get(numerator)
			dv, _ := in.Metrics.Get(denominator)
			n, _ := toFloat(nv)
			d, _ := toFloat(dv)
			return n / d * 100, nil
		},
	}
}

var socialRules = []Rule{
	Sum("total_employees", "employee_count"),
	Sum("total_training_hours", "training_hours"),
}

// DefaultRules returns the ESRS metric table.
func DefaultRules() RuleSet {
	return RuleSet{
		"E1": {
			Sum("total_scope1", "emissions_scope1"),
			Sum("total_scope2", "emissions_scope2"),
			Sum("total_scope3", "emissions_scope3"),
			Total("total_emissions", "total_scope1", "total_scope2", "total_scope3"),
		},
		"E2": {
			Sum("total_air_pollutants", "air_pollutants"),
			Sum("total_water_pollutants", "water_pollutants"),
		},
		"E3": {
			Sum("total_water_consumption", "water_consumption"),
			Sum("total_water_discharge", "water_discharge"),
		},
		"E4": nil,
		"E5": {
			Sum("total_waste", "waste_generated"),
			Sum("waste_recycled", "waste_recycled"),
			Percent("recycling_rate", "waste_recycled", "total_waste"),
		},
		"S1": socialRules,
		"S2": socialRules,
		"S3": socialRules,
		"S4": socialRules,
		"G1": nil,
	}
}
