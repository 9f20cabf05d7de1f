package metrics

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Prefix is shared by every metric name in this package.
const Prefix = "gridastar_"

// WriteText gathers g and writes the gridastar_* families to w in the
// Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range Own(families) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Own filters families down to the ones this package registers.
func Own(families []*dto.MetricFamily) []*dto.MetricFamily {
	out := families[:0:0]
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), Prefix) {
			out = append(out, mf)
		}
	}
	return out
}
