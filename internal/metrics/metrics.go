package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

const namespace = "pagebuilder"

// NoOp returns a recorder that discards every observation.
func NoOp() interfaces.TemplateMetrics {
	return noop{}
}

type noop struct{}

func (noop) TemplateComposed(string, int)  {}
func (noop) UnknownBlockType(string)       {}
func (noop) VariantMissed(string)          {}
func (noop) BrandkitApplied(string)        {}
func (noop) SectionsConverted(string, int) {}
func (noop) TemplateCloned()               {}

// Prometheus records template activity as Prometheus counters and histograms.
type Prometheus struct {
	composed       *prometheus.CounterVec
	composedBlocks *prometheus.HistogramVec
	unknownBlocks  *prometheus.CounterVec
	variantMisses  *prometheus.CounterVec
	brandkits      *prometheus.CounterVec
	sections       *prometheus.CounterVec
	clones         prometheus.Counter
}

// NewPrometheus creates the collectors and registers them with registerer.
// A nil registerer uses prometheus.DefaultRegisterer.
func NewPrometheus(registerer prometheus.Registerer) (*Prometheus, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	m := &Prometheus{
		composed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "templates_composed_total",
			Help:      "Templates composed, by source (composer, builder, recipe).",
		}, []string{"source"}),
		composedBlocks: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "template_blocks",
			Help:      "Design blocks per composed template.",
			Buckets:   []float64{1, 2, 4, 6, 8, 12, 20},
		}, []string{"source"}),
		unknownBlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_block_types_total",
			Help:      "Compositions rejected because of an unregistered block type.",
		}, []string{"block_type"}),
		variantMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "variant_misses_total",
			Help:      "Block requests naming a variant the block type does not define.",
		}, []string{"block_type"}),
		brandkits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "brandkits_applied_total",
			Help:      "Brand kits applied to templates.",
		}, []string{"brandkit_id"}),
		sections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_sections_converted_total",
			Help:      "Page sections produced from templates, by language.",
		}, []string{"language"}),
		clones: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "templates_cloned_total",
			Help:      "Templates cloned.",
		}),
	}
	collectors := []prometheus.Collector{
		m.composed, m.composedBlocks, m.unknownBlocks, m.variantMisses, m.brandkits, m.sections, m.clones,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Prometheus) TemplateComposed(source string, blocks int) {
	m.composed.WithLabelValues(source).Inc()
	m.composedBlocks.WithLabelValues(source).Observe(float64(blocks))
}

func (m *Prometheus) UnknownBlockType(blockType string) {
	m.unknownBlocks.WithLabelValues(blockType).Inc()
}

func (m *Prometheus) VariantMissed(blockType string) {
	m.variantMisses.WithLabelValues(blockType).Inc()
}

func (m *Prometheus) BrandkitApplied(brandkitID string) {
	m.brandkits.WithLabelValues(brandkitID).Inc()
}

func (m *Prometheus) SectionsConverted(languageID string, sections int) {
	m.sections.WithLabelValues(languageID).Add(float64(sections))
}

func (m *Prometheus) TemplateCloned() {
	m.clones.Inc()
}
