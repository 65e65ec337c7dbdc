package templates

type recordingMetrics struct {
	composed      int
	unknown       int
	variantMisses int
	brandkits     int
	sections      int
	clones        int
	sources       []string
}

func (r *recordingMetrics) TemplateComposed(source string, _ int) {
	r.composed++
	r.sources = append(r.sources, source)
}
func (r *recordingMetrics) UnknownBlockType(string)           { r.unknown++ }
func (r *recordingMetrics) VariantMissed(string)              { r.variantMisses++ }
func (r *recordingMetrics) BrandkitApplied(string)            { r.brandkits++ }
func (r *recordingMetrics) SectionsConverted(_ string, n int) { r.sections += n }
func (r *recordingMetrics) TemplateCloned()                   { r.clones++ }
