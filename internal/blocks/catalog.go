package blocks

import pbblocks "github.com/turningtides/go-pagebuilder/blocks"

const (
	defaultPadding = "4rem 1.5rem"
	defaultMargin  = "0"
)

func colorBackground(color string) map[string]any {
	return map[string]any{"type": "color", "color": color}
}

func bodyTypography() map[string]any {
	return map[string]any{"fontFamily": "Inter, sans-serif", "fontSize": "1rem", "lineHeight": "1.6"}
}

func headingTypography() map[string]any {
	return map[string]any{"fontFamily": "Merriweather, serif", "fontWeight": 700, "lineHeight": "1.2"}
}

func baseResponsive() Category {
	return Category{"hideOnMobile": false, "stackOnMobile": true}
}

func baseAnimation() Category {
	return Category{"type": "none", "duration": 300}
}

// DefaultCatalog returns the built-in Turning Tides block configs.
func DefaultCatalog() []BlockConfig {
	return []BlockConfig{
		{
			Type:        pbblocks.TypeNavigation,
			Name:        "Navigation",
			Description: "Primary site navigation with logo and menu links",
			Category:    "navigation",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"sticky": true, "alignment": "space-between", "containerWidth": "1200px"},
				Style:      Category{"background": colorBackground("#ffffff"), "textColor": "#1f2937", "linkColor": "#0e7490", "typography": bodyTypography(), "padding": "1rem 1.5rem"},
				Responsive: Category{"collapseOnMobile": true, "hamburgerBreakpoint": "768px"},
				Animation:  baseAnimation(),
				Content:    Category{"logoText": "Turning Tides", "links": []any{"About", "Our Work", "Grantmaking", "Stories", "Contact"}},
			},
			Variants: []Variant{
				{ID: "transparent", Name: "Transparent", StyleOverrides: Category{"background": map[string]any{"type": "transparent"}, "textColor": "#ffffff"}},
				{ID: "centered", Name: "Centered", LayoutOverrides: Category{"alignment": "center"}},
			},
			PreviewData: PreviewData{Title: "Navigation", Content: "Site navigation", Metadata: map[string]any{"itemCount": 5}},
		},
		{
			Type:        pbblocks.TypeHero,
			Name:        "Hero Banner",
			Description: "Full-width introduction with headline, text and call to action",
			Category:    "hero",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"height": "80vh", "alignment": "center", "contentWidth": "720px"},
				Style:      Category{"background": colorBackground("#0f172a"), "textColor": "#ffffff", "typography": headingTypography(), "padding": "6rem 1.5rem", "margin": defaultMargin},
				Responsive: Category{"mobileHeight": "60vh", "stackOnMobile": true},
				Animation:  Category{"type": "fade-in", "duration": 600},
				Content:    Category{"ctaLabel": "Learn more", "ctaHref": "/about"},
			},
			Variants: []Variant{
				{ID: "inverted", Name: "Inverted", StyleOverrides: Category{"background": colorBackground("#ffffff"), "textColor": "#0f172a"}},
				{ID: "image", Name: "Background image", StyleOverrides: Category{"background": map[string]any{"type": "image", "overlay": 0.4}}},
				{ID: "split", Name: "Split", LayoutOverrides: Category{"alignment": "left", "columns": 2}},
			},
			PreviewData: PreviewData{Title: "Changing the tide together", Content: "We fund grassroots organisations working for lasting social change.", Metadata: map[string]any{"ctaLabel": "Learn more"}},
		},
		{
			Type:        pbblocks.TypeHeading,
			Name:        "Section Heading",
			Description: "Standalone heading with optional eyebrow",
			Category:    "content",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"alignment": "left"},
				Style:      Category{"textColor": "#0f172a", "typography": headingTypography(), "margin": "0 0 1.5rem"},
				Responsive: baseResponsive(),
				Animation:  baseAnimation(),
				Content:    Category{"level": 2},
			},
			Variants: []Variant{
				{ID: "centered", Name: "Centered", LayoutOverrides: Category{"alignment": "center"}},
			},
			PreviewData: PreviewData{Title: "Section heading"},
		},
		{
			Type:        pbblocks.TypeFeaturedContent,
			Name:        "Featured Content",
			Description: "Grid of highlighted programmes or articles",
			Category:    "content",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"columns": 3, "gap": "2rem"},
				Style:      Category{"background": colorBackground("#f8fafc"), "textColor": "#1f2937", "linkColor": "#0e7490", "typography": bodyTypography(), "padding": defaultPadding},
				Responsive: Category{"mobileColumns": 1, "tabletColumns": 2},
				Animation:  Category{"type": "slide-up", "duration": 400, "stagger": 100},
				Content:    Category{"itemLimit": 3, "source": "latest"},
			},
			Variants: []Variant{
				{ID: "list", Name: "List", LayoutOverrides: Category{"columns": 1}},
				{ID: "cards", Name: "Cards", StyleOverrides: Category{"cardShadow": "md"}},
			},
			PreviewData: PreviewData{Title: "Our work", Content: "Highlights from our programmes.", Metadata: map[string]any{"itemLimit": 3}},
		},
		{
			Type:        pbblocks.TypeTestimonials,
			Name:        "Testimonials",
			Description: "Quotes from partners and grantees",
			Category:    "social-proof",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"columns": 2},
				Style:      Category{"background": colorBackground("#ffffff"), "textColor": "#334155", "typography": bodyTypography(), "padding": defaultPadding},
				Responsive: baseResponsive(),
				Animation:  Category{"type": "fade-in", "duration": 500},
				Content:    Category{"showAvatars": true},
			},
			Variants: []Variant{
				{ID: "carousel", Name: "Carousel", LayoutOverrides: Category{"columns": 1, "carousel": true}},
			},
			PreviewData: PreviewData{Title: "What our partners say", Content: "Turning Tides trusted us to lead.", Metadata: map[string]any{"author": "Partner organisation"}},
		},
		{
			Type:        pbblocks.TypeCTA,
			Name:        "Call to Action",
			Description: "Prominent prompt to donate, apply or get in touch",
			Category:    "conversion",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"alignment": "center", "contentWidth": "640px"},
				Style:      Category{"background": colorBackground("#0e7490"), "textColor": "#ffffff", "linkColor": "#fde68a", "typography": bodyTypography(), "padding": defaultPadding, "margin": defaultMargin},
				Responsive: baseResponsive(),
				Animation:  baseAnimation(),
				Content:    Category{"buttonLabel": "Get involved", "buttonHref": "/contact"},
			},
			Variants: []Variant{
				{ID: "outline", Name: "Outline", StyleOverrides: Category{"background": colorBackground("#ffffff"), "textColor": "#0e7490", "border": "2px solid #0e7490"}},
			},
			PreviewData: PreviewData{Title: "Join the movement", Content: "Support community-led change.", Metadata: map[string]any{"buttonLabel": "Get involved"}},
		},
		{
			Type:        pbblocks.TypeFooter,
			Name:        "Footer",
			Description: "Site footer with contact details and secondary links",
			Category:    "navigation",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"columns": 4},
				Style:      Category{"background": colorBackground("#0f172a"), "textColor": "#cbd5e1", "linkColor": "#ffffff", "typography": bodyTypography(), "padding": "3rem 1.5rem"},
				Responsive: Category{"mobileColumns": 1},
				Animation:  baseAnimation(),
				Content:    Category{"copyright": "Turning Tides", "showSocial": true},
			},
			Variants: []Variant{
				{ID: "minimal", Name: "Minimal", LayoutOverrides: Category{"columns": 1}, ContentDefaults: Category{"showSocial": false}},
			},
			PreviewData: PreviewData{Title: "Footer", Content: "Turning Tides, registered charity."},
		},
		{
			Type:        pbblocks.TypeBreadcrumb,
			Name:        "Breadcrumb",
			Description: "Hierarchical location trail",
			Category:    "navigation",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"alignment": "left"},
				Style:      Category{"textColor": "#64748b", "linkColor": "#0e7490", "typography": bodyTypography(), "padding": "1rem 1.5rem"},
				Responsive: Category{"hideOnMobile": true},
				Animation:  baseAnimation(),
				Content:    Category{"separator": "/"},
			},
			PreviewData: PreviewData{Title: "Breadcrumb", Content: "Home / Stories"},
		},
		{
			Type:        pbblocks.TypeArticleBody,
			Name:        "Article Body",
			Description: "Long-form rich text article",
			Category:    "content",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"contentWidth": "720px", "alignment": "center"},
				Style:      Category{"background": colorBackground("#ffffff"), "textColor": "#1f2937", "linkColor": "#0e7490", "typography": bodyTypography(), "padding": defaultPadding, "margin": defaultMargin},
				Responsive: baseResponsive(),
				Animation:  baseAnimation(),
				Content:    Category{"showReadingTime": true},
			},
			Variants: []Variant{
				{ID: "wide", Name: "Wide", LayoutOverrides: Category{"contentWidth": "960px"}},
			},
			PreviewData: PreviewData{Title: "Article", Content: "Article body text.", Metadata: map[string]any{"readingTime": 4}},
		},
		{
			Type:        pbblocks.TypeSidebar,
			Name:        "Sidebar",
			Description: "Related links and resources next to an article",
			Category:    "content",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"position": "right", "width": "320px"},
				Style:      Category{"background": colorBackground("#f1f5f9"), "textColor": "#334155", "linkColor": "#0e7490", "typography": bodyTypography(), "padding": "2rem"},
				Responsive: Category{"moveBelowOnMobile": true},
				Animation:  baseAnimation(),
				Content:    Category{"showRelated": true, "relatedLimit": 3},
			},
			Variants: []Variant{
				{ID: "left", Name: "Left", LayoutOverrides: Category{"position": "left"}},
			},
			PreviewData: PreviewData{Title: "Related", Content: "Further reading."},
		},
		{
			Type:        pbblocks.TypeSubscription,
			Name:        "Newsletter Subscription",
			Description: "Email sign-up prompt",
			Category:    "conversion",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"alignment": "center"},
				Style:      Category{"background": colorBackground("#ecfeff"), "textColor": "#0f172a", "typography": bodyTypography(), "padding": defaultPadding, "margin": defaultMargin},
				Responsive: baseResponsive(),
				Animation:  baseAnimation(),
				Content:    Category{"buttonLabel": "Subscribe", "placeholder": "Your email"},
			},
			PreviewData: PreviewData{Title: "Stay in touch", Content: "Get our quarterly update."},
		},
		{
			Type:        pbblocks.TypeTeamGrid,
			Name:        "Team Grid",
			Description: "Staff and trustee profiles",
			Category:    "people",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"columns": 4, "gap": "1.5rem"},
				Style:      Category{"background": colorBackground("#ffffff"), "textColor": "#1f2937", "typography": bodyTypography(), "padding": defaultPadding},
				Responsive: Category{"mobileColumns": 2},
				Animation:  Category{"type": "fade-in", "duration": 400, "stagger": 80},
				Content:    Category{"showRole": true, "showBio": false},
			},
			Variants: []Variant{
				{ID: "compact", Name: "Compact", LayoutOverrides: Category{"columns": 6}, ContentDefaults: Category{"showBio": false}},
			},
			PreviewData: PreviewData{Title: "Our team", Content: "The people behind Turning Tides."},
		},
		{
			Type:        pbblocks.TypeStoryCarousel,
			Name:        "Story Carousel",
			Description: "Rotating impact stories",
			Category:    "content",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"slidesPerView": 1},
				Style:      Category{"background": colorBackground("#0f172a"), "textColor": "#ffffff", "typography": bodyTypography(), "padding": defaultPadding},
				Responsive: baseResponsive(),
				Animation:  Category{"type": "slide", "duration": 500, "autoplay": true, "interval": 6000},
				Content:    Category{"storyLimit": 5},
			},
			PreviewData: PreviewData{Title: "Stories of change", Content: "Voices from the communities we support."},
		},
		{
			Type:        pbblocks.TypeGrantmakingNav,
			Name:        "Grantmaking Navigation",
			Description: "Panel linking grant programmes and application guidance",
			Category:    "navigation",
			DefaultSettings: DefaultSettings{
				Layout:     Category{"columns": 3},
				Style:      Category{"background": colorBackground("#f8fafc"), "textColor": "#0f172a", "linkColor": "#0e7490", "typography": bodyTypography(), "padding": defaultPadding},
				Responsive: Category{"mobileColumns": 1},
				Animation:  baseAnimation(),
				Content:    Category{"programmes": []any{"Open grants", "Partnership fund", "How we fund"}},
			},
			PreviewData: PreviewData{Title: "Grantmaking", Content: "Find the right funding programme."},
		},
	}
}

// DefaultRegistry builds a registry from DefaultCatalog.
func DefaultRegistry() *Registry {
	return MustNewRegistry(DefaultCatalog()...)
}
