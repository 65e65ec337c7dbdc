package templates

import (
	"strings"

	pbblocks "github.com/turningtides/go-pagebuilder/blocks"
	"github.com/turningtides/go-pagebuilder/internal/blocks"
)

// RecipeVariantKey is the custom settings key holding a recipe's variant tag.
const RecipeVariantKey = "recipeVariant"

// Recipe names accepted by NewRecipe.
const (
	RecipeHomepage = "homepage"
	RecipeBlog     = "blog"
)

// Recipes lists the canned template recipes.
func Recipes() []string {
	return []string{RecipeHomepage, RecipeBlog}
}

// CreateHomepageTemplate returns a builder prefilled with
// navigation, hero, featured content, testimonials, call to action and footer.
func CreateHomepageTemplate(composer *Composer, name, variant string) *Builder {
	b := recipeBuilder(composer, name, variant, RecipeHomepage)
	b.WithDescription("Landing page introducing the organisation and its work")
	custom := recipeCustom(variant)

	return b.
		AddBlock(pbblocks.TypeNavigation, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeHero, BlockOptions{
			CustomSettings: custom(),
			Content:        &BlockContent{Title: name, Subtitle: "Funding community-led change"},
		}).
		AddBlock(pbblocks.TypeFeaturedContent, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeTestimonials, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeCTA, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeFooter, BlockOptions{CustomSettings: custom()})
}

// CreateBlogTemplate returns a builder prefilled with navigation,
// breadcrumb, article body, sidebar, subscription and footer.
func CreateBlogTemplate(composer *Composer, name, variant string) *Builder {
	b := recipeBuilder(composer, name, variant, RecipeBlog)
	b.WithDescription("Article page with related reading and newsletter sign-up")
	custom := recipeCustom(variant)

	return b.
		AddBlock(pbblocks.TypeNavigation, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeBreadcrumb, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeArticleBody, BlockOptions{
			CustomSettings: custom(),
			Content:        &BlockContent{Title: name},
		}).
		AddBlock(pbblocks.TypeSidebar, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeSubscription, BlockOptions{CustomSettings: custom()}).
		AddBlock(pbblocks.TypeFooter, BlockOptions{CustomSettings: custom()})
}

// NewRecipe dispatches to a recipe by name.
func NewRecipe(composer *Composer, recipe, name, variant string) (*Builder, bool) {
	switch strings.ToLower(strings.TrimSpace(recipe)) {
	case RecipeHomepage:
		return CreateHomepageTemplate(composer, name, variant), true
	case RecipeBlog:
		return CreateBlogTemplate(composer, name, variant), true
	}
	return nil, false
}

func recipeBuilder(composer *Composer, name, variant, recipe string) *Builder {
	b := composer.NewBuilder()
	b.source = SourceRecipe
	return b.WithName(name).WithCategory(recipe, variant).WithTags(recipe, variant)
}

func recipeCustom(variant string) func() *blocks.Settings {
	return func() *blocks.Settings {
		if strings.TrimSpace(variant) == "" {
			return nil
		}
		return &blocks.Settings{Custom: blocks.Category{RecipeVariantKey: variant}}
	}
}
