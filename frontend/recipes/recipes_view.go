package recipes

import (
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"savor/backend"
)

// PageData backs the recipes screen.
type PageData struct {
	Overview     backend.RecipesOverview
	NetworkError bool
	Alert        string
}

// Page renders the recipes screen: three accordion sections, with unseen
// suggestions badged until first expansion reports them seen.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<h1 class="h3 mb-3">Recipes</h1>`)

		switch {
		case data.NetworkError:
			b.WriteString(`<div class="alert alert-danger text-center mt-3" role="alert">A network error occurred. Please check your connection.</div>`)
		case data.Alert != "":
			b.WriteString(`<div class="alert alert-danger text-center mt-3" role="alert">Error: `)
			b.WriteString(html.EscapeString(data.Alert))
			b.WriteString(`</div>`)
		default:
			writeSection(&b, "latest", "Latest Suggestions", data.Overview.LatestSuggestions, true)
			writeSection(&b, "recent", "Recently Suggested", data.Overview.RecentlySuggested, true)
			writeSection(&b, "saved", "Saved Recipes", data.Overview.SavedRecipes, false)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeSection(b *strings.Builder, key, title string, recipes []backend.Recipe, saveable bool) {
	b.WriteString(`<h2 class="h5 mt-4 mb-2">`)
	b.WriteString(title)
	b.WriteString(`</h2>`)
	if len(recipes) == 0 {
		b.WriteString(`<p class="text-muted">Nothing here yet.</p>`)
		return
	}

	b.WriteString(`<div class="accordion mb-3" id="recipes-` + key + `">`)
	for _, recipe := range recipes {
		WriteRecipeCardHTML(b, key, recipe, saveable)
	}
	b.WriteString(`</div>`)
}

// WriteRecipeCardHTML renders one accordion entry. The save response
// reuses it to append the new entry to the saved section.
func WriteRecipeCardHTML(b *strings.Builder, key string, recipe backend.Recipe, saveable bool) {
	id := strconv.FormatInt(recipe.ID, 10)
	headingID := "recipe-heading-" + key + "-" + id
	bodyID := "recipe-body-" + key + "-" + id

	b.WriteString(`<div class="accordion-item" data-recipe-id="`)
	b.WriteString(id)
	b.WriteString(`"><h2 class="accordion-header" id="`)
	b.WriteString(headingID)
	b.WriteString(`"><button class="accordion-button collapsed" type="button" data-bs-toggle="collapse" data-bs-target="#`)
	b.WriteString(bodyID)
	b.WriteString(`" data-action="expand-recipe" data-recipe-id="`)
	b.WriteString(id)
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(recipe.Title))
	if !recipe.IsSeen {
		b.WriteString(` <span class="badge bg-primary ms-2 recipe-unseen-badge">New</span>`)
	}
	b.WriteString(`</button></h2><div id="`)
	b.WriteString(bodyID)
	b.WriteString(`" class="accordion-collapse collapse"><div class="accordion-body">`)

	writeIngredients(b, recipe.Ingredients)
	writeInstructions(b, recipe.Instructions)

	if saveable {
		b.WriteString(`<button class="btn btn-sm btn-primary" type="button" data-action="save-recipe" data-recipe-id="`)
		b.WriteString(id)
		b.WriteString(`">Save</button>`)
	} else {
		b.WriteString(`<button class="btn btn-sm btn-outline-danger" type="button" data-action="delete-recipe" data-recipe-id="`)
		b.WriteString(id)
		b.WriteString(`">Delete</button>`)
	}
	b.WriteString(`<span class="message-container small ms-2"></span>`)
	b.WriteString(`</div></div></div>`)
}

func writeIngredients(b *strings.Builder, ingredients []backend.RecipeIngredient) {
	if len(ingredients) == 0 {
		return
	}
	b.WriteString(`<ul class="mb-3">`)
	for _, ing := range ingredients {
		b.WriteString(`<li>`)
		b.WriteString(html.EscapeString(ing.Name))
		if ing.Quantity > 0 {
			b.WriteString(" - ")
			b.WriteString(strconv.FormatFloat(ing.Quantity, 'f', -1, 64))
			if ing.Unit != "" {
				b.WriteString(" ")
				b.WriteString(html.EscapeString(ing.Unit))
			}
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

func writeInstructions(b *strings.Builder, instructions []string) {
	if len(instructions) == 0 {
		return
	}
	b.WriteString(`<ol class="mb-3">`)
	for _, step := range instructions {
		b.WriteString(`<li>`)
		b.WriteString(html.EscapeString(step))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ol>`)
}
