package http

import (
	"github.com/go-chi/chi/v5"

	exportspage "savor/frontend/exports"
	"savor/frontend/favourites"
	"savor/frontend/login"
	"savor/frontend/pantry"
	"savor/frontend/recipes"
	"savor/frontend/search"
	"savor/frontend/shared/sidebar"
	"savor/frontend/suggest"
)

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.DB, s.SessionCache, s.UserCache))
	s.router.Post("/logout", login.LogoutHandler(s.DB, s.SessionCache, s.SearchCtrl))
}

// RegisterFrontendRoutes registers authenticated routes.
func (s *Server) RegisterFrontendRoutes(r chi.Router) chi.Router {
	r.Get("/", search.IndexPageQueryHandler(s.DB, s.SearchCtrl, s.Backend, s.CriteriaCache, s.Sidebar))
	r.Post("/product/search/", search.SearchCommandHandler(s.DB, s.SearchCtrl))
	r.Post("/product/search/page", search.PageChangeCommandHandler(s.SearchCtrl))
	r.Post("/product/adv_search", search.AdvancedSearchCommandHandler(s.SearchCtrl))
	r.Get("/suggestions/", suggest.QueryHandler(s.Backend))

	r.Get("/pantry/", pantry.PantryPageQueryHandler(s.PantryCtrl, s.Sidebar))
	r.Post("/search_pantry/", pantry.FilterCommandHandler(s.PantryCtrl))
	r.Post("/pantry/add_product", pantry.AddProductCommandHandler(s.DB, s.PantryCtrl, s.Audit))
	r.Post("/pantry/remove_pantryitem", pantry.RemoveItemCommandHandler(s.DB, s.PantryCtrl, s.Audit))

	r.Post("/favourite_product/{productID}", favourites.ToggleCommandHandler(s.DB, s.FavouritesCtrl, s.Audit))

	r.Get("/recipes/", recipes.RecipesPageQueryHandler(s.Backend, s.Sidebar))
	r.Post("/recipes/save_recipe/{recipeID}", recipes.SaveRecipeCommandHandler(s.DB, s.Backend, s.Audit))
	r.Post("/recipes/delete_recipe/{recipeID}", recipes.DeleteRecipeCommandHandler(s.DB, s.Backend, s.Audit))
	r.Post("/recipes/mark_as_seen/{recipeID}/", recipes.MarkSeenCommandHandler(s.Backend))

	r.Get("/pantry/export.pdf", exportspage.PantryPDFQueryHandler(s.Backend))
	r.Get("/pantry/export.xlsx", exportspage.PantryXLSXQueryHandler(s.Backend))
	r.Get("/pantry/items/{code}/barcode.png", exportspage.BarcodePNGQueryHandler())

	r.Post("/ui/sidebar", sidebar.ToggleHandler(s.Sidebar))

	return r
}
